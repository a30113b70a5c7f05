// Package storage is the durable key-value store behind the storefront state.
// It plays the part a browser's local storage plays for a web client: string
// keys, JSON string values, no schema and no versioning.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
)

const (
	KeyUser           = "user"
	KeyToken          = "token"
	KeyOrdersByUser   = "ordersByUser"
	KeyLegacyCart     = "cart"
	KeyLegacyWishlist = "wishlist"

	GuestID = "guest"
)

type Store interface {
	// Get returns ok=false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// LoadJSON decodes the value at key. An absent key or a value that is not
// valid JSON for T yields the zero T with found=false; only backend failures
// are returned as errors.
func LoadJSON[T any](ctx context.Context, s Store, key string) (v T, found bool, err error) {
	raw, ok, err := s.Get(ctx, key)
	if err != nil {
		return v, false, fmt.Errorf("load %s: %w", key, err)
	}
	if !ok {
		return v, false, nil
	}
	var decoded T
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return v, false, nil
	}
	return decoded, true, nil
}

func SaveJSON(ctx context.Context, s Store, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.Set(ctx, key, string(b)); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

type prefixed struct {
	s      Store
	prefix string
}

// WithPrefix returns a view of s in which every key is prefixed. The api uses
// it to give each client device its own slice of a shared backend.
func WithPrefix(s Store, prefix string) Store {
	return &prefixed{s: s, prefix: prefix}
}

func (p *prefixed) Get(ctx context.Context, key string) (string, bool, error) {
	return p.s.Get(ctx, p.prefix+key)
}

func (p *prefixed) Set(ctx context.Context, key, value string) error {
	return p.s.Set(ctx, p.prefix+key, value)
}

func (p *prefixed) Delete(ctx context.Context, key string) error {
	return p.s.Delete(ctx, p.prefix+key)
}
