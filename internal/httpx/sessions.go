package httpx

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/Hasna17806/ZYRA-sub000/internal/admin"
	"github.com/Hasna17806/ZYRA-sub000/internal/storefront"
)

// HeaderDeviceID names the client whose storage a request works on.
const HeaderDeviceID = "X-Device-ID"

// Opener builds the storefront for a device, restoring its stored session.
type Opener func(ctx context.Context, deviceID string) (*storefront.Storefront, error)

// Device is the state of one client. Its lock serializes that client's
// requests, so each storefront only ever sees one request at a time.
type Device struct {
	mu    sync.Mutex
	Shop  *storefront.Storefront
	Admin *admin.Console

	lastSeen time.Time
}

// DefaultIdleTTL is how long an unused device stays in memory. Everything
// durable is in storage, so an evicted device is rebuilt on its next request;
// only catalog filters and loaded admin lists are lost.
const DefaultIdleTTL = 30 * time.Minute

type Sessions struct {
	open Opener
	api  admin.API
	idle time.Duration
	now  func() time.Time

	mu        sync.Mutex
	byID      map[string]*Device
	lastSweep time.Time
}

func NewSessions(open Opener, api admin.API, idle time.Duration) *Sessions {
	if idle <= 0 {
		idle = DefaultIdleTTL
	}
	return &Sessions{open: open, api: api, idle: idle, now: time.Now, byID: make(map[string]*Device)}
}

func (s *Sessions) get(ctx context.Context, id string) (*Device, error) {
	s.mu.Lock()
	now := s.now()
	s.sweep(now)
	d, ok := s.byID[id]
	if ok {
		d.lastSeen = now
	}
	s.mu.Unlock()
	if ok {
		return d, nil
	}

	shop, err := s.open(ctx, id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if d, ok := s.byID[id]; ok {
		return d, nil
	}
	d = &Device{Shop: shop, Admin: admin.NewConsole(s.api), lastSeen: now}
	s.byID[id] = d
	return d, nil
}

// sweep drops devices idle for longer than the ttl, at most once per half
// ttl. s.mu must be held.
func (s *Sessions) sweep(now time.Time) {
	if now.Sub(s.lastSweep) < s.idle/2 {
		return
	}
	s.lastSweep = now
	for id, d := range s.byID {
		if now.Sub(d.lastSeen) > s.idle {
			delete(s.byID, id)
		}
	}
}

// Len reports how many devices are held in memory.
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byID)
}

type deviceKey struct{}

// withDevice resolves the device of the request and holds its lock for the
// rest of the chain.
func (s *Sessions) withDevice(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(HeaderDeviceID)
		if id == "" {
			writeMessage(w, http.StatusBadRequest, "missing "+HeaderDeviceID+" header")
			return
		}
		d, err := s.get(r.Context(), id)
		if err != nil {
			writeError(w, r, err)
			return
		}
		d.mu.Lock()
		defer d.mu.Unlock()
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), deviceKey{}, d)))
	})
}

func device(r *http.Request) *Device {
	return r.Context().Value(deviceKey{}).(*Device)
}

// requireAdmin lets through only devices logged in as an admin.
func requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, ok := device(r).Shop.Auth.Current()
		if !ok {
			writeMessage(w, http.StatusUnauthorized, "login required")
			return
		}
		if !u.IsAdmin() {
			writeMessage(w, http.StatusForbidden, "admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
