// Package auth is the storefront login session: registration and login
// against the users collection, and the current user kept in storage.
package auth

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Hasna17806/ZYRA-sub000/internal/models"
	"github.com/Hasna17806/ZYRA-sub000/internal/storage"
	"github.com/Hasna17806/ZYRA-sub000/internal/validate"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrRegistration       = errors.New("registration failed")
	ErrNotAuthenticated   = errors.New("not logged in")
)

// Directory is the users collection.
type Directory interface {
	Users(ctx context.Context) ([]models.User, error)
	CreateUser(ctx context.Context, u models.User) (models.User, error)
	PatchUser(ctx context.Context, id models.ID, delta map[string]any) (models.User, error)
}

type Option func(*Session)

// WithHashedPasswords stores bcrypt hashes on registration and password
// change, and compares against them on login.
func WithHashedPasswords() Option {
	return func(s *Session) { s.hashed = true }
}

func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

type Session struct {
	store  storage.Store
	users  Directory
	now    func() time.Time
	hashed bool

	user  *models.User
	token string
}

func NewSession(store storage.Store, users Directory, opts ...Option) *Session {
	s := &Session{store: store, users: users, now: time.Now}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Restore picks up a previously stored user as the active session. There is
// no expiry and no check against the server.
func (s *Session) Restore(ctx context.Context) error {
	u, ok, err := storage.LoadJSON[models.User](ctx, s.store, storage.KeyUser)
	if err != nil {
		return err
	}
	if !ok {
		s.user, s.token = nil, ""
		return nil
	}
	tok, _, err := s.store.Get(ctx, storage.KeyToken)
	if err != nil {
		return fmt.Errorf("load token: %w", err)
	}
	s.user, s.token = &u, tok
	return nil
}

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
}

// Register creates a user record. Duplicate emails are not checked for.
func (s *Session) Register(ctx context.Context, in RegisterInput) (models.User, error) {
	if err := validate.Required("name", in.Name); err != nil {
		return models.User{}, err
	}
	if err := validate.Email(in.Email); err != nil {
		return models.User{}, err
	}
	if err := validate.Password(in.Password); err != nil {
		return models.User{}, err
	}

	pw, err := s.secret(in.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrRegistration, err)
	}
	created, err := s.users.CreateUser(ctx, models.User{
		Name:     strings.TrimSpace(in.Name),
		Email:    strings.TrimSpace(in.Email),
		Password: pw,
		Role:     models.RoleUser,
		Phone:    in.Phone,
		Address:  in.Address,
	})
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrRegistration, err)
	}
	return created, nil
}

// Login fetches every user and takes the first whose email and password both
// match exactly. Comparison is case-sensitive for both fields.
func (s *Session) Login(ctx context.Context, email, password string) (models.User, error) {
	all, err := s.users.Users(ctx)
	if err != nil {
		return models.User{}, err
	}
	for _, u := range all {
		if u.Email == email && s.matches(u.Password, password) {
			if err := s.begin(ctx, u); err != nil {
				return models.User{}, err
			}
			return u, nil
		}
	}
	return models.User{}, ErrInvalidCredentials
}

func (s *Session) begin(ctx context.Context, u models.User) error {
	tok := NewToken(u.ID, s.now())
	if err := s.store.Set(ctx, storage.KeyToken, tok); err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	if err := storage.SaveJSON(ctx, s.store, storage.KeyUser, u); err != nil {
		return err
	}
	s.user, s.token = &u, tok
	return nil
}

// Logout removes token, user and the unnamespaced cart and wishlist keys.
// The per-user cart_<id> and wishlist_<id> keys are left alone.
func (s *Session) Logout(ctx context.Context) error {
	s.user, s.token = nil, ""
	var errs []error
	for _, k := range []string{storage.KeyToken, storage.KeyUser, storage.KeyLegacyCart, storage.KeyLegacyWishlist} {
		if err := s.store.Delete(ctx, k); err != nil {
			errs = append(errs, fmt.Errorf("delete %s: %w", k, err))
		}
	}
	return errors.Join(errs...)
}

// NewToken is the opaque session token: base64 of the user id followed by
// the unix time in milliseconds. It is not signed and never verified.
func NewToken(id models.ID, at time.Time) string {
	return base64.StdEncoding.EncodeToString([]byte(id.String() + strconv.FormatInt(at.UnixMilli(), 10)))
}

func (s *Session) Current() (models.User, bool) {
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

func (s *Session) Token() string { return s.token }

func (s *Session) matches(stored, given string) bool {
	if !s.hashed {
		return stored == given
	}
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(given)) == nil
}

func (s *Session) secret(pw string) (string, error) {
	if !s.hashed {
		return pw, nil
	}
	h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}
