package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/Hasna17806/ZYRA-sub000/internal/models"
	"github.com/Hasna17806/ZYRA-sub000/internal/storage"
	"github.com/Hasna17806/ZYRA-sub000/internal/validate"
)

var ErrWrongPassword = errors.New("current password does not match")

// ProfileUpdate carries only the fields the user changed.
type ProfileUpdate struct {
	Name         *string `json:"name,omitempty"`
	Email        *string `json:"email,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Address      *string `json:"address,omitempty"`
	ProfileImage *string `json:"profileImage,omitempty"`
}

func (p ProfileUpdate) delta() (map[string]any, error) {
	d := map[string]any{}
	if p.Name != nil {
		if err := validate.Required("name", *p.Name); err != nil {
			return nil, err
		}
		d["name"] = *p.Name
	}
	if p.Email != nil {
		if err := validate.Email(*p.Email); err != nil {
			return nil, err
		}
		d["email"] = *p.Email
	}
	if p.Phone != nil {
		d["phone"] = *p.Phone
	}
	if p.Address != nil {
		d["address"] = *p.Address
	}
	if p.ProfileImage != nil {
		d["profileImage"] = *p.ProfileImage
	}
	return d, nil
}

// UpdateProfile sends the changed fields as a partial update and stores the
// user the server returns.
func (s *Session) UpdateProfile(ctx context.Context, p ProfileUpdate) (models.User, error) {
	cur, ok := s.Current()
	if !ok {
		return models.User{}, ErrNotAuthenticated
	}
	delta, err := p.delta()
	if err != nil {
		return models.User{}, err
	}
	if len(delta) == 0 {
		return cur, nil
	}
	return s.patch(ctx, cur.ID, delta)
}

func (s *Session) ChangePassword(ctx context.Context, current, next string) error {
	cur, ok := s.Current()
	if !ok {
		return ErrNotAuthenticated
	}
	if !s.matches(cur.Password, current) {
		return ErrWrongPassword
	}
	if err := validate.Password(next); err != nil {
		return err
	}
	pw, err := s.secret(next)
	if err != nil {
		return err
	}
	_, err = s.patch(ctx, cur.ID, map[string]any{"password": pw})
	return err
}

func (s *Session) patch(ctx context.Context, id models.ID, delta map[string]any) (models.User, error) {
	u, err := s.users.PatchUser(ctx, id, delta)
	if err != nil {
		return models.User{}, err
	}
	if err := storage.SaveJSON(ctx, s.store, storage.KeyUser, u); err != nil {
		return models.User{}, fmt.Errorf("store user: %w", err)
	}
	s.user = &u
	return u, nil
}
