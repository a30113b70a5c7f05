package admin

import (
	"context"
	"slices"

	"github.com/Hasna17806/ZYRA-sub000/internal/models"
	"github.com/Hasna17806/ZYRA-sub000/internal/validate"
)

type UserAPI interface {
	Users(ctx context.Context) ([]models.User, error)
	PatchUser(ctx context.Context, id models.ID, delta map[string]any) (models.User, error)
	DeleteUser(ctx context.Context, id models.ID) error
}

type UsersView struct {
	api   UserAPI
	items []models.User
}

func NewUsersView(api UserAPI) *UsersView {
	return &UsersView{api: api}
}

func (v *UsersView) Load(ctx context.Context) error {
	us, err := v.api.Users(ctx)
	if err != nil {
		return err
	}
	v.items = us
	return nil
}

// Items never exposes passwords.
func (v *UsersView) Items() []models.User {
	out := make([]models.User, 0, len(v.items))
	for _, u := range v.items {
		out = append(out, u.Public())
	}
	return out
}

func (v *UsersView) Update(ctx context.Context, id models.ID, delta map[string]any) error {
	if r, ok := delta["role"]; ok && r != models.RoleUser && r != models.RoleAdmin {
		return &validate.Error{Field: "role", Message: "must be user or admin"}
	}
	for i, u := range v.items {
		if u.ID != id {
			continue
		}
		next, err := applyDelta(u, delta)
		if err != nil {
			return err
		}
		v.items[i] = next
		break
	}
	_, err := v.api.PatchUser(ctx, id, delta)
	return err
}

func (v *UsersView) Delete(ctx context.Context, id models.ID) error {
	v.items = slices.DeleteFunc(v.items, func(u models.User) bool { return u.ID == id })
	return v.api.DeleteUser(ctx, id)
}
