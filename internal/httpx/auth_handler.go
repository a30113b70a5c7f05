package httpx

import (
	"net/http"

	"github.com/Hasna17806/ZYRA-sub000/internal/auth"
)

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type changePasswordReq struct {
	Current string `json:"currentPassword"`
	Next    string `json:"newPassword"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req auth.RegisterInput
	if !decode(w, r, &req) {
		return
	}
	ctx, cancel := upstream(r)
	defer cancel()

	u, err := device(r).Shop.Register(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, u.Public())
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if !decode(w, r, &req) {
		return
	}
	ctx, cancel := upstream(r)
	defer cancel()

	shop := device(r).Shop
	u, err := shop.Login(ctx, req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"user": u.Public(), "token": shop.Auth.Token()})
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if err := device(r).Shop.Logout(r.Context()); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	u, ok := device(r).Shop.Auth.Current()
	if !ok {
		writeError(w, r, auth.ErrNotAuthenticated)
		return
	}
	writeJSON(w, http.StatusOK, u.Public())
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	var req auth.ProfileUpdate
	if !decode(w, r, &req) {
		return
	}
	ctx, cancel := upstream(r)
	defer cancel()

	u, err := device(r).Shop.Auth.UpdateProfile(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, u.Public())
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	var req changePasswordReq
	if !decode(w, r, &req) {
		return
	}
	ctx, cancel := upstream(r)
	defer cancel()

	if err := device(r).Shop.Auth.ChangePassword(ctx, req.Current, req.Next); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "password changed"})
}
