package httpx

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/Hasna17806/ZYRA-sub000/internal/auth"
	"github.com/Hasna17806/ZYRA-sub000/internal/restapi"
	"github.com/Hasna17806/ZYRA-sub000/internal/storefront"
	"github.com/Hasna17806/ZYRA-sub000/internal/validate"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

// writeError maps domain errors onto status codes.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var reqErr *restapi.RequestError
	switch {
	case errors.Is(err, validate.ErrValidation), errors.Is(err, storefront.ErrEmptyCart):
		writeMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, auth.ErrWrongPassword):
		writeMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, auth.ErrInvalidCredentials), errors.Is(err, auth.ErrNotAuthenticated):
		writeMessage(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, storefront.ErrProductNotFound):
		writeMessage(w, http.StatusNotFound, err.Error())
	case errors.As(err, &reqErr) && reqErr.NotFound():
		writeMessage(w, http.StatusNotFound, "not found")
	case errors.Is(err, auth.ErrRegistration), errors.Is(err, restapi.ErrRequestFailed):
		log.Printf("%s %s: %v", r.Method, r.URL.Path, err)
		writeMessage(w, http.StatusBadGateway, err.Error())
	default:
		log.Printf("%s %s: %v", r.Method, r.URL.Path, err)
		writeMessage(w, http.StatusInternalServerError, "internal error")
	}
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid json")
		return false
	}
	return true
}
