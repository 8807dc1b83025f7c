package handlers

import (
	"net/http"

	"github.com/comcode/blog-engine/internal/api/types"
	"github.com/comcode/blog-engine/internal/dto"
	"github.com/comcode/blog-engine/internal/services"
	appErr "github.com/comcode/blog-engine/pkg/errors"
)

type AuthHandler struct {
	auth services.AuthService
}

func NewAuthHandler(auth services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login exchanges email+password for a bearer token envelope.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := decodeBody(r, &req); err != nil {
		types.WriteError(w, r, err)
		return
	}
	session, err := h.auth.Login(r.Context(), req)
	if err != nil {
		types.WriteError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

// Verify consumes the token from an emailed verification link and activates
// the account.
func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		types.WriteError(w, r, appErr.New(appErr.CodeInvalid, "missing token parameter"))
		return
	}
	if err := h.auth.VerifyEmail(r.Context(), token); err != nil {
		types.WriteError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "verified"})
}
