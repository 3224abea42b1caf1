package http

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/aussiebroadwan/roster/internal/roster/service"
	"github.com/aussiebroadwan/roster/pkg/httpx"
	"github.com/aussiebroadwan/roster/pkg/rostersdk"
)

// AuthHandler serves account registration and login.
type AuthHandler struct {
	UserService *service.UserService
}

func decodeCredentials(w http.ResponseWriter, r *http.Request) (rostersdk.Credentials, error) {
	var req rostersdk.Credentials
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		return req, invalidBody(err)
	}
	req.Username = strings.TrimSpace(req.Username)
	return req, validateStruct(req)
}

// decodeLogin only checks that both fields are present. Length rules belong
// to registration and must not leak through failed logins.
func decodeLogin(w http.ResponseWriter, r *http.Request) (rostersdk.LoginRequest, error) {
	var req rostersdk.LoginRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		return req, invalidBody(err)
	}
	req.Username = strings.TrimSpace(req.Username)
	if strings.TrimSpace(req.Password) == "" {
		req.Password = ""
	}
	return req, validateStruct(req)
}

// HandleRegister handles POST /api/v1/auth/register
//
//	@Summary		Register
//	@Description	Creates an account. Usernames are unique.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		rostersdk.Credentials		true	"username and password"
//	@Success		201		{object}	rostersdk.RegisterResponse	"created username"
//	@Header			201		{string}	Location					"/api/v1/auth/users/{username}"
//	@Failure		400		{object}	rostersdk.ErrorResponse		"validation_error"
//	@Failure		409		{object}	rostersdk.ErrorResponse		"duplicate"
//	@Failure		429		{object}	rostersdk.ErrorResponse		"rate_limit_exceeded"
//	@Router			/api/v1/auth/register [post].
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	req, err := decodeCredentials(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	u, err := h.UserService.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Location", "/api/v1/auth/users/"+url.PathEscape(u.Username))
	httpx.WriteJSON(w, http.StatusCreated, rostersdk.RegisterResponse{Username: u.Username})
}

// HandleLogin handles POST /api/v1/auth/login
//
//	@Summary		Login
//	@Description	Exchanges credentials for a signed bearer token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		rostersdk.LoginRequest	true	"username and password"
//	@Success		200		{object}	rostersdk.LoginResponse	"token"
//	@Failure		400		{object}	rostersdk.ErrorResponse	"validation_error"
//	@Failure		401		{object}	rostersdk.ErrorResponse	"invalid_credentials"
//	@Failure		429		{object}	rostersdk.ErrorResponse	"rate_limit_exceeded"
//	@Router			/api/v1/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	req, err := decodeLogin(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.UserService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, rostersdk.LoginResponse{Token: token})
}
