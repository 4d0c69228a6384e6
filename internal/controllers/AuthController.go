package controllers

import (
	"net/http"
	"wadboard/internal/models"
	"wadboard/internal/providers"
	"wadboard/internal/session"
)

type AuthController struct {
	logger   providers.Logger
	sessions session.ManagerInterface
	cookies  *session.CookieCodec
}

type sessionResponse struct {
	Authenticated bool `json:"authenticated"`
}

func NewAuthController(logger providers.Logger, sessions session.ManagerInterface, cookies *session.CookieCodec) *AuthController {
	return &AuthController{
		logger:   logger,
		sessions: sessions,
		cookies:  cookies,
	}
}

// IsAdmin reports whether r carries a valid admin session cookie.
func (ac *AuthController) IsAdmin(r *http.Request) bool {
	_, ok := ac.sessions.Validate(ac.cookies.Token(r))
	return ok
}

func (ac *AuthController) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !ac.IsAdmin(r) {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (ac *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if !ac.sessions.CheckPassword(req.Password) {
		ac.logger.Warnf(providers.TypeAuth, "Failed login from %s", r.RemoteAddr)
		writeError(w, http.StatusUnauthorized, "Invalid password")
		return
	}

	token, err := ac.sessions.Create()
	if err != nil {
		ac.logger.Errorf(providers.TypeAuth, "Create session: %s", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if err = ac.cookies.Set(w, token); err != nil {
		ac.sessions.Invalidate(token)
		ac.logger.Errorf(providers.TypeAuth, "Set session cookie: %s", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	ac.logger.Infof(providers.TypeAuth, "Admin logged in from %s", r.RemoteAddr)
	writeOK(w)
}

func (ac *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	if token := ac.cookies.Token(r); token != "" {
		ac.sessions.Invalidate(token)
	}
	ac.cookies.Clear(w)
	writeOK(w)
}

func (ac *AuthController) Session(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, sessionResponse{Authenticated: ac.IsAdmin(r)})
}
