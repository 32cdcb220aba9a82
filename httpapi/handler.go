package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"mime"
	"net"
	"net/http"
	"strings"

	"github.com/authgate/authgate"
	"github.com/authgate/authgate/middleware"
)

// Handler serves the token lifecycle endpoints for one engine.
type Handler struct {
	engine *authgate.Engine
}

// NewHandler wraps an engine built through authgate.Builder.
func NewHandler(engine *authgate.Engine) *Handler {
	return &Handler{engine: engine}
}

// Router returns a mux with the full endpoint set mounted at the root.
func (h *Handler) Router() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /token", h.handleToken)
	mux.HandleFunc("POST /refresh-token", h.handleRefresh)
	mux.HandleFunc("POST /logout", h.handleLogout)
	mux.HandleFunc("POST /logout-all", h.handleLogoutAll)
	mux.Handle("GET /protected", middleware.RequireAuthenticated(h.engine)(http.HandlerFunc(h.handleProtected)))
	mux.Handle("GET /admin", middleware.RequireRole(h.engine, "admin")(http.HandlerFunc(h.handleAdmin)))
	return mux
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// handleToken accepts either a form-encoded or a JSON body. Both carry
// username and password; anything missing is a 422.
func (h *Handler) handleToken(w http.ResponseWriter, r *http.Request) {
	var req loginRequest

	contentType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch contentType {
	case "application/json":
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeDetail(w, http.StatusUnprocessableEntity, "invalid request body")
			return
		}
	default:
		if err := r.ParseForm(); err != nil {
			writeDetail(w, http.StatusUnprocessableEntity, "invalid request body")
			return
		}
		req.Username = r.PostFormValue("username")
		req.Password = r.PostFormValue("password")
	}

	if req.Username == "" || req.Password == "" {
		writeDetail(w, http.StatusUnprocessableEntity, "username and password are required")
		return
	}

	ctx := authgate.WithClientIP(r.Context(), remoteIP(r))
	pair, err := h.engine.Login(ctx, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, authgate.ErrLoginRateLimited):
			writeDetail(w, http.StatusTooManyRequests, "too many login attempts")
		case errors.Is(err, authgate.ErrStoreUnavailable):
			writeDetail(w, http.StatusServiceUnavailable, "service unavailable")
		default:
			w.Header().Set("WWW-Authenticate", "Bearer")
			writeDetail(w, http.StatusUnauthorized, "incorrect username or password")
		}
		return
	}

	writeJSON(w, http.StatusOK, pair)
}

func (h *Handler) handleRefresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}
	if req.RefreshToken == "" {
		writeDetail(w, http.StatusUnprocessableEntity, "refresh_token is required")
		return
	}

	ctx := authgate.WithClientIP(r.Context(), remoteIP(r))
	pair, err := h.engine.Refresh(ctx, req.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, authgate.ErrStoreUnavailable):
			writeDetail(w, http.StatusServiceUnavailable, "service unavailable")
		default:
			w.Header().Set("WWW-Authenticate", "Bearer")
			writeDetail(w, http.StatusUnauthorized, "invalid refresh token")
		}
		return
	}

	writeJSON(w, http.StatusOK, pair)
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	h.logout(w, r, h.engine.Logout)
}

func (h *Handler) handleLogoutAll(w http.ResponseWriter, r *http.Request) {
	h.logout(w, r, h.engine.LogoutAll)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request, revoke func(ctx context.Context, token string) error) {
	tok, ok := bearerToken(r.Header.Get("Authorization"))
	if !ok {
		w.Header().Set("WWW-Authenticate", "Bearer")
		writeDetail(w, http.StatusUnauthorized, "missing bearer token")
		return
	}

	ctx := authgate.WithClientIP(r.Context(), remoteIP(r))
	if err := revoke(ctx, tok); err != nil {
		switch {
		case errors.Is(err, authgate.ErrTokenMalformed):
			writeDetail(w, http.StatusBadRequest, "malformed token")
		case errors.Is(err, authgate.ErrStoreUnavailable):
			writeDetail(w, http.StatusServiceUnavailable, "service unavailable")
		default:
			writeDetail(w, http.StatusInternalServerError, "logout failed")
		}
		return
	}

	writeDetail(w, http.StatusOK, "logged out")
}

func (h *Handler) handleProtected(w http.ResponseWriter, r *http.Request) {
	p, _ := middleware.PrincipalFromContext(r.Context())
	writeJSON(w, http.StatusOK, map[string]string{
		"detail": "welcome, " + p.Subject,
		"role":   p.Role,
	})
}

func (h *Handler) handleAdmin(w http.ResponseWriter, r *http.Request) {
	p, _ := middleware.PrincipalFromContext(r.Context())
	writeJSON(w, http.StatusOK, map[string]string{
		"detail": "admin area, " + p.Subject,
	})
}

func bearerToken(value string) (string, bool) {
	const bearer = "Bearer "
	if !strings.HasPrefix(value, bearer) {
		return "", false
	}
	tok := value[len(bearer):]
	return tok, tok != ""
}

func remoteIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}
