package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/authgate/authgate"
)

type principalContextKey struct{}

// PrincipalFromContext returns the principal a guard stored on the request
// context, if any.
func PrincipalFromContext(ctx context.Context) (authgate.Principal, bool) {
	p, ok := ctx.Value(principalContextKey{}).(authgate.Principal)
	return p, ok
}

// Guard wraps a handler with token authorization. Pass requiredRole == ""
// to admit any authenticated principal.
func Guard(engine *authgate.Engine, requiredRole string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if engine == nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			tok, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				w.Header().Set("WWW-Authenticate", "Bearer")
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			p, err := engine.Authorize(r.Context(), tok, requiredRole)
			if err != nil {
				http.Error(w, "unauthorized", statusForError(err))
				return
			}

			ctx := context.WithValue(r.Context(), principalContextKey{}, p)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuthenticated admits any principal with a valid access token.
func RequireAuthenticated(engine *authgate.Engine) func(http.Handler) http.Handler {
	return Guard(engine, "")
}

// RequireRole admits only principals whose role claim equals role.
func RequireRole(engine *authgate.Engine, role string) func(http.Handler) http.Handler {
	return Guard(engine, role)
}

func bearerToken(value string) (string, bool) {
	const bearer = "Bearer "
	if !strings.HasPrefix(value, bearer) {
		return "", false
	}

	tok := value[len(bearer):]
	if tok == "" {
		return "", false
	}

	return tok, true
}

// statusForError keeps the split between "who are you" (401), "not for
// you" (403), and "try later" (503) failures.
func statusForError(err error) int {
	switch {
	case errors.Is(err, authgate.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, authgate.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusUnauthorized
	}
}
