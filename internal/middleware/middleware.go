package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/CuratorSpace/CS-Backend/internal/utils"
)

type SessionFetcher interface {
	FindSessionByID(id string) (utils.Principal, error)
}

// SessionMiddleware resolves the session_id cookie to a Principal and injects
// it into the request context. Requests without a live session never reach
// the wrapped handler.
func SessionMiddleware(fetcher SessionFetcher) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie("session_id")
			if err != nil {
				http.Error(w, "Couldn't find cookie", http.StatusUnauthorized)
				return
			}

			if cookie.Value == "" {
				http.Error(w, "Invalid Session", http.StatusUnauthorized)
				return
			}

			principal, err := fetcher.FindSessionByID(cookie.Value)
			if err != nil {
				http.Error(w, "Couldn't find session", http.StatusUnauthorized)
				return
			}

			if principal.ExpiresAt.Before(time.Now()) {
				http.Error(w, "Session expired", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), utils.ContextPrincipalKey, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminMiddleware gates the curator-review surface. It must run after
// SessionMiddleware; the role comes from the session snapshot.
func AdminMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, ok := utils.GetPrincipal(r.Context())
		if !ok {
			http.Error(w, "Unauthorized: missing session in context", http.StatusUnauthorized)
			return
		}

		if principal.Role != "admin" {
			http.Error(w, "Forbidden: admin access required", http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
