package profile

import (
	"net/http"

	"github.com/CuratorSpace/CS-Backend/internal/identity"
	"github.com/CuratorSpace/CS-Backend/internal/middleware"
	"github.com/go-chi/chi/v5"
)

func SetupRoutes() http.Handler {
	r := chi.NewRouter()
	sessionFetcher := identity.SessionInfo{}

	r.Get("/{accountID}", ViewHandler)

	r.Group(func(r chi.Router) {
		r.Use(middleware.SessionMiddleware(sessionFetcher))
		r.Put("/{accountID}", EditHandler)
		r.Post("/{accountID}/password", ChangePasswordHandler)
	})

	return r
}
