package identity

import (
	"net/http"

	"github.com/CuratorSpace/CS-Backend/internal/middleware"
	"github.com/go-chi/chi/v5"
)

func SetupRoutes() http.Handler {
	r := chi.NewRouter()
	sessionFetcher := SessionInfo{}

	r.Post("/register", RegisterHandler)
	r.With(loginThrottle.Middleware).Post("/login", LoginHandler)
	r.Get("/check-username", CheckUsernameHandler)
	r.Get("/check-email", CheckEmailHandler)

	r.Group(func(r chi.Router) {
		r.Use(middleware.SessionMiddleware(sessionFetcher))
		r.Post("/logout", LogoutHandler)
		r.Get("/me", MeHandler)
	})

	return r
}
