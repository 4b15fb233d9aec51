package curator

import (
	"net/http"

	"github.com/CuratorSpace/CS-Backend/internal/identity"
	"github.com/CuratorSpace/CS-Backend/internal/middleware"
	"github.com/go-chi/chi/v5"
)

func SetupRoutes() http.Handler {
	r := chi.NewRouter()
	sessionFetcher := identity.SessionInfo{}

	r.Group(func(r chi.Router) {
		r.Use(middleware.SessionMiddleware(sessionFetcher))
		r.Post("/applications", SubmitHandler)
		r.Get("/applications/mine", MineHandler)

		r.Group(func(r chi.Router) {
			r.Use(middleware.AdminMiddleware)
			r.Get("/applications", ListHandler)
		})
	})

	return r
}
