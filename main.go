package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/CuratorSpace/CS-Backend/internal/config"
	"github.com/CuratorSpace/CS-Backend/internal/curator"
	"github.com/CuratorSpace/CS-Backend/internal/db"
	"github.com/CuratorSpace/CS-Backend/internal/identity"
	"github.com/CuratorSpace/CS-Backend/internal/middleware"
	"github.com/CuratorSpace/CS-Backend/internal/profile"
	"github.com/CuratorSpace/CS-Backend/internal/storage"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
)

func RootHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintln(w, "Server is up!")
}

func main() {
	_ = godotenv.Load(".env.local")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	db.Connect(cfg.DatabaseURL)

	avatars, err := storage.FromConfig(cfg)
	if err != nil {
		log.Fatal("Failed to set up upload storage: ", err)
	}

	identity.Init(cfg)
	profile.Init(avatars)
	curator.Init(avatars)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	r.Get("/", RootHandler)
	r.Mount("/auth", identity.SetupRoutes())
	r.Mount("/profile", profile.SetupRoutes())
	r.Mount("/curator", curator.SetupRoutes())

	log.Println("Server listening on port :" + cfg.Port + "...")

	if err := http.ListenAndServe("0.0.0.0:"+cfg.Port, r); err != nil {
		log.Fatal(err)
	}
}
