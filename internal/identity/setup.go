package identity

import (
	"log"

	"github.com/CuratorSpace/CS-Backend/internal/config"
	"github.com/CuratorSpace/CS-Backend/internal/db"
	"github.com/CuratorSpace/CS-Backend/internal/middleware"
)

var (
	svc           *Service
	loginThrottle *middleware.Throttle
)

func Init(cfg config.Config) {
	if err := db.EnsureSchema(db.DB, "app_identity"); err != nil {
		log.Fatal("Failed to ensure schema app_identity: ", err)
	}

	if err := db.DB.AutoMigrate(&Account{}, &Session{}); err != nil {
		log.Fatal("Failed to auto-migrate tables", err)
	}

	svc = NewService(GormStore{}, cfg)
	loginThrottle = middleware.NewThrottle(cfg.LoginRatePerMinute, cfg.LoginBurst)
}
