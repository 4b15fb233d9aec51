package curator

import (
	"log"

	"github.com/CuratorSpace/CS-Backend/internal/db"
	"github.com/CuratorSpace/CS-Backend/internal/storage"
)

var (
	store Store
	files storage.Store
)

func Init(certStore storage.Store) {
	if err := db.EnsureSchema(db.DB, "app_curator"); err != nil {
		log.Fatal("Failed to ensure schema app_curator: ", err)
	}

	if err := db.DB.AutoMigrate(&Application{}); err != nil {
		log.Fatal("Failed to auto-migrate tables", err)
	}

	store = GormStore{}
	files = certStore
}
