package profile

import (
	"github.com/CuratorSpace/CS-Backend/internal/identity"
	"github.com/CuratorSpace/CS-Backend/internal/storage"
)

var svc *Service

// Init wires the profile editor against the shared identity store and the
// configured avatar backend. Identity tables are migrated by identity.Init.
func Init(avatars storage.Store) {
	svc = NewService(identity.GormStore{}, avatars)
}
