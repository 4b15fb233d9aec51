package curator

import (
	"errors"

	"github.com/CuratorSpace/CS-Backend/internal/db"
)

// ErrAlreadySubmitted enforces one application per account.
var ErrAlreadySubmitted = errors.New("application already submitted")

type Store interface {
	CountForAccount(accountID uint) (int64, error)
	Create(app *Application) error
	ListForAccount(accountID uint) ([]Application, error)
	ListAll() ([]Application, error)
}

type GormStore struct{}

func (GormStore) CountForAccount(accountID uint) (int64, error) {
	var n int64
	err := db.DB.Model(&Application{}).
		Where("account_id = ?", accountID).
		Count(&n).Error
	return n, err
}

// Create inserts the application. The count check that precedes it can race
// under concurrent submissions; the unique index on account_id is the
// backstop, surfaced as ErrAlreadySubmitted.
func (GormStore) Create(app *Application) error {
	err := db.DB.Create(app).Error
	if _, ok := db.UniqueViolation(err); ok {
		return ErrAlreadySubmitted
	}
	return err
}

func (GormStore) ListForAccount(accountID uint) ([]Application, error) {
	var apps []Application
	err := db.DB.Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&apps).Error
	return apps, err
}

func (GormStore) ListAll() ([]Application, error) {
	var apps []Application
	err := db.DB.Order("created_at DESC").Find(&apps).Error
	return apps, err
}
