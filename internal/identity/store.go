package identity

import (
	"errors"
	"strings"

	"github.com/CuratorSpace/CS-Backend/internal/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store is the credential store contract: lookups by id/username/email,
// uniqueness-constrained existence checks, and record writes.
type Store interface {
	FindByID(id uint) (*Account, error)
	FindByUsername(username string) (*Account, error)
	FindByEmail(email string) (*Account, error)
	UsernameTaken(username string, excludeID uint) (bool, error)
	EmailTaken(email string, excludeID uint) (bool, error)
	Create(a *Account) error
	Save(a *Account) error

	UpsertSession(s *Session) error
	FindSessionByID(id string) (*Session, error)
	DeleteSession(id string) error
	RefreshSnapshot(a *Account) error
}

// GormStore backs Store with the shared gorm connection.
type GormStore struct{}

func (GormStore) FindByID(id uint) (*Account, error) {
	var a Account
	if err := db.DB.First(&a, "id = ?", id).Error; err != nil {
		return nil, accountErr(err)
	}
	return &a, nil
}

func (GormStore) FindByUsername(username string) (*Account, error) {
	var a Account
	if err := db.DB.First(&a, "username = ?", username).Error; err != nil {
		return nil, accountErr(err)
	}
	return &a, nil
}

func (GormStore) FindByEmail(email string) (*Account, error) {
	var a Account
	if err := db.DB.First(&a, "email = ?", email).Error; err != nil {
		return nil, accountErr(err)
	}
	return &a, nil
}

func (GormStore) UsernameTaken(username string, excludeID uint) (bool, error) {
	var n int64
	err := db.DB.Model(&Account{}).
		Where("username = ? AND id <> ?", username, excludeID).
		Count(&n).Error
	return n > 0, err
}

func (GormStore) EmailTaken(email string, excludeID uint) (bool, error) {
	var n int64
	err := db.DB.Model(&Account{}).
		Where("email = ? AND id <> ?", email, excludeID).
		Count(&n).Error
	return n > 0, err
}

func (GormStore) Create(a *Account) error {
	return takenErr(db.DB.Create(a).Error)
}

func (GormStore) Save(a *Account) error {
	return takenErr(db.DB.Save(a).Error)
}

// UpsertSession installs the new session for the account, replacing any
// existing one. Two logins for the same account can race; the conflict on the
// account_id constraint is resolved in the database so both callers succeed
// and the later write wins.
func (GormStore) UpsertSession(s *Session) error {
	return db.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "account_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"session_id", "expires_at", "username", "email", "role", "avatar_path",
		}),
	}).Create(s).Error
}

func (GormStore) FindSessionByID(id string) (*Session, error) {
	var s Session
	if err := db.DB.First(&s, "session_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (GormStore) DeleteSession(id string) error {
	return db.DB.Where("session_id = ?", id).Delete(&Session{}).Error
}

func (GormStore) RefreshSnapshot(a *Account) error {
	return db.DB.Model(&Session{}).
		Where("account_id = ?", a.ID).
		Updates(map[string]interface{}{
			"username":    a.Username,
			"email":       a.Email,
			"role":        a.Role,
			"avatar_path": a.AvatarPath,
		}).Error
}

func accountErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrAccountNotFound
	}
	return err
}

// takenErr maps unique-index violations to the taken outcome. The existence
// checks that precede a write can race; the index is the backstop.
func takenErr(err error) error {
	constraint, ok := db.UniqueViolation(err)
	if !ok {
		return err
	}
	field := "email"
	if strings.Contains(constraint, "username") {
		field = "username"
	}
	return &ValidationError{Field: field, Reason: ReasonTaken}
}
