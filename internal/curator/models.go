package curator

import (
	"time"

	"github.com/lib/pq"
)

// Application is a visitor's request to become a curator. One application
// per account; review workflow is manual.
type Application struct {
	ID                uint           `gorm:"primaryKey" json:"application_id"`
	AccountID         uint           `gorm:"not null;uniqueIndex:idx_curator_applications_account" json:"account_id"`
	FirstName         string         `gorm:"size:100" json:"first_name"`
	LastName          string         `gorm:"size:100" json:"last_name"`
	DateOfBirth       time.Time      `json:"date_of_birth"`
	Certification     string         `gorm:"size:255" json:"certification"`
	CertificationPath string         `gorm:"size:255" json:"certification_path"`
	Specialties       pq.StringArray `gorm:"type:text[]" json:"specialties"`
	CreatedAt         time.Time      `json:"created_at"`
}

func (Application) TableName() string { return "app_curator.applications" }
