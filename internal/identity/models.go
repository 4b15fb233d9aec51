package identity

import "time"

const (
	RoleVisitor = "visitor"
	RoleCurator = "curator"
	RoleAdmin   = "admin"
)

// Account is the durable identity record. Usernames compare case-sensitively;
// emails are stored lowercased so uniqueness is case-insensitive.
type Account struct {
	ID           uint      `gorm:"primaryKey" json:"account_id"`
	Username     string    `gorm:"size:254;uniqueIndex:idx_accounts_username" json:"username"`
	Email        string    `gorm:"size:254;uniqueIndex:idx_accounts_email" json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `gorm:"default:'visitor'" json:"role"`
	AvatarPath   string    `json:"avatar_path"`
	CreatedAt    time.Time `json:"created_at"`
	ModifiedAt   time.Time `json:"modified_at"`
}

// Session binds one session id to one account and carries a snapshot of the
// account so per-request identity lookups stay off the accounts table. The
// snapshot is refreshed by login and by every mutating profile operation.
type Session struct {
	SessionID  string    `gorm:"primaryKey" json:"-"`
	AccountID  uint      `gorm:"not null;unique" json:"-"`
	ExpiresAt  time.Time `gorm:"not null"`
	Username   string
	Email      string
	Role       string
	AvatarPath string
}

func (Account) TableName() string { return "app_identity.accounts" }
func (Session) TableName() string { return "app_identity.sessions" }

func (s *Session) snapshot(a *Account) {
	s.Username = a.Username
	s.Email = a.Email
	s.Role = a.Role
	s.AvatarPath = a.AvatarPath
}
