package identity

import (
	"errors"
	"time"
	"unicode/utf8"

	"github.com/CuratorSpace/CS-Backend/internal/config"
	"github.com/google/uuid"
)

type Service struct {
	store Store
	cfg   config.Config
}

func NewService(store Store, cfg config.Config) *Service {
	return &Service{store: store, cfg: cfg}
}

// Register creates a new visitor account. The raw password is hashed here and
// not retained.
func (s *Service) Register(usernameRaw, emailRaw, passwordRaw string) (*Account, error) {
	username := NormalizeUsername(usernameRaw)
	email := NormalizeEmail(emailRaw)

	if username == "" {
		return nil, &ValidationError{Field: "username", Reason: ReasonRequired}
	}
	if email == "" {
		return nil, &ValidationError{Field: "email", Reason: ReasonRequired}
	}
	if passwordRaw == "" {
		return nil, &ValidationError{Field: "password", Reason: ReasonRequired}
	}
	if utf8.RuneCountInString(username) > MaxUsernameLen {
		return nil, &ValidationError{Field: "username", Reason: ReasonTooLong}
	}
	if utf8.RuneCountInString(email) > MaxEmailLen {
		return nil, &ValidationError{Field: "email", Reason: ReasonTooLong}
	}

	if taken, err := s.store.UsernameTaken(username, 0); err != nil {
		return nil, err
	} else if taken {
		return nil, &ValidationError{Field: "username", Reason: ReasonTaken}
	}
	if taken, err := s.store.EmailTaken(email, 0); err != nil {
		return nil, err
	} else if taken {
		return nil, &ValidationError{Field: "email", Reason: ReasonTaken}
	}

	hash, err := HashPassword(passwordRaw)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	acct := &Account{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         RoleVisitor,
		AvatarPath:   s.cfg.DefaultAvatarPath,
		CreatedAt:    now,
		ModifiedAt:   now,
	}
	if err := s.store.Create(acct); err != nil {
		return nil, err
	}
	return acct, nil
}

// Login resolves the identifier against usernames first, then emails, and on
// success binds a fresh session to the account. The not-found and
// bad-credentials failures stay distinct for callers that need to log them.
func (s *Service) Login(identifier, passwordRaw string) (*Account, *Session, error) {
	acct, err := s.store.FindByUsername(NormalizeUsername(identifier))
	if errors.Is(err, ErrAccountNotFound) {
		acct, err = s.store.FindByEmail(NormalizeEmail(identifier))
	}
	if err != nil {
		return nil, nil, err
	}

	if !CheckPassword(acct.PasswordHash, passwordRaw) {
		return nil, nil, ErrBadCredentials
	}

	sess := &Session{
		SessionID: uuid.New().String(),
		AccountID: acct.ID,
		ExpiresAt: time.Now().Add(s.cfg.SessionTTL),
	}
	sess.snapshot(acct)
	if err := s.store.UpsertSession(sess); err != nil {
		return nil, nil, err
	}
	return acct, sess, nil
}

func (s *Service) Logout(sessionID string) error {
	return s.store.DeleteSession(sessionID)
}

func (s *Service) UsernameAvailable(username string) (bool, error) {
	taken, err := s.store.UsernameTaken(NormalizeUsername(username), 0)
	return !taken, err
}

func (s *Service) EmailAvailable(email string) (bool, error) {
	taken, err := s.store.EmailTaken(NormalizeEmail(email), 0)
	return !taken, err
}
