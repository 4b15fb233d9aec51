package profile

import (
	"context"
	"io"
	"time"
	"unicode/utf8"

	"github.com/CuratorSpace/CS-Backend/internal/identity"
	"github.com/CuratorSpace/CS-Backend/internal/utils"
)

// Upload is a pending avatar replacement.
type Upload struct {
	Name string
	Data io.Reader
}

type EditRequest struct {
	Username string
	Email    string
	Password string // optional; empty means keep the current hash
	Avatar   *Upload
}

type Service struct {
	store   identity.Store
	avatars AvatarStore
}

// AvatarStore matches storage.Store; declared locally so tests can fake it.
type AvatarStore interface {
	Save(ctx context.Context, originalName string, r io.Reader) (string, error)
}

func NewService(store identity.Store, avatars AvatarStore) *Service {
	return &Service{store: store, avatars: avatars}
}

// Authorize is the session guard: a mutation may only target the account the
// session is bound to. Role is deliberately not consulted here.
func Authorize(p utils.Principal, targetID uint) error {
	if p.AccountID == 0 || p.AccountID != targetID {
		return identity.ErrUnauthorized
	}
	return nil
}

func (s *Service) View(id uint) (*identity.Account, error) {
	return s.store.FindByID(id)
}

// Edit applies a validated profile mutation. The avatar is stored before any
// account field changes, so a storage failure leaves the record untouched.
func (s *Service) Edit(ctx context.Context, p utils.Principal, targetID uint, req EditRequest) (*identity.Account, error) {
	if err := Authorize(p, targetID); err != nil {
		return nil, err
	}

	acct, err := s.store.FindByID(targetID)
	if err != nil {
		return nil, err
	}

	username := identity.NormalizeUsername(req.Username)
	email := identity.NormalizeEmail(req.Email)

	if username == "" {
		return nil, &identity.ValidationError{Field: "username", Reason: identity.ReasonRequired}
	}
	if email == "" {
		return nil, &identity.ValidationError{Field: "email", Reason: identity.ReasonRequired}
	}
	if utf8.RuneCountInString(username) > identity.MaxUsernameLen {
		return nil, &identity.ValidationError{Field: "username", Reason: identity.ReasonTooLong}
	}
	if utf8.RuneCountInString(email) > identity.MaxEmailLen {
		return nil, &identity.ValidationError{Field: "email", Reason: identity.ReasonTooLong}
	}

	// Uniqueness excludes the target itself so keeping a handle is not a
	// conflict.
	if taken, err := s.store.UsernameTaken(username, targetID); err != nil {
		return nil, err
	} else if taken {
		return nil, &identity.ValidationError{Field: "username", Reason: identity.ReasonTaken}
	}
	if taken, err := s.store.EmailTaken(email, targetID); err != nil {
		return nil, err
	} else if taken {
		return nil, &identity.ValidationError{Field: "email", Reason: identity.ReasonTaken}
	}

	if req.Avatar != nil {
		path, err := s.avatars.Save(ctx, req.Avatar.Name, req.Avatar.Data)
		if err != nil {
			return nil, err
		}
		acct.AvatarPath = path
	}

	acct.Username = username
	acct.Email = email
	if req.Password != "" {
		hash, err := identity.HashPassword(req.Password)
		if err != nil {
			return nil, err
		}
		acct.PasswordHash = hash
	}
	acct.ModifiedAt = time.Now()

	if err := s.store.Save(acct); err != nil {
		return nil, err
	}
	if err := s.store.RefreshSnapshot(acct); err != nil {
		return nil, err
	}
	return acct, nil
}

// MinPasswordLen matches the reference behavior; see DESIGN.md.
const MinPasswordLen = 3

func (s *Service) ChangePassword(p utils.Principal, targetID uint, current, newPassword, confirm string) error {
	if err := Authorize(p, targetID); err != nil {
		return err
	}

	acct, err := s.store.FindByID(targetID)
	if err != nil {
		return err
	}

	if !identity.CheckPassword(acct.PasswordHash, current) {
		return &identity.ValidationError{Field: "current_password", Reason: identity.ReasonWrongCurrentPassword}
	}
	if newPassword != confirm {
		return &identity.ValidationError{Field: "confirm_password", Reason: identity.ReasonConfirmationMismatch}
	}
	if len(newPassword) < MinPasswordLen {
		return &identity.ValidationError{Field: "new_password", Reason: identity.ReasonTooShort}
	}

	hash, err := identity.HashPassword(newPassword)
	if err != nil {
		return err
	}
	acct.PasswordHash = hash
	acct.ModifiedAt = time.Now()

	if err := s.store.Save(acct); err != nil {
		return err
	}
	return s.store.RefreshSnapshot(acct)
}
