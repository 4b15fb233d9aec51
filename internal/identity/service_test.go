package identity

import (
	"strings"
	"testing"

	"github.com/CuratorSpace/CS-Backend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() (*Service, *fakeStore) {
	store := newFakeStore()
	return NewService(store, config.Default()), store
}

func TestRegisterNormalizesAndDefaults(t *testing.T) {
	s, store := newTestService()

	acct, err := s.Register("  alice ", "Alice@Example.com", "secret1")
	require.NoError(t, err)

	assert.Equal(t, "alice", acct.Username)
	assert.Equal(t, "alice@example.com", acct.Email)
	assert.Equal(t, RoleVisitor, acct.Role)
	assert.Equal(t, config.Default().DefaultAvatarPath, acct.AvatarPath)
	assert.NotZero(t, acct.ID)
	assert.False(t, acct.CreatedAt.IsZero())
	assert.Equal(t, acct.CreatedAt, acct.ModifiedAt)

	// Only the hash is retained.
	assert.NotEqual(t, "secret1", acct.PasswordHash)
	assert.True(t, CheckPassword(acct.PasswordHash, "secret1"))

	stored, err := store.FindByID(acct.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", stored.Username)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	s, store := newTestService()

	_, err := s.Register("alice", "alice@example.com", "secret1")
	require.NoError(t, err)

	_, err = s.Register("alice", "other@example.com", "secret2")
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "username", ve.Field)
	assert.Equal(t, ReasonTaken, ve.Reason)
	assert.Len(t, store.accounts, 1, "no new record on rejection")
}

func TestRegisterDuplicateEmailCaseInsensitive(t *testing.T) {
	s, _ := newTestService()

	_, err := s.Register("alice", "alice@example.com", "secret1")
	require.NoError(t, err)

	_, err = s.Register("bob", "ALICE@EXAMPLE.COM", "secret2")
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "email", ve.Field)
	assert.Equal(t, ReasonTaken, ve.Reason)
}

func TestRegisterRejectsOverlongFields(t *testing.T) {
	s, _ := newTestService()

	_, err := s.Register(strings.Repeat("a", 255), "alice@example.com", "secret1")
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "username", ve.Field)
	assert.Equal(t, ReasonTooLong, ve.Reason)

	_, err = s.Register("alice", strings.Repeat("a", 250)+"@example.com", "secret1")
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "email", ve.Field)
	assert.Equal(t, ReasonTooLong, ve.Reason)
}

func TestRegisterLengthCountsCharactersNotBytes(t *testing.T) {
	s, _ := newTestService()

	// 200 characters, 400 bytes: within the 254-character limit.
	name := strings.Repeat("ü", 200)
	acct, err := s.Register(name, "umlaut@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, name, acct.Username)

	_, err = s.Register(strings.Repeat("ü", 255), "toolong@example.com", "secret1")
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "username", ve.Field)
	assert.Equal(t, ReasonTooLong, ve.Reason)
}

func TestRegisterRequiresFields(t *testing.T) {
	s, _ := newTestService()

	_, err := s.Register("   ", "alice@example.com", "secret1")
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "username", ve.Field)
	assert.Equal(t, ReasonRequired, ve.Reason)

	_, err = s.Register("alice", "alice@example.com", "")
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "password", ve.Field)
}

func TestLoginByUsernameAndEmail(t *testing.T) {
	s, store := newTestService()

	reg, err := s.Register("alice", "Alice@Example.com", "secret1")
	require.NoError(t, err)

	acct, sess, err := s.Login("alice", "secret1")
	require.NoError(t, err)
	assert.Equal(t, reg.ID, acct.ID)
	assert.Equal(t, reg.ID, sess.AccountID)
	assert.Equal(t, "alice", sess.Username, "session carries the account snapshot")
	assert.NotEmpty(t, sess.SessionID)

	_, sess2, err := s.Login("alice@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, reg.ID, sess2.AccountID)

	// Re-login replaces the account's session rather than stacking them.
	assert.Len(t, store.sessions, 1)
	_, err = store.FindSessionByID(sess.SessionID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestLoginFailuresStayDistinct(t *testing.T) {
	s, _ := newTestService()

	_, err := s.Register("alice", "alice@example.com", "secret1")
	require.NoError(t, err)

	_, _, err = s.Login("nobody", "secret1")
	assert.ErrorIs(t, err, ErrAccountNotFound)

	_, _, err = s.Login("alice@example.com", "wrong")
	assert.ErrorIs(t, err, ErrBadCredentials)
}

func TestLogoutDeletesSession(t *testing.T) {
	s, store := newTestService()

	_, err := s.Register("alice", "alice@example.com", "secret1")
	require.NoError(t, err)
	_, sess, err := s.Login("alice", "secret1")
	require.NoError(t, err)

	require.NoError(t, s.Logout(sess.SessionID))
	_, err = store.FindSessionByID(sess.SessionID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestAvailability(t *testing.T) {
	s, _ := newTestService()

	_, err := s.Register("alice", "alice@example.com", "secret1")
	require.NoError(t, err)

	free, err := s.UsernameAvailable("alice")
	require.NoError(t, err)
	assert.False(t, free)

	free, err = s.UsernameAvailable("bob")
	require.NoError(t, err)
	assert.True(t, free)

	free, err = s.EmailAvailable("Alice@Example.com")
	require.NoError(t, err)
	assert.False(t, free, "availability check folds case like registration")
}
