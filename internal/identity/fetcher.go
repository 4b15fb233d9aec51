package identity

import "github.com/CuratorSpace/CS-Backend/internal/utils"

// SessionInfo implements middleware.SessionFetcher against the identity
// store. The returned Principal is the session's account snapshot.
type SessionInfo struct{}

func (SessionInfo) FindSessionByID(id string) (utils.Principal, error) {
	sess, err := svc.store.FindSessionByID(id)
	if err != nil {
		return utils.Principal{}, err
	}

	return utils.Principal{
		SessionID:  sess.SessionID,
		AccountID:  sess.AccountID,
		Username:   sess.Username,
		Email:      sess.Email,
		Role:       sess.Role,
		AvatarPath: sess.AvatarPath,
		ExpiresAt:  sess.ExpiresAt,
	}, nil
}
