package utils

import (
	"context"
	"time"
)

type contextKey string

const ContextPrincipalKey contextKey = "principal"

// Principal is the snapshot of the authenticated account carried by a
// session. The session middleware materializes it into the request context;
// handlers answer "who is this" from it without re-querying the store.
type Principal struct {
	SessionID  string
	AccountID  uint
	Username   string
	Email      string
	Role       string
	AvatarPath string
	ExpiresAt  time.Time
}

func GetPrincipal(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(ContextPrincipalKey).(Principal)
	return p, ok
}
