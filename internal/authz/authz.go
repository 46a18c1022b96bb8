package authz

import (
	"context"

	"medequip-system/pkg/contextkeys"
)

const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// Session is the authenticated caller as seen by the permission checks.
// A nil *Session means "not signed in" and every predicate answers false.
type Session struct {
	UserID uint64
	Role   string
}

func IsAdmin(s *Session) bool {
	return s != nil && s.Role == RoleAdmin
}

// CanManage decides whether the caller may mutate a resource owned by
// ownerID: admins always, everyone else only their own rows.
func CanManage(s *Session, ownerID uint64) bool {
	if s == nil {
		return false
	}
	if IsAdmin(s) {
		return true
	}
	return s.UserID == ownerID
}

// FromContext pulls the session the auth middleware stored for this request.
func FromContext(ctx context.Context) *Session {
	s, _ := ctx.Value(contextkeys.SessionKey).(*Session)
	return s
}

func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, contextkeys.SessionKey, s)
}
