package authz

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAdmin(t *testing.T) {
	assert.False(t, IsAdmin(nil))
	assert.False(t, IsAdmin(&Session{UserID: 1, Role: RoleUser}))
	assert.True(t, IsAdmin(&Session{UserID: 1, Role: RoleAdmin}))
	assert.False(t, IsAdmin(&Session{UserID: 1, Role: "admin"}), "role comparison is case sensitive")
}

func TestCanManage(t *testing.T) {
	tests := []struct {
		name    string
		session *Session
		ownerID uint64
		want    bool
	}{
		{"nil session", nil, 1, false},
		{"admin manages anything", &Session{UserID: 2, Role: RoleAdmin}, 1, true},
		{"user manages own row", &Session{UserID: 5, Role: RoleUser}, 5, true},
		{"user cannot manage others", &Session{UserID: 5, Role: RoleUser}, 6, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanManage(tt.session, tt.ownerID))
		})
	}
}

func TestSessionContextRoundTrip(t *testing.T) {
	sess := &Session{UserID: 42, Role: RoleUser}
	ctx := WithSession(context.Background(), sess)

	got := FromContext(ctx)
	assert.Equal(t, sess, got)

	assert.Nil(t, FromContext(context.Background()))
}
