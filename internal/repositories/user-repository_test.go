package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"medequip-system/internal/authz"
	"medequip-system/internal/entities"
	apperrors "medequip-system/pkg/errors"
)

func TestUserRepositoryCreateAndFind(t *testing.T) {
	pool := requireTestDB(t)
	cleanupTables(t, pool)
	ctx := context.Background()

	repo := NewUserRepository(pool, zap.NewNop())

	id, err := repo.CreateUser(ctx, entities.User{
		Email:    "alice@x.com",
		Name:     "Alice",
		Password: "hashed",
		Role:     authz.RoleUser,
	})
	require.NoError(t, err)
	require.NotZero(t, id)

	byID, err := repo.FindUser(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "alice@x.com", byID.Email)

	byEmail, err := repo.FindByEmail(ctx, "alice@x.com")
	require.NoError(t, err)
	assert.Equal(t, id, byEmail.ID)

	byName, err := repo.FindByName(ctx, "Alice")
	require.NoError(t, err)
	assert.Equal(t, id, byName.ID)

	_, err = repo.FindUser(ctx, 9999)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUserRepositoryDuplicateEmail(t *testing.T) {
	pool := requireTestDB(t)
	cleanupTables(t, pool)
	ctx := context.Background()

	repo := NewUserRepository(pool, zap.NewNop())

	_, err := repo.CreateUser(ctx, entities.User{
		Email: "alice@x.com", Name: "Alice", Password: "h", Role: authz.RoleUser,
	})
	require.NoError(t, err)

	_, err = repo.CreateUser(ctx, entities.User{
		Email: "alice@x.com", Name: "Alice Again", Password: "h", Role: authz.RoleUser,
	})
	assert.ErrorIs(t, err, apperrors.ErrEmailTaken)
}

func TestUserRepositoryGetAdminEmails(t *testing.T) {
	pool := requireTestDB(t)
	cleanupTables(t, pool)
	ctx := context.Background()

	repo := NewUserRepository(pool, zap.NewNop())

	_, err := repo.CreateUser(ctx, entities.User{Email: "admin@x.com", Name: "Admin", Password: "h", Role: authz.RoleAdmin})
	require.NoError(t, err)
	_, err = repo.CreateUser(ctx, entities.User{Email: "user@x.com", Name: "User", Password: "h", Role: authz.RoleUser})
	require.NoError(t, err)

	emails, err := repo.GetAdminEmails(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"admin@x.com"}, emails)
}

func TestUserRepositoryUpdate(t *testing.T) {
	pool := requireTestDB(t)
	cleanupTables(t, pool)
	ctx := context.Background()

	repo := NewUserRepository(pool, zap.NewNop())

	id, err := repo.CreateUser(ctx, entities.User{Email: "alice@x.com", Name: "Alice", Password: "h", Role: authz.RoleUser})
	require.NoError(t, err)

	err = repo.UpdateUser(ctx, id, map[string]interface{}{"name": "Alice B", "role": authz.RoleAdmin})
	require.NoError(t, err)

	updated, err := repo.FindUser(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Alice B", updated.Name)
	assert.Equal(t, authz.RoleAdmin, updated.Role)

	assert.ErrorIs(t, repo.UpdateUser(ctx, 9999, map[string]interface{}{"name": "x"}), apperrors.ErrNotFound)
	assert.NoError(t, repo.UpdateUser(ctx, id, map[string]interface{}{}), "empty change set is a no-op")
}
