package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "medequip-system/pkg/errors"
)

func TestSettingRepositoryUpsert(t *testing.T) {
	pool := requireTestDB(t)
	cleanupTables(t, pool)
	ctx := context.Background()

	repo := NewSettingRepository(pool)

	_, err := repo.FindSetting(ctx, "emailNotifications")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	created, err := repo.UpsertSetting(ctx, "emailNotifications", "true")
	require.NoError(t, err)
	assert.Equal(t, "true", created.Value)

	updated, err := repo.UpsertSetting(ctx, "emailNotifications", "false")
	require.NoError(t, err)
	assert.Equal(t, "false", updated.Value)

	found, err := repo.FindSetting(ctx, "emailNotifications")
	require.NoError(t, err)
	assert.Equal(t, "false", found.Value)
}
