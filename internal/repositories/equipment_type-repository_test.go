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

func TestEquipmentTypeRepositoryCreateAndDuplicate(t *testing.T) {
	pool := requireTestDB(t)
	cleanupTables(t, pool)
	ctx := context.Background()

	repo := NewEquipmentTypeRepository(pool)

	created, err := repo.CreateEquipmentType(ctx, "Hospital Bed")
	require.NoError(t, err)
	assert.Equal(t, "Hospital Bed", created.Name)

	_, err = repo.CreateEquipmentType(ctx, "Hospital Bed")
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)

	found, err := repo.FindEquipmentType(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
}

func TestEquipmentTypeRepositoryDeleteCascadesToEquipment(t *testing.T) {
	pool := requireTestDB(t)
	cleanupTables(t, pool)
	ctx := context.Background()

	userRepo := NewUserRepository(pool, zap.NewNop())
	userID, err := userRepo.CreateUser(ctx, entities.User{Email: "owner@x.com", Name: "Owner", Password: "h", Role: authz.RoleUser})
	require.NoError(t, err)

	typeRepo := NewEquipmentTypeRepository(pool)
	equipmentType, err := typeRepo.CreateEquipmentType(ctx, "Wheelchair")
	require.NoError(t, err)

	equipmentRepo := NewEquipmentRepository(pool, zap.NewNop())
	equipmentID, err := equipmentRepo.CreateEquipment(ctx, entities.Equipment{
		TypeID:   equipmentType.ID,
		Sector:   "north",
		Room:     "12",
		Resident: "Mr. Smith",
		UserID:   userID,
	})
	require.NoError(t, err)

	require.NoError(t, typeRepo.DeleteEquipmentType(ctx, equipmentType.ID))

	_, err = typeRepo.FindEquipmentType(ctx, equipmentType.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	// The FK cascade takes the equipment rows of that type with it.
	_, err = equipmentRepo.FindEquipment(ctx, equipmentID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	assert.ErrorIs(t, typeRepo.DeleteEquipmentType(ctx, 9999), apperrors.ErrNotFound)
}
