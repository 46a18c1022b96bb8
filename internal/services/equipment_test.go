package services

import (
	"context"
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"medequip-system/internal/authz"
	"medequip-system/internal/dto"
	"medequip-system/internal/entities"
	apperrors "medequip-system/pkg/errors"
	"medequip-system/pkg/types"
	"medequip-system/pkg/utils"
)

type fakeEquipmentRepository struct {
	stored   map[uint64]*entities.Equipment
	nextID   uint64
	listedBy []uint64
}

func newFakeEquipmentRepository() *fakeEquipmentRepository {
	return &fakeEquipmentRepository{stored: map[uint64]*entities.Equipment{}, nextID: 1}
}

func (f *fakeEquipmentRepository) GetEquipments(ctx context.Context, filter types.Filter, ownerID uint64) ([]entities.Equipment, uint64, error) {
	f.listedBy = append(f.listedBy, ownerID)
	return nil, 0, nil
}

func (f *fakeEquipmentRepository) FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error) {
	eq, ok := f.stored[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return eq, nil
}

func (f *fakeEquipmentRepository) CreateEquipment(ctx context.Context, eq entities.Equipment) (uint64, error) {
	id := f.nextID
	f.nextID++
	eq.ID = id
	eq.CreatedAt = time.Now()
	eq.UpdatedAt = eq.CreatedAt
	f.stored[id] = &eq
	return id, nil
}

func (f *fakeEquipmentRepository) UpdateEquipment(ctx context.Context, id uint64, eq entities.Equipment) error {
	if _, ok := f.stored[id]; !ok {
		return apperrors.ErrNotFound
	}
	eq.ID = id
	f.stored[id] = &eq
	return nil
}

func (f *fakeEquipmentRepository) DeleteEquipment(ctx context.Context, id uint64) error {
	if _, ok := f.stored[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(f.stored, id)
	return nil
}

func TestCreateEquipmentOwnership(t *testing.T) {
	repo := newFakeEquipmentRepository()
	svc := NewEquipmentService(repo, zap.NewNop())

	payload := dto.CreateEquipmentDTO{
		TypeID:   1,
		Sector:   "north",
		Room:     "12",
		Resident: "Mr. Smith",
	}

	t.Run("defaults to the caller", func(t *testing.T) {
		created, err := svc.CreateEquipment(userContext(7, authz.RoleUser), payload)
		require.NoError(t, err)
		assert.Equal(t, uint64(7), created.UserID)
	})

	t.Run("non-admin cannot assign to others", func(t *testing.T) {
		p := payload
		p.UserID = utils.ToPtr(uint64(99))
		created, err := svc.CreateEquipment(userContext(7, authz.RoleUser), p)
		require.NoError(t, err)
		assert.Equal(t, uint64(7), created.UserID)
	})

	t.Run("admin assigns to anyone", func(t *testing.T) {
		p := payload
		p.UserID = utils.ToPtr(uint64(99))
		created, err := svc.CreateEquipment(userContext(1, authz.RoleAdmin), p)
		require.NoError(t, err)
		assert.Equal(t, uint64(99), created.UserID)
	})
}

func TestUpdateEquipmentKeepsOwner(t *testing.T) {
	repo := newFakeEquipmentRepository()
	svc := NewEquipmentService(repo, zap.NewNop())

	created, err := svc.CreateEquipment(userContext(7, authz.RoleUser), dto.CreateEquipmentDTO{
		TypeID: 1, Sector: "north", Room: "12", Resident: "Mr. Smith",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateEquipment(userContext(1, authz.RoleAdmin), created.ID, dto.UpdateEquipmentDTO{
		TypeID: 1, Sector: "south", Room: "12", Resident: "Mr. Smith",
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(7), updated.UserID, "owner is untouched unless the admin reassigns")

	reassigned, err := svc.UpdateEquipment(userContext(1, authz.RoleAdmin), created.ID, dto.UpdateEquipmentDTO{
		TypeID: 1, Sector: "south", Room: "12", Resident: "Mr. Smith",
		UserID: utils.ToPtr(uint64(42)),
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(42), reassigned.UserID)
}

func TestEquipmentAccessControl(t *testing.T) {
	repo := newFakeEquipmentRepository()
	svc := NewEquipmentService(repo, zap.NewNop())

	created, err := svc.CreateEquipment(userContext(7, authz.RoleUser), dto.CreateEquipmentDTO{
		TypeID: 1, Sector: "north", Room: "12", Resident: "Mr. Smith",
	})
	require.NoError(t, err)

	_, err = svc.FindEquipment(userContext(8, authz.RoleUser), created.ID)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	err = svc.DeleteEquipment(userContext(8, authz.RoleUser), created.ID)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	_, err = svc.FindEquipment(userContext(8, authz.RoleUser), 999)
	assert.ErrorIs(t, err, apperrors.ErrNotFound, "missing rows answer 404 before ownership is checked")

	err = svc.DeleteEquipment(userContext(7, authz.RoleUser), created.ID)
	assert.NoError(t, err)
}

func TestEquipmentDatesAndWeight(t *testing.T) {
	repo := newFakeEquipmentRepository()
	svc := NewEquipmentService(repo, zap.NewNop())

	created, err := svc.CreateEquipment(userContext(7, authz.RoleUser), dto.CreateEquipmentDTO{
		TypeID:       1,
		Sector:       "north",
		Room:         "12",
		Resident:     "Mr. Smith",
		Weight:       utils.ToPtr(72.5),
		DeliveryDate: utils.ToPtr("2023-03-15"),
		Reference:    null.StringFrom("   "),
	})
	require.NoError(t, err)

	assert.Equal(t, null.StringFrom("2023-03-15"), created.DeliveryDate)
	assert.False(t, created.ReturnDate.Valid)
	assert.Equal(t, 72.5, created.Weight.Float64)
	assert.False(t, created.Reference.Valid, "whitespace-only reference is stored as NULL")
}

func TestGetEquipmentsScoping(t *testing.T) {
	repo := newFakeEquipmentRepository()
	svc := NewEquipmentService(repo, zap.NewNop())

	_, _, err := svc.GetEquipments(userContext(7, authz.RoleUser), types.Filter{})
	require.NoError(t, err)

	_, _, err = svc.GetEquipments(userContext(1, authz.RoleAdmin), types.Filter{})
	require.NoError(t, err)

	assert.Equal(t, []uint64{7, 0}, repo.listedBy)
}
