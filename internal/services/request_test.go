package services

import (
	"context"
	"errors"
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
)

type fakeRequestRepository struct {
	created  *entities.Request
	stored   map[uint64]*entities.Request
	nextID   uint64
	listedBy []uint64
}

func newFakeRequestRepository() *fakeRequestRepository {
	return &fakeRequestRepository{stored: map[uint64]*entities.Request{}, nextID: 1}
}

func (f *fakeRequestRepository) GetRequests(ctx context.Context, ownerID uint64) ([]entities.Request, error) {
	f.listedBy = append(f.listedBy, ownerID)
	return nil, nil
}

func (f *fakeRequestRepository) FindRequest(ctx context.Context, id uint64) (*entities.Request, error) {
	req, ok := f.stored[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return req, nil
}

func (f *fakeRequestRepository) CreateRequest(ctx context.Context, req entities.Request) (uint64, error) {
	id := f.nextID
	f.nextID++
	req.ID = id
	req.CreatedAt = time.Now()
	req.Owner = &entities.User{Name: "Owner", Email: "owner@x.com"}
	f.created = &req
	f.stored[id] = &req
	return id, nil
}

func (f *fakeRequestRepository) UpdateRequest(ctx context.Context, id uint64, changes map[string]interface{}) error {
	if _, ok := f.stored[id]; !ok {
		return apperrors.ErrNotFound
	}
	return nil
}

func (f *fakeRequestRepository) DeleteRequest(ctx context.Context, id uint64) error {
	if _, ok := f.stored[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(f.stored, id)
	return nil
}

type fakeNotifier struct {
	calls int
	err   error
}

func (f *fakeNotifier) SendRequestCreated(ctx context.Context, request *dto.RequestDTO) error {
	f.calls++
	return f.err
}

func userContext(id uint64, role string) context.Context {
	return authz.WithSession(context.Background(), &authz.Session{UserID: id, Role: role})
}

func TestCreateRequestAlwaysStartsPending(t *testing.T) {
	repo := newFakeRequestRepository()
	notifier := &fakeNotifier{}
	svc := NewRequestService(repo, notifier, zap.NewNop())

	result, err := svc.CreateRequest(userContext(7, authz.RoleUser), dto.CreateRequestDTO{
		Notes: null.StringFrom("  needs a bed  "),
		Items: []dto.CreateRequestItemDTO{{Type: entities.RequestItemDelivery}},
	})
	require.NoError(t, err)

	assert.Equal(t, entities.RequestStatusPending, result.Status)
	assert.Equal(t, uint64(7), repo.created.UserID)
	assert.Equal(t, "needs a bed", repo.created.Notes.String, "notes are trimmed")
	assert.Equal(t, 1, notifier.calls)
}

func TestCreateRequestAdminOnBehalf(t *testing.T) {
	repo := newFakeRequestRepository()
	svc := NewRequestService(repo, &fakeNotifier{}, zap.NewNop())

	target := uint64(12)
	_, err := svc.CreateRequest(userContext(1, authz.RoleAdmin), dto.CreateRequestDTO{
		Items:  []dto.CreateRequestItemDTO{{Type: entities.RequestItemPickup}},
		UserID: &target,
	})
	require.NoError(t, err)
	assert.Equal(t, target, repo.created.UserID)
}

func TestCreateRequestIgnoresUserIDForNonAdmins(t *testing.T) {
	repo := newFakeRequestRepository()
	svc := NewRequestService(repo, &fakeNotifier{}, zap.NewNop())

	target := uint64(12)
	_, err := svc.CreateRequest(userContext(7, authz.RoleUser), dto.CreateRequestDTO{
		Items:  []dto.CreateRequestItemDTO{{Type: entities.RequestItemPickup}},
		UserID: &target,
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(7), repo.created.UserID)
}

func TestCreateRequestSurvivesNotificationFailure(t *testing.T) {
	repo := newFakeRequestRepository()
	notifier := &fakeNotifier{err: errors.New("smtp down")}
	svc := NewRequestService(repo, notifier, zap.NewNop())

	result, err := svc.CreateRequest(userContext(7, authz.RoleUser), dto.CreateRequestDTO{
		Items: []dto.CreateRequestItemDTO{{Type: entities.RequestItemRepair}},
	})
	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, 1, notifier.calls)
}

func TestFindRequestOwnership(t *testing.T) {
	repo := newFakeRequestRepository()
	svc := NewRequestService(repo, &fakeNotifier{}, zap.NewNop())

	created, err := svc.CreateRequest(userContext(7, authz.RoleUser), dto.CreateRequestDTO{
		Items: []dto.CreateRequestItemDTO{{Type: entities.RequestItemDelivery}},
	})
	require.NoError(t, err)

	_, err = svc.FindRequest(userContext(8, authz.RoleUser), created.ID)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	_, err = svc.FindRequest(userContext(7, authz.RoleUser), created.ID)
	assert.NoError(t, err)

	_, err = svc.FindRequest(userContext(1, authz.RoleAdmin), created.ID)
	assert.NoError(t, err)

	_, err = svc.FindRequest(context.Background(), created.ID)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestGetRequestsScoping(t *testing.T) {
	repo := newFakeRequestRepository()
	svc := NewRequestService(repo, &fakeNotifier{}, zap.NewNop())

	_, err := svc.GetRequests(userContext(7, authz.RoleUser))
	require.NoError(t, err)

	_, err = svc.GetRequests(userContext(1, authz.RoleAdmin))
	require.NoError(t, err)

	assert.Equal(t, []uint64{7, 0}, repo.listedBy, "users are pinned to their own rows, admins see all")
}
