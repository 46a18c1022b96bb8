package services

import (
	"context"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"

	"medequip-system/internal/authz"
	"medequip-system/internal/dto"
	"medequip-system/internal/entities"
	"medequip-system/internal/repositories"
	apperrors "medequip-system/pkg/errors"
	"medequip-system/pkg/utils"
)

type RequestServiceInterface interface {
	GetRequests(ctx context.Context) ([]dto.RequestDTO, error)
	FindRequest(ctx context.Context, id uint64) (*dto.RequestDTO, error)
	CreateRequest(ctx context.Context, payload dto.CreateRequestDTO) (*dto.RequestDTO, error)
	UpdateRequest(ctx context.Context, id uint64, payload dto.UpdateRequestDTO) (*dto.RequestDTO, error)
	DeleteRequest(ctx context.Context, id uint64) error
}

type RequestService struct {
	requestRepository repositories.RequestRepositoryInterface
	notifications     NotificationServiceInterface
	logger            *zap.Logger
}

func NewRequestService(
	requestRepository repositories.RequestRepositoryInterface,
	notifications NotificationServiceInterface,
	logger *zap.Logger,
) RequestServiceInterface {
	return &RequestService{
		requestRepository: requestRepository,
		notifications:     notifications,
		logger:            logger,
	}
}

func toRequestDTO(r *entities.Request) *dto.RequestDTO {
	out := &dto.RequestDTO{
		ID:        r.ID,
		Status:    r.Status,
		Notes:     r.Notes,
		UserID:    r.UserID,
		CreatedAt: r.CreatedAt.Format("2006-01-02 15:04:05"),
		Items:     make([]dto.RequestItemDTO, 0, len(r.Items)),
	}
	if r.Owner != nil {
		out.Owner = dto.ShortUserDTO{Name: r.Owner.Name, Email: r.Owner.Email}
	}
	for _, item := range r.Items {
		itemDTO := dto.RequestItemDTO{
			ID:          item.ID,
			Type:        item.Type,
			Description: item.Description,
		}
		if item.Equipment != nil {
			short := &dto.ShortEquipmentDTO{
				ID:        item.Equipment.ID,
				Reference: item.Equipment.Reference,
				Resident:  item.Equipment.Resident,
			}
			if item.Equipment.Type != nil {
				short.TypeName = item.Equipment.Type.Name
			}
			itemDTO.Equipment = short
		}
		out.Items = append(out.Items, itemDTO)
	}
	return out
}

// GetRequests lists requests newest first; non-admin callers only see
// their own.
func (s *RequestService) GetRequests(ctx context.Context) ([]dto.RequestDTO, error) {
	sess := authz.FromContext(ctx)
	if sess == nil {
		return nil, apperrors.ErrUnauthorized
	}

	ownerID := sess.UserID
	if authz.IsAdmin(sess) {
		ownerID = 0
	}

	requests, err := s.requestRepository.GetRequests(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	result := make([]dto.RequestDTO, 0, len(requests))
	for i := range requests {
		result = append(result, *toRequestDTO(&requests[i]))
	}
	return result, nil
}

func (s *RequestService) FindRequest(ctx context.Context, id uint64) (*dto.RequestDTO, error) {
	sess := authz.FromContext(ctx)
	if sess == nil {
		return nil, apperrors.ErrUnauthorized
	}

	req, err := s.requestRepository.FindRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	if !authz.CanManage(sess, req.UserID) {
		return nil, apperrors.ErrForbidden
	}
	return toRequestDTO(req), nil
}

// CreateRequest persists the request (always PENDING) and then tries to
// send the notification email. A failed send never fails the create.
func (s *RequestService) CreateRequest(ctx context.Context, payload dto.CreateRequestDTO) (*dto.RequestDTO, error) {
	sess := authz.FromContext(ctx)
	if sess == nil {
		return nil, apperrors.ErrUnauthorized
	}

	ownerID := sess.UserID
	if authz.IsAdmin(sess) && payload.UserID != nil {
		ownerID = *payload.UserID
	}

	entity := entities.Request{
		Status: entities.RequestStatusPending,
		Notes:  utils.NormalizeOptional(payload.Notes),
		UserID: ownerID,
	}
	for _, item := range payload.Items {
		var equipmentID null.Uint64
		if item.EquipmentID != nil {
			equipmentID = null.Uint64From(*item.EquipmentID)
		}
		entity.Items = append(entity.Items, entities.RequestItem{
			Type:        item.Type,
			Description: utils.NormalizeOptional(item.Description),
			EquipmentID: equipmentID,
		})
	}

	id, err := s.requestRepository.CreateRequest(ctx, entity)
	if err != nil {
		return nil, err
	}
	s.logger.Info("request created", zap.Uint64("id", id), zap.Uint64("owner", ownerID))

	created, err := s.requestRepository.FindRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	result := toRequestDTO(created)

	if err := s.notifications.SendRequestCreated(ctx, result); err != nil {
		// Logged only: the request itself is already persisted.
		s.logger.Warn("request notification failed", zap.Uint64("request_id", id), zap.Error(err))
	}

	return result, nil
}

func (s *RequestService) UpdateRequest(ctx context.Context, id uint64, payload dto.UpdateRequestDTO) (*dto.RequestDTO, error) {
	sess := authz.FromContext(ctx)
	if sess == nil {
		return nil, apperrors.ErrUnauthorized
	}

	existing, err := s.requestRepository.FindRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	if !authz.CanManage(sess, existing.UserID) {
		return nil, apperrors.ErrForbidden
	}

	changes := map[string]interface{}{}
	if payload.Status != nil {
		changes["status"] = *payload.Status
	}
	if payload.Notes != nil {
		changes["notes"] = utils.NormalizeOptional(null.StringFromPtr(payload.Notes))
	}

	if err := s.requestRepository.UpdateRequest(ctx, id, changes); err != nil {
		return nil, err
	}

	updated, err := s.requestRepository.FindRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	return toRequestDTO(updated), nil
}

func (s *RequestService) DeleteRequest(ctx context.Context, id uint64) error {
	sess := authz.FromContext(ctx)
	if sess == nil {
		return apperrors.ErrUnauthorized
	}

	existing, err := s.requestRepository.FindRequest(ctx, id)
	if err != nil {
		return err
	}
	if !authz.CanManage(sess, existing.UserID) {
		return apperrors.ErrForbidden
	}

	if err := s.requestRepository.DeleteRequest(ctx, id); err != nil {
		return err
	}
	s.logger.Info("request deleted", zap.Uint64("id", id))
	return nil
}
