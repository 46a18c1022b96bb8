package services

import (
	"context"
	"time"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"

	"medequip-system/internal/authz"
	"medequip-system/internal/dto"
	"medequip-system/internal/entities"
	"medequip-system/internal/repositories"
	apperrors "medequip-system/pkg/errors"
	"medequip-system/pkg/types"
	"medequip-system/pkg/utils"
)

const dateLayout = "2006-01-02"

type EquipmentServiceInterface interface {
	GetEquipments(ctx context.Context, filter types.Filter) ([]dto.EquipmentDTO, uint64, error)
	FindEquipment(ctx context.Context, id uint64) (*dto.EquipmentDTO, error)
	CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*dto.EquipmentDTO, error)
	UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO) (*dto.EquipmentDTO, error)
	DeleteEquipment(ctx context.Context, id uint64) error
}

type EquipmentService struct {
	equipmentRepository repositories.EquipmentRepositoryInterface
	logger              *zap.Logger
}

func NewEquipmentService(
	equipmentRepository repositories.EquipmentRepositoryInterface,
	logger *zap.Logger,
) EquipmentServiceInterface {
	return &EquipmentService{equipmentRepository: equipmentRepository, logger: logger}
}

func toEquipmentDTO(e *entities.Equipment) *dto.EquipmentDTO {
	out := &dto.EquipmentDTO{
		ID:        e.ID,
		Reference: e.Reference,
		Sector:    e.Sector,
		Room:      e.Room,
		Resident:  e.Resident,
		Weight:    e.Weight,
		UserID:    e.UserID,
		CreatedAt: e.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt: e.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
	if e.DeliveryDate.Valid {
		out.DeliveryDate = null.StringFrom(e.DeliveryDate.Time.Format(dateLayout))
	}
	if e.ReturnDate.Valid {
		out.ReturnDate = null.StringFrom(e.ReturnDate.Time.Format(dateLayout))
	}
	if e.Type != nil {
		out.Type = dto.EquipmentTypeDTO{ID: e.Type.ID, Name: e.Type.Name}
	}
	if e.Owner != nil {
		out.Owner = dto.ShortUserDTO{Name: e.Owner.Name, Email: e.Owner.Email}
	}
	return out
}

func parseOptionalDate(s *string) null.Time {
	if s == nil || *s == "" {
		return null.Time{}
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return null.Time{}
	}
	return null.TimeFrom(t)
}

// GetEquipments lists equipment. Non-admin callers only ever see their own
// rows, whatever filters they pass.
func (s *EquipmentService) GetEquipments(ctx context.Context, filter types.Filter) ([]dto.EquipmentDTO, uint64, error) {
	sess := authz.FromContext(ctx)
	if sess == nil {
		return nil, 0, apperrors.ErrUnauthorized
	}

	ownerID := sess.UserID
	if authz.IsAdmin(sess) {
		ownerID = 0
	}

	list, total, err := s.equipmentRepository.GetEquipments(ctx, filter, ownerID)
	if err != nil {
		return nil, 0, err
	}

	result := make([]dto.EquipmentDTO, 0, len(list))
	for i := range list {
		result = append(result, *toEquipmentDTO(&list[i]))
	}
	return result, total, nil
}

func (s *EquipmentService) FindEquipment(ctx context.Context, id uint64) (*dto.EquipmentDTO, error) {
	sess := authz.FromContext(ctx)
	if sess == nil {
		return nil, apperrors.ErrUnauthorized
	}

	eq, err := s.equipmentRepository.FindEquipment(ctx, id)
	if err != nil {
		return nil, err
	}
	if !authz.CanManage(sess, eq.UserID) {
		return nil, apperrors.ErrForbidden
	}
	return toEquipmentDTO(eq), nil
}

func (s *EquipmentService) buildEntity(sess *authz.Session, typeID uint64, reference null.String, sector, room, resident string, weight *float64, deliveryDate, returnDate *string, userID *uint64, currentOwner uint64) entities.Equipment {
	owner := currentOwner
	if owner == 0 {
		owner = sess.UserID
	}
	// Only admins may assign equipment to somebody else.
	if authz.IsAdmin(sess) && userID != nil {
		owner = *userID
	}

	var w null.Float64
	if weight != nil {
		w = null.Float64From(*weight)
	}

	return entities.Equipment{
		TypeID:       typeID,
		Reference:    utils.NormalizeOptional(reference),
		Sector:       sector,
		Room:         room,
		Resident:     resident,
		Weight:       w,
		DeliveryDate: parseOptionalDate(deliveryDate),
		ReturnDate:   parseOptionalDate(returnDate),
		UserID:       owner,
	}
}

func (s *EquipmentService) CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*dto.EquipmentDTO, error) {
	sess := authz.FromContext(ctx)
	if sess == nil {
		return nil, apperrors.ErrUnauthorized
	}

	entity := s.buildEntity(sess, payload.TypeID, payload.Reference, payload.Sector, payload.Room,
		payload.Resident, payload.Weight, payload.DeliveryDate, payload.ReturnDate, payload.UserID, 0)

	id, err := s.equipmentRepository.CreateEquipment(ctx, entity)
	if err != nil {
		return nil, err
	}

	s.logger.Info("equipment created", zap.Uint64("id", id), zap.Uint64("owner", entity.UserID))

	eq, err := s.equipmentRepository.FindEquipment(ctx, id)
	if err != nil {
		return nil, err
	}
	return toEquipmentDTO(eq), nil
}

func (s *EquipmentService) UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO) (*dto.EquipmentDTO, error) {
	sess := authz.FromContext(ctx)
	if sess == nil {
		return nil, apperrors.ErrUnauthorized
	}

	existing, err := s.equipmentRepository.FindEquipment(ctx, id)
	if err != nil {
		return nil, err
	}
	if !authz.CanManage(sess, existing.UserID) {
		return nil, apperrors.ErrForbidden
	}

	entity := s.buildEntity(sess, payload.TypeID, payload.Reference, payload.Sector, payload.Room,
		payload.Resident, payload.Weight, payload.DeliveryDate, payload.ReturnDate, payload.UserID, existing.UserID)

	if err := s.equipmentRepository.UpdateEquipment(ctx, id, entity); err != nil {
		return nil, err
	}

	eq, err := s.equipmentRepository.FindEquipment(ctx, id)
	if err != nil {
		return nil, err
	}
	return toEquipmentDTO(eq), nil
}

func (s *EquipmentService) DeleteEquipment(ctx context.Context, id uint64) error {
	sess := authz.FromContext(ctx)
	if sess == nil {
		return apperrors.ErrUnauthorized
	}

	existing, err := s.equipmentRepository.FindEquipment(ctx, id)
	if err != nil {
		return err
	}
	if !authz.CanManage(sess, existing.UserID) {
		return apperrors.ErrForbidden
	}

	if err := s.equipmentRepository.DeleteEquipment(ctx, id); err != nil {
		return err
	}
	s.logger.Info("equipment deleted", zap.Uint64("id", id))
	return nil
}
