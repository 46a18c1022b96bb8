package services

import (
	"context"

	"go.uber.org/zap"

	"medequip-system/internal/dto"
	"medequip-system/internal/repositories"
)

type EquipmentTypeServiceInterface interface {
	GetEquipmentTypes(ctx context.Context) ([]dto.EquipmentTypeDTO, error)
	FindEquipmentType(ctx context.Context, id uint64) (*dto.EquipmentTypeDTO, error)
	CreateEquipmentType(ctx context.Context, payload dto.CreateEquipmentTypeDTO) (*dto.EquipmentTypeDTO, error)
	UpdateEquipmentType(ctx context.Context, id uint64, payload dto.UpdateEquipmentTypeDTO) (*dto.EquipmentTypeDTO, error)
	DeleteEquipmentType(ctx context.Context, id uint64) error
}

type EquipmentTypeService struct {
	typeRepository repositories.EquipmentTypeRepositoryInterface
	logger         *zap.Logger
}

func NewEquipmentTypeService(
	typeRepository repositories.EquipmentTypeRepositoryInterface,
	logger *zap.Logger,
) EquipmentTypeServiceInterface {
	return &EquipmentTypeService{typeRepository: typeRepository, logger: logger}
}

func (s *EquipmentTypeService) GetEquipmentTypes(ctx context.Context) ([]dto.EquipmentTypeDTO, error) {
	types, err := s.typeRepository.GetEquipmentTypes(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]dto.EquipmentTypeDTO, 0, len(types))
	for _, t := range types {
		result = append(result, dto.EquipmentTypeDTO{ID: t.ID, Name: t.Name})
	}
	return result, nil
}

func (s *EquipmentTypeService) FindEquipmentType(ctx context.Context, id uint64) (*dto.EquipmentTypeDTO, error) {
	t, err := s.typeRepository.FindEquipmentType(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.EquipmentTypeDTO{ID: t.ID, Name: t.Name}, nil
}

func (s *EquipmentTypeService) CreateEquipmentType(ctx context.Context, payload dto.CreateEquipmentTypeDTO) (*dto.EquipmentTypeDTO, error) {
	t, err := s.typeRepository.CreateEquipmentType(ctx, payload.Name)
	if err != nil {
		return nil, err
	}
	s.logger.Info("equipment type created", zap.Uint64("id", t.ID), zap.String("name", t.Name))
	return &dto.EquipmentTypeDTO{ID: t.ID, Name: t.Name}, nil
}

func (s *EquipmentTypeService) UpdateEquipmentType(ctx context.Context, id uint64, payload dto.UpdateEquipmentTypeDTO) (*dto.EquipmentTypeDTO, error) {
	if err := s.typeRepository.UpdateEquipmentType(ctx, id, payload.Name); err != nil {
		return nil, err
	}
	return s.FindEquipmentType(ctx, id)
}

// DeleteEquipmentType cascades to equipment of that type.
func (s *EquipmentTypeService) DeleteEquipmentType(ctx context.Context, id uint64) error {
	if err := s.typeRepository.DeleteEquipmentType(ctx, id); err != nil {
		return err
	}
	s.logger.Info("equipment type deleted", zap.Uint64("id", id))
	return nil
}
