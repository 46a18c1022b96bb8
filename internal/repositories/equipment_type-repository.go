package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"medequip-system/internal/entities"
	apperrors "medequip-system/pkg/errors"
)

const (
	equipmentTypeTable  = "equipment_types"
	equipmentTypeFields = "id, name, created_at, updated_at"
)

type EquipmentTypeRepositoryInterface interface {
	GetEquipmentTypes(ctx context.Context) ([]entities.EquipmentType, error)
	FindEquipmentType(ctx context.Context, id uint64) (*entities.EquipmentType, error)
	FindByName(ctx context.Context, name string) (*entities.EquipmentType, error)
	CreateEquipmentType(ctx context.Context, name string) (*entities.EquipmentType, error)
	UpdateEquipmentType(ctx context.Context, id uint64, name string) error
	DeleteEquipmentType(ctx context.Context, id uint64) error
}

type EquipmentTypeRepository struct {
	storage *pgxpool.Pool
}

func NewEquipmentTypeRepository(storage *pgxpool.Pool) EquipmentTypeRepositoryInterface {
	return &EquipmentTypeRepository{storage: storage}
}

func scanEquipmentType(row pgx.Row) (*entities.EquipmentType, error) {
	var et entities.EquipmentType
	err := row.Scan(&et.ID, &et.Name, &et.CreatedAt, &et.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning equipment type: %w", err)
	}
	return &et, nil
}

func (r *EquipmentTypeRepository) GetEquipmentTypes(ctx context.Context) ([]entities.EquipmentType, error) {
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY name ASC", equipmentTypeFields, equipmentTypeTable)

	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]entities.EquipmentType, 0)
	for rows.Next() {
		et, err := scanEquipmentType(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *et)
	}
	return list, rows.Err()
}

func (r *EquipmentTypeRepository) FindEquipmentType(ctx context.Context, id uint64) (*entities.EquipmentType, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", equipmentTypeFields, equipmentTypeTable)
	return scanEquipmentType(r.storage.QueryRow(ctx, query, id))
}

func (r *EquipmentTypeRepository) FindByName(ctx context.Context, name string) (*entities.EquipmentType, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE name = $1", equipmentTypeFields, equipmentTypeTable)
	return scanEquipmentType(r.storage.QueryRow(ctx, query, name))
}

func (r *EquipmentTypeRepository) CreateEquipmentType(ctx context.Context, name string) (*entities.EquipmentType, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (name) VALUES ($1)
		RETURNING %s
	`, equipmentTypeTable, equipmentTypeFields)

	et, err := scanEquipmentType(r.storage.QueryRow(ctx, query, name))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, apperrors.ErrBadRequest
		}
		return nil, err
	}
	return et, nil
}

func (r *EquipmentTypeRepository) UpdateEquipmentType(ctx context.Context, id uint64, name string) error {
	query := fmt.Sprintf(`
		UPDATE %s SET name = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2
	`, equipmentTypeTable)

	result, err := r.storage.Exec(ctx, query, name, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteEquipmentType removes the type; equipment rows referencing it go
// with it through the FK cascade.
func (r *EquipmentTypeRepository) DeleteEquipmentType(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx,
		fmt.Sprintf("DELETE FROM %s WHERE id = $1", equipmentTypeTable), id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
