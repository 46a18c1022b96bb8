package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"medequip-system/internal/entities"
	"medequip-system/internal/infrastructure/bd"
	apperrors "medequip-system/pkg/errors"
	"medequip-system/pkg/types"
)

const equipmentTable = "equipments"

const equipmentJoinedFields = `
	e.id, e.type_id, e.reference, e.sector, e.room, e.resident,
	e.weight, e.delivery_date, e.return_date, e.user_id, e.created_at, e.updated_at,
	et.id, et.name, u.name, u.email`

// Public filter/sort names → columns. Unlisted names are ignored.
var equipmentFieldMap = map[string]string{
	"type_id":    "e.type_id",
	"user_id":    "e.user_id",
	"sector":     "e.sector",
	"resident":   "e.resident",
	"created_at": "e.created_at",
}

type EquipmentRepositoryInterface interface {
	GetEquipments(ctx context.Context, filter types.Filter, ownerID uint64) ([]entities.Equipment, uint64, error)
	FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error)
	CreateEquipment(ctx context.Context, eq entities.Equipment) (uint64, error)
	UpdateEquipment(ctx context.Context, id uint64, eq entities.Equipment) error
	DeleteEquipment(ctx context.Context, id uint64) error
}

type EquipmentRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewEquipmentRepository(storage *pgxpool.Pool, logger *zap.Logger) EquipmentRepositoryInterface {
	return &EquipmentRepository{storage: storage, logger: logger}
}

func scanEquipment(row pgx.Row) (*entities.Equipment, error) {
	var e entities.Equipment
	var et entities.EquipmentType
	var owner entities.User

	err := row.Scan(
		&e.ID, &e.TypeID, &e.Reference, &e.Sector, &e.Room, &e.Resident,
		&e.Weight, &e.DeliveryDate, &e.ReturnDate, &e.UserID, &e.CreatedAt, &e.UpdatedAt,
		&et.ID, &et.Name, &owner.Name, &owner.Email,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning equipment: %w", err)
	}

	e.Type = &et
	e.Owner = &owner
	return &e, nil
}

func (r *EquipmentRepository) baseSelect() sq.SelectBuilder {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select(equipmentJoinedFields).
		From(equipmentTable + " e").
		Join("equipment_types et ON et.id = e.type_id").
		Join("users u ON u.id = e.user_id")
}

// GetEquipments lists equipment with the optional search/type filters.
// ownerID > 0 pins the result to that owner regardless of filters; the
// service passes 0 for admins only.
func (r *EquipmentRepository) GetEquipments(ctx context.Context, filter types.Filter, ownerID uint64) ([]entities.Equipment, uint64, error) {
	apply := func(builder sq.SelectBuilder) sq.SelectBuilder {
		if ownerID > 0 {
			builder = builder.Where(sq.Eq{"e.user_id": ownerID})
		}
		return bd.ApplySearch(builder, filter.Search, "e.reference", "e.resident", "e.sector")
	}

	countBuilder := apply(sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select("COUNT(*)").From(equipmentTable + " e"))
	countBuilder = bd.ApplyFilter(countBuilder, filter, equipmentFieldMap)

	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.Equipment{}, 0, nil
	}

	listBuilder := bd.ApplyListParams(apply(r.baseSelect()), filter, equipmentFieldMap)
	if len(filter.Sort) == 0 {
		listBuilder = listBuilder.OrderBy("e.created_at DESC")
	}

	query, args, err := listBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	list := make([]entities.Equipment, 0)
	for rows.Next() {
		e, err := scanEquipment(rows)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, *e)
	}
	return list, total, rows.Err()
}

func (r *EquipmentRepository) FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error) {
	query, args, err := r.baseSelect().Where(sq.Eq{"e.id": id}).ToSql()
	if err != nil {
		return nil, err
	}
	return scanEquipment(r.storage.QueryRow(ctx, query, args...))
}

func (r *EquipmentRepository) CreateEquipment(ctx context.Context, eq entities.Equipment) (uint64, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (type_id, reference, sector, room, resident, weight, delivery_date, return_date, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`, equipmentTable)

	var id uint64
	err := r.storage.QueryRow(ctx, query,
		eq.TypeID, eq.Reference, eq.Sector, eq.Room, eq.Resident,
		eq.Weight, eq.DeliveryDate, eq.ReturnDate, eq.UserID,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *EquipmentRepository) UpdateEquipment(ctx context.Context, id uint64, eq entities.Equipment) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET type_id = $1, reference = $2, sector = $3, room = $4, resident = $5,
			weight = $6, delivery_date = $7, return_date = $8, user_id = $9,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $10
	`, equipmentTable)

	result, err := r.storage.Exec(ctx, query,
		eq.TypeID, eq.Reference, eq.Sector, eq.Room, eq.Resident,
		eq.Weight, eq.DeliveryDate, eq.ReturnDate, eq.UserID, id,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *EquipmentRepository) DeleteEquipment(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx,
		fmt.Sprintf("DELETE FROM %s WHERE id = $1", equipmentTable), id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
