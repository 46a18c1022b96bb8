package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"medequip-system/internal/entities"
	apperrors "medequip-system/pkg/errors"
)

const (
	requestTable     = "requests"
	requestItemTable = "request_items"
)

type RequestRepositoryInterface interface {
	GetRequests(ctx context.Context, ownerID uint64) ([]entities.Request, error)
	FindRequest(ctx context.Context, id uint64) (*entities.Request, error)
	CreateRequest(ctx context.Context, req entities.Request) (uint64, error)
	UpdateRequest(ctx context.Context, id uint64, changes map[string]interface{}) error
	DeleteRequest(ctx context.Context, id uint64) error
}

type RequestRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewRequestRepository(storage *pgxpool.Pool, logger *zap.Logger) RequestRepositoryInterface {
	return &RequestRepository{storage: storage, logger: logger}
}

func scanRequest(row pgx.Row) (*entities.Request, error) {
	var req entities.Request
	var owner entities.User

	err := row.Scan(
		&req.ID, &req.Status, &req.Notes, &req.UserID, &req.CreatedAt, &req.UpdatedAt,
		&owner.Name, &owner.Email,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning request: %w", err)
	}

	req.Owner = &owner
	req.Items = make([]entities.RequestItem, 0)
	return &req, nil
}

// GetRequests lists requests newest first, with owner and items attached.
// ownerID > 0 restricts to that owner's requests.
func (r *RequestRepository) GetRequests(ctx context.Context, ownerID uint64) ([]entities.Request, error) {
	builder := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select("r.id, r.status, r.notes, r.user_id, r.created_at, r.updated_at, u.name, u.email").
		From(requestTable + " r").
		Join("users u ON u.id = r.user_id").
		OrderBy("r.created_at DESC")
	if ownerID > 0 {
		builder = builder.Where(sq.Eq{"r.user_id": ownerID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]entities.Request, 0)
	ids := make([]uint64, 0)
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, *req)
		ids = append(ids, req.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(requests) == 0 {
		return requests, nil
	}

	itemsByRequest, err := r.loadItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range requests {
		if items, ok := itemsByRequest[requests[i].ID]; ok {
			requests[i].Items = items
		}
	}
	return requests, nil
}

func (r *RequestRepository) FindRequest(ctx context.Context, id uint64) (*entities.Request, error) {
	query := fmt.Sprintf(`
		SELECT r.id, r.status, r.notes, r.user_id, r.created_at, r.updated_at, u.name, u.email
		FROM %s r
		JOIN users u ON u.id = r.user_id
		WHERE r.id = $1
	`, requestTable)

	req, err := scanRequest(r.storage.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}

	itemsByRequest, err := r.loadItems(ctx, []uint64{req.ID})
	if err != nil {
		return nil, err
	}
	if items, ok := itemsByRequest[req.ID]; ok {
		req.Items = items
	}
	return req, nil
}

// loadItems fetches the items of the given requests in one query, with the
// referenced equipment (if any) joined for display.
func (r *RequestRepository) loadItems(ctx context.Context, requestIDs []uint64) (map[uint64][]entities.RequestItem, error) {
	query := fmt.Sprintf(`
		SELECT ri.id, ri.request_id, ri.type, ri.description, ri.equipment_id,
			e.reference, e.resident, et.name
		FROM %s ri
		LEFT JOIN equipments e ON e.id = ri.equipment_id
		LEFT JOIN equipment_types et ON et.id = e.type_id
		WHERE ri.request_id = ANY($1)
		ORDER BY ri.id ASC
	`, requestItemTable)

	rows, err := r.storage.Query(ctx, query, requestIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[uint64][]entities.RequestItem)
	for rows.Next() {
		var item entities.RequestItem
		var reference null.String
		var resident, typeName sql.NullString

		if err := rows.Scan(
			&item.ID, &item.RequestID, &item.Type, &item.Description, &item.EquipmentID,
			&reference, &resident, &typeName,
		); err != nil {
			return nil, fmt.Errorf("scanning request item: %w", err)
		}

		if item.EquipmentID.Valid {
			item.Equipment = &entities.Equipment{
				ID:        item.EquipmentID.Uint64,
				Reference: reference,
				Resident:  resident.String,
			}
			if typeName.Valid {
				item.Equipment.Type = &entities.EquipmentType{Name: typeName.String}
			}
		}

		result[item.RequestID] = append(result[item.RequestID], item)
	}
	return result, rows.Err()
}

// CreateRequest inserts the request and its items in one transaction.
// Status always starts at PENDING, whatever the caller put in the entity.
func (r *RequestRepository) CreateRequest(ctx context.Context, req entities.Request) (uint64, error) {
	tx, err := r.storage.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	var id uint64
	err = tx.QueryRow(ctx, fmt.Sprintf(`
		INSERT INTO %s (status, notes, user_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`, requestTable), entities.RequestStatusPending, req.Notes, req.UserID).Scan(&id)
	if err != nil {
		return 0, err
	}

	for _, item := range req.Items {
		_, err = tx.Exec(ctx, fmt.Sprintf(`
			INSERT INTO %s (request_id, type, description, equipment_id)
			VALUES ($1, $2, $3, $4)
		`, requestItemTable), id, item.Type, item.Description, item.EquipmentID)
		if err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *RequestRepository) UpdateRequest(ctx context.Context, id uint64, changes map[string]interface{}) error {
	if len(changes) == 0 {
		return nil
	}

	builder := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Update(requestTable).
		SetMap(changes).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": id})

	query, args, err := builder.ToSql()
	if err != nil {
		return err
	}

	result, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *RequestRepository) DeleteRequest(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx,
		fmt.Sprintf("DELETE FROM %s WHERE id = $1", requestTable), id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
