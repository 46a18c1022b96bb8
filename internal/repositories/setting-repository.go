package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"medequip-system/internal/entities"
	apperrors "medequip-system/pkg/errors"
)

const settingTable = "settings"

type SettingRepositoryInterface interface {
	FindSetting(ctx context.Context, key string) (*entities.Setting, error)
	UpsertSetting(ctx context.Context, key, value string) (*entities.Setting, error)
}

type SettingRepository struct {
	storage *pgxpool.Pool
}

func NewSettingRepository(storage *pgxpool.Pool) SettingRepositoryInterface {
	return &SettingRepository{storage: storage}
}

func (r *SettingRepository) FindSetting(ctx context.Context, key string) (*entities.Setting, error) {
	var s entities.Setting
	err := r.storage.QueryRow(ctx,
		fmt.Sprintf("SELECT key, value, updated_at FROM %s WHERE key = $1", settingTable), key,
	).Scan(&s.Key, &s.Value, &s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SettingRepository) UpsertSetting(ctx context.Context, key, value string) (*entities.Setting, error) {
	var s entities.Setting
	err := r.storage.QueryRow(ctx, fmt.Sprintf(`
		INSERT INTO %s (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = CURRENT_TIMESTAMP
		RETURNING key, value, updated_at
	`, settingTable), key, value).Scan(&s.Key, &s.Value, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
