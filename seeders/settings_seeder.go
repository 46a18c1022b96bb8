package seeders

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	"medequip-system/internal/entities"
)

var defaultSettings = map[string]string{
	entities.SettingEmailNotifications: "false",
}

func seedSettings(ctx context.Context, db *pgxpool.Pool) error {
	for key, value := range defaultSettings {
		_, err := db.Exec(ctx,
			"INSERT INTO settings (key, value) VALUES ($1, $2) ON CONFLICT (key) DO NOTHING",
			key, value,
		)
		if err != nil {
			return fmt.Errorf("inserting setting %q: %w", key, err)
		}
	}
	log.Println("settings seeded")
	return nil
}
