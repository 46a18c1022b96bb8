package seeders

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"medequip-system/internal/authz"
	"medequip-system/pkg/utils"
)

func seedAdminUser(ctx context.Context, db *pgxpool.Pool) error {
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@medequip.local"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "changeme"
		log.Println("ADMIN_PASSWORD not set, using the default. Change it after first login.")
	}

	var existing uint64
	err := db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&existing)
	if err == nil {
		log.Printf("admin user %s already exists, skipping", email)
		return nil
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hashing admin password: %w", err)
	}

	_, err = db.Exec(ctx,
		"INSERT INTO users (email, name, password, role) VALUES ($1, $2, $3, $4)",
		email, "Administrator", hashed, authz.RoleAdmin,
	)
	if err != nil {
		return fmt.Errorf("inserting admin user: %w", err)
	}

	log.Printf("admin user %s created", email)
	return nil
}
