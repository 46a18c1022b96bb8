package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Run populates the minimum data a fresh installation needs: the admin
// account, the base equipment type dictionary and the default settings.
// Every seeder is idempotent and safe to re-run.
func Run(db *pgxpool.Pool) {
	ctx := context.Background()

	if err := seedAdminUser(ctx, db); err != nil {
		log.Fatalf("seeding admin user: %v", err)
	}
	if err := seedEquipmentTypes(ctx, db); err != nil {
		log.Fatalf("seeding equipment types: %v", err)
	}
	if err := seedSettings(ctx, db); err != nil {
		log.Fatalf("seeding settings: %v", err)
	}

	log.Println("seeding complete")
}
