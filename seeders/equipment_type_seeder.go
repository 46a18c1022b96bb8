package seeders

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

var defaultEquipmentTypes = []string{
	"Medical bed",
	"Wheelchair",
	"Patient lift",
	"Anti-bedsore mattress",
	"Walker",
	"Oxygen concentrator",
}

func seedEquipmentTypes(ctx context.Context, db *pgxpool.Pool) error {
	for _, name := range defaultEquipmentTypes {
		_, err := db.Exec(ctx,
			"INSERT INTO equipment_types (name) VALUES ($1) ON CONFLICT (name) DO NOTHING",
			name,
		)
		if err != nil {
			return fmt.Errorf("inserting equipment type %q: %w", name, err)
		}
	}
	log.Printf("equipment types seeded (%d entries)", len(defaultEquipmentTypes))
	return nil
}
