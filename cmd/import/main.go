package main

import (
	"context"
	"flag"
	"log"

	"medequip-system/internal/repositories"
	"medequip-system/internal/services"
	"medequip-system/pkg/config"
	"medequip-system/pkg/database/postgresql"
	applogger "medequip-system/pkg/logger"
)

func main() {
	file := flag.String("file", "", "path to a .csv or .xlsx equipment file")
	flag.Parse()

	if *file == "" {
		log.Fatal("usage: import -file <equipment.csv|equipment.xlsx>")
	}

	cfg := config.New()
	logger := applogger.NewLogger()

	db := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer db.Close()

	importer := services.NewEquipmentImportService(
		repositories.NewEquipmentRepository(db, logger),
		repositories.NewUserRepository(db, logger),
		repositories.NewEquipmentTypeRepository(db),
		logger,
	)

	result, err := importer.ImportFile(context.Background(), *file)
	if err != nil {
		log.Fatalf("import failed: %v", err)
	}

	log.Printf("import finished: %d imported, %d skipped, %d failed",
		result.Imported, result.Skipped, result.Failed)
}
