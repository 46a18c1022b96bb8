package main

import (
	"medequip-system/pkg/config"
	"medequip-system/pkg/database/postgresql"
	"medequip-system/seeders"
)

func main() {
	cfg := config.New()

	db := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer db.Close()

	seeders.Run(db)
}
