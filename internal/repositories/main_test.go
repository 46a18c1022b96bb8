package repositories

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

var testPool *pgxpool.Pool

// TestMain connects to the database named by TEST_DATABASE_URL and applies
// the test schema. Without that variable the integration tests are skipped.
func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn != "" {
		var err error
		testPool, err = pgxpool.New(context.Background(), dsn)
		if err != nil {
			log.Fatalf("connecting to test database: %v", err)
		}
		applySchema(testPool)
	}

	code := m.Run()
	if testPool != nil {
		testPool.Close()
	}
	os.Exit(code)
}

func applySchema(pool *pgxpool.Pool) {
	path, _ := filepath.Abs("../../testdata/schema.sql")
	schema, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("reading schema.sql: %v", err)
	}
	if _, err := pool.Exec(context.Background(), string(schema)); err != nil {
		log.Fatalf("applying test schema: %v", err)
	}
}

func requireTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testPool == nil {
		t.Skip("TEST_DATABASE_URL not set")
	}
	return testPool
}

func cleanupTables(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	_, err := pool.Exec(context.Background(),
		`TRUNCATE TABLE request_items, requests, equipments, equipment_types, users, settings RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
}
