package repository_test

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kruglovma/sklad/internal/adapters/postgres"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
)

var testPool *pgxpool.Pool

func TestMain(m *testing.M) {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("test_db"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		tcpostgres.BasicWaitStrategies(),
	)
	if err != nil {
		log.Fatalf("failed to start postgres container: %v", err)
	}

	endpoint, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		log.Fatalf("failed to get connection string: %v", err)
	}

	testPool, err = pgxpool.New(ctx, endpoint)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}

	if err := postgres.EnsureSchema(ctx, testPool); err != nil {
		log.Fatalf("failed to ensure schema: %v", err)
	}

	code := m.Run()

	testPool.Close()
	_ = container.Terminate(ctx)

	os.Exit(code)
}

func truncateProducts(t *testing.T) {
	t.Helper()
	if _, err := testPool.Exec(context.Background(), `TRUNCATE products RESTART IDENTITY`); err != nil {
		t.Fatalf("setup: truncate failed: %v", err)
	}
}
