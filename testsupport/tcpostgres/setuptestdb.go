//nolint:errcheck // testsetup
package tcpostgres

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/gridrival/season-manager-go/pkg/db/migrate"
	database "github.com/gridrival/season-manager-go/pkg/db/postgres"
)

// create a pg connection pool for the season-manager testdatabase
func SetupTestDb() *pgxpool.Pool {
	ctx := context.Background()
	port, err := nat.NewPort("tcp", "5432")
	if err != nil {
		log.Fatal(err)
	}
	container, err := SetupPostgres(ctx,
		WithPort(port.Port()),
		WithInitialDatabase("postgres", "password", "postgres"),
		WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second)),
		WithName("season-manager-test"),
	)
	if err != nil {
		log.Fatal(err)
	}
	containerPort, _ := container.MappedPort(ctx, port)
	host, _ := container.Host(ctx)
	dbURL := fmt.Sprintf("postgresql://postgres:password@%s:%s/postgres",
		host, containerPort.Port())

	return migrateAndConnect(dbURL)
}

// create a pg connection pool towards the database at TESTDB_URL
func SetupExternalTestDb() *pgxpool.Pool {
	return migrateAndConnect(os.Getenv("TESTDB_URL"))
}

func migrateAndConnect(dbURL string) *pgxpool.Pool {
	if err := migrate.MigrateDb(dbURL); err != nil {
		log.Fatal(err)
	}
	return database.InitWithURL(dbURL)
}

func ClearActiveGameTable(pool *pgxpool.Pool) {
	pool.Exec(context.Background(), "delete from active_game")
}

func ClearArchivedGameTable(pool *pgxpool.Pool) {
	pool.Exec(context.Background(), "delete from archived_game")
}

func ClearOutcomeTable(pool *pgxpool.Pool) {
	pool.Exec(context.Background(), "delete from outcome")
}

func ClearCredentialTable(pool *pgxpool.Pool) {
	pool.Exec(context.Background(), "delete from credential")
}

func ClearAllTables(pool *pgxpool.Pool) {
	ClearOutcomeTable(pool)
	ClearArchivedGameTable(pool)
	ClearActiveGameTable(pool)
	ClearCredentialTable(pool)
}
