// Package db owns the server's database handle: opening the connection,
// running embedded migrations, and handing out repositories.
package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/dpetrovs/registro/internal/server/migrations"
	"github.com/dpetrovs/registro/internal/server/repositories/users"
)

type PostgresManager struct {
	db    *sql.DB
	users users.Repository
}

func NewPostgresManager(dsn string) (*PostgresManager, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	return &PostgresManager{
		db:    db,
		users: users.NewPostgresRepository(db),
	}, nil
}

func (m *PostgresManager) Conn() *sql.DB {
	return m.db
}

func (m *PostgresManager) Users() users.Repository {
	return m.users
}

// RunMigrations applies the embedded goose migrations, creating the users
// table with its unique email constraint on first start.
func (m *PostgresManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.UpContext(ctx, m.db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

func (m *PostgresManager) Close() error {
	return m.db.Close()
}
