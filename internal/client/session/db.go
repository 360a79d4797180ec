package session

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dkalinin/eduhub/internal/client/migrations"
	"github.com/pressly/goose/v3"
)

// InitDatabase opens the client database at dsn and brings its schema up to
// date from the embedded migrations.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open client db: %w", err)
	}

	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return nil, fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}
