package store

import (
	"context"
	"database/sql"
	"log"

	"github.com/dmitrijs2005/showcase/internal/migrations"
	"github.com/pressly/goose/v3"
)

// RunMigrations applies the embedded schema migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		log.Fatal("failed to set goose dialect:", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// OpenDatabase opens the sqlite database at dsn and brings its schema up to
// date. The schema migration here is distinct from the data migration run by
// Store.Migrate: the former creates tables, the latter reconciles persisted
// user records with the baseline seed.
func OpenDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		return nil, err
	}

	return db, nil
}
