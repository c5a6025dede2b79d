package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"go.uber.org/zap"
)

//go:embed migrations/*.up.sql
var migrationFiles embed.FS

const (
	migrationsDir = "migrations"

	countMigrationTableQuery = `SELECT COUNT(*) FROM user_tables WHERE table_name = 'SCHEMA_MIGRATIONS'`
	createMigrationTableStmt = `CREATE TABLE schema_migrations (version VARCHAR2(255) PRIMARY KEY, applied_at TIMESTAMP DEFAULT SYSTIMESTAMP NOT NULL)`
	countAppliedQuery        = `SELECT COUNT(*) FROM schema_migrations WHERE version = :1`
	insertAppliedStmt        = `INSERT INTO schema_migrations (version) VALUES (:1)`
)

// Migration is one embedded schema change. Each file holds a single statement.
type Migration struct {
	Version   string
	Statement string
}

// LoadMigrations returns the embedded migrations in file-name order.
func LoadMigrations() ([]Migration, error) {
	return loadMigrations(migrationFiles)
}

func loadMigrations(fsys fs.FS) ([]Migration, error) {
	entries, err := fs.ReadDir(fsys, migrationsDir)
	if err != nil {
		return nil, fmt.Errorf("could not read migrations directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".up.sql") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	migrations := make([]Migration, 0, len(names))
	for _, name := range names {
		content, err := fs.ReadFile(fsys, path.Join(migrationsDir, name))
		if err != nil {
			return nil, fmt.Errorf("could not read migration file %s: %w", name, err)
		}
		// go-ora rejects a trailing semicolon
		stmt := strings.TrimSuffix(strings.TrimSpace(string(content)), ";")
		migrations = append(migrations, Migration{
			Version:   strings.TrimSuffix(name, ".up.sql"),
			Statement: stmt,
		})
	}
	return migrations, nil
}

// RunMigrations applies every embedded migration not yet recorded in
// schema_migrations and returns the versions it applied.
func RunMigrations(ctx context.Context, db *sql.DB, logger *zap.Logger) ([]string, error) {
	migrations, err := LoadMigrations()
	if err != nil {
		return nil, err
	}
	return applyMigrations(ctx, db, migrations, logger)
}

func applyMigrations(ctx context.Context, db *sql.DB, migrations []Migration, logger *zap.Logger) ([]string, error) {
	if err := ensureMigrationTable(ctx, db); err != nil {
		return nil, err
	}

	applied := make([]string, 0, len(migrations))
	for _, m := range migrations {
		var count int
		if err := db.QueryRowContext(ctx, countAppliedQuery, m.Version).Scan(&count); err != nil {
			return applied, fmt.Errorf("could not check migration %s: %w", m.Version, err)
		}
		if count > 0 {
			logger.Debug("Skipping applied migration", zap.String("version", m.Version))
			continue
		}

		if _, err := db.ExecContext(ctx, m.Statement); err != nil {
			return applied, fmt.Errorf("could not execute migration %s: %w", m.Version, err)
		}
		if _, err := db.ExecContext(ctx, insertAppliedStmt, m.Version); err != nil {
			return applied, fmt.Errorf("could not record migration %s: %w", m.Version, err)
		}
		logger.Info("Executed migration", zap.String("version", m.Version))
		applied = append(applied, m.Version)
	}

	logger.Info("Migrations completed successfully", zap.Int("applied", len(applied)))
	return applied, nil
}

func ensureMigrationTable(ctx context.Context, db *sql.DB) error {
	var count int
	if err := db.QueryRowContext(ctx, countMigrationTableQuery).Scan(&count); err != nil {
		return fmt.Errorf("could not look up schema_migrations: %w", err)
	}
	if count > 0 {
		return nil
	}
	if _, err := db.ExecContext(ctx, createMigrationTableStmt); err != nil {
		return fmt.Errorf("could not create schema_migrations: %w", err)
	}
	return nil
}
