package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pressly/goose/v3"
	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"

	"mentorhub/internal/repository"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// Open opens (or creates) a sqlite database at the given path and ensures directories exist.
func Open(path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	// a single connection serialises writers
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(`PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	return db, nil
}

// Migrate applies every pending schema migration.
func Migrate(ctx context.Context, db *sql.DB, logger logrus.FieldLogger) error {
	migrations, err := fs.Sub(migrationFS, "migrations")
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectSQLite3, db, migrations)
	if err != nil {
		return fmt.Errorf("create migration provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	for _, res := range results {
		logger.WithField("version", res.Source.Version).
			Infof("applied migration %s in %s", filepath.Base(res.Source.Path), res.Duration)
	}
	return nil
}

// Store bundles the sqlite-backed repositories over one connection.
type Store struct {
	db         *sql.DB
	users      *UserRepository
	hackathons *HackathonRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:         db,
		users:      NewUserRepository(db),
		hackathons: NewHackathonRepository(db),
	}
}

func (s *Store) Users() repository.UserRepository {
	return s.users
}

func (s *Store) Hackathons() repository.HackathonRepository {
	return s.hackathons
}

func (s *Store) Close(context.Context) error {
	return s.db.Close()
}

var _ repository.Store = (*Store)(nil)
