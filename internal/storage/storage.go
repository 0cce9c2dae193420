package storage

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/gestor-oficina/ledger-server/internal/config"
	"github.com/gestor-oficina/ledger-server/internal/storage/sqlconfig"
)

type Storage struct {
	DB      *sql.DB
	bdb     bob.DB
	Entries sqlconfig.IEntryTable
}

func NewStorage(env *config.Config) (*Storage, error) {
	connStr := "postgres://" + env.PostgresUsername + ":" +
		env.PostgresPassword + "@" + env.PostgresAddress + ":" +
		env.PostgresPort + "/" + env.PostgresDB + "?sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}

	return &Storage{
		DB:      db,
		bdb:     bob.NewDB(db),
		Entries: sqlconfig.NewEntriesTable(db),
	}, nil
}

// Write opens a transaction-scoped writer. The caller must Commit or
// Rollback.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.bdb.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return NewWriter(tx), nil
}
