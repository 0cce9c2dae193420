package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/gestor-oficina/ledger-server/internal/storage/sqlconfig"
)

type Writer struct {
	tx      bob.Tx
	entries sqlconfig.IEntryTable
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx:      tx,
		entries: sqlconfig.NewEntriesTableExec(tx),
	}
}

// Entries exposes the entry table scoped to this transaction.
func (w *Writer) Entries() sqlconfig.IEntryTable {
	return w.entries
}

func (w *Writer) Commit() error {
	return w.tx.Commit(context.Background())
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback(context.Background())
}
