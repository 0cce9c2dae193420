package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/gestor-oficina/ledger-server/internal/storage"
	"github.com/gestor-oficina/ledger-server/internal/storage/sqlconfig"
)

// CreateEntry inserts one ledger entry. The pricing engine has already
// derived the price fields and total before the action is queued.
type CreateEntry struct {
	Create *sqlconfig.EntryCreate

	// ID is set on success.
	ID uuid.UUID

	IAction
}

func (c *CreateEntry) Perform(ctx context.Context, writer *storage.Writer) error {
	id, err := writer.Entries().Insert(ctx, c.Create)
	if err != nil {
		return err
	}

	c.ID = id
	return nil
}
