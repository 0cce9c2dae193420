package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/gestor-oficina/ledger-server/internal/storage"
)

// DeleteEntry removes one ledger entry by ID.
type DeleteEntry struct {
	ID uuid.UUID

	IAction
}

func (d *DeleteEntry) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Entries().Delete(ctx, d.ID)
}
