package actions

import (
	"context"

	"github.com/gestor-oficina/ledger-server/internal/storage"
)

// IAction is one queued ledger write. Perform runs inside the
// transaction the operator opened; returning an error rolls it back.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
