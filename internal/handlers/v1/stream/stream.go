// Package stream pushes full entry-set snapshots to connected clients
// over server-sent events. Clients replace their local state with each
// snapshot; there is no incremental diff protocol.
package stream

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/sse"

	"github.com/gestor-oficina/ledger-server/internal/handlers/v1/entry"
	"github.com/gestor-oficina/ledger-server/internal/ledger"
	"github.com/gestor-oficina/ledger-server/internal/logging"
)

// SnapshotEvent is the SSE payload: the complete current entry set.
type SnapshotEvent struct {
	Entries []entry.Entry `json:"entries" doc:"Complete entry set, newest first"`
}

// snapshotSource provides the current entry set and a subscription to
// subsequent ones.
type snapshotSource interface {
	Snapshot(ctx context.Context) ([]ledger.Entry, error)
	Subscribe() (<-chan []ledger.Entry, func())
}

// Handler handles GET /v1/entries/stream.
type Handler struct {
	Source snapshotSource
}

// NewHandler creates a new stream Handler.
func NewHandler(source snapshotSource) *Handler {
	return &Handler{Source: source}
}

// Register registers the snapshot stream endpoint with the Huma API.
func (h *Handler) Register(api huma.API) {
	sse.Register(api, huma.Operation{
		OperationID: "stream-entries",
		Method:      http.MethodGet,
		Path:        "/v1/entries/stream",
		Summary:     "Entry snapshot stream",
		Description: "Streams the full entry set on connect and again after every write.",
		Tags:        []string{"Entries"},
	}, map[string]any{
		"snapshot": SnapshotEvent{},
	}, h.handle)
}

func (h *Handler) handle(ctx context.Context, input *struct{}, send sse.Sender) {
	logData := logging.GetLogData(ctx)

	updates, cancel := h.Source.Subscribe()
	defer cancel()

	// Initial snapshot so a client is current before the first write.
	current, err := h.Source.Snapshot(ctx)
	if err != nil {
		if logData != nil {
			logData.AddData("streamError", err.Error())
		}
		return
	}
	if err := send.Data(SnapshotEvent{Entries: entry.FromLedgerSlice(current)}); err != nil {
		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		case snapshot, ok := <-updates:
			if !ok {
				return
			}
			if err := send.Data(SnapshotEvent{Entries: entry.FromLedgerSlice(snapshot)}); err != nil {
				return
			}
		}
	}
}
