package entry

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/gestor-oficina/ledger-server/internal/logging"
)

// DeleteEntryInput is the Huma input for deleting an entry.
type DeleteEntryInput struct {
	ID string `path:"id" doc:"Entry UUID"`
}

// DeleteEntryOutput is the Huma output for deleting an entry.
type DeleteEntryOutput struct {
	Status int `json:"status" doc:"HTTP status"`
}

// entryDeleter is the interface for deleting entries.
type entryDeleter interface {
	DeleteEntry(ctx context.Context, id uuid.UUID) error
}

// DeleteEntryHandler handles DELETE /v1/entries/{id}.
type DeleteEntryHandler struct {
	LedgerService entryDeleter
}

// NewDeleteEntryHandler creates a new DeleteEntryHandler.
func NewDeleteEntryHandler(svc entryDeleter) *DeleteEntryHandler {
	return &DeleteEntryHandler{LedgerService: svc}
}

// Register registers the delete entry endpoint with the Huma API.
func (h *DeleteEntryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-entry",
		Method:      http.MethodDelete,
		Path:        "/v1/entries/{id}",
		Summary:     "Delete entry",
		Description: "Deletes an entry by ID.",
		Tags:        []string{"Entries"},
	}, h.handle)
}

func (h *DeleteEntryHandler) handle(ctx context.Context, input *DeleteEntryInput) (*DeleteEntryOutput, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid entry id", err)
	}

	if err := h.LedgerService.DeleteEntry(ctx, id); err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to delete entry", err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("entryID", id.String())
	}

	return &DeleteEntryOutput{Status: http.StatusOK}, nil
}
