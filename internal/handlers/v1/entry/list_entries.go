package entry

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/gestor-oficina/ledger-server/internal/ledger"
	"github.com/gestor-oficina/ledger-server/internal/logging"
	"github.com/gestor-oficina/ledger-server/internal/service"
)

// ListEntriesInput is the Huma input for listing entries. A non-empty
// search query wins over every other filter.
type ListEntriesInput struct {
	Category string `query:"category" doc:"Category tab; omit for the global view"`
	Query    string `query:"q" doc:"Case-insensitive description search over the whole log"`
	From     string `query:"from" doc:"Inclusive start date YYYY-MM-DD"`
	To       string `query:"to" doc:"Inclusive end date YYYY-MM-DD"`
	Limit    int    `query:"limit" minimum:"0" doc:"Max entries to return; 0 uses the view default"`
}

// ListEntriesResponseBody is the response body for listing entries.
type ListEntriesResponseBody struct {
	Entries []Entry `json:"entries" doc:"Entries, newest first"`
}

// ListEntriesOutput is the Huma output for listing entries.
type ListEntriesOutput struct {
	Body ListEntriesResponseBody
}

// entryLister is the interface for listing entries.
type entryLister interface {
	ListEntries(ctx context.Context, opts service.ListOptions) ([]ledger.Entry, error)
}

// ListEntriesHandler handles GET /v1/entries.
type ListEntriesHandler struct {
	LedgerService entryLister
}

// NewListEntriesHandler creates a new ListEntriesHandler.
func NewListEntriesHandler(svc entryLister) *ListEntriesHandler {
	return &ListEntriesHandler{LedgerService: svc}
}

// Register registers the list entries endpoint with the Huma API.
func (h *ListEntriesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-entries",
		Method:      http.MethodGet,
		Path:        "/v1/entries",
		Summary:     "List entries",
		Description: "Lists entries for the global view or a category tab, with optional date range and search.",
		Tags:        []string{"Entries"},
	}, h.handle)
}

// parseDateRange parses inclusive from/to bounds. Either side may be
// empty.
func parseDateRange(from, to string) (ledger.DateRange, error) {
	var r ledger.DateRange
	var err error
	if from != "" {
		r.Start, err = time.Parse("2006-01-02", from)
		if err != nil {
			return ledger.DateRange{}, huma.NewError(http.StatusBadRequest, "invalid from date", err)
		}
	}
	if to != "" {
		r.End, err = time.Parse("2006-01-02", to)
		if err != nil {
			return ledger.DateRange{}, huma.NewError(http.StatusBadRequest, "invalid to date", err)
		}
	}
	return r, nil
}

func (h *ListEntriesHandler) handle(ctx context.Context, input *ListEntriesInput) (*ListEntriesOutput, error) {
	logData := logging.GetLogData(ctx)

	category := ledger.Category(input.Category)
	if input.Category != "" && !category.Valid() {
		return nil, huma.NewError(http.StatusBadRequest, "invalid category")
	}
	dateRange, err := parseDateRange(input.From, input.To)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listEntriesMs")
	}
	entries, err := h.LedgerService.ListEntries(ctx, service.ListOptions{
		Category: category,
		Query:    input.Query,
		Range:    dateRange,
		Limit:    input.Limit,
	})
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list entries", err)
	}

	if logData != nil {
		logData.AddData("entryCount", len(entries))
	}

	return &ListEntriesOutput{Body: ListEntriesResponseBody{Entries: FromLedgerSlice(entries)}}, nil
}
