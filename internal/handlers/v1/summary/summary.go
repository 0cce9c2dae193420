// Package summary exposes the aggregation engine: the totals view and
// the shareable text report.
package summary

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/gestor-oficina/ledger-server/internal/ledger"
	"github.com/gestor-oficina/ledger-server/internal/logging"
	"github.com/gestor-oficina/ledger-server/internal/service"
)

// SummaryInput is the Huma input for the summary view.
type SummaryInput struct {
	Category string `query:"category" doc:"Category tab; omit for the global summary"`
	From     string `query:"from" doc:"Inclusive start date YYYY-MM-DD"`
	To       string `query:"to" doc:"Inclusive end date YYYY-MM-DD"`
}

// SummaryResponseBody is the response body for the summary view.
type SummaryResponseBody struct {
	Purchases         string            `json:"purchases" doc:"Sum of purchase totals"`
	Payments          string            `json:"payments" doc:"Sum of payment totals"`
	Balance           string            `json:"balance" doc:"Payments minus purchases"`
	CategoryPurchases map[string]string `json:"categoryPurchases,omitempty" doc:"Per-category purchase totals, global view only"`
}

// SummaryOutput is the Huma output for the summary view.
type SummaryOutput struct {
	Body SummaryResponseBody
}

// summarizer is the interface for computing summaries.
type summarizer interface {
	Summary(ctx context.Context, category ledger.Category, r ledger.DateRange) (service.Summary, error)
}

// SummaryHandler handles GET /v1/summary.
type SummaryHandler struct {
	LedgerService summarizer
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(svc summarizer) *SummaryHandler {
	return &SummaryHandler{LedgerService: svc}
}

// Register registers the summary endpoint with the Huma API.
func (h *SummaryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "summary",
		Method:      http.MethodGet,
		Path:        "/v1/summary",
		Summary:     "Totals summary",
		Description: "Returns purchases, payments, and balance for the global view or one category tab.",
		Tags:        []string{"Summary"},
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

func (h *SummaryHandler) handle(ctx context.Context, input *SummaryInput) (*SummaryOutput, error) {
	category := ledger.Category(input.Category)
	if input.Category != "" && !category.Valid() {
		return nil, huma.NewError(http.StatusBadRequest, "invalid category")
	}
	dateRange, err := parseDateRange(input.From, input.To)
	if err != nil {
		return nil, err
	}

	logData := logging.GetLogData(ctx)
	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("summaryMs")
	}
	summary, err := h.LedgerService.Summary(ctx, category, dateRange)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to compute summary", err)
	}

	resp := SummaryResponseBody{
		Purchases: summary.Totals.Purchases.String(),
		Payments:  summary.Totals.Payments.String(),
		Balance:   summary.Totals.Balance.String(),
	}
	if summary.CategoryPurchases != nil {
		resp.CategoryPurchases = make(map[string]string, len(summary.CategoryPurchases))
		for cat, total := range summary.CategoryPurchases {
			resp.CategoryPurchases[string(cat)] = total.String()
		}
	}
	return &SummaryOutput{Body: resp}, nil
}
