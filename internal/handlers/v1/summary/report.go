package summary

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/gestor-oficina/ledger-server/internal/ledger"
	"github.com/gestor-oficina/ledger-server/internal/logging"
)

// ReportInput is the Huma input for the text report.
type ReportInput struct {
	From string `query:"from" doc:"Inclusive start date YYYY-MM-DD"`
	To   string `query:"to" doc:"Inclusive end date YYYY-MM-DD"`
}

// ReportResponseBody is the response body for the text report.
type ReportResponseBody struct {
	Text      string `json:"text" doc:"Formatted report text"`
	ShareLink string `json:"shareLink" doc:"WhatsApp share link carrying the report text"`
}

// ReportOutput is the Huma output for the text report.
type ReportOutput struct {
	Body ReportResponseBody
}

// reporter is the interface for building reports.
type reporter interface {
	Report(ctx context.Context, r ledger.DateRange) (ledger.Report, error)
}

// ReportHandler handles GET /v1/report.
type ReportHandler struct {
	LedgerService reporter
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(svc reporter) *ReportHandler {
	return &ReportHandler{LedgerService: svc}
}

// Register registers the report endpoint with the Huma API.
func (h *ReportHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "report",
		Method:      http.MethodGet,
		Path:        "/v1/report",
		Summary:     "Text report",
		Description: "Builds the shareable financial report over the optionally date-filtered log.",
		Tags:        []string{"Summary"},
	}, h.handle)
}

func (h *ReportHandler) handle(ctx context.Context, input *ReportInput) (*ReportOutput, error) {
	dateRange, err := parseDateRange(input.From, input.To)
	if err != nil {
		return nil, err
	}

	logData := logging.GetLogData(ctx)
	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("reportMs")
	}
	report, err := h.LedgerService.Report(ctx, dateRange)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to build report", err)
	}

	return &ReportOutput{Body: ReportResponseBody{
		Text:      report.Text(),
		ShareLink: report.ShareLink(),
	}}, nil
}
