package entry

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/gestor-oficina/ledger-server/internal/ledger"
	"github.com/gestor-oficina/ledger-server/internal/logging"
)

// CreateEntryBody is the request body for creating an entry. Numeric
// fields are strings so partial or malformed form input coerces to
// zero instead of failing decode.
type CreateEntryBody struct {
	Category    string `json:"category" required:"true" enum:"serra,repast,novos,pagamentos" doc:"Business category"`
	Type        string `json:"type" required:"true" enum:"compra,pagamento" doc:"Entry type"`
	Date        string `json:"date" doc:"Calendar date YYYY-MM-DD, defaults to today"`
	Description string `json:"description" doc:"Entry description"`
	Qty         string `json:"qty" doc:"Decimal quantity"`
	UnitPrice   string `json:"unitPrice" doc:"Decimal unit price; derived for repast and serra purchases"`
	Total       string `json:"total" doc:"Decimal total, payments only"`
	ToothCount  int    `json:"toothCount" doc:"Tooth count, repast purchases"`
	CutWidth    string `json:"cutWidth" doc:"Cut width, repast purchases"`
	SerraItem      string `json:"serraItem" doc:"Price table item label, serra purchases"`
	Length         string `json:"length" doc:"Length in meters, serra purchases"`
	SuggestedPrice string `json:"suggestedPrice" doc:"Manual suggested sale price, novos purchases; overwritten by the 2x rule when a cost is set"`
}

// CreateEntryInput is the Huma input for creating an entry.
type CreateEntryInput struct {
	Body CreateEntryBody
}

// CreateEntryOutput is the Huma output for creating an entry.
type CreateEntryOutput struct {
	Body Entry
}

// entryCreator is the interface for creating entries.
type entryCreator interface {
	CreateEntry(ctx context.Context, category ledger.Category, entryDate time.Time, form ledger.Draft) (ledger.Entry, error)
}

// CreateEntryHandler handles POST /v1/entries.
type CreateEntryHandler struct {
	LedgerService entryCreator
}

// NewCreateEntryHandler creates a new CreateEntryHandler.
func NewCreateEntryHandler(svc entryCreator) *CreateEntryHandler {
	return &CreateEntryHandler{LedgerService: svc}
}

// Register registers the create entry endpoint with the Huma API.
func (h *CreateEntryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-entry",
		Method:        http.MethodPost,
		Path:          "/v1/entries",
		Summary:       "Create entry",
		Description:   "Creates a ledger entry, deriving price fields from the category's pricing rule.",
		Tags:          []string{"Entries"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

// parseCreateEntryInput parses and validates the API input. The date
// defaults to today; numeric strings coerce to zero.
func parseCreateEntryInput(input *CreateEntryInput) (ledger.Category, time.Time, ledger.Draft, error) {
	category := ledger.Category(input.Body.Category)
	if !category.Valid() {
		return "", time.Time{}, ledger.Draft{}, huma.NewError(http.StatusBadRequest, "invalid category")
	}
	entryType := ledger.EntryType(input.Body.Type)
	if !entryType.Valid() {
		return "", time.Time{}, ledger.Draft{}, huma.NewError(http.StatusBadRequest, "invalid type")
	}

	entryDate := time.Now().UTC().Truncate(24 * time.Hour)
	if input.Body.Date != "" {
		parsed, err := time.Parse("2006-01-02", input.Body.Date)
		if err != nil {
			return "", time.Time{}, ledger.Draft{}, huma.NewError(http.StatusBadRequest, "invalid date", err)
		}
		entryDate = parsed
	}

	// The form pre-fills qty with 1; an omitted qty keeps that
	// default, while malformed input still coerces to zero.
	qty := ledger.ParseAmount(input.Body.Qty)
	if input.Body.Qty == "" {
		qty = decimal.NewFromInt(1)
	}

	draft := ledger.Draft{
		Type:           entryType,
		Description:    input.Body.Description,
		Qty:            qty,
		UnitPrice:      ledger.ParseAmount(input.Body.UnitPrice),
		TotalOverride:  ledger.ParseAmount(input.Body.Total),
		ToothCount:     input.Body.ToothCount,
		CutWidth:       ledger.ParseAmount(input.Body.CutWidth),
		SerraItem:      input.Body.SerraItem,
		Length:         ledger.ParseAmount(input.Body.Length),
		SuggestedPrice: ledger.ParseAmount(input.Body.SuggestedPrice),
	}
	return category, entryDate, draft, nil
}

func (h *CreateEntryHandler) handle(ctx context.Context, input *CreateEntryInput) (*CreateEntryOutput, error) {
	logData := logging.GetLogData(ctx)
	category, entryDate, draft, err := parseCreateEntryInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createEntryMs")
	}
	created, err := h.LedgerService.CreateEntry(ctx, category, entryDate, draft)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create entry", err)
	}

	if logData != nil {
		logData.AddData("entryID", created.ID.String())
		logData.AddData("entryCategory", string(created.Category))
	}

	return &CreateEntryOutput{Body: FromLedger(created)}, nil
}
