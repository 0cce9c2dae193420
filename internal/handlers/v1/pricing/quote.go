// Package pricing exposes the pricing engine over the API: live
// quotes for the entry form and the serra price table.
package pricing

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/gestor-oficina/ledger-server/internal/ledger"
)

// QuoteBody is the request body for a pricing quote. It mirrors the
// entry form: numeric fields are strings and coerce to zero.
type QuoteBody struct {
	Category    string `json:"category" required:"true" enum:"serra,repast,novos,pagamentos" doc:"Business category"`
	Type        string `json:"type" required:"true" enum:"compra,pagamento" doc:"Entry type"`
	Description string `json:"description" doc:"Entry description"`
	Qty         string `json:"qty" doc:"Decimal quantity"`
	UnitPrice   string `json:"unitPrice" doc:"Decimal unit price"`
	Total       string `json:"total" doc:"Decimal total override, payments only"`
	ToothCount  int    `json:"toothCount" doc:"Tooth count, repast purchases"`
	CutWidth    string `json:"cutWidth" doc:"Cut width, repast purchases"`
	SerraItem      string `json:"serraItem" doc:"Price table item label, serra purchases"`
	Length         string `json:"length" doc:"Length in meters, serra purchases"`
	SuggestedPrice string `json:"suggestedPrice" doc:"Manual suggested sale price, novos purchases; overwritten by the 2x rule when a cost is set"`
}

// QuoteInput is the Huma input for a pricing quote.
type QuoteInput struct {
	Body QuoteBody
}

// QuoteResponseBody is the derived form state plus the resulting
// total.
type QuoteResponseBody struct {
	Description    string `json:"description" doc:"Derived description, serra purchases"`
	UnitPrice      string `json:"unitPrice" doc:"Derived unit price"`
	SuggestedPrice string `json:"suggestedPrice,omitempty" doc:"Derived suggested sale price, novos purchases"`
	Total          string `json:"total" doc:"Entry total implied by the derived draft"`
}

// QuoteOutput is the Huma output for a pricing quote.
type QuoteOutput struct {
	Body QuoteResponseBody
}

// QuoteHandler handles POST /v1/quote.
type QuoteHandler struct{}

// NewQuoteHandler creates a new QuoteHandler.
func NewQuoteHandler() *QuoteHandler {
	return &QuoteHandler{}
}

// Register registers the quote endpoint with the Huma API.
func (h *QuoteHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "quote",
		Method:      http.MethodPost,
		Path:        "/v1/quote",
		Summary:     "Quote entry pricing",
		Description: "Runs the category's pricing derivation over draft form state without persisting anything.",
		Tags:        []string{"Pricing"},
	}, h.handle)
}

func (h *QuoteHandler) handle(ctx context.Context, input *QuoteInput) (*QuoteOutput, error) {
	category := ledger.Category(input.Body.Category)
	if !category.Valid() {
		return nil, huma.NewError(http.StatusBadRequest, "invalid category")
	}
	entryType := ledger.EntryType(input.Body.Type)
	if !entryType.Valid() {
		return nil, huma.NewError(http.StatusBadRequest, "invalid type")
	}

	// Same qty default as the entry form.
	qty := ledger.ParseAmount(input.Body.Qty)
	if input.Body.Qty == "" {
		qty = decimal.NewFromInt(1)
	}

	derived := ledger.Derive(category, ledger.Draft{
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
	})

	resp := QuoteResponseBody{
		Description: derived.Description,
		UnitPrice:   derived.UnitPrice.String(),
		Total:       derived.Total().String(),
	}
	if derived.SuggestedPrice.IsPositive() {
		resp.SuggestedPrice = derived.SuggestedPrice.String()
	}
	return &QuoteOutput{Body: resp}, nil
}
