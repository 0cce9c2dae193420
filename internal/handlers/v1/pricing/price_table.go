package pricing

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/gestor-oficina/ledger-server/internal/ledger"
)

// PriceTableItem is the API model for one serra price table row.
type PriceTableItem struct {
	Label         string `json:"label" doc:"Blade size label used as the lookup key"`
	ListPrice     string `json:"listPrice" doc:"List price per meter"`
	CostDeduction string `json:"costDeduction" doc:"Deduction applied to the list price"`
	CostPerMeter  string `json:"costPerMeter" doc:"Effective cost per meter"`
}

// PriceTableResponseBody is the response body for the price table.
type PriceTableResponseBody struct {
	Items []PriceTableItem `json:"items" doc:"Serra price table rows in catalog order"`
}

// PriceTableOutput is the Huma output for the price table.
type PriceTableOutput struct {
	Body PriceTableResponseBody
}

// PriceTableHandler handles GET /v1/price-table.
type PriceTableHandler struct{}

// NewPriceTableHandler creates a new PriceTableHandler.
func NewPriceTableHandler() *PriceTableHandler {
	return &PriceTableHandler{}
}

// Register registers the price table endpoint with the Huma API.
func (h *PriceTableHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "price-table",
		Method:      http.MethodGet,
		Path:        "/v1/price-table",
		Summary:     "Serra price table",
		Description: "Returns the serra blade price table the pricing engine resolves items against.",
		Tags:        []string{"Pricing"},
	}, h.handle)
}

func (h *PriceTableHandler) handle(ctx context.Context, _ *struct{}) (*PriceTableOutput, error) {
	table := ledger.SerraPriceTable()
	items := make([]PriceTableItem, len(table))
	for i, row := range table {
		items[i] = PriceTableItem{
			Label:         row.Label,
			ListPrice:     row.ListPrice.String(),
			CostDeduction: row.CostDeduction.String(),
			CostPerMeter:  row.CostPerMeter().String(),
		}
	}
	return &PriceTableOutput{Body: PriceTableResponseBody{Items: items}}, nil
}
