package pricing

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
)

func newQuoteTestAPI(t *testing.T) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewQuoteHandler().Register(api)
	return api
}

func postQuote(t *testing.T, body QuoteBody) QuoteResponseBody {
	t.Helper()
	resp := newQuoteTestAPI(t).Post("/v1/quote", body)
	assert.Equal(t, http.StatusOK, resp.Code)
	var out QuoteResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestHTTP_Quote_Repast(t *testing.T) {
	out := postQuote(t, QuoteBody{
		Category:   "repast",
		Type:       "compra",
		Qty:        "1",
		ToothCount: 50,
		CutWidth:   "4",
	})

	assert.Equal(t, "300", out.UnitPrice)
	assert.Equal(t, "300", out.Total)
}

func TestHTTP_Quote_Serra(t *testing.T) {
	out := postQuote(t, QuoteBody{
		Category:  "serra",
		Type:      "compra",
		Qty:       "1",
		SerraItem: `4" x 1.0`,
		Length:    "2",
	})

	assert.Equal(t, "76", out.UnitPrice)
	assert.Equal(t, `4" x 1.0 - 2m`, out.Description)
	assert.Equal(t, "76", out.Total)
}

func TestHTTP_Quote_Novos(t *testing.T) {
	out := postQuote(t, QuoteBody{
		Category:  "novos",
		Type:      "compra",
		Qty:       "2",
		UnitPrice: "25",
	})

	assert.Equal(t, "50", out.SuggestedPrice)
	assert.Equal(t, "50", out.Total)
}

func TestHTTP_Quote_NovosManualSuggestedPriceKept(t *testing.T) {
	out := postQuote(t, QuoteBody{
		Category:       "novos",
		Type:           "compra",
		Qty:            "1",
		SuggestedPrice: "30",
	})

	assert.Equal(t, "30", out.SuggestedPrice, "no cost set, hand-entered value survives")
	assert.Equal(t, "0", out.Total)
}

func TestHTTP_Quote_NovosCostOverridesManualSuggestedPrice(t *testing.T) {
	out := postQuote(t, QuoteBody{
		Category:       "novos",
		Type:           "compra",
		Qty:            "1",
		UnitPrice:      "25",
		SuggestedPrice: "30",
	})

	assert.Equal(t, "50", out.SuggestedPrice, "the 2x rule wins once a cost is set")
}

func TestHTTP_Quote_QtyDefaultsToOne(t *testing.T) {
	out := postQuote(t, QuoteBody{
		Category:  "serra",
		Type:      "compra",
		UnitPrice: "10",
		SerraItem: "not in the table",
	})

	assert.Equal(t, "10", out.Total, "omitted qty quotes as a single unit")
}

func TestHTTP_Quote_PaymentUsesOverride(t *testing.T) {
	out := postQuote(t, QuoteBody{
		Category: "pagamentos",
		Type:     "pagamento",
		Qty:      "3",
		Total:    "150",
	})

	assert.Equal(t, "150", out.Total)
	assert.Empty(t, out.SuggestedPrice)
}

func TestHTTP_Quote_UnknownSerraItemIsNoop(t *testing.T) {
	out := postQuote(t, QuoteBody{
		Category:  "serra",
		Type:      "compra",
		Qty:       "1",
		UnitPrice: "10",
		SerraItem: "not in the table",
		Length:    "2",
	})

	assert.Equal(t, "10", out.UnitPrice, "no match leaves the draft untouched")
	assert.Equal(t, "10", out.Total)
}

func TestHTTP_Quote_InvalidCategory(t *testing.T) {
	resp := newQuoteTestAPI(t).Post("/v1/quote", QuoteBody{
		Category: "unknown",
		Type:     "compra",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}
