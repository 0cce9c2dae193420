package pricing

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
)

func TestHTTP_PriceTable(t *testing.T) {
	_, api := humatest.New(t)
	NewPriceTableHandler().Register(api)

	resp := api.Get("/v1/price-table")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body PriceTableResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Items, 16)

	labels := make(map[string]PriceTableItem, len(body.Items))
	for _, item := range body.Items {
		labels[item.Label] = item
	}
	item, ok := labels[`4" x 1.0`]
	assert.True(t, ok)
	assert.Equal(t, "38", item.CostPerMeter)
}
