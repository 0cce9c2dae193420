package entry

import (
	"time"

	"github.com/gestor-oficina/ledger-server/internal/ledger"
)

// Entry is the API response model for a ledger entry.
// It is used only for responses, not for request bodies.
type Entry struct {
	ID             string `json:"id" doc:"Entry UUID"`
	Category       string `json:"category" doc:"Business category"`
	Type           string `json:"type" doc:"Entry type, compra or pagamento"`
	Date           string `json:"date" doc:"Calendar date of the entry, YYYY-MM-DD"`
	Description    string `json:"description" doc:"Entry description"`
	Qty            string `json:"qty" doc:"Decimal quantity"`
	UnitPrice      string `json:"unitPrice" doc:"Decimal unit price"`
	Total          string `json:"total" doc:"Decimal total, fixed at creation"`
	ToothCount     int    `json:"toothCount,omitempty" doc:"Tooth count, repast purchases only"`
	CutWidth       string `json:"cutWidth,omitempty" doc:"Cut width, repast purchases only"`
	SerraItem      string `json:"serraItem,omitempty" doc:"Price table item, serra purchases only"`
	Length         string `json:"length,omitempty" doc:"Length in meters, serra purchases only"`
	SuggestedPrice string `json:"suggestedPrice,omitempty" doc:"Suggested sale price, novos purchases only"`
	CreatedAt      string `json:"createdAt" doc:"RFC3339 creation time"`
}

// FromLedger converts a domain entry to its API model.
func FromLedger(e ledger.Entry) Entry {
	out := Entry{
		ID:          e.ID.String(),
		Category:    string(e.Category),
		Type:        string(e.Type),
		Date:        e.EntryDate.Format("2006-01-02"),
		Description: e.Description,
		Qty:         e.Qty.String(),
		UnitPrice:   e.UnitPrice.String(),
		Total:       e.Total.String(),
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
	}

	switch details := e.Details.(type) {
	case ledger.RepastDetails:
		out.ToothCount = details.ToothCount
		out.CutWidth = details.CutWidth.String()
	case ledger.SerraDetails:
		out.SerraItem = details.Item
		out.Length = details.Length.String()
	case ledger.NovosDetails:
		out.SuggestedPrice = details.SuggestedPrice.String()
	}
	return out
}

// FromLedgerSlice converts a slice of domain entries.
func FromLedgerSlice(entries []ledger.Entry) []Entry {
	out := make([]Entry, len(entries))
	for i, e := range entries {
		out[i] = FromLedger(e)
	}
	return out
}
