package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/gestor-oficina/ledger-server/internal/ledger"
	"github.com/gestor-oficina/ledger-server/internal/storage/sqlconfig"
)

// ListOptions narrows an entry listing. An active Query runs over the
// whole log and wins over every other option; otherwise category and
// date range apply and Limit (default 10 for the global view, all for
// a category tab) truncates.
type ListOptions struct {
	Category ledger.Category
	Query    string
	Range    ledger.DateRange
	Limit    int
}

// Summary is the totals triple plus, for the global view, the
// per-category purchase breakdown.
type Summary struct {
	Totals            ledger.Totals
	CategoryPurchases map[ledger.Category]decimal.Decimal
}

func entryCreateFromDraft(category ledger.Category, entryDate time.Time, d ledger.Draft, now time.Time) *sqlconfig.EntryCreate {
	create := &sqlconfig.EntryCreate{
		Category:    string(category),
		EntryType:   string(d.Type),
		EntryDate:   entryDate,
		Description: d.Description,
		Qty:         d.Qty,
		UnitPrice:   d.UnitPrice,
		Total:       d.Total(),
		CreatedAt:   now,
	}

	// Only the columns of the entry's own variant are persisted.
	if d.Type != ledger.TypeCompra {
		return create
	}
	switch category {
	case ledger.CategoryRepast:
		toothCount := d.ToothCount
		create.ToothCount = &toothCount
		create.CutWidth = decimal.NullDecimal{Decimal: d.CutWidth, Valid: true}
	case ledger.CategorySerra:
		item := d.SerraItem
		create.SerraItem = &item
		create.Length = decimal.NullDecimal{Decimal: d.Length, Valid: true}
	case ledger.CategoryNovos:
		create.SuggestedPrice = decimal.NullDecimal{Decimal: d.SuggestedPrice, Valid: true}
	}
	return create
}

func entryFromCreate(id uuid.UUID, c *sqlconfig.EntryCreate) ledger.Entry {
	return ledger.Entry{
		ID:          id,
		Category:    ledger.Category(c.Category),
		Type:        ledger.EntryType(c.EntryType),
		EntryDate:   c.EntryDate,
		Description: c.Description,
		Qty:         c.Qty,
		UnitPrice:   c.UnitPrice,
		Total:       c.Total,
		Details:     entryDetails(ledger.Category(c.Category), ledger.EntryType(c.EntryType), c.ToothCount, c.CutWidth, c.SerraItem, c.Length, c.SuggestedPrice),
		CreatedAt:   c.CreatedAt,
	}
}

func entryFromRow(row *sqlconfig.Entry) ledger.Entry {
	return ledger.Entry{
		ID:          row.ID,
		Category:    ledger.Category(row.Category),
		Type:        ledger.EntryType(row.EntryType),
		EntryDate:   row.EntryDate,
		Description: row.Description,
		Qty:         row.Qty,
		UnitPrice:   row.UnitPrice,
		Total:       row.Total,
		Details:     entryDetails(ledger.Category(row.Category), ledger.EntryType(row.EntryType), row.ToothCount, row.CutWidth, row.SerraItem, row.Length, row.SuggestedPrice),
		CreatedAt:   row.CreatedAt,
	}
}

func entriesFromRows(rows []*sqlconfig.Entry) []ledger.Entry {
	entries := make([]ledger.Entry, len(rows))
	for i, row := range rows {
		entries[i] = entryFromRow(row)
	}
	return entries
}

func entryDetails(
	category ledger.Category,
	entryType ledger.EntryType,
	toothCount *int,
	cutWidth decimal.NullDecimal,
	serraItem *string,
	length decimal.NullDecimal,
	suggestedPrice decimal.NullDecimal,
) ledger.EntryDetails {
	if entryType == ledger.TypePagamento {
		return ledger.PaymentDetails{}
	}

	switch category {
	case ledger.CategoryRepast:
		details := ledger.RepastDetails{}
		if toothCount != nil {
			details.ToothCount = *toothCount
		}
		if cutWidth.Valid {
			details.CutWidth = cutWidth.Decimal
		}
		return details
	case ledger.CategorySerra:
		details := ledger.SerraDetails{}
		if serraItem != nil {
			details.Item = *serraItem
		}
		if length.Valid {
			details.Length = length.Decimal
		}
		return details
	case ledger.CategoryNovos:
		details := ledger.NovosDetails{}
		if suggestedPrice.Valid {
			details.SuggestedPrice = suggestedPrice.Decimal
		}
		return details
	}
	return nil
}
