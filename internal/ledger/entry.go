// Package ledger holds the core domain logic of the shop ledger:
// the entry model, the pricing derivation rules, totals aggregation,
// and the filter/search rules over the transaction log. Everything in
// this package is pure and safe to re-run against a fresh snapshot.
package ledger

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Category is one of the four business categories an entry is filed
// under. The summary view ("resumo") is not a category; it is the
// absence of a category filter.
type Category string

const (
	CategorySerra      Category = "serra"
	CategoryRepast     Category = "repast"
	CategoryNovos      Category = "novos"
	CategoryPagamentos Category = "pagamentos"
)

// Categories lists every persistable category.
func Categories() []Category {
	return []Category{CategorySerra, CategoryRepast, CategoryNovos, CategoryPagamentos}
}

// Valid reports whether c is a persistable category.
func (c Category) Valid() bool {
	switch c {
	case CategorySerra, CategoryRepast, CategoryNovos, CategoryPagamentos:
		return true
	}
	return false
}

// EntryType determines how an entry's total is derived: compra totals
// are qty * unitPrice, pagamento totals come straight from the
// user-entered override.
type EntryType string

const (
	TypeCompra    EntryType = "compra"
	TypePagamento EntryType = "pagamento"
)

// Valid reports whether t is a known entry type.
func (t EntryType) Valid() bool {
	return t == TypeCompra || t == TypePagamento
}

// EntryDetails is the category-specific part of an entry. Exactly one
// variant applies, selected by category and type at creation time.
type EntryDetails interface {
	entryDetails()
}

// RepastDetails carries the re-tipping inputs the per-tooth pricing
// rule works from.
type RepastDetails struct {
	ToothCount int
	CutWidth   decimal.Decimal
}

// SerraDetails carries the blade table key and length used by the
// serra price-table lookup.
type SerraDetails struct {
	Item   string
	Length decimal.Decimal
}

// NovosDetails carries the suggested sale price derived from cost.
type NovosDetails struct {
	SuggestedPrice decimal.Decimal
}

// PaymentDetails marks a payment entry. The amount lives in the
// entry's Total; payments carry no extra fields.
type PaymentDetails struct{}

func (RepastDetails) entryDetails()  {}
func (SerraDetails) entryDetails()   {}
func (NovosDetails) entryDetails()   {}
func (PaymentDetails) entryDetails() {}

// Entry is one persisted ledger record. Entries are append-only:
// created by user action, deleted by user action, never mutated.
// Total is computed once at creation and stored, not recomputed on
// read.
type Entry struct {
	ID          uuid.UUID
	Category    Category
	Type        EntryType
	EntryDate   time.Time // calendar date, no meaningful time component
	Description string
	Qty         decimal.Decimal
	UnitPrice   decimal.Decimal
	Total       decimal.Decimal
	Details     EntryDetails
	CreatedAt   time.Time // tie-break sort key after EntryDate
}

// Totals is the derived purchases/payments/balance triple. It is never
// persisted; it is recomputed on demand from an entry set.
type Totals struct {
	Purchases decimal.Decimal
	Payments  decimal.Decimal
	Balance   decimal.Decimal
}
