package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Entry represents a ledger entry row. The category-specific fields
// are nullable columns on the one table; the service layer turns them
// into the per-category detail variants.
type Entry struct {
	ID             uuid.UUID           `db:"id"`
	Category       string              `db:"category"`
	EntryType      string              `db:"entry_type"`
	EntryDate      time.Time           `db:"entry_date"`
	Description    string              `db:"description"`
	Qty            decimal.Decimal     `db:"qty"`
	UnitPrice      decimal.Decimal     `db:"unit_price"`
	Total          decimal.Decimal     `db:"total"`
	ToothCount     *int                `db:"tooth_count"`
	CutWidth       decimal.NullDecimal `db:"cut_width"`
	SerraItem      *string             `db:"serra_item"`
	Length         decimal.NullDecimal `db:"length_m"`
	SuggestedPrice decimal.NullDecimal `db:"suggested_price"`
	CreatedAt      time.Time           `db:"created_at"`
}

// EntryCreate is the input for inserting a new entry. Total is already
// computed by the pricing engine; storage never derives it.
type EntryCreate struct {
	Category       string
	EntryType      string
	EntryDate      time.Time
	Description    string
	Qty            decimal.Decimal
	UnitPrice      decimal.Decimal
	Total          decimal.Decimal
	ToothCount     *int
	CutWidth       decimal.NullDecimal
	SerraItem      *string
	Length         decimal.NullDecimal
	SuggestedPrice decimal.NullDecimal
	CreatedAt      time.Time
}

// EntryFilter narrows a listing. Nil filter returns the whole log.
type EntryFilter struct {
	Category *string
}

// IEntryTable defines the interface for entry storage operations.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
type IEntryTable interface {
	Insert(ctx context.Context, create *EntryCreate) (uuid.UUID, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter *EntryFilter) ([]*Entry, error)
}
