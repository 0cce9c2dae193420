package ledger

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Tooth counts above this threshold price at the destop ("destopadeira")
// per-tooth rates; at or below it the standard rates apply.
const DestopToothThreshold = 48

// repastRates maps a cut width to its per-tooth price in each band.
var repastRates = []struct {
	cutWidth decimal.Decimal
	destop   decimal.Decimal // tooth count > DestopToothThreshold
	standard decimal.Decimal // tooth count <= DestopToothThreshold
}{
	{cutWidth: dec("3"), destop: dec("4.00"), standard: dec("4.80")},
	{cutWidth: dec("3.5"), destop: dec("5.00"), standard: dec("5.40")},
	{cutWidth: dec("4"), destop: dec("6.00"), standard: dec("5.80")},
	{cutWidth: dec("5"), destop: dec("10.00"), standard: dec("12.00")},
}

// RepastPricePerTooth returns the per-tooth rate for the given tooth
// count band and cut width, or zero when the cut width is not in the
// table.
func RepastPricePerTooth(toothCount int, cutWidth decimal.Decimal) decimal.Decimal {
	for _, r := range repastRates {
		if cutWidth.Equal(r.cutWidth) {
			if toothCount > DestopToothThreshold {
				return r.destop
			}
			return r.standard
		}
	}
	return decimal.Zero
}

// RepastUnitPrice derives the re-tipping unit price: per-tooth rate
// times tooth count. Zero when either input yields no match.
func RepastUnitPrice(toothCount int, cutWidth decimal.Decimal) decimal.Decimal {
	if toothCount <= 0 {
		return decimal.Zero
	}
	perTooth := RepastPricePerTooth(toothCount, cutWidth)
	if !perTooth.IsPositive() {
		return decimal.Zero
	}
	return perTooth.Mul(decimal.NewFromInt(int64(toothCount)))
}

// Draft is the raw entry form state the pricing engine derives from.
// Derivation is a pure function of the draft; callers re-run it after
// every field change and adopt the returned draft.
type Draft struct {
	Type           EntryType
	Description    string
	Qty            decimal.Decimal
	UnitPrice      decimal.Decimal
	TotalOverride  decimal.Decimal
	ToothCount     int
	CutWidth       decimal.Decimal
	SerraItem      string
	Length         decimal.Decimal
	SuggestedPrice decimal.Decimal
}

// Derive applies the category's pricing rule to the draft and returns
// the derived draft. Rules only fire for compra entries; a lookup with
// no match is a silent no-op, never an error. Derivation is
// idempotent: deriving an already-derived draft changes nothing.
func Derive(category Category, d Draft) Draft {
	if d.Type != TypeCompra {
		return d
	}

	switch category {
	case CategoryRepast:
		price := RepastUnitPrice(d.ToothCount, d.CutWidth)
		// Only write back a positive result that actually differs,
		// mirroring the guard the form needs to avoid recompute loops.
		if price.IsPositive() && !price.Equal(d.UnitPrice) {
			d.UnitPrice = price
		}
	case CategorySerra:
		item, ok := LookupSerraItem(d.SerraItem)
		if ok && d.Length.IsPositive() {
			d.UnitPrice = item.CostPerMeter().Mul(d.Length)
			d.Description = fmt.Sprintf("%s - %sm", item.Label, d.Length)
		}
	case CategoryNovos:
		if d.UnitPrice.IsPositive() {
			d.SuggestedPrice = d.UnitPrice.Mul(decimal.NewFromInt(2))
		}
	}
	return d
}

// Total computes the entry total: the override for payments,
// qty * unitPrice for purchases.
func (d Draft) Total() decimal.Decimal {
	if d.Type == TypePagamento {
		return d.TotalOverride
	}
	return d.Qty.Mul(d.UnitPrice)
}

// ParseAmount coerces a numeric form field to a decimal. Empty or
// unparseable input becomes zero so the form stays usable with
// partial input.
func ParseAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
