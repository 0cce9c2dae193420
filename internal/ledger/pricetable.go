package ledger

import "github.com/shopspring/decimal"

// PriceTableEntry is one row of the static serra price table: a blade
// size label, its list price per meter, and the deduction that turns
// the list price into shop cost.
type PriceTableEntry struct {
	Label         string
	ListPrice     decimal.Decimal
	CostDeduction decimal.Decimal
}

// CostPerMeter is the list price minus the cost deduction.
func (e PriceTableEntry) CostPerMeter() decimal.Decimal {
	return e.ListPrice.Sub(e.CostDeduction)
}

var serraPriceTable = []PriceTableEntry{
	{Label: `3" x 1.0`, ListPrice: dec("44.00"), CostDeduction: dec("14.00")},
	{Label: `3" x 1.1`, ListPrice: dec("50.00"), CostDeduction: dec("14.00")},
	{Label: `3.5" x 1.1`, ListPrice: dec("52.00"), CostDeduction: dec("14.00")},
	{Label: `4" x 1.0`, ListPrice: dec("52.00"), CostDeduction: dec("14.00")},
	{Label: `4" x 1.1`, ListPrice: dec("55.00"), CostDeduction: dec("14.00")},
	{Label: `4" x 1.2`, ListPrice: dec("60.00"), CostDeduction: dec("14.00")},
	{Label: `4.5" x 1.0`, ListPrice: dec("59.00"), CostDeduction: dec("14.00")},
	{Label: `4.5" x 1.1`, ListPrice: dec("63.00"), CostDeduction: dec("14.00")},
	{Label: `4.5" x 1.2`, ListPrice: dec("68.00"), CostDeduction: dec("14.00")},
	{Label: `5" x 1.1`, ListPrice: dec("73.00"), CostDeduction: dec("14.00")},
	{Label: `5" x 1.2`, ListPrice: dec("77.00"), CostDeduction: dec("20.00")},
	{Label: `5.5" x 1.2`, ListPrice: dec("82.00"), CostDeduction: dec("20.00")},
	{Label: `5.5" x 1.3`, ListPrice: dec("85.00"), CostDeduction: dec("20.00")},
	{Label: `6" x 1.2`, ListPrice: dec("85.00"), CostDeduction: dec("20.00")},
	{Label: `6" x 1.25`, ListPrice: dec("88.00"), CostDeduction: dec("20.00")},
	{Label: `6" x 1.3`, ListPrice: dec("90.00"), CostDeduction: dec("20.00")},
}

// SerraPriceTable returns a copy of the static serra price table.
func SerraPriceTable() []PriceTableEntry {
	table := make([]PriceTableEntry, len(serraPriceTable))
	copy(table, serraPriceTable)
	return table
}

// LookupSerraItem finds a price table row by exact label match.
func LookupSerraItem(label string) (PriceTableEntry, bool) {
	for _, e := range serraPriceTable {
		if e.Label == label {
			return e, true
		}
	}
	return PriceTableEntry{}, false
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
