package ledger

import "github.com/shopspring/decimal"

// Summarize computes purchases, payments, and balance over an entry
// set. An empty category means the global (resumo) view.
//
// Payments are counted two different ways on purpose, a legacy policy
// preserved exactly:
//   - a category view only counts payments tagged to that category;
//   - the global view counts every entry that is a payment by type OR
//     filed under the pagamentos category, summed over the full source
//     set rather than any category subset, so that each payment lands
//     in the global balance exactly once no matter which tab it was
//     entered under;
//   - the pagamentos category view reports its sum as both payments
//     and balance, with zero purchases.
func Summarize(entries []Entry, category Category) Totals {
	list := entries
	if category != "" {
		list = FilterByCategory(entries, category)
	}

	if category == CategoryPagamentos {
		payments := sumTotals(list, func(Entry) bool { return true })
		return Totals{Purchases: decimal.Zero, Payments: payments, Balance: payments}
	}

	purchases := sumTotals(list, func(e Entry) bool { return e.Type == TypeCompra })
	payments := sumTotals(list, func(e Entry) bool { return e.Type == TypePagamento })

	if category == "" {
		payments = sumTotals(entries, func(e Entry) bool {
			return e.Type == TypePagamento || e.Category == CategoryPagamentos
		})
	}

	return Totals{
		Purchases: purchases,
		Payments:  payments,
		Balance:   payments.Sub(purchases),
	}
}

// PurchaseTotal sums compra totals for one category, the figure the
// category breakdown is built from.
func PurchaseTotal(entries []Entry, category Category) decimal.Decimal {
	return sumTotals(entries, func(e Entry) bool {
		return e.Category == category && e.Type == TypeCompra
	})
}

func sumTotals(entries []Entry, match func(Entry) bool) decimal.Decimal {
	sum := decimal.Zero
	for _, e := range entries {
		if match(e) {
			sum = sum.Add(e.Total)
		}
	}
	return sum
}
