package ledger

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Report is the shareable plain-text summary: global totals plus the
// per-category balances, optionally scoped to a date range.
type Report struct {
	GeneratedAt   time.Time
	Period        string // empty when no date filter was applied
	Totals        Totals
	SerraBalance  decimal.Decimal
	RepastBalance decimal.Decimal
	NovosBalance  decimal.Decimal
}

// BuildReport assembles a report from the full entry set, applying the
// date range to both the global totals and the category balances.
func BuildReport(entries []Entry, r DateRange, now time.Time) Report {
	filtered := FilterByDate(entries, r)
	rep := Report{
		GeneratedAt:   now,
		Totals:        Summarize(filtered, ""),
		SerraBalance:  Summarize(filtered, CategorySerra).Balance,
		RepastBalance: Summarize(filtered, CategoryRepast).Balance,
		NovosBalance:  Summarize(filtered, CategoryNovos).Balance,
	}
	if !r.IsZero() {
		rep.Period = fmt.Sprintf("Período: %s a %s", boundOrDots(r.Start), boundOrDots(r.End))
	}
	return rep
}

// Text renders the WhatsApp-style report template. The template is
// data; the pt-BR wording and markers come straight from the shop's
// existing report.
func (r Report) Text() string {
	var b strings.Builder
	b.WriteString("📊 *Resumo Financeiro - Geferson*\n")
	b.WriteString("📅 " + FormatDateBR(r.GeneratedAt))
	if r.Period != "" {
		b.WriteString("\n🗓 " + r.Period)
	}
	b.WriteString("\n\n*Geral*\n")
	b.WriteString("🔴 Compras: " + FormatBRL(r.Totals.Purchases) + "\n")
	b.WriteString("🟢 Pagos: " + FormatBRL(r.Totals.Payments) + "\n")
	b.WriteString("💰 *Saldo: " + FormatBRL(r.Totals.Balance) + "*\n")
	b.WriteString("\n*Detalhes (Saldos)*\n")
	b.WriteString("✂️ Serra: " + FormatBRL(r.SerraBalance) + "\n")
	b.WriteString("🔨 Repast: " + FormatBRL(r.RepastBalance) + "\n")
	b.WriteString("📦 Novos: " + FormatBRL(r.NovosBalance))
	return b.String()
}

// ShareLink is the "share via messaging" URL for the report text.
func (r Report) ShareLink() string {
	return "https://wa.me/?text=" + url.QueryEscape(r.Text())
}

// FormatDateBR renders a date as dd/mm/yyyy.
func FormatDateBR(t time.Time) string {
	return t.Format("02/01/2006")
}

func boundOrDots(t time.Time) string {
	if t.IsZero() {
		return "..."
	}
	return FormatDateBR(t)
}

// FormatBRL renders a decimal as Brazilian currency: dot-separated
// thousands, comma decimals, two fraction digits.
func FormatBRL(d decimal.Decimal) string {
	neg := d.IsNegative()
	intPart, fracPart, _ := strings.Cut(d.Abs().StringFixed(2), ".")

	var grouped strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(r)
	}

	out := "R$ " + grouped.String() + "," + fracPart
	if neg {
		out = "-" + out
	}
	return out
}
