package ledger

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatBRL(t *testing.T) {
	assert.Equal(t, "R$ 0,00", FormatBRL(dec("0")))
	assert.Equal(t, "R$ 12,50", FormatBRL(dec("12.5")))
	assert.Equal(t, "R$ 1.234,56", FormatBRL(dec("1234.56")))
	assert.Equal(t, "R$ 1.234.567,89", FormatBRL(dec("1234567.89")))
	assert.Equal(t, "-R$ 76,00", FormatBRL(dec("-76")))
}

func TestBuildReport_AppliesDateRange(t *testing.T) {
	inRange := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	outOfRange := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)
	entries := []Entry{
		{Category: CategorySerra, Type: TypeCompra, EntryDate: inRange, Total: dec("100")},
		{Category: CategorySerra, Type: TypeCompra, EntryDate: outOfRange, Total: dec("999")},
		{Category: CategoryPagamentos, Type: TypePagamento, EntryDate: inRange, Total: dec("30")},
	}
	r := DateRange{
		Start: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
	}

	rep := BuildReport(entries, r, time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC))
	assert.True(t, dec("100").Equal(rep.Totals.Purchases))
	assert.True(t, dec("30").Equal(rep.Totals.Payments))
	assert.True(t, dec("-100").Equal(rep.SerraBalance))
	assert.Equal(t, "Período: 01/03/2026 a 31/03/2026", rep.Period)
}

func TestBuildReport_OpenBoundShowsDots(t *testing.T) {
	rep := BuildReport(nil, DateRange{End: time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)}, time.Now())
	assert.Equal(t, "Período: ... a 31/03/2026", rep.Period)
}

func TestReportText_Template(t *testing.T) {
	rep := Report{
		GeneratedAt:   time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC),
		Totals:        Totals{Purchases: dec("100"), Payments: dec("100"), Balance: dec("0")},
		SerraBalance:  dec("-60"),
		RepastBalance: dec("15"),
		NovosBalance:  dec("45"),
	}

	text := rep.Text()
	assert.Contains(t, text, "*Resumo Financeiro - Geferson*")
	assert.Contains(t, text, "📅 01/04/2026")
	assert.Contains(t, text, "Compras: R$ 100,00")
	assert.Contains(t, text, "Pagos: R$ 100,00")
	assert.Contains(t, text, "*Saldo: R$ 0,00*")
	assert.Contains(t, text, "Serra: -R$ 60,00")
	assert.Contains(t, text, "Repast: R$ 15,00")
	assert.Contains(t, text, "Novos: R$ 45,00")
	assert.NotContains(t, text, "Período", "no period line without a date filter")
}

func TestReportText_PeriodLine(t *testing.T) {
	rep := Report{GeneratedAt: time.Now(), Period: "Período: 01/03/2026 a 31/03/2026"}
	assert.Contains(t, rep.Text(), "🗓 Período: 01/03/2026 a 31/03/2026")
}

func TestReportShareLink_Escaped(t *testing.T) {
	rep := Report{GeneratedAt: time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)}
	link := rep.ShareLink()
	assert.True(t, strings.HasPrefix(link, "https://wa.me/?text="))
	assert.NotContains(t, link, " ", "text must be URL encoded")
	assert.NotContains(t, link, "\n")
}
