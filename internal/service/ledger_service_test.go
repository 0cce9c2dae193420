package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/gestor-oficina/ledger-server/internal/ledger"
	"github.com/gestor-oficina/ledger-server/internal/operator/actions"
	"github.com/gestor-oficina/ledger-server/internal/storage/sqlconfig"
)

type mockEntryTable struct {
	mock.Mock
}

func (m *mockEntryTable) Insert(ctx context.Context, create *sqlconfig.EntryCreate) (uuid.UUID, error) {
	args := m.Called(ctx, create)
	if args.Get(0) == nil {
		return uuid.Nil, args.Error(1)
	}
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *mockEntryTable) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockEntryTable) List(ctx context.Context, filter *sqlconfig.EntryFilter) ([]*sqlconfig.Entry, error) {
	args := m.Called(ctx, filter)
	rows, _ := args.Get(0).([]*sqlconfig.Entry)
	return rows, args.Error(1)
}

type mockWriteProcessor struct {
	mock.Mock
}

func (m *mockWriteProcessor) Process(ctx context.Context, action actions.IAction) error {
	args := m.Called(ctx, action)
	return args.Error(0)
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func entryRow(category, entryType, total string, entryDate time.Time) *sqlconfig.Entry {
	return &sqlconfig.Entry{
		ID:        uuid.Must(uuid.NewV4()),
		Category:  category,
		EntryType: entryType,
		EntryDate: entryDate,
		Total:     d(total),
		CreatedAt: entryDate,
	}
}

// -- CreateEntry --

func TestCreateEntry_RepastDerivation(t *testing.T) {
	writes := new(mockWriteProcessor)
	svc := NewLedgerService(new(mockEntryTable), writes, nil)

	entryID := uuid.Must(uuid.NewV4())
	writes.On("Process", mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		create := a.(*actions.CreateEntry).Create
		return create.Category == "repast" &&
			create.UnitPrice.Equal(d("300")) &&
			create.Total.Equal(d("300")) &&
			create.ToothCount != nil && *create.ToothCount == 50 &&
			create.CutWidth.Valid && create.CutWidth.Decimal.Equal(d("4"))
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*actions.CreateEntry).ID = entryID
	}).Return(nil)

	entry, err := svc.CreateEntry(context.Background(), ledger.CategoryRepast,
		time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		ledger.Draft{Type: ledger.TypeCompra, Qty: d("1"), ToothCount: 50, CutWidth: d("4")})

	assert.NoError(t, err)
	assert.Equal(t, entryID, entry.ID)
	assert.True(t, entry.Total.Equal(d("300")))
	details, ok := entry.Details.(ledger.RepastDetails)
	assert.True(t, ok)
	assert.Equal(t, 50, details.ToothCount)
	writes.AssertExpectations(t)
}

func TestCreateEntry_SerraDerivation(t *testing.T) {
	writes := new(mockWriteProcessor)
	svc := NewLedgerService(new(mockEntryTable), writes, nil)

	writes.On("Process", mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		create := a.(*actions.CreateEntry).Create
		return create.UnitPrice.Equal(d("76")) &&
			create.Description == `4" x 1.0 - 2m` &&
			create.SerraItem != nil && *create.SerraItem == `4" x 1.0` &&
			create.Length.Valid && create.Length.Decimal.Equal(d("2"))
	})).Return(nil)

	entry, err := svc.CreateEntry(context.Background(), ledger.CategorySerra,
		time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		ledger.Draft{Type: ledger.TypeCompra, Qty: d("1"), SerraItem: `4" x 1.0`, Length: d("2")})

	assert.NoError(t, err)
	assert.True(t, entry.Total.Equal(d("76")))
	writes.AssertExpectations(t)
}

func TestCreateEntry_NovosDerivation(t *testing.T) {
	writes := new(mockWriteProcessor)
	svc := NewLedgerService(new(mockEntryTable), writes, nil)

	writes.On("Process", mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		create := a.(*actions.CreateEntry).Create
		return create.SuggestedPrice.Valid && create.SuggestedPrice.Decimal.Equal(d("50"))
	})).Return(nil)

	entry, err := svc.CreateEntry(context.Background(), ledger.CategoryNovos,
		time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		ledger.Draft{Type: ledger.TypeCompra, Qty: d("2"), UnitPrice: d("25")})

	assert.NoError(t, err)
	assert.True(t, entry.Total.Equal(d("50")), "qty 2 * cost 25")
	details, ok := entry.Details.(ledger.NovosDetails)
	assert.True(t, ok)
	assert.True(t, details.SuggestedPrice.Equal(d("50")))
	writes.AssertExpectations(t)
}

func TestCreateEntry_NovosManualSuggestedPricePersisted(t *testing.T) {
	writes := new(mockWriteProcessor)
	svc := NewLedgerService(new(mockEntryTable), writes, nil)

	writes.On("Process", mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		create := a.(*actions.CreateEntry).Create
		// No cost set, so the hand-entered suggested price survives
		// derivation and reaches storage.
		return create.SuggestedPrice.Valid && create.SuggestedPrice.Decimal.Equal(d("30"))
	})).Return(nil)

	entry, err := svc.CreateEntry(context.Background(), ledger.CategoryNovos,
		time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		ledger.Draft{Type: ledger.TypeCompra, Qty: d("1"), SuggestedPrice: d("30")})

	assert.NoError(t, err)
	details, ok := entry.Details.(ledger.NovosDetails)
	assert.True(t, ok)
	assert.True(t, details.SuggestedPrice.Equal(d("30")))
	writes.AssertExpectations(t)
}

func TestCreateEntry_PagamentoUsesOverride(t *testing.T) {
	writes := new(mockWriteProcessor)
	svc := NewLedgerService(new(mockEntryTable), writes, nil)

	writes.On("Process", mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		create := a.(*actions.CreateEntry).Create
		// Payments take the override directly and persist no
		// category-specific columns.
		return create.Total.Equal(d("150")) &&
			create.ToothCount == nil && create.SerraItem == nil &&
			!create.SuggestedPrice.Valid
	})).Return(nil)

	entry, err := svc.CreateEntry(context.Background(), ledger.CategoryPagamentos,
		time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		ledger.Draft{Type: ledger.TypePagamento, Qty: d("3"), UnitPrice: d("99"), TotalOverride: d("150")})

	assert.NoError(t, err)
	assert.Equal(t, ledger.PaymentDetails{}, entry.Details)
	writes.AssertExpectations(t)
}

func TestCreateEntry_WriteError(t *testing.T) {
	writes := new(mockWriteProcessor)
	svc := NewLedgerService(new(mockEntryTable), writes, nil)

	writes.On("Process", mock.Anything, mock.Anything).Return(errors.New("insert failed"))

	_, err := svc.CreateEntry(context.Background(), ledger.CategorySerra,
		time.Now(), ledger.Draft{Type: ledger.TypeCompra})
	assert.Error(t, err)
	assert.Equal(t, "insert failed", err.Error())
}

func TestCreateEntry_PublishesSnapshot(t *testing.T) {
	table := new(mockEntryTable)
	writes := new(mockWriteProcessor)
	changes := NewBroadcaster()
	svc := NewLedgerService(table, writes, changes)

	ch, cancel := changes.Subscribe()
	defer cancel()

	writes.On("Process", mock.Anything, mock.Anything).Return(nil)
	table.On("List", mock.Anything, (*sqlconfig.EntryFilter)(nil)).
		Return([]*sqlconfig.Entry{entryRow("serra", "compra", "76", time.Now())}, nil)

	_, err := svc.CreateEntry(context.Background(), ledger.CategorySerra,
		time.Now(), ledger.Draft{Type: ledger.TypeCompra, Qty: d("1"), UnitPrice: d("76")})
	assert.NoError(t, err)

	select {
	case snapshot := <-ch:
		assert.Len(t, snapshot, 1)
	default:
		t.Fatal("no snapshot published after create")
	}
}

// -- DeleteEntry --

func TestDeleteEntry_Success(t *testing.T) {
	table := new(mockEntryTable)
	writes := new(mockWriteProcessor)
	svc := NewLedgerService(table, writes, nil)

	id := uuid.Must(uuid.NewV4())
	writes.On("Process", mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		del, ok := a.(*actions.DeleteEntry)
		return ok && del.ID == id
	})).Return(nil)

	assert.NoError(t, svc.DeleteEntry(context.Background(), id))
	writes.AssertExpectations(t)
}

func TestDeleteEntry_WriteError(t *testing.T) {
	writes := new(mockWriteProcessor)
	svc := NewLedgerService(new(mockEntryTable), writes, nil)

	writes.On("Process", mock.Anything, mock.Anything).Return(errors.New("delete failed"))
	assert.Error(t, svc.DeleteEntry(context.Background(), uuid.Must(uuid.NewV4())))
}

// -- ListEntries --

func TestListEntries_GlobalDefaultTruncatesToTen(t *testing.T) {
	table := new(mockEntryTable)
	svc := NewLedgerService(table, nil, nil)

	base := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	rows := make([]*sqlconfig.Entry, 12)
	for i := range rows {
		rows[i] = entryRow("serra", "compra", "10", base.AddDate(0, 0, i))
	}
	table.On("List", mock.Anything, (*sqlconfig.EntryFilter)(nil)).Return(rows, nil)

	entries, err := svc.ListEntries(context.Background(), ListOptions{})
	assert.NoError(t, err)
	assert.Len(t, entries, ledger.DefaultListSize)
	assert.Equal(t, base.AddDate(0, 0, 11), entries[0].EntryDate, "newest first")
}

func TestListEntries_CategoryTabShowsAll(t *testing.T) {
	table := new(mockEntryTable)
	svc := NewLedgerService(table, nil, nil)

	base := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	rows := make([]*sqlconfig.Entry, 12)
	for i := range rows {
		rows[i] = entryRow("repast", "compra", "10", base.AddDate(0, 0, i))
	}
	rows = append(rows, entryRow("serra", "compra", "10", base))
	table.On("List", mock.Anything, (*sqlconfig.EntryFilter)(nil)).Return(rows, nil)

	entries, err := svc.ListEntries(context.Background(), ListOptions{Category: ledger.CategoryRepast})
	assert.NoError(t, err)
	assert.Len(t, entries, 12, "category tabs are not truncated")
}

func TestListEntries_SearchIgnoresCategoryAndRange(t *testing.T) {
	table := new(mockEntryTable)
	svc := NewLedgerService(table, nil, nil)

	day := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	serra := entryRow("serra", "compra", "10", day)
	serra.Description = "Lamina 4mm"
	repast := entryRow("repast", "compra", "10", day.AddDate(0, -2, 0))
	repast.Description = "lamina reparo"
	table.On("List", mock.Anything, (*sqlconfig.EntryFilter)(nil)).
		Return([]*sqlconfig.Entry{serra, repast}, nil)

	entries, err := svc.ListEntries(context.Background(), ListOptions{
		Category: ledger.CategorySerra,
		Query:    "LAMINA",
		Range:    ledger.DateRange{Start: day},
	})
	assert.NoError(t, err)
	assert.Len(t, entries, 2, "search spans the whole log")
}

func TestListEntries_DateRange(t *testing.T) {
	table := new(mockEntryTable)
	svc := NewLedgerService(table, nil, nil)

	in := entryRow("serra", "compra", "10", time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC))
	out := entryRow("serra", "compra", "10", time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC))
	table.On("List", mock.Anything, (*sqlconfig.EntryFilter)(nil)).
		Return([]*sqlconfig.Entry{in, out}, nil)

	entries, err := svc.ListEntries(context.Background(), ListOptions{
		Category: ledger.CategorySerra,
		Range: ledger.DateRange{
			Start: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		},
	})
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, in.ID, entries[0].ID)
}

func TestListEntries_StorageError(t *testing.T) {
	table := new(mockEntryTable)
	svc := NewLedgerService(table, nil, nil)

	table.On("List", mock.Anything, mock.Anything).Return(nil, errors.New("database unavailable"))

	_, err := svc.ListEntries(context.Background(), ListOptions{})
	assert.Error(t, err)
}

// -- Summary --

func TestSummary_GlobalWithBreakdown(t *testing.T) {
	table := new(mockEntryTable)
	svc := NewLedgerService(table, nil, nil)

	day := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	table.On("List", mock.Anything, (*sqlconfig.EntryFilter)(nil)).Return([]*sqlconfig.Entry{
		entryRow("serra", "compra", "100", day),
		entryRow("serra", "pagamento", "40", day),
		entryRow("pagamentos", "pagamento", "60", day),
	}, nil)

	summary, err := svc.Summary(context.Background(), "", ledger.DateRange{})
	assert.NoError(t, err)
	assert.True(t, summary.Totals.Purchases.Equal(d("100")))
	assert.True(t, summary.Totals.Payments.Equal(d("100")))
	assert.True(t, summary.Totals.Balance.IsZero())
	assert.True(t, summary.CategoryPurchases[ledger.CategorySerra].Equal(d("100")))
	assert.True(t, summary.CategoryPurchases[ledger.CategoryRepast].IsZero())
}

func TestSummary_CategoryViewHasNoBreakdown(t *testing.T) {
	table := new(mockEntryTable)
	svc := NewLedgerService(table, nil, nil)

	day := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	table.On("List", mock.Anything, (*sqlconfig.EntryFilter)(nil)).Return([]*sqlconfig.Entry{
		entryRow("serra", "compra", "100", day),
	}, nil)

	summary, err := svc.Summary(context.Background(), ledger.CategorySerra, ledger.DateRange{})
	assert.NoError(t, err)
	assert.True(t, summary.Totals.Balance.Equal(d("-100")))
	assert.Nil(t, summary.CategoryPurchases)
}

func TestSummary_DateRangeNarrowsGlobalView(t *testing.T) {
	table := new(mockEntryTable)
	svc := NewLedgerService(table, nil, nil)

	table.On("List", mock.Anything, (*sqlconfig.EntryFilter)(nil)).Return([]*sqlconfig.Entry{
		entryRow("serra", "compra", "100", time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)),
		entryRow("serra", "compra", "900", time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)),
	}, nil)

	summary, err := svc.Summary(context.Background(), "", ledger.DateRange{
		Start: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
	})
	assert.NoError(t, err)
	assert.True(t, summary.Totals.Purchases.Equal(d("100")))
}

// -- Row conversion --

func TestEntryFromRow_DetailsVariants(t *testing.T) {
	day := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	tooth := 50
	repast := entryRow("repast", "compra", "300", day)
	repast.ToothCount = &tooth
	repast.CutWidth = decimal.NullDecimal{Decimal: d("4"), Valid: true}
	got := entryFromRow(repast)
	assert.Equal(t, ledger.RepastDetails{ToothCount: 50, CutWidth: d("4")}, got.Details)

	item := `4" x 1.0`
	serra := entryRow("serra", "compra", "76", day)
	serra.SerraItem = &item
	serra.Length = decimal.NullDecimal{Decimal: d("2"), Valid: true}
	got = entryFromRow(serra)
	assert.Equal(t, ledger.SerraDetails{Item: item, Length: d("2")}, got.Details)

	payment := entryRow("serra", "pagamento", "40", day)
	got = entryFromRow(payment)
	assert.Equal(t, ledger.PaymentDetails{}, got.Details)
}

func TestEntryFromRow_TotalIsNotRecomputed(t *testing.T) {
	row := entryRow("serra", "compra", "123.45", time.Now())
	row.Qty = d("100")
	row.UnitPrice = d("100")

	got := entryFromRow(row)
	assert.True(t, got.Total.Equal(d("123.45")),
		fmt.Sprintf("stored total must survive as-is, got %s", got.Total))
}
