package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/gestor-oficina/ledger-server/internal/ledger"
	"github.com/gestor-oficina/ledger-server/internal/logging"
	"github.com/gestor-oficina/ledger-server/internal/operator/actions"
	"github.com/gestor-oficina/ledger-server/internal/storage/sqlconfig"
)

// writeProcessor is the serialized write path (the operator).
type writeProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// LedgerService handles entry business logic: running the pricing
// derivation on create, computing totals once, and serving snapshot
// reads for the list/summary/report views.
type LedgerService struct {
	entries sqlconfig.IEntryTable
	writes  writeProcessor
	changes *Broadcaster
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(entries sqlconfig.IEntryTable, writes writeProcessor, changes *Broadcaster) *LedgerService {
	return &LedgerService{entries: entries, writes: writes, changes: changes}
}

// CreateEntry derives price fields from the draft, computes the total,
// and persists the entry. The stored total is final; reads never
// recompute it.
func (s *LedgerService) CreateEntry(ctx context.Context, category ledger.Category, entryDate time.Time, form ledger.Draft) (ledger.Entry, error) {
	derived := ledger.Derive(category, form)
	create := entryCreateFromDraft(category, entryDate, derived, time.Now().UTC())

	action := &actions.CreateEntry{Create: create}
	if err := s.writes.Process(ctx, action); err != nil {
		return ledger.Entry{}, err
	}

	s.publishSnapshot(ctx)
	return entryFromCreate(action.ID, create), nil
}

// DeleteEntry removes an entry by ID.
func (s *LedgerService) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	if err := s.writes.Process(ctx, &actions.DeleteEntry{ID: id}); err != nil {
		return err
	}

	s.publishSnapshot(ctx)
	return nil
}

// Snapshot returns the complete current entry set.
func (s *LedgerService) Snapshot(ctx context.Context) ([]ledger.Entry, error) {
	rows, err := s.entries.List(ctx, nil)
	if err != nil {
		return nil, err
	}
	return entriesFromRows(rows), nil
}

// ListEntries applies the listing rules: an active search query runs
// case-insensitively over the entire log and replaces every other
// filter; otherwise the set is narrowed by category and date range,
// sorted newest first, and the global view is truncated to the ten
// most recent entries.
func (s *LedgerService) ListEntries(ctx context.Context, opts ListOptions) ([]ledger.Entry, error) {
	all, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	if opts.Query != "" {
		return ledger.Search(all, opts.Query), nil
	}

	list := all
	if opts.Category != "" {
		list = ledger.FilterByCategory(list, opts.Category)
	}
	list = ledger.FilterByDate(list, opts.Range)

	limit := opts.Limit
	if limit == 0 && opts.Category == "" {
		limit = ledger.DefaultListSize
	}
	if limit > 0 {
		return ledger.Recent(list, limit), nil
	}
	return ledger.SortNewestFirst(list), nil
}

// Summary computes totals for the global view (empty category) or one
// category tab. The date range narrows the set before aggregation;
// the global view additionally gets the per-category purchase
// breakdown.
func (s *LedgerService) Summary(ctx context.Context, category ledger.Category, r ledger.DateRange) (Summary, error) {
	all, err := s.Snapshot(ctx)
	if err != nil {
		return Summary{}, err
	}

	filtered := ledger.FilterByDate(all, r)
	summary := Summary{Totals: ledger.Summarize(filtered, category)}
	if category == "" {
		summary.CategoryPurchases = map[ledger.Category]decimal.Decimal{
			ledger.CategorySerra:  ledger.PurchaseTotal(filtered, ledger.CategorySerra),
			ledger.CategoryRepast: ledger.PurchaseTotal(filtered, ledger.CategoryRepast),
			ledger.CategoryNovos:  ledger.PurchaseTotal(filtered, ledger.CategoryNovos),
		}
	}
	return summary, nil
}

// Report builds the shareable text summary over the optionally
// date-filtered log.
func (s *LedgerService) Report(ctx context.Context, r ledger.DateRange) (ledger.Report, error) {
	all, err := s.Snapshot(ctx)
	if err != nil {
		return ledger.Report{}, err
	}
	return ledger.BuildReport(all, r, time.Now()), nil
}

func (s *LedgerService) publishSnapshot(ctx context.Context) {
	if s.changes == nil {
		return
	}

	entries, err := s.Snapshot(ctx)
	if err != nil {
		// Subscribers keep their previous snapshot; the next write
		// will push a fresh one.
		if logData := logging.GetLogData(ctx); logData != nil {
			logData.AddData("snapshotError", err.Error())
		}
		return
	}
	s.changes.Publish(entries)
}
