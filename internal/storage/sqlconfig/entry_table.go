package sqlconfig

import (
	"context"
	"database/sql"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var _ IEntryTable = (*EntriesTable)(nil)

var entryColumns = []string{
	"id", "category", "entry_type", "entry_date", "description",
	"qty", "unit_price", "total",
	"tooth_count", "cut_width", "serra_item", "length_m", "suggested_price",
	"created_at",
}

// EntriesTable provides access to the entries table.
type EntriesTable struct {
	exec bob.Executor
}

// NewEntriesTable creates an EntriesTable for the given database.
func NewEntriesTable(db *sql.DB) EntriesTable {
	return EntriesTable{exec: bob.NewDB(db)}
}

// NewEntriesTableExec creates an EntriesTable bound to an executor,
// typically a transaction.
func NewEntriesTableExec(exec bob.Executor) EntriesTable {
	return EntriesTable{exec: exec}
}

// Insert creates a new entry and returns its generated ID.
func (t EntriesTable) Insert(ctx context.Context, create *EntryCreate) (uuid.UUID, error) {
	q := psql.Insert(
		im.Into("entries",
			"category", "entry_type", "entry_date", "description",
			"qty", "unit_price", "total",
			"tooth_count", "cut_width", "serra_item", "length_m", "suggested_price",
			"created_at",
		),
		im.Values(psql.Arg(
			create.Category, create.EntryType, create.EntryDate, create.Description,
			create.Qty, create.UnitPrice, create.Total,
			create.ToothCount, create.CutWidth, create.SerraItem, create.Length, create.SuggestedPrice,
			create.CreatedAt,
		)),
		im.Returning("id"),
	)

	id, err := bob.One(ctx, t.exec, q, scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// Delete removes an entry by primary key. Deleting an absent ID is
// not an error.
func (t EntriesTable) Delete(ctx context.Context, id uuid.UUID) error {
	q := psql.Delete(
		dm.From("entries"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}

// List returns entries matching the filter, newest first. Nil filter
// returns the full log.
func (t EntriesTable) List(ctx context.Context, filter *EntryFilter) ([]*Entry, error) {
	q := psql.Select(
		sm.Columns(toAnySlice(entryColumns)...),
		sm.From("entries"),
		sm.OrderBy("entry_date").Desc(),
		sm.OrderBy("created_at").Desc(),
		sm.OrderBy("id").Desc(),
	)
	if filter != nil && filter.Category != nil {
		q.Apply(sm.Where(psql.Quote("category").EQ(psql.Arg(*filter.Category))))
	}

	rows, err := bob.All(ctx, t.exec, q, scan.StructMapper[*Entry]())
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func toAnySlice(columns []string) []any {
	out := make([]any, len(columns))
	for i, c := range columns {
		out[i] = c
	}
	return out
}
