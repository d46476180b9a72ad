package material

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"

	"github.com/jagannath-p-s/malabareco-sub001/internal/storage/sqlconfig"
)

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

// List returns all materials ordered by name.
func (r *Reader) List(ctx context.Context) ([]*Material, error) {
	q := psql.Select(
		sm.Columns("id", "name", "unit", "created_at"),
		sm.From(tableName),
		sm.OrderBy("name").Asc(),
		sm.OrderBy("id").Asc(),
	)
	return bob.All(ctx, r.exec, q, scan.StructMapper[*Material]())
}

// FindByID returns sqlconfig.ErrNotFound when no material has the id.
func (r *Reader) FindByID(ctx context.Context, id uuid.UUID) (*Material, error) {
	q := psql.Select(
		sm.Columns("id", "name", "unit", "created_at"),
		sm.From(tableName),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, r.exec, q, scan.StructMapper[*Material]())
	if err != nil {
		return nil, sqlconfig.TranslateError(err)
	}
	return row, nil
}
