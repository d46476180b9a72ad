package material

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"

	"github.com/jagannath-p-s/malabareco-sub001/internal/storage/sqlconfig"
)

type Writer struct {
	tx bob.Tx
	Reader
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx: tx,
		Reader: Reader{
			exec: tx,
		},
	}
}

func (w *Writer) Create(ctx context.Context, create *MaterialCreate) (uuid.UUID, error) {
	q := psql.Insert(
		im.Into(tableName, "name", "unit"),
		im.Values(psql.Arg(create.Name, create.Unit)),
		im.Returning("id"),
	)
	id, err := bob.One(ctx, w.tx, q, scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		return uuid.Nil, sqlconfig.TranslateError(err)
	}
	return id, nil
}

func (w *Writer) Update(ctx context.Context, id uuid.UUID, update *MaterialUpdate) error {
	queryMods := []bob.Mod[*dialect.UpdateQuery]{um.Table(tableName)}
	if name, ok := update.Name.Get(); ok {
		queryMods = append(queryMods, um.SetCol("name").ToArg(name))
	}
	if unit, ok := update.Unit.Get(); ok {
		queryMods = append(queryMods, um.SetCol("unit").ToArg(unit))
	}
	if len(queryMods) == 1 {
		_, err := w.FindByID(ctx, id)
		return err
	}
	queryMods = append(queryMods, um.Where(psql.Quote("id").EQ(psql.Arg(id))))

	result, err := bob.Exec(ctx, w.tx, psql.Update(queryMods...))
	if err != nil {
		return sqlconfig.TranslateError(err)
	}
	return sqlconfig.ExpectAffected(result)
}

// Delete returns sqlconfig.ErrReferenceInUse while stock entries still record the material.
func (w *Writer) Delete(ctx context.Context, id uuid.UUID) error {
	q := psql.Delete(
		dm.From(tableName),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	result, err := bob.Exec(ctx, w.tx, q)
	if err != nil {
		return sqlconfig.TranslateError(err)
	}
	return sqlconfig.ExpectAffected(result)
}
