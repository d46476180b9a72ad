package bankaccount

import (
	"context"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

// List returns all bank accounts ordered by name.
func (r *Reader) List(ctx context.Context) ([]*BankAccount, error) {
	q := psql.Select(
		sm.Columns("id", "name"),
		sm.From("bank_accounts"),
		sm.OrderBy("name").Asc(),
		sm.OrderBy("id").Asc(),
	)
	return bob.All(ctx, r.exec, q, scan.StructMapper[*BankAccount]())
}
