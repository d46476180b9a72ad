package transaction

import (
	"context"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

// ListQuery selects the whole ledger, newest transaction date first.
func ListQuery() bob.BaseQuery[*dialect.SelectQuery] {
	return psql.Select(
		sm.Columns(
			"transactions.id",
			"transactions.transaction_date::text AS transaction_date",
			"transactions.transaction_type",
			"transactions.reference_type",
			"transactions.description",
			"transactions.amount::text AS amount",
			"transactions.is_credit",
			"transactions.bank_account_id",
			"bank_accounts.name AS bank_account_name",
		),
		sm.From("transactions"),
		sm.LeftJoin("bank_accounts").On(
			psql.Quote("bank_accounts", "id").EQ(psql.Quote("transactions", "bank_account_id")),
		),
		sm.OrderBy(psql.Quote("transactions", "transaction_date")).Desc(),
		sm.OrderBy(psql.Quote("transactions", "created_at")).Desc(),
		sm.OrderBy(psql.Quote("transactions", "id")).Desc(),
	)
}

// List returns every transaction in ledger order.
func (r *Reader) List(ctx context.Context) ([]*Row, error) {
	rows, err := bob.All(ctx, r.exec, ListQuery(), scan.StructMapper[*Row]())
	if err != nil {
		return nil, err
	}
	return rows, nil
}
