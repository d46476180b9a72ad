package transaction

import (
	"database/sql"

	"github.com/gofrs/uuid/v5"
)

// Row is a transaction as stored, joined with its bank account name.
// Date and amount are read as text so one bad row cannot fail the whole read.
type Row struct {
	ID              uuid.UUID      `db:"id"`
	TransactionDate sql.NullString `db:"transaction_date"`
	TransactionType string         `db:"transaction_type"`
	ReferenceType   string         `db:"reference_type"`
	Description     sql.NullString `db:"description"`
	Amount          sql.NullString `db:"amount"`
	IsCredit        bool           `db:"is_credit"`
	BankAccountID   uuid.NullUUID  `db:"bank_account_id"`
	BankAccountName sql.NullString `db:"bank_account_name"`
}
