package bankaccount

import "github.com/gofrs/uuid/v5"

// BankAccount is a stored bank account.
type BankAccount struct {
	ID   uuid.UUID `db:"id"`
	Name string    `db:"name"`
}
