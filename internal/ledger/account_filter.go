package ledger

import (
	"github.com/gofrs/uuid/v5"
)

type accountFilterKind uint8

const (
	accountFilterAny accountFilterKind = iota
	accountFilterCash
	accountFilterBank
)

// AccountFilter selects records by bank account: any account, the cash account
// (records with no bank account), or one specific bank account.
type AccountFilter struct {
	kind accountFilterKind
	id   uuid.UUID
}

// AnyAccount is the wildcard account filter.
func AnyAccount() AccountFilter {
	return AccountFilter{kind: accountFilterAny}
}

// CashAccount matches only records without a bank account.
func CashAccount() AccountFilter {
	return AccountFilter{kind: accountFilterCash}
}

// BankAccountFilter matches only records referencing the given bank account.
func BankAccountFilter(id uuid.UUID) AccountFilter {
	return AccountFilter{kind: accountFilterBank, id: id}
}

// IsAny reports whether the filter is the wildcard.
func (f AccountFilter) IsAny() bool {
	return f.kind == accountFilterAny
}

// IsCash reports whether the filter selects the cash account.
func (f AccountFilter) IsCash() bool {
	return f.kind == accountFilterCash
}

// BankAccountID returns the selected bank account, if the filter selects one.
func (f AccountFilter) BankAccountID() (uuid.UUID, bool) {
	return f.id, f.kind == accountFilterBank
}
