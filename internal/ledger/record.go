package ledger

import (
	"fmt"

	"cloud.google.com/go/civil"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// TransactionType is the fixed classification of a ledger transaction.
type TransactionType string

const (
	TransactionTypeRevenue          TransactionType = "revenue"
	TransactionTypeMaterialPurchase TransactionType = "material_purchase"
	TransactionTypeStaffPayment     TransactionType = "staff_payment"
	TransactionTypeCommission       TransactionType = "commission"
	TransactionTypeExpense          TransactionType = "expense"
	TransactionTypeOther            TransactionType = "other"
)

// TransactionTypes lists every valid TransactionType in display order.
var TransactionTypes = []TransactionType{
	TransactionTypeRevenue,
	TransactionTypeMaterialPurchase,
	TransactionTypeStaffPayment,
	TransactionTypeCommission,
	TransactionTypeExpense,
	TransactionTypeOther,
}

// ParseTransactionType converts a stored or requested value into a TransactionType.
func ParseTransactionType(s string) (TransactionType, error) {
	for _, t := range TransactionTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown transaction type %q", s)
}

// ReferenceType labels the business event a transaction originated from.
// It is free-form; the constants are the values the dashboard produces.
type ReferenceType string

const (
	ReferenceTypeInwardEntry       ReferenceType = "inward_entry"
	ReferenceTypeOutwardEntry      ReferenceType = "outward_entry"
	ReferenceTypeSegregatedEntry   ReferenceType = "segregated_entry"
	ReferenceTypeStaffPayment      ReferenceType = "staff_payment"
	ReferenceTypeCommissionPayment ReferenceType = "commission_payment"
	ReferenceTypeExpense           ReferenceType = "expense"
	ReferenceTypeOther             ReferenceType = "other"
)

// Record is a single ledger transaction. Records are read-only here.
type Record struct {
	ID              uuid.UUID
	TransactionDate civil.Date // zero value when the stored date could not be parsed
	Type            TransactionType
	ReferenceType   ReferenceType
	Description     string
	Amount          decimal.NullDecimal // invalid when the stored amount was not numeric
	IsCredit        bool
	BankAccountID   uuid.NullUUID // invalid means cash
	BankAccountName string        // joined display name, empty for cash
}

// IsCash reports whether the record belongs to the logical cash account.
func (r Record) IsCash() bool {
	return !r.BankAccountID.Valid
}

// BankAccount is the reference data used to label and filter by account.
type BankAccount struct {
	ID   uuid.UUID
	Name string
}

// CashAccountLabel is shown for records without a bank account.
const CashAccountLabel = "Cash"

// UnknownAccountLabel is shown when a referenced bank account cannot be resolved.
const UnknownAccountLabel = "Unknown account"
