package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"cloud.google.com/go/civil"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jagannath-p-s/malabareco-sub001/internal/ledger"
	"github.com/jagannath-p-s/malabareco-sub001/internal/storage/bankaccount"
	"github.com/jagannath-p-s/malabareco-sub001/internal/storage/transaction"
)

func text(s string) sql.NullString {
	return sql.NullString{String: s, Valid: true}
}

func newLedgerService() (*LedgerService, *mockTransactionLister, *mockBankAccountLister) {
	transactions := new(mockTransactionLister)
	accounts := new(mockBankAccountLister)
	return NewLedgerService(transactions, accounts, quietLogger()), transactions, accounts
}

// -- FetchTransactions tests --

func TestFetchTransactions_ConvertsRows(t *testing.T) {
	svc, transactions, _ := newLedgerService()

	id := uuid.Must(uuid.NewV4())
	accountID := uuid.Must(uuid.NewV4())
	transactions.On("List", mock.Anything).Return([]*transaction.Row{{
		ID:              id,
		TransactionDate: text("2024-01-05"),
		TransactionType: "revenue",
		ReferenceType:   "outward_entry",
		Description:     text("Sale of PET bales"),
		Amount:          text("1250.50"),
		IsCredit:        true,
		BankAccountID:   uuid.NullUUID{UUID: accountID, Valid: true},
		BankAccountName: text("Federal Bank"),
	}}, nil)

	records, err := svc.FetchTransactions(context.Background())

	require.NoError(t, err)
	require.Len(t, records, 1)
	r := records[0]
	assert.Equal(t, id, r.ID)
	assert.Equal(t, civil.Date{Year: 2024, Month: 1, Day: 5}, r.TransactionDate)
	assert.Equal(t, ledger.TransactionTypeRevenue, r.Type)
	assert.Equal(t, ledger.ReferenceTypeOutwardEntry, r.ReferenceType)
	assert.Equal(t, "Sale of PET bales", r.Description)
	assert.True(t, r.Amount.Valid)
	assert.True(t, r.Amount.Decimal.Equal(decimal.RequireFromString("1250.5")))
	assert.True(t, r.IsCredit)
	assert.Equal(t, accountID, r.BankAccountID.UUID)
	assert.Equal(t, "Federal Bank", r.BankAccountName)
	assert.False(t, r.IsCash())
}

func TestFetchTransactions_TimestampKeepsCalendarDate(t *testing.T) {
	svc, transactions, _ := newLedgerService()

	transactions.On("List", mock.Anything).Return([]*transaction.Row{{
		ID:              uuid.Must(uuid.NewV4()),
		TransactionDate: text("2024-01-31 23:30:00+05:30"),
		TransactionType: "expense",
		Amount:          text("10"),
	}}, nil)

	records, err := svc.FetchTransactions(context.Background())

	require.NoError(t, err)
	assert.Equal(t, civil.Date{Year: 2024, Month: 1, Day: 31}, records[0].TransactionDate)
	assert.True(t, records[0].IsCash())
}

func TestFetchTransactions_MalformedRowIsKept(t *testing.T) {
	svc, transactions, _ := newLedgerService()

	transactions.On("List", mock.Anything).Return([]*transaction.Row{{
		ID:              uuid.Must(uuid.NewV4()),
		TransactionDate: text("not a date"),
		TransactionType: "expense",
		Amount:          text("twelve"),
	}, {
		ID:              uuid.Must(uuid.NewV4()),
		TransactionType: "expense",
	}}, nil)

	records, err := svc.FetchTransactions(context.Background())

	require.NoError(t, err)
	require.Len(t, records, 2)
	for _, r := range records {
		assert.False(t, r.Amount.Valid)
		assert.False(t, r.TransactionDate.IsValid())
	}
	assert.Len(t, ledger.Aggregate(records).Anomalies, 2)
}

func TestFetchTransactions_UnknownTypeIsKept(t *testing.T) {
	svc, transactions, _ := newLedgerService()

	transactions.On("List", mock.Anything).Return([]*transaction.Row{{
		ID:              uuid.Must(uuid.NewV4()),
		TransactionDate: text("2024-02-01"),
		TransactionType: "refund",
		Amount:          text("5"),
	}}, nil)

	records, err := svc.FetchTransactions(context.Background())

	require.NoError(t, err)
	assert.Equal(t, ledger.TransactionType("refund"), records[0].Type)
}

func TestFetchTransactions_StorageError(t *testing.T) {
	svc, transactions, _ := newLedgerService()

	transactions.On("List", mock.Anything).Return(nil, errors.New("connection refused"))

	records, err := svc.FetchTransactions(context.Background())

	assert.EqualError(t, err, "connection refused")
	assert.Nil(t, records)
}

// -- FetchBankAccounts tests --

func TestFetchBankAccounts(t *testing.T) {
	svc, _, accounts := newLedgerService()

	id := uuid.Must(uuid.NewV4())
	accounts.On("List", mock.Anything).Return([]*bankaccount.BankAccount{{ID: id, Name: "Canara Bank"}}, nil)

	got, err := svc.FetchBankAccounts(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []ledger.BankAccount{{ID: id, Name: "Canara Bank"}}, got)
}

func TestFetchBankAccounts_StorageError(t *testing.T) {
	svc, _, accounts := newLedgerService()

	accounts.On("List", mock.Anything).Return(nil, errors.New("timeout"))

	_, err := svc.FetchBankAccounts(context.Background())

	assert.EqualError(t, err, "timeout")
}
