package service

import (
	"context"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/jagannath-p-s/malabareco-sub001/internal/ledger"
	"github.com/jagannath-p-s/malabareco-sub001/internal/storage/bankaccount"
	"github.com/jagannath-p-s/malabareco-sub001/internal/storage/transaction"
)

type transactionLister interface {
	List(ctx context.Context) ([]*transaction.Row, error)
}

type bankAccountLister interface {
	List(ctx context.Context) ([]*bankaccount.BankAccount, error)
}

// LedgerService reads the ledger from storage. It implements ledger.Store.
type LedgerService struct {
	transactions transactionLister
	bankAccounts bankAccountLister
	logger       *logrus.Logger
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(transactions transactionLister, bankAccounts bankAccountLister, logger *logrus.Logger) *LedgerService {
	return &LedgerService{
		transactions: transactions,
		bankAccounts: bankAccounts,
		logger:       logger,
	}
}

// FetchTransactions returns every transaction, newest first. Rows whose date,
// amount or type cannot be parsed are still returned and logged.
func (s *LedgerService) FetchTransactions(ctx context.Context) ([]ledger.Record, error) {
	rows, err := s.transactions.List(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]ledger.Record, 0, len(rows))
	for _, row := range rows {
		record, problems := recordFromRow(row)
		for _, problem := range problems {
			s.logger.WithFields(logrus.Fields{
				"transactionID": row.ID.String(),
				"problem":       problem,
			}).Warn("LedgerService.FetchTransactions.malformed row")
		}
		records = append(records, record)
	}
	return records, nil
}

// FetchBankAccounts returns every bank account ordered by name.
func (s *LedgerService) FetchBankAccounts(ctx context.Context) ([]ledger.BankAccount, error) {
	rows, err := s.bankAccounts.List(ctx)
	if err != nil {
		return nil, err
	}

	accounts := make([]ledger.BankAccount, len(rows))
	for i, row := range rows {
		accounts[i] = ledger.BankAccount{ID: row.ID, Name: row.Name}
	}
	return accounts, nil
}

func recordFromRow(row *transaction.Row) (ledger.Record, []string) {
	var problems []string

	record := ledger.Record{
		ID:              row.ID,
		Type:            ledger.TransactionType(row.TransactionType),
		ReferenceType:   ledger.ReferenceType(row.ReferenceType),
		Description:     row.Description.String,
		IsCredit:        row.IsCredit,
		BankAccountID:   row.BankAccountID,
		BankAccountName: row.BankAccountName.String,
	}

	if _, err := ledger.ParseTransactionType(row.TransactionType); err != nil {
		problems = append(problems, err.Error())
	}

	if date, err := parseStoredDate(row.TransactionDate.String); err != nil {
		problems = append(problems, "transaction date: "+err.Error())
	} else {
		record.TransactionDate = date
	}

	if amount, err := decimal.NewFromString(row.Amount.String); err != nil {
		problems = append(problems, "amount: "+err.Error())
	} else {
		record.Amount = decimal.NewNullDecimal(amount)
	}

	return record, problems
}

// parseStoredDate accepts a bare date or a timestamp and keeps only the
// calendar date as written.
func parseStoredDate(s string) (civil.Date, error) {
	if len(s) > 10 {
		s = s[:10]
	}
	return civil.ParseDate(s)
}
