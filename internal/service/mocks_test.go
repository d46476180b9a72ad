package service

import (
	"context"
	"io"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"

	"github.com/jagannath-p-s/malabareco-sub001/internal/ledger"
	"github.com/jagannath-p-s/malabareco-sub001/internal/operator/actions"
	"github.com/jagannath-p-s/malabareco-sub001/internal/storage/bankaccount"
	"github.com/jagannath-p-s/malabareco-sub001/internal/storage/location"
	"github.com/jagannath-p-s/malabareco-sub001/internal/storage/material"
	"github.com/jagannath-p-s/malabareco-sub001/internal/storage/transaction"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

type mockTransactionLister struct {
	mock.Mock
}

func (m *mockTransactionLister) List(ctx context.Context) ([]*transaction.Row, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]*transaction.Row)
	return rows, args.Error(1)
}

type mockBankAccountLister struct {
	mock.Mock
}

func (m *mockBankAccountLister) List(ctx context.Context) ([]*bankaccount.BankAccount, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]*bankaccount.BankAccount)
	return rows, args.Error(1)
}

type mockStore struct {
	mock.Mock
}

func (m *mockStore) FetchTransactions(ctx context.Context) ([]ledger.Record, error) {
	args := m.Called(ctx)
	records, _ := args.Get(0).([]ledger.Record)
	return records, args.Error(1)
}

func (m *mockStore) FetchBankAccounts(ctx context.Context) ([]ledger.BankAccount, error) {
	args := m.Called(ctx)
	accounts, _ := args.Get(0).([]ledger.BankAccount)
	return accounts, args.Error(1)
}

type mockProcessor struct {
	mock.Mock
}

func (m *mockProcessor) Process(ctx context.Context, action actions.IAction) error {
	args := m.Called(ctx, action)
	return args.Error(0)
}

type mockLocationReader struct {
	mock.Mock
}

func (m *mockLocationReader) List(ctx context.Context) ([]*location.Location, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]*location.Location)
	return rows, args.Error(1)
}

func (m *mockLocationReader) FindByID(ctx context.Context, id uuid.UUID) (*location.Location, error) {
	args := m.Called(ctx, id)
	row, _ := args.Get(0).(*location.Location)
	return row, args.Error(1)
}

type mockMaterialReader struct {
	mock.Mock
}

func (m *mockMaterialReader) List(ctx context.Context) ([]*material.Material, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]*material.Material)
	return rows, args.Error(1)
}

func (m *mockMaterialReader) FindByID(ctx context.Context, id uuid.UUID) (*material.Material, error) {
	args := m.Called(ctx, id)
	row, _ := args.Get(0).(*material.Material)
	return row, args.Error(1)
}
