package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jagannath-p-s/malabareco-sub001/internal/ledger"
)

func registryRecords(n int) []ledger.Record {
	records := make([]ledger.Record, n)
	for i := range records {
		records[i] = ledger.Record{
			ID:              uuid.Must(uuid.NewV4()),
			TransactionDate: civil.Date{Year: 2024, Month: 3, Day: 1 + i%28},
			Type:            ledger.TransactionTypeExpense,
			Amount:          decimal.NewNullDecimal(decimal.NewFromInt(10)),
		}
	}
	return records
}

func newRegistry(store ledger.Store) *SessionRegistry {
	return NewSessionRegistry(store, ledger.NewCurrencyFormatter("₹", "en-IN"), time.Minute, quietLogger())
}

// -- Create tests --

func TestCreate_LoadsSnapshot(t *testing.T) {
	store := new(mockStore)
	store.On("FetchTransactions", mock.Anything).Return(registryRecords(12), nil)
	store.On("FetchBankAccounts", mock.Anything).Return([]ledger.BankAccount{}, nil)
	registry := newRegistry(store)

	id, view, err := registry.Create(context.Background())

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)
	assert.Equal(t, 12, view.TotalCount)
	assert.Len(t, view.Rows, 10)
	assert.NoError(t, view.Error)
	assert.Equal(t, "-₹120.00", view.Formatted.Net)
	assert.Equal(t, 1, registry.Len())
}

func TestCreate_FetchFailureStillCreatesSession(t *testing.T) {
	store := new(mockStore)
	store.On("FetchTransactions", mock.Anything).Return(nil, errors.New("connection refused"))
	store.On("FetchBankAccounts", mock.Anything).Return([]ledger.BankAccount{}, nil)
	registry := newRegistry(store)

	id, view, err := registry.Create(context.Background())

	require.NoError(t, err)
	var fetchErr *ledger.FetchError
	require.ErrorAs(t, view.Error, &fetchErr)
	assert.Equal(t, "transactions", fetchErr.Source)
	assert.Zero(t, view.TotalCount)

	_, err = registry.View(id)
	assert.NoError(t, err)
}

// -- Update tests --

func TestUpdate_UnknownSession(t *testing.T) {
	registry := newRegistry(new(mockStore))

	_, err := registry.Update(uuid.Must(uuid.NewV4()), func(s *ledger.Session) (ledger.View, error) {
		return s.View(), nil
	})

	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestUpdate_AppliesToSession(t *testing.T) {
	store := new(mockStore)
	store.On("FetchTransactions", mock.Anything).Return(registryRecords(30), nil)
	store.On("FetchBankAccounts", mock.Anything).Return([]ledger.BankAccount{}, nil)
	registry := newRegistry(store)
	id, _, err := registry.Create(context.Background())
	require.NoError(t, err)

	view, err := registry.Update(id, func(s *ledger.Session) (ledger.View, error) {
		return s.SetPage(2), nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, view.Page.Index)

	view, err = registry.View(id)
	require.NoError(t, err)
	assert.Equal(t, 2, view.Page.Index)
}

func TestUpdate_ConcurrentCallsAreSerialized(t *testing.T) {
	store := new(mockStore)
	store.On("FetchTransactions", mock.Anything).Return(registryRecords(5), nil)
	store.On("FetchBankAccounts", mock.Anything).Return([]ledger.BankAccount{}, nil)
	registry := newRegistry(store)
	id, _, err := registry.Create(context.Background())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _ = registry.Update(id, func(s *ledger.Session) (ledger.View, error) {
				return s.SetSearch(string(rune('a' + i))), nil
			})
		}(i)
	}
	wg.Wait()

	view, err := registry.View(id)
	require.NoError(t, err)
	assert.Zero(t, view.Page.Index)
}

// -- Refresh tests --

func TestRefresh_FailureKeepsRecords(t *testing.T) {
	store := new(mockStore)
	store.On("FetchTransactions", mock.Anything).Return(registryRecords(3), nil).Once()
	store.On("FetchBankAccounts", mock.Anything).Return([]ledger.BankAccount{}, nil)
	registry := newRegistry(store)
	id, _, err := registry.Create(context.Background())
	require.NoError(t, err)

	store.On("FetchTransactions", mock.Anything).Return(nil, errors.New("timeout")).Once()

	view, err := registry.Refresh(context.Background(), id)

	require.NoError(t, err)
	assert.Error(t, view.Error)
	assert.Equal(t, 3, view.TotalCount)

	view, err = registry.Update(id, func(s *ledger.Session) (ledger.View, error) {
		return s.DismissError(), nil
	})
	require.NoError(t, err)
	assert.NoError(t, view.Error)
}

func TestRefresh_ReplacesRecordsAndResetsPage(t *testing.T) {
	store := new(mockStore)
	store.On("FetchTransactions", mock.Anything).Return(registryRecords(30), nil).Once()
	store.On("FetchBankAccounts", mock.Anything).Return([]ledger.BankAccount{}, nil)
	registry := newRegistry(store)
	id, _, err := registry.Create(context.Background())
	require.NoError(t, err)
	_, err = registry.Update(id, func(s *ledger.Session) (ledger.View, error) {
		return s.SetPage(1), nil
	})
	require.NoError(t, err)

	store.On("FetchTransactions", mock.Anything).Return(registryRecords(40), nil).Once()

	view, err := registry.Refresh(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, 40, view.TotalCount)
	assert.Zero(t, view.Page.Index)
}

func TestRefresh_UnknownSession(t *testing.T) {
	registry := newRegistry(new(mockStore))

	_, err := registry.Refresh(context.Background(), uuid.Must(uuid.NewV4()))

	assert.ErrorIs(t, err, ErrSessionNotFound)
}

// -- Close and eviction tests --

func TestClose(t *testing.T) {
	store := new(mockStore)
	store.On("FetchTransactions", mock.Anything).Return(registryRecords(1), nil)
	store.On("FetchBankAccounts", mock.Anything).Return([]ledger.BankAccount{}, nil)
	registry := newRegistry(store)
	id, _, err := registry.Create(context.Background())
	require.NoError(t, err)

	assert.NoError(t, registry.Close(id))
	assert.ErrorIs(t, registry.Close(id), ErrSessionNotFound)
	_, err = registry.View(id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestEvictExpired(t *testing.T) {
	store := new(mockStore)
	store.On("FetchTransactions", mock.Anything).Return(registryRecords(1), nil)
	store.On("FetchBankAccounts", mock.Anything).Return([]ledger.BankAccount{}, nil)
	registry := newRegistry(store)

	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	registry.now = func() time.Time { return now }

	idle, _, err := registry.Create(context.Background())
	require.NoError(t, err)
	now = now.Add(45 * time.Second)
	active, _, err := registry.Create(context.Background())
	require.NoError(t, err)

	now = now.Add(30 * time.Second)
	_, err = registry.View(active)
	require.NoError(t, err)

	assert.Equal(t, 1, registry.EvictExpired())
	_, err = registry.View(idle)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = registry.View(active)
	assert.NoError(t, err)
}

func TestLookup_ExpiredSessionIsDropped(t *testing.T) {
	store := new(mockStore)
	store.On("FetchTransactions", mock.Anything).Return(registryRecords(1), nil)
	store.On("FetchBankAccounts", mock.Anything).Return([]ledger.BankAccount{}, nil)
	registry := newRegistry(store)

	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	registry.now = func() time.Time { return now }
	id, _, err := registry.Create(context.Background())
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)

	_, err = registry.View(id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.Zero(t, registry.Len())
}
