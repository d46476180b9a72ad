package ledger

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Store supplies the ledger and its bank accounts.
//
// FetchTransactions returns records ordered by transaction date, newest first.
// FetchBankAccounts returns accounts ordered by name.
type Store interface {
	FetchTransactions(ctx context.Context) ([]Record, error)
	FetchBankAccounts(ctx context.Context) ([]BankAccount, error)
}

// Snapshot is one complete, consistent result of fetching from a Store.
type Snapshot struct {
	Records  []Record
	Accounts []BankAccount
}

// FetchError reports that the store could not be read. The session keeps its
// previous records when a fetch fails.
type FetchError struct {
	Source string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Source, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Fetch reads transactions and bank accounts concurrently. Either both succeed
// and a Snapshot is returned, or nothing is.
func Fetch(ctx context.Context, store Store) (Snapshot, error) {
	var snap Snapshot
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		records, err := store.FetchTransactions(gctx)
		if err != nil {
			return &FetchError{Source: "transactions", Err: err}
		}
		snap.Records = records
		return nil
	})
	g.Go(func() error {
		accounts, err := store.FetchBankAccounts(gctx)
		if err != nil {
			return &FetchError{Source: "bank accounts", Err: err}
		}
		snap.Accounts = accounts
		return nil
	})

	if err := g.Wait(); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}
