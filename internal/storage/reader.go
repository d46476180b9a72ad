package storage

import (
	"github.com/stephenafamo/bob"

	"github.com/jagannath-p-s/malabareco-sub001/internal/storage/bankaccount"
	"github.com/jagannath-p-s/malabareco-sub001/internal/storage/location"
	"github.com/jagannath-p-s/malabareco-sub001/internal/storage/material"
	"github.com/jagannath-p-s/malabareco-sub001/internal/storage/transaction"
)

type Reader struct {
	Transactions *transaction.Reader
	BankAccounts *bankaccount.Reader
	Locations    *location.Reader
	Materials    *material.Reader
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{
		Transactions: transaction.NewReader(exec),
		BankAccounts: bankaccount.NewReader(exec),
		Locations:    location.NewReader(exec),
		Materials:    material.NewReader(exec),
	}
}
