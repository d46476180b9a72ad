package service

import (
	"github.com/sirupsen/logrus"

	"github.com/jagannath-p-s/malabareco-sub001/internal/config"
	"github.com/jagannath-p-s/malabareco-sub001/internal/ledger"
	"github.com/jagannath-p-s/malabareco-sub001/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Ledger   *LedgerService
	Sessions *SessionRegistry
	Location *LocationService
	Material *MaterialService
}

// NewService creates a new Service over the given storage. Reference data
// writes go through processor.
func NewService(store *storage.Storage, processor actionProcessor, env *config.Config, logger *logrus.Logger) *Service {
	ledgerService := NewLedgerService(store.Reader.Transactions, store.Reader.BankAccounts, logger)
	formatter := ledger.NewCurrencyFormatter(env.CurrencySymbol, env.CurrencyLocale)

	return &Service{
		Ledger:   ledgerService,
		Sessions: NewSessionRegistry(ledgerService, formatter, env.SessionTTL, logger),
		Location: NewLocationService(store.Reader.Locations, processor),
		Material: NewMaterialService(store.Reader.Materials, processor),
	}
}
