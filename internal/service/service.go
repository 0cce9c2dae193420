package service

import (
	"github.com/gestor-oficina/ledger-server/internal/config"
	"github.com/gestor-oficina/ledger-server/internal/operator"
	"github.com/gestor-oficina/ledger-server/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Ledger   *LedgerService
	Sessions *SessionService
	Changes  *Broadcaster
}

// NewService wires the services over storage and the write operator.
func NewService(store *storage.Storage, writes *operator.OperatorDelegator, cfg *config.Config) *Service {
	changes := NewBroadcaster()
	return &Service{
		Ledger:   NewLedgerService(store.Entries, writes, changes),
		Sessions: NewSessionService(cfg.LedgerPasscode),
		Changes:  changes,
	}
}
