package screens

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/kaelo-app/admin-console/internal/application/ports"
	"github.com/kaelo-app/admin-console/internal/domain/entity"
)

// TransactionsScreen controlador de la pantalla de transacciones. Es de solo
// lectura: no existe contrato de creación, edición ni borrado.
type TransactionsScreen struct {
	api    ports.AdminAPI
	notify ports.Notifier
	txs    collection[entity.Transaccion]
}

// NewTransactionsScreen construye el controlador.
func NewTransactionsScreen(api ports.AdminAPI, notify ports.Notifier) *TransactionsScreen {
	return &TransactionsScreen{api: api, notify: notify}
}

// Refresh re-trae la colección completa.
func (s *TransactionsScreen) Refresh(ctx context.Context) error {
	txs, err := s.api.ListTransactions(ctx)
	if err != nil {
		s.txs.fail()
		s.notify.Error("Error", "No se pudieron cargar las transacciones")
		return err
	}
	s.txs.replace(txs)
	return nil
}

// Transactions devuelve la colección actual.
func (s *TransactionsScreen) Transactions() []entity.Transaccion { return s.txs.snapshot() }

// Loaded indica si ya se resolvió la primera carga.
func (s *TransactionsScreen) Loaded() bool { return s.txs.isLoaded() }

// Total suma el monto de todas las transacciones visibles.
func (s *TransactionsScreen) Total() decimal.Decimal {
	return entity.TotalMonto(s.txs.snapshot())
}
