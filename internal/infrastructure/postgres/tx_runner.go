package postgres

import (
	"context"
	"fmt"

	"github.com/bdas-dva/retail-api/internal/application/auth"
	"github.com/bdas-dva/retail-api/internal/domain/repository"
)

var _ auth.TxRunner = (*TxRunner)(nil)

// TxRunner runs callbacks inside a PostgreSQL transaction.
type TxRunner struct {
	proc *ProcRunner
}

// NewTxRunner builds the runner; repositories handed to callbacks share proc's logger.
func NewTxRunner(proc *ProcRunner) *TxRunner {
	return &TxRunner{proc: proc}
}

// RunRegistration opens a transaction, gives fn customer and user repos bound to it
// and commits when fn succeeds. Any error rolls everything back.
func (r *TxRunner) RunRegistration(ctx context.Context, fn func(
	customerRepo repository.CustomerRepository,
	userRepo repository.UserRepository,
) error) error {
	tx, err := r.proc.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	txProc := r.proc.WithDB(tx)
	customerRepo := NewCustomerRepository(txProc)
	userRepo := NewUserRepository(txProc)

	if err := fn(customerRepo, userRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
