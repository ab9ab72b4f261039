package ledger

import (
	"context"
	"fmt"

	"ledgerbook/internal/core/apperror"
	"ledgerbook/internal/core/id"
	"ledgerbook/internal/core/tx"
)

// Service provides business logic for ledger transactions and statements.
type Service struct {
	repo      Repository
	txManager tx.ReadOnlyManager
}

// NewService creates a new ledger service.
func NewService(repo Repository, txManager tx.ReadOnlyManager) *Service {
	return &Service{repo: repo, txManager: txManager}
}

// Record validates and stores a new ledger entry. The stored sign convention
// is enforced here so callers may pass the amount with either sign.
func (s *Service) Record(ctx context.Context, t *Transaction) error {
	t.NormalizeSign()

	if err := t.Validate(ctx); err != nil {
		if apperror.IsAppError(err) {
			return err
		}
		return apperror.NewValidation(err.Error())
	}

	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, t); err != nil {
			return fmt.Errorf("create transaction: %w", err)
		}
		return nil
	})
}

// GetByID retrieves a single ledger entry.
func (s *Service) GetByID(ctx context.Context, txID id.ID) (*Transaction, error) {
	return s.repo.GetByID(ctx, txID)
}

// List retrieves ledger entries matching the filter.
func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Transaction, error) {
	return s.repo.List(ctx, filter)
}

// Delete removes a ledger entry. The database trigger reverses the balance
// effect on the customer row.
func (s *Service) Delete(ctx context.Context, txID id.ID) error {
	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Delete(ctx, txID); err != nil {
			return fmt.Errorf("delete transaction: %w", err)
		}
		return nil
	})
}

// Statement fetches a customer's transactions and folds them into a
// month-grouped statement. The fetch is unbounded and runs in a read-only
// transaction; the range filter is applied by the pure builder so the
// computation stays reproducible from a snapshot.
func (s *Service) Statement(ctx context.Context, customerID id.ID, opts StatementOptions) (*Statement, error) {
	if id.IsNil(customerID) {
		return nil, apperror.NewValidation("customer is required").
			WithDetail("field", "customerId")
	}

	var txs []*Transaction
	err := s.txManager.ReadOnly(ctx, func(ctx context.Context) error {
		var err error
		txs, err = s.repo.List(ctx, ListFilter{CustomerID: &customerID})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("load transactions: %w", err)
	}

	return BuildStatement(txs, opts), nil
}
