package funds

import (
	"context"
	"fmt"
	"time"

	"ledgerbook/internal/core/apperror"
	"ledgerbook/internal/core/id"
	"ledgerbook/internal/core/tx"
	"ledgerbook/internal/core/types"
	"ledgerbook/internal/domain/catalogs/account"
)

// AccountLocker reads an account row with a lock held for the rest of the
// transaction. Transfers lock both sides before writing the pair.
type AccountLocker interface {
	GetForUpdate(ctx context.Context, accountID id.ID) (*account.Account, error)
}

// Service provides business logic for the funds register.
type Service struct {
	repo      Repository
	accounts  AccountLocker
	txManager tx.SerializableManager
}

// NewService creates a new funds service.
func NewService(repo Repository, accounts AccountLocker, txManager tx.SerializableManager) *Service {
	return &Service{repo: repo, accounts: accounts, txManager: txManager}
}

// Record validates and stores a single funds movement.
// Transfer entry types must go through Transfer so the pair stays matched.
func (s *Service) Record(ctx context.Context, t *AccountTransaction) error {
	if t.Type == TypeTransferIn || t.Type == TypeTransferOut {
		return apperror.NewValidation("transfers must be created as a pair").
			WithDetail("field", "type")
	}

	t.NormalizeSign()
	if err := t.Validate(ctx); err != nil {
		return err
	}

	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, t); err != nil {
			return fmt.Errorf("create funds entry: %w", err)
		}
		return nil
	})
}

// Transfer moves an amount between two accounts by creating the matched pair
// of rows in one serializable transaction: a negative transfer-out at the
// source and a positive transfer-in at the destination, each carrying the
// other's account in RelatedAccountID. Both account rows are locked first and
// the source must cover the amount.
func (s *Service) Transfer(ctx context.Context, from, to id.ID, amount types.MinorUnits, entryDate time.Time, notes *string) (*AccountTransaction, *AccountTransaction, error) {
	if id.IsNil(from) || id.IsNil(to) {
		return nil, nil, apperror.NewValidation("both accounts are required")
	}
	if from == to {
		return nil, nil, apperror.NewValidation("cannot transfer to the same account").
			WithDetail("accountId", from.String())
	}
	if amount.Abs().IsZero() {
		return nil, nil, apperror.NewValidation("amount must be non-zero").
			WithDetail("field", "amount")
	}

	out := NewAccountTransaction(from, TypeTransferOut, entryDate, amount)
	out.RelatedAccountID = &to
	out.Notes = notes

	in := NewAccountTransaction(to, TypeTransferIn, entryDate, amount)
	in.RelatedAccountID = &from
	in.Notes = notes

	err := s.txManager.Serializable(ctx, func(ctx context.Context) error {
		source, err := s.accounts.GetForUpdate(ctx, from)
		if err != nil {
			return fmt.Errorf("lock source account: %w", err)
		}
		if _, err := s.accounts.GetForUpdate(ctx, to); err != nil {
			return fmt.Errorf("lock destination account: %w", err)
		}

		needed := amount.Abs()
		if source.Balance < needed {
			return apperror.NewInsufficientFunds(from.String(), int64(needed), int64(source.Balance))
		}

		if err := s.repo.Create(ctx, out); err != nil {
			return fmt.Errorf("create transfer-out: %w", err)
		}
		if err := s.repo.Create(ctx, in); err != nil {
			return fmt.Errorf("create transfer-in: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return out, in, nil
}

// List retrieves funds movements matching the filter.
func (s *Service) List(ctx context.Context, filter ListFilter) ([]*AccountTransaction, error) {
	return s.repo.List(ctx, filter)
}

// Delete removes a funds movement. Deleting one half of a transfer pair is
// rejected; both rows must be removed together.
func (s *Service) Delete(ctx context.Context, txID id.ID) error {
	existing, err := s.repo.GetByID(ctx, txID)
	if err != nil {
		return err
	}
	if existing.Type == TypeTransferIn || existing.Type == TypeTransferOut {
		return apperror.NewBusinessRule(apperror.CodeBusinessRule,
			"transfer entries cannot be deleted individually")
	}

	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Delete(ctx, txID); err != nil {
			return fmt.Errorf("delete funds entry: %w", err)
		}
		return nil
	})
}
