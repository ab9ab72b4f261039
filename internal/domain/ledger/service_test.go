package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledgerbook/internal/core/apperror"
	"ledgerbook/internal/core/id"
	"ledgerbook/internal/core/types"
)

// memRepo stores transactions in memory for service tests.
type memRepo struct {
	entries []*Transaction
}

func (m *memRepo) Create(ctx context.Context, t *Transaction) error {
	m.entries = append(m.entries, t)
	return nil
}

func (m *memRepo) GetByID(ctx context.Context, txID id.ID) (*Transaction, error) {
	for _, e := range m.entries {
		if e.ID == txID {
			return e, nil
		}
	}
	return nil, apperror.NewNotFound("transaction", txID.String())
}

func (m *memRepo) List(ctx context.Context, filter ListFilter) ([]*Transaction, error) {
	var out []*Transaction
	for _, e := range m.entries {
		if filter.CustomerID != nil && e.CustomerID != *filter.CustomerID {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (m *memRepo) Delete(ctx context.Context, txID id.ID) error {
	for i, e := range m.entries {
		if e.ID == txID {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			return nil
		}
	}
	return apperror.NewNotFound("transaction", txID.String())
}

// spyTxManager runs functions inline and counts entry points.
type spyTxManager struct {
	readWrite int
	readOnly  int
}

func (m *spyTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.readWrite++
	return fn(ctx)
}

func (m *spyTxManager) ReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	m.readOnly++
	return fn(ctx)
}

func TestStatement_FetchesInReadOnlyTransaction(t *testing.T) {
	customerID := id.New()
	repo := &memRepo{}
	txm := &spyTxManager{}
	svc := NewService(repo, txm)

	sale := NewTransaction(customerID, TypeSale,
		time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC), types.MinorUnits(2000))
	require.NoError(t, svc.Record(context.Background(), sale))

	stmt, err := svc.Statement(context.Background(), customerID, StatementOptions{})
	require.NoError(t, err)
	require.Len(t, stmt.Months, 1)

	assert.Equal(t, 1, txm.readOnly)
	assert.Equal(t, 1, txm.readWrite)
}

func TestStatement_RequiresCustomer(t *testing.T) {
	svc := NewService(&memRepo{}, &spyTxManager{})

	_, err := svc.Statement(context.Background(), id.Nil(), StatementOptions{})
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
}
