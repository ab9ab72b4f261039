package funds

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledgerbook/internal/core/apperror"
	"ledgerbook/internal/core/id"
	"ledgerbook/internal/core/types"
	"ledgerbook/internal/domain/catalogs/account"
)

// fakeRepo stores entries in memory for service tests.
type fakeRepo struct {
	entries []*AccountTransaction
}

func (f *fakeRepo) Create(ctx context.Context, t *AccountTransaction) error {
	f.entries = append(f.entries, t)
	return nil
}

func (f *fakeRepo) GetByID(ctx context.Context, txID id.ID) (*AccountTransaction, error) {
	for _, e := range f.entries {
		if e.ID == txID {
			return e, nil
		}
	}
	return nil, apperror.NewNotFound("funds entry", txID.String())
}

func (f *fakeRepo) List(ctx context.Context, filter ListFilter) ([]*AccountTransaction, error) {
	return f.entries, nil
}

func (f *fakeRepo) Delete(ctx context.Context, txID id.ID) error {
	for i, e := range f.entries {
		if e.ID == txID {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			return nil
		}
	}
	return apperror.NewNotFound("funds entry", txID.String())
}

// fakeAccounts hands out account rows by ID and counts lock calls.
type fakeAccounts struct {
	balances map[id.ID]types.MinorUnits
	locked   int
}

func (f *fakeAccounts) GetForUpdate(ctx context.Context, accountID id.ID) (*account.Account, error) {
	balance, ok := f.balances[accountID]
	if !ok {
		return nil, apperror.NewNotFound("account", accountID.String())
	}
	f.locked++
	acc := account.NewAccount("test", account.KindCash)
	acc.ID = accountID
	acc.Balance = balance
	return acc, nil
}

// richAccounts returns a locker where every account holds a large balance.
type richAccounts struct{ locked int }

func (r *richAccounts) GetForUpdate(ctx context.Context, accountID id.ID) (*account.Account, error) {
	r.locked++
	acc := account.NewAccount("test", account.KindCash)
	acc.ID = accountID
	acc.Balance = 1_000_000
	return acc, nil
}

// noopTxManager runs the function without a database and records which entry
// point was used.
type noopTxManager struct {
	serializable int
}

func (m *noopTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (m *noopTxManager) Serializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.serializable++
	return fn(ctx)
}

func TestTransfer_CreatesMatchedPair(t *testing.T) {
	repo := &fakeRepo{}
	accounts := &richAccounts{}
	txm := &noopTxManager{}
	svc := NewService(repo, accounts, txm)

	from := id.New()
	to := id.New()
	day := time.Date(2024, time.August, 1, 0, 0, 0, 0, time.UTC)

	out, in, err := svc.Transfer(context.Background(), from, to, 5000, day, nil)
	require.NoError(t, err)
	require.Len(t, repo.entries, 2)

	// The pair is written at serializable isolation with both rows locked.
	assert.Equal(t, 1, txm.serializable)
	assert.Equal(t, 2, accounts.locked)

	assert.Equal(t, TypeTransferOut, out.Type)
	assert.Equal(t, types.MinorUnits(-5000), out.Amount)
	assert.Equal(t, from, out.AccountID)
	require.NotNil(t, out.RelatedAccountID)
	assert.Equal(t, to, *out.RelatedAccountID)

	assert.Equal(t, TypeTransferIn, in.Type)
	assert.Equal(t, types.MinorUnits(5000), in.Amount)
	assert.Equal(t, to, in.AccountID)
	require.NotNil(t, in.RelatedAccountID)
	assert.Equal(t, from, *in.RelatedAccountID)
}

func TestTransfer_RejectsSameAccount(t *testing.T) {
	svc := NewService(&fakeRepo{}, &richAccounts{}, &noopTxManager{})
	acc := id.New()

	_, _, err := svc.Transfer(context.Background(), acc, acc, 100, time.Now(), nil)
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
}

func TestTransfer_RejectsInsufficientFunds(t *testing.T) {
	from := id.New()
	to := id.New()
	repo := &fakeRepo{}
	accounts := &fakeAccounts{balances: map[id.ID]types.MinorUnits{
		from: 300,
		to:   0,
	}}
	svc := NewService(repo, accounts, &noopTxManager{})

	_, _, err := svc.Transfer(context.Background(), from, to, 500, time.Now(), nil)
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeInsufficientFunds, appErr.Code)
	assert.Empty(t, repo.entries)
}

func TestTransfer_RejectsUnknownAccount(t *testing.T) {
	from := id.New()
	accounts := &fakeAccounts{balances: map[id.ID]types.MinorUnits{from: 1000}}
	svc := NewService(&fakeRepo{}, accounts, &noopTxManager{})

	_, _, err := svc.Transfer(context.Background(), from, id.New(), 100, time.Now(), nil)
	require.Error(t, err)
}

func TestRecord_NormalizesOutflowSign(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, &richAccounts{}, &noopTxManager{})

	entry := NewAccountTransaction(id.New(), TypeExpense, time.Now(), 750)
	require.NoError(t, svc.Record(context.Background(), entry))
	assert.Equal(t, types.MinorUnits(-750), entry.Amount)
}

func TestRecord_RejectsBareTransferType(t *testing.T) {
	svc := NewService(&fakeRepo{}, &richAccounts{}, &noopTxManager{})

	entry := NewAccountTransaction(id.New(), TypeTransferOut, time.Now(), 100)
	err := svc.Record(context.Background(), entry)
	require.Error(t, err)
}

func TestDelete_RejectsTransferHalf(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, &richAccounts{}, &noopTxManager{})

	out, _, err := svc.Transfer(context.Background(), id.New(), id.New(), 100, time.Now(), nil)
	require.NoError(t, err)

	err = svc.Delete(context.Background(), out.ID)
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeBusinessRule, appErr.Code)
}
