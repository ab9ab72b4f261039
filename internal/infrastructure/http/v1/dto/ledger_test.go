package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledgerbook/internal/core/apperror"
	"ledgerbook/internal/core/id"
	"ledgerbook/internal/core/types"
	"ledgerbook/internal/domain/ledger"
)

func TestCreateCustomerTransactionRequest_ToEntity(t *testing.T) {
	customerID := id.New()
	req := CreateCustomerTransactionRequest{
		Type:      ledger.TypeSale,
		EntryDate: "2024-03-15",
		Amount:    types.MinorUnits(2500),
	}

	tx, err := req.ToEntity(customerID)
	require.NoError(t, err)
	assert.Equal(t, customerID, tx.CustomerID)
	assert.Equal(t, ledger.TypeSale, tx.Type)
	assert.Equal(t, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), tx.EntryDate)
}

func TestCreateCustomerTransactionRequest_RejectsMalformedDate(t *testing.T) {
	req := CreateCustomerTransactionRequest{
		Type:      ledger.TypePayment,
		EntryDate: "15/03/2024",
		Amount:    types.MinorUnits(100),
	}

	_, err := req.ToEntity(id.New())
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
}

func TestCreateTransactionRequest_ParsesBodyCustomer(t *testing.T) {
	customerID := id.New()
	req := CreateTransactionRequest{
		CreateCustomerTransactionRequest: CreateCustomerTransactionRequest{
			Type:      ledger.TypeSale,
			EntryDate: "2024-01-02",
			Amount:    types.MinorUnits(900),
		},
		CustomerID: customerID.String(),
	}

	tx, err := req.ToEntity()
	require.NoError(t, err)
	assert.Equal(t, customerID, tx.CustomerID)
}

func TestCreateTransactionRequest_RejectsBadCustomerID(t *testing.T) {
	req := CreateTransactionRequest{
		CreateCustomerTransactionRequest: CreateCustomerTransactionRequest{
			Type:      ledger.TypeSale,
			EntryDate: "2024-01-02",
			Amount:    types.MinorUnits(900),
		},
		CustomerID: "not-a-uuid",
	}

	_, err := req.ToEntity()
	require.Error(t, err)
}
