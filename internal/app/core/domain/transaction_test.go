package domain

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransaction(t *testing.T) {
	tx := NewTransaction(TransactionTypePurchase, 25, "Book", 75)
	assert.NotEqual(t, uuid.Nil, tx.ID)
	assert.NotZero(t, tx.CreatedAt)

	other := NewTransaction(TransactionTypePurchase, 25, "Book", 75)
	assert.NotEqual(t, tx.ID, other.ID)
}

func TestTransactionJSONUsesTypeName(t *testing.T) {
	tx := NewTransaction(TransactionTypeDeposit, 10, "", 10)
	data, err := json.Marshal(tx)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"type":"deposit"`)
	assert.NotContains(t, string(data), "description")

	var decoded Transaction
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *tx, decoded)
}

func TestTransactionTypeUnknown(t *testing.T) {
	var tt TransactionType
	require.Error(t, tt.UnmarshalText([]byte("transfer")))
	assert.Equal(t, "TransactionType(9)", TransactionType(9).String())
}
