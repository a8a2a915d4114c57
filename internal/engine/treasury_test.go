package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTreasury(t *testing.T) {
	tr := NewTreasury(10)

	require.NoError(t, tr.Debit(4))
	assert.Equal(t, 6, tr.Balance())

	require.NoError(t, tr.Credit(2))
	assert.Equal(t, 8, tr.Balance())

	assert.ErrorIs(t, tr.Debit(9), ErrInsufficientFunds)
	assert.Equal(t, 8, tr.Balance())

	assert.ErrorIs(t, tr.Credit(0), ErrIllegalMove)
	assert.ErrorIs(t, tr.Debit(-1), ErrIllegalMove)
}
