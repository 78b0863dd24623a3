package purchase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paperdesk/internal/domain/shared/money"
)

func TestNewPurchase(t *testing.T) {
	p, err := NewPurchase(1, 2, money.NewMoney(1250, "USD"))
	require.NoError(t, err)

	assert.Equal(t, StatusPending, p.Status())
	assert.False(t, p.GrantsOwnership())
	assert.Equal(t, int64(1250), p.AmountPaid().AmountInCents())
}

func TestNewPurchase_Validation(t *testing.T) {
	_, err := NewPurchase(0, 2, money.NewMoney(100, "USD"))
	assert.EqualError(t, err, "user ID is required")

	_, err = NewPurchase(1, 0, money.NewMoney(100, "USD"))
	assert.EqualError(t, err, "paper ID is required")
}

func TestPurchase_Complete(t *testing.T) {
	p, err := NewPurchase(1, 2, money.NewMoney(1250, "USD"))
	require.NoError(t, err)

	require.NoError(t, p.Complete("TXN_123"))
	assert.Equal(t, StatusCompleted, p.Status())
	assert.Equal(t, "TXN_123", p.TransactionID())
	assert.True(t, p.GrantsOwnership())

	// terminal records are immutable
	assert.ErrorIs(t, p.Complete("TXN_456"), ErrTerminalState)
	assert.ErrorIs(t, p.Fail(), ErrTerminalState)
}

func TestPurchase_Fail(t *testing.T) {
	p, err := NewPurchase(1, 2, money.NewMoney(1250, "USD"))
	require.NoError(t, err)

	require.NoError(t, p.Fail())
	assert.Equal(t, StatusFailed, p.Status())
	assert.False(t, p.GrantsOwnership())

	assert.ErrorIs(t, p.Complete("TXN_123"), ErrTerminalState)
}

func TestReconstructPurchase(t *testing.T) {
	now := time.Now()
	p, err := ReconstructPurchase(5, 1, 2, money.NewMoney(1250, "USD"), StatusCompleted, "TXN_1", now)
	require.NoError(t, err)
	assert.Equal(t, uint(5), p.ID())
	assert.True(t, p.GrantsOwnership())

	_, err = ReconstructPurchase(5, 1, 2, money.NewMoney(1250, "USD"), Status("bogus"), "", now)
	assert.Error(t, err)
}

func TestParseStatus(t *testing.T) {
	s, err := ParseStatus("completed")
	require.NoError(t, err)
	assert.True(t, s.IsTerminal())

	_, err = ParseStatus("unknown")
	assert.Error(t, err)
}
