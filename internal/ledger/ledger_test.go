package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/payment-engine/internal/domain"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCreateAndLookup(t *testing.T) {
	l := New()

	assert.Nil(t, l.Lookup(1))

	acc, err := l.Create(1, dec("10.5"))
	require.NoError(t, err)
	assert.True(t, acc.Available().Equal(dec("10.5")))
	assert.True(t, acc.Held().IsZero())
	assert.False(t, acc.Locked())

	assert.Same(t, acc, l.Lookup(1))

	_, err = l.Create(1, dec("1"))
	assert.Error(t, err)
}

func TestCreditDebit(t *testing.T) {
	l := New()
	acc, err := l.Create(1, dec("2"))
	require.NoError(t, err)

	acc.Credit(dec("3.25"))
	assert.True(t, acc.Available().Equal(dec("5.25")))

	acc.Debit(dec("1.25"))
	assert.True(t, acc.Available().Equal(dec("4")))
}

func TestHold(t *testing.T) {
	tests := []struct {
		name          string
		available     string
		hold          string
		wantAvailable string
		wantHeld      string
	}{
		{
			name:          "moves funds from available to held",
			available:     "10",
			hold:          "4",
			wantAvailable: "6",
			wantHeld:      "4",
		},
		{
			name:          "available may go negative",
			available:     "1",
			hold:          "5",
			wantAvailable: "-4",
			wantHeld:      "5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New()
			acc, err := l.Create(1, dec(tt.available))
			require.NoError(t, err)

			acc.Hold(dec(tt.hold))

			assert.True(t, acc.Available().Equal(dec(tt.wantAvailable)))
			assert.True(t, acc.Held().Equal(dec(tt.wantHeld)))
		})
	}
}

func TestRelease(t *testing.T) {
	l := New()
	acc, err := l.Create(1, dec("10"))
	require.NoError(t, err)
	acc.Hold(dec("4"))

	err = acc.Release(dec("5"))
	assert.ErrorIs(t, err, domain.ErrInsufficientHeldFunds)
	assert.True(t, acc.Available().Equal(dec("6")), "failed release must not mutate")
	assert.True(t, acc.Held().Equal(dec("4")))

	require.NoError(t, acc.Release(dec("4")))
	assert.True(t, acc.Available().Equal(dec("10")))
	assert.True(t, acc.Held().IsZero())
}

func TestClearHeld(t *testing.T) {
	l := New()
	acc, err := l.Create(1, dec("10"))
	require.NoError(t, err)
	acc.Hold(dec("4"))

	err = acc.ClearHeld(dec("5"))
	assert.ErrorIs(t, err, domain.ErrInsufficientHeldFunds)
	assert.True(t, acc.Held().Equal(dec("4")), "failed clear must not mutate")

	require.NoError(t, acc.ClearHeld(dec("4")))
	assert.True(t, acc.Held().IsZero())
	assert.True(t, acc.Available().Equal(dec("6")), "cleared funds never return to available")
}

func TestLock(t *testing.T) {
	l := New()
	acc, err := l.Create(1, dec("1"))
	require.NoError(t, err)

	acc.Lock()
	assert.True(t, acc.Locked())
}

func TestSnapshot(t *testing.T) {
	l := New()
	for _, id := range []domain.ClientID{3, 1, 2} {
		_, err := l.Create(id, dec("1"))
		require.NoError(t, err)
	}
	l.Lookup(2).Hold(dec("0.5"))
	l.Lookup(3).Lock()

	rows := l.Snapshot()
	require.Len(t, rows, 3)

	assert.Equal(t, domain.ClientID(1), rows[0].ClientID)
	assert.Equal(t, domain.ClientID(2), rows[1].ClientID)
	assert.Equal(t, domain.ClientID(3), rows[2].ClientID)

	assert.True(t, rows[1].Available.Equal(dec("0.5")))
	assert.True(t, rows[1].Held.Equal(dec("0.5")))
	assert.True(t, rows[1].Total.Equal(dec("1")), "total is available plus held")
	assert.True(t, rows[2].Locked)
}
