package seeder

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultAccounts(t *testing.T) {
	accounts := DefaultAccounts()
	require.Len(t, accounts, 3)

	for _, account := range accounts {
		assert.NoError(t, account.Validate())
		assert.Equal(t, "USD", account.Currency)
	}

	assert.Equal(t, SeedMainChecking, accounts[0].ID)
	assert.Equal(t, "Main Checking", accounts[0].Name)
	assert.True(t, accounts[0].Balance.Equal(decimal.NewFromFloat(5420.50)))

	// Deterministic across calls.
	again := DefaultAccounts()
	assert.Equal(t, accounts, again)
}
