package seeder

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"financehub/internal/domain"
)

// Fixed UUIDs for the seeded accounts so a re-seed after a corrupt
// accounts entry produces the same identities.
var (
	SeedMainChecking        = uuid.MustParse("00000000-0000-0000-0000-000000000001")
	SeedSavingsAccount      = uuid.MustParse("00000000-0000-0000-0000-000000000002")
	SeedInvestmentPortfolio = uuid.MustParse("00000000-0000-0000-0000-000000000003")
)

// DefaultAccounts returns the fixed account set used when no account data
// exists in the durable store (first run or unreadable entry). Accounts
// are read-mostly reference data; the core exposes no mutation for them.
func DefaultAccounts() []domain.Account {
	return []domain.Account{
		{
			ID:       SeedMainChecking,
			Name:     "Main Checking",
			Type:     domain.AccountTypeChecking,
			Balance:  decimal.NewFromFloat(5420.50),
			Currency: "USD",
		},
		{
			ID:       SeedSavingsAccount,
			Name:     "Savings Account",
			Type:     domain.AccountTypeSavings,
			Balance:  decimal.NewFromFloat(12750.00),
			Currency: "USD",
		},
		{
			ID:       SeedInvestmentPortfolio,
			Name:     "Investment Portfolio",
			Type:     domain.AccountTypeInvestment,
			Balance:  decimal.NewFromFloat(25300.75),
			Currency: "USD",
		},
	}
}
