package dashboard

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"financehub/internal/domain"
)

// stubStore is a fixed-snapshot Store for exercising the overview.
type stubStore struct {
	transactions []domain.Transaction
	budgets      []domain.Budget
	goals        []domain.Goal
	accounts     []domain.Account
}

func (s *stubStore) Transactions() []domain.Transaction { return s.transactions }
func (s *stubStore) Budgets() []domain.Budget           { return s.budgets }
func (s *stubStore) Goals() []domain.Goal               { return s.goals }
func (s *stubStore) Accounts() []domain.Account         { return s.accounts }

func fixedClock(d domain.Date) func() time.Time {
	return func() time.Time { return d.Time }
}

func TestService_Overview(t *testing.T) {
	today := domain.NewDate(2024, time.January, 20)
	store := &stubStore{
		transactions: []domain.Transaction{
			expense(50, "Food & Dining", domain.NewDate(2024, time.January, 15)),
			income(3000, "Salary", domain.NewDate(2024, time.January, 1)),
			expense(700, "Rent", domain.NewDate(2023, time.December, 28)), // previous month
		},
		budgets: []domain.Budget{{
			ID:             uuid.New(),
			Category:       "Food & Dining",
			Limit:          decimal.NewFromInt(200),
			Spent:          decimal.NewFromInt(9999), // stale stored value, must be ignored
			Period:         domain.BudgetPeriodMonthly,
			AlertThreshold: decimal.NewFromInt(80),
		}},
		goals: []domain.Goal{{
			ID:            uuid.New(),
			Title:         "Emergency Fund",
			TargetAmount:  decimal.NewFromInt(10000),
			CurrentAmount: decimal.NewFromInt(2500),
			TargetDate:    domain.NewDate(2024, time.June, 1),
			Category:      domain.GoalCategorySavings,
			Priority:      domain.GoalPriorityHigh,
		}},
		accounts: []domain.Account{
			{ID: uuid.New(), Name: "Checking", Type: domain.AccountTypeChecking, Balance: decimal.NewFromInt(5000), Currency: "USD"},
			{ID: uuid.New(), Name: "Savings", Type: domain.AccountTypeSavings, Balance: decimal.NewFromInt(1000), Currency: "USD"},
		},
	}

	overview := NewService(store, fixedClock(today)).Overview()

	assert.True(t, overview.Month.Income.Equal(decimal.NewFromInt(3000)))
	assert.True(t, overview.Month.Expenses.Equal(decimal.NewFromInt(50)), "december expense excluded")
	assert.True(t, overview.Savings.Equal(decimal.NewFromInt(2950)))
	assert.True(t, overview.NetWorth.Equal(decimal.NewFromInt(6000)))

	require.Len(t, overview.Budgets, 1)
	report := overview.Budgets[0]
	assert.True(t, report.Spent.Equal(decimal.NewFromInt(50)), "spent recomputed, stale stored value ignored")
	assert.True(t, report.RawPercent.Equal(decimal.NewFromInt(25)))
	assert.Equal(t, StatusOK, report.Status)

	require.Len(t, overview.Goals, 1)
	assert.True(t, overview.Goals[0].Progress.Percent.Equal(decimal.NewFromInt(25)))
	assert.False(t, overview.Goals[0].Progress.Overdue)

	assert.Len(t, overview.Recent, 3)
	require.Len(t, overview.Series, 30)
	assert.True(t, overview.Series[29].Date.Equal(today))
}

func TestService_Overview_RecentCapped(t *testing.T) {
	day := domain.NewDate(2024, time.January, 10)
	store := &stubStore{}
	for i := 0; i < 8; i++ {
		store.transactions = append(store.transactions, expense(float64(i+1), "Misc", day))
	}

	overview := NewService(store, fixedClock(day)).Overview()
	assert.Len(t, overview.Recent, recentLimit)
	assert.Equal(t, store.transactions[0].ID, overview.Recent[0].ID, "newest-first order preserved")
}

func TestExpenseShares(t *testing.T) {
	day := domain.NewDate(2024, time.January, 10)
	shares := expenseShares([]domain.Transaction{
		expense(75, "Rent", day),
		expense(25, "Food & Dining", day),
		income(500, "Salary", day),
	})

	require.Len(t, shares, 2)
	assert.Equal(t, "Rent", shares[0].Category, "largest share first")
	assert.True(t, shares[0].Percent.Equal(decimal.NewFromInt(75)))
	assert.True(t, shares[1].Percent.Equal(decimal.NewFromInt(25)))
}

func TestExpenseShares_NoExpenses(t *testing.T) {
	assert.Empty(t, expenseShares(nil))
}
