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

func expense(amount float64, category string, date domain.Date) domain.Transaction {
	return domain.Transaction{
		ID:          uuid.New(),
		Type:        domain.TransactionTypeExpense,
		Amount:      decimal.NewFromFloat(amount),
		Category:    category,
		Description: category + " purchase",
		Date:        date,
	}
}

func income(amount float64, category string, date domain.Date) domain.Transaction {
	tx := expense(amount, category, date)
	tx.Type = domain.TransactionTypeIncome
	return tx
}

func TestCategoryTotals(t *testing.T) {
	jan15 := domain.NewDate(2024, time.January, 15)
	transactions := []domain.Transaction{
		expense(50, "Food & Dining", jan15),
		expense(30, "Food & Dining", jan15),
		expense(1200, "Rent", jan15),
		income(3000, "Salary", jan15),
	}

	totals := CategoryTotals(transactions, domain.TransactionTypeExpense)
	require.Len(t, totals, 2)
	assert.True(t, totals["Food & Dining"].Equal(decimal.NewFromInt(80)))
	assert.True(t, totals["Rent"].Equal(decimal.NewFromInt(1200)))

	incomeTotals := CategoryTotals(transactions, domain.TransactionTypeIncome)
	require.Len(t, incomeTotals, 1)
	assert.True(t, incomeTotals["Salary"].Equal(decimal.NewFromInt(3000)))
}

func TestCategoryTotals_CaseSensitive(t *testing.T) {
	jan15 := domain.NewDate(2024, time.January, 15)
	transactions := []domain.Transaction{
		expense(10, "food", jan15),
		expense(20, "Food", jan15),
	}

	totals := CategoryTotals(transactions, domain.TransactionTypeExpense)
	require.Len(t, totals, 2, "no case folding is performed")
	assert.True(t, totals["food"].Equal(decimal.NewFromInt(10)))
	assert.True(t, totals["Food"].Equal(decimal.NewFromInt(20)))
}

func TestBudgetSpent(t *testing.T) {
	jan := domain.NewDate(2024, time.January, 10)
	transactions := []domain.Transaction{
		expense(50, "Food & Dining", jan),
		expense(25.50, "Food & Dining", jan.AddDays(3)),
		income(100, "Food & Dining", jan), // income never counts as spent
		expense(40, "Transport", jan),
	}

	spent := BudgetSpent(transactions, "Food & Dining")
	assert.True(t, spent.Equal(decimal.NewFromFloat(75.50)))

	assert.True(t, BudgetSpent(nil, "Food & Dining").IsZero())
}

func TestMonthTotals(t *testing.T) {
	transactions := []domain.Transaction{
		income(3000, "Salary", domain.NewDate(2024, time.January, 1)),
		expense(1200, "Rent", domain.NewDate(2024, time.January, 2)),
		expense(80, "Food & Dining", domain.NewDate(2024, time.January, 31)),
		expense(999, "Rent", domain.NewDate(2024, time.February, 1)),
		income(500, "Bonus", domain.NewDate(2023, time.January, 15)),
	}

	summary := MonthTotals(transactions, time.January, 2024)
	assert.True(t, summary.Income.Equal(decimal.NewFromInt(3000)))
	assert.True(t, summary.Expenses.Equal(decimal.NewFromInt(1280)))
	assert.True(t, summary.Savings().Equal(decimal.NewFromInt(1720)))
}

func TestNetWorth(t *testing.T) {
	accounts := []domain.Account{
		{ID: uuid.New(), Name: "Checking", Type: domain.AccountTypeChecking, Balance: decimal.NewFromFloat(5420.50), Currency: "USD"},
		{ID: uuid.New(), Name: "Credit", Type: domain.AccountTypeCredit, Balance: decimal.NewFromFloat(-1200.25), Currency: "USD"},
	}

	assert.True(t, NetWorth(accounts).Equal(decimal.NewFromFloat(4220.25)))
	assert.True(t, NetWorth(nil).IsZero())
}

func TestBudgetStatus(t *testing.T) {
	limit := decimal.NewFromInt(200)
	threshold := decimal.NewFromInt(80)

	tests := []struct {
		name  string
		spent decimal.Decimal
		want  Status
	}{
		{"well under", decimal.NewFromInt(50), StatusOK},
		{"just below threshold", decimal.NewFromFloat(159.99), StatusOK},
		{"exactly at threshold is warning", decimal.NewFromInt(160), StatusWarning},
		{"between threshold and limit", decimal.NewFromInt(180), StatusWarning},
		{"exactly at limit is over", decimal.NewFromInt(200), StatusOver},
		{"past limit", decimal.NewFromInt(240), StatusOver},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BudgetStatus(tt.spent, limit, threshold))
		})
	}
}

func TestBudgetPercent_ZeroLimitGuarded(t *testing.T) {
	percent := BudgetPercent(decimal.NewFromInt(50), decimal.Zero)
	assert.True(t, percent.IsZero(), "division by zero limit must yield 0, not an undefined ratio")

	assert.Equal(t, StatusOK, BudgetStatus(decimal.NewFromInt(50), decimal.Zero, decimal.NewFromInt(80)))
}

func TestBudgetPercent_RawNotClamped(t *testing.T) {
	// Scenario: budget 1000, spent 1200. Raw 120% drives over-budget
	// detection; the display value caps at 100 for progress-bar width.
	raw := BudgetPercent(decimal.NewFromInt(1200), decimal.NewFromInt(1000))
	assert.True(t, raw.Equal(decimal.NewFromInt(120)))
	assert.True(t, ClampPercent(raw).Equal(decimal.NewFromInt(100)))
	assert.Equal(t, StatusOver, BudgetStatus(decimal.NewFromInt(1200), decimal.NewFromInt(1000), decimal.NewFromInt(80)))
}

func TestGoalProgress(t *testing.T) {
	today := domain.NewDate(2024, time.March, 10)
	goal := domain.Goal{
		ID:            uuid.New(),
		Title:         "Emergency Fund",
		TargetAmount:  decimal.NewFromInt(10000),
		CurrentAmount: decimal.NewFromInt(2500),
		TargetDate:    domain.NewDate(2024, time.March, 20),
		Category:      domain.GoalCategorySavings,
		Priority:      domain.GoalPriorityHigh,
	}

	progress := GoalProgress(goal, today)
	assert.True(t, progress.Percent.Equal(decimal.NewFromInt(25)))
	assert.Equal(t, 10, progress.DaysLeft)
	assert.False(t, progress.Overdue)
}

func TestGoalProgress_ClampsPercentButNotDays(t *testing.T) {
	today := domain.NewDate(2024, time.March, 10)
	goal := domain.Goal{
		TargetAmount:  decimal.NewFromInt(1000),
		CurrentAmount: decimal.NewFromInt(1500),
		TargetDate:    domain.NewDate(2020, time.January, 1),
	}

	progress := GoalProgress(goal, today)
	assert.True(t, progress.Percent.Equal(decimal.NewFromInt(100)), "percent clamps at 100")
	assert.Less(t, progress.DaysLeft, 0, "days left stays negative when overdue")
	assert.True(t, progress.Overdue)
}

func TestGoalProgress_ZeroTargetGuarded(t *testing.T) {
	progress := GoalProgress(domain.Goal{
		TargetAmount:  decimal.Zero,
		CurrentAmount: decimal.NewFromInt(500),
		TargetDate:    domain.NewDate(2030, time.January, 1),
	}, domain.NewDate(2024, time.March, 10))

	assert.True(t, progress.Percent.IsZero())
}

func TestGoalProgress_DueTodayIsOverdue(t *testing.T) {
	today := domain.NewDate(2024, time.March, 10)
	progress := GoalProgress(domain.Goal{
		TargetAmount: decimal.NewFromInt(100),
		TargetDate:   today,
	}, today)

	assert.Equal(t, 0, progress.DaysLeft)
	assert.True(t, progress.Overdue)
}

func TestDailySeries(t *testing.T) {
	today := domain.NewDate(2024, time.March, 30)
	transactions := []domain.Transaction{
		income(100, "Salary", today),
		expense(40, "Food & Dining", today),
		expense(10, "Transport", today.AddDays(-29)), // first day of the window
		expense(99, "Rent", today.AddDays(-30)),      // outside the window
		income(5, "Gift", today.AddDays(1)),          // future, outside
	}

	series := DailySeries(transactions, 30, today)
	require.Len(t, series, 30, "always exactly days entries")

	for i := 1; i < len(series); i++ {
		assert.Equal(t, 1, series[i-1].Date.DaysUntil(series[i].Date), "chronological, one day apart")
	}

	first, last := series[0], series[29]
	assert.True(t, first.Date.Equal(today.AddDays(-29)))
	assert.True(t, first.Expenses.Equal(decimal.NewFromInt(10)))
	assert.True(t, last.Date.Equal(today))
	assert.True(t, last.Income.Equal(decimal.NewFromInt(100)))
	assert.True(t, last.Net.Equal(decimal.NewFromInt(60)))

	// Untouched days carry explicit zeros.
	assert.True(t, series[10].Income.IsZero())
	assert.True(t, series[10].Expenses.IsZero())
	assert.True(t, series[10].Net.IsZero())
}

func TestDailySeries_Deterministic(t *testing.T) {
	today := domain.NewDate(2024, time.March, 30)
	transactions := []domain.Transaction{expense(40, "Food & Dining", today)}

	assert.Equal(t, DailySeries(transactions, 30, today), DailySeries(transactions, 30, today))
}

func TestDailySeries_EmptyWindow(t *testing.T) {
	assert.Empty(t, DailySeries(nil, 0, domain.NewDate(2024, time.March, 30)))
}
