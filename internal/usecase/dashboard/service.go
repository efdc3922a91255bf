package dashboard

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"financehub/internal/domain"
)

// Number of transactions shown in the recent-activity section.
const recentLimit = 5

// Store is the read surface the dashboard consumes.
type Store interface {
	Transactions() []domain.Transaction
	Budgets() []domain.Budget
	Goals() []domain.Goal
	Accounts() []domain.Account
}

// BudgetReport is a budget with its derived consumption values. Spent is
// recomputed from the transaction list, never read from storage.
type BudgetReport struct {
	Budget         domain.Budget
	Spent          decimal.Decimal
	RawPercent     decimal.Decimal // used for over-budget detection
	DisplayPercent decimal.Decimal // clamped for progress bars
	Status         Status
}

// GoalReport is a goal with its derived progress values.
type GoalReport struct {
	Goal     domain.Goal
	Progress Progress
}

// CategoryShare is one category's slice of total expenses.
type CategoryShare struct {
	Category string
	Amount   decimal.Decimal
	Percent  decimal.Decimal
}

// Overview is the full derived snapshot consumed by the presentation
// layer: monthly totals, net worth, per-budget and per-goal reports,
// recent activity, expense breakdown and the 30-day series.
type Overview struct {
	Month    MonthSummary
	Savings  decimal.Decimal
	NetWorth decimal.Decimal
	Budgets  []BudgetReport
	Goals    []GoalReport
	Recent   []domain.Transaction
	Spending []CategoryShare
	Series   []DayTotals
}

// Service assembles dashboard overviews from the current state.
type Service struct {
	store Store
	now   func() time.Time
}

// NewService creates a new Service instance. A nil clock defaults to
// time.Now; tests inject a fixed clock for determinism.
func NewService(store Store, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{store: store, now: now}
}

// Overview recomputes every derived view from the current collections.
func (s *Service) Overview() Overview {
	transactions := s.store.Transactions()
	accounts := s.store.Accounts()
	today := domain.DateOf(s.now())

	month := MonthTotals(transactions, today.Month(), today.Year())

	recent := transactions
	if len(recent) > recentLimit {
		recent = recent[:recentLimit]
	}

	return Overview{
		Month:    month,
		Savings:  month.Savings(),
		NetWorth: NetWorth(accounts),
		Budgets:  s.BudgetReports(),
		Goals:    s.GoalReports(),
		Recent:   recent,
		Spending: expenseShares(transactions),
		Series:   DailySeries(transactions, 30, today),
	}
}

// BudgetReports recomputes spent and status for every budget.
func (s *Service) BudgetReports() []BudgetReport {
	transactions := s.store.Transactions()
	budgets := s.store.Budgets()

	reports := make([]BudgetReport, 0, len(budgets))
	for _, budget := range budgets {
		spent := BudgetSpent(transactions, budget.Category)
		raw := BudgetPercent(spent, budget.Limit)
		reports = append(reports, BudgetReport{
			Budget:         budget,
			Spent:          spent,
			RawPercent:     raw,
			DisplayPercent: ClampPercent(raw),
			Status:         BudgetStatus(spent, budget.Limit, budget.AlertThreshold),
		})
	}
	return reports
}

// GoalReports computes progress for every goal against today.
func (s *Service) GoalReports() []GoalReport {
	goals := s.store.Goals()
	today := domain.DateOf(s.now())

	reports := make([]GoalReport, 0, len(goals))
	for _, goal := range goals {
		reports = append(reports, GoalReport{
			Goal:     goal,
			Progress: GoalProgress(goal, today),
		})
	}
	return reports
}

// expenseShares breaks total expenses down per category, largest first.
func expenseShares(transactions []domain.Transaction) []CategoryShare {
	totals := CategoryTotals(transactions, domain.TransactionTypeExpense)

	total := decimal.Zero
	for _, amount := range totals {
		total = total.Add(amount)
	}

	shares := make([]CategoryShare, 0, len(totals))
	for category, amount := range totals {
		percent := decimal.Zero
		if total.GreaterThan(decimal.Zero) {
			percent = amount.Div(total).Mul(hundred)
		}
		shares = append(shares, CategoryShare{Category: category, Amount: amount, Percent: percent})
	}

	sort.Slice(shares, func(i, j int) bool {
		if !shares[i].Amount.Equal(shares[j].Amount) {
			return shares[i].Amount.GreaterThan(shares[j].Amount)
		}
		return shares[i].Category < shares[j].Category
	})
	return shares
}
