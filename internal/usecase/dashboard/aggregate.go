// Package dashboard computes the derived views over the collections:
// category breakdowns, monthly totals, net worth, budget status, goal
// progress and the trailing daily series. Everything in this file is a
// pure function recomputed on every read; nothing caches.
package dashboard

import (
	"time"

	"github.com/shopspring/decimal"

	"financehub/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// CategoryTotals groups transactions of the given type by category and
// sums their amounts. Category matching everywhere in this package is
// exact and case-sensitive; no trimming or case-folding is performed.
func CategoryTotals(transactions []domain.Transaction, txType domain.TransactionType) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, tx := range transactions {
		if tx.Type != txType {
			continue
		}
		totals[tx.Category] = totals[tx.Category].Add(tx.Amount)
	}
	return totals
}

// BudgetSpent returns the sum of expense amounts in the given category.
// This is the authoritative value for Budget.Spent; stored values are
// never trusted over this recomputation.
func BudgetSpent(transactions []domain.Transaction, category string) decimal.Decimal {
	spent := decimal.Zero
	for _, tx := range transactions {
		if tx.Type == domain.TransactionTypeExpense && tx.Category == category {
			spent = spent.Add(tx.Amount)
		}
	}
	return spent
}

// MonthSummary holds the income and expense totals of one calendar month.
type MonthSummary struct {
	Income   decimal.Decimal
	Expenses decimal.Decimal
}

// Savings returns income minus expenses.
func (m MonthSummary) Savings() decimal.Decimal {
	return m.Income.Sub(m.Expenses)
}

// MonthTotals sums transactions whose date falls in the given calendar
// month and year.
func MonthTotals(transactions []domain.Transaction, month time.Month, year int) MonthSummary {
	summary := MonthSummary{Income: decimal.Zero, Expenses: decimal.Zero}
	for _, tx := range transactions {
		if !tx.InMonth(month, year) {
			continue
		}
		switch tx.Type {
		case domain.TransactionTypeIncome:
			summary.Income = summary.Income.Add(tx.Amount)
		case domain.TransactionTypeExpense:
			summary.Expenses = summary.Expenses.Add(tx.Amount)
		}
	}
	return summary
}

// NetWorth returns the signed sum of account balances.
func NetWorth(accounts []domain.Account) decimal.Decimal {
	total := decimal.Zero
	for _, account := range accounts {
		total = total.Add(account.Balance)
	}
	return total
}

// Status classifies how far a budget has been consumed.
type Status string

const (
	StatusOK      Status = "ok"
	StatusWarning Status = "warning"
	StatusOver    Status = "over"
)

// BudgetPercent returns spent/limit as a raw percentage. A zero or
// negative limit is a guarded case and yields 0 rather than an undefined
// ratio. The raw value is not clamped; use ClampPercent for display.
func BudgetPercent(spent, limit decimal.Decimal) decimal.Decimal {
	if limit.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return spent.Div(limit).Mul(hundred)
}

// ClampPercent bounds a percentage to [0, 100] for progress-bar display.
func ClampPercent(percent decimal.Decimal) decimal.Decimal {
	if percent.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	if percent.GreaterThan(hundred) {
		return hundred
	}
	return percent
}

// BudgetStatus classifies consumption against the alert threshold.
// Both comparisons are inclusive: exactly 100% is over, exactly the
// threshold is a warning.
func BudgetStatus(spent, limit, alertThreshold decimal.Decimal) Status {
	percent := BudgetPercent(spent, limit)
	if percent.GreaterThanOrEqual(hundred) {
		return StatusOver
	}
	if percent.GreaterThanOrEqual(alertThreshold) {
		return StatusWarning
	}
	return StatusOK
}

// Progress describes how far along a goal is at a given date.
type Progress struct {
	Percent  decimal.Decimal // clamped to [0, 100]
	DaysLeft int             // negative when the target date has passed
	Overdue  bool
}

// GoalProgress computes the completion percentage and days remaining.
// The percentage is clamped even when CurrentAmount exceeds TargetAmount;
// DaysLeft is never clamped. A zero or negative target amount is guarded
// and yields 0%.
func GoalProgress(goal domain.Goal, today domain.Date) Progress {
	percent := decimal.Zero
	if goal.TargetAmount.GreaterThan(decimal.Zero) {
		percent = ClampPercent(goal.CurrentAmount.Div(goal.TargetAmount).Mul(hundred))
	}
	daysLeft := today.DaysUntil(goal.TargetDate)
	return Progress{
		Percent:  percent,
		DaysLeft: daysLeft,
		Overdue:  daysLeft <= 0,
	}
}

// DayTotals is one entry of the trailing daily series.
type DayTotals struct {
	Date     domain.Date
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Net      decimal.Decimal
}

// DailySeries returns one entry per calendar day for the trailing window
// of the given length ending at today inclusive, in chronological order.
// Days without transactions appear with zero sums; the result always has
// exactly days entries.
func DailySeries(transactions []domain.Transaction, days int, today domain.Date) []DayTotals {
	if days <= 0 {
		return []DayTotals{}
	}

	start := today.AddDays(-(days - 1))
	series := make([]DayTotals, days)
	for i := range series {
		series[i] = DayTotals{
			Date:     start.AddDays(i),
			Income:   decimal.Zero,
			Expenses: decimal.Zero,
			Net:      decimal.Zero,
		}
	}

	for _, tx := range transactions {
		offset := start.DaysUntil(tx.Date)
		if offset < 0 || offset >= days {
			continue
		}
		switch tx.Type {
		case domain.TransactionTypeIncome:
			series[offset].Income = series[offset].Income.Add(tx.Amount)
		case domain.TransactionTypeExpense:
			series[offset].Expenses = series[offset].Expenses.Add(tx.Amount)
		}
	}

	for i := range series {
		series[i].Net = series[i].Income.Sub(series[i].Expenses)
	}
	return series
}
