package domain

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetPeriod represents the nominal period of a budget.
// It is informational and does not currently gate the spent computation.
type BudgetPeriod string

const (
	BudgetPeriodWeekly  BudgetPeriod = "weekly"
	BudgetPeriodMonthly BudgetPeriod = "monthly"
	BudgetPeriodYearly  BudgetPeriod = "yearly"
)

var (
	ErrInvalidLimit          = errors.New("budget limit must be positive")
	ErrInvalidBudgetPeriod   = errors.New("budget period must be weekly, monthly or yearly")
	ErrInvalidAlertThreshold = errors.New("alert threshold must be between 0 and 100")
)

// Budget represents a spending limit for a category.
//
// Spent is a cache hint only: the authoritative value is always recomputed
// from the transaction list at read time (sum of expense amounts whose
// category equals Category, exact case-sensitive match). A stale stored
// Spent must never be trusted over recomputation.
type Budget struct {
	ID             uuid.UUID       `json:"id"`
	Category       string          `json:"category"`
	Limit          decimal.Decimal `json:"limit"`
	Spent          decimal.Decimal `json:"spent"`
	Period         BudgetPeriod    `json:"period"`
	AlertThreshold decimal.Decimal `json:"alertThreshold"`
}

// Validate ensures the budget adheres to domain rules
// Returns an error if validation fails
func (b *Budget) Validate() error {
	if b.Category == "" {
		return ErrEmptyCategory
	}
	if b.Limit.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidLimit
	}
	switch b.Period {
	case BudgetPeriodWeekly, BudgetPeriodMonthly, BudgetPeriodYearly:
	default:
		return ErrInvalidBudgetPeriod
	}
	if b.AlertThreshold.IsNegative() || b.AlertThreshold.GreaterThan(decimal.NewFromInt(100)) {
		return ErrInvalidAlertThreshold
	}
	return nil
}
