package domain

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GoalCategory represents the kind of financial goal
type GoalCategory string

const (
	GoalCategorySavings    GoalCategory = "savings"
	GoalCategoryDebt       GoalCategory = "debt"
	GoalCategoryInvestment GoalCategory = "investment"
	GoalCategoryPurchase   GoalCategory = "purchase"
)

// GoalPriority represents the priority of a goal
type GoalPriority string

const (
	GoalPriorityLow    GoalPriority = "low"
	GoalPriorityMedium GoalPriority = "medium"
	GoalPriorityHigh   GoalPriority = "high"
)

var (
	ErrEmptyTitle          = errors.New("goal title cannot be empty")
	ErrInvalidTargetAmount = errors.New("goal target amount must be positive")
	ErrMissingTargetDate   = errors.New("goal target date is required")
	ErrInvalidGoalCategory = errors.New("goal category must be savings, debt, investment or purchase")
	ErrInvalidGoalPriority = errors.New("goal priority must be low, medium or high")
)

// Goal represents a savings or investment target.
type Goal struct {
	ID            uuid.UUID       `json:"id"`
	Title         string          `json:"title"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	TargetDate    Date            `json:"targetDate"`
	Category      GoalCategory    `json:"category"`
	Priority      GoalPriority    `json:"priority"`
	Description   string          `json:"description,omitempty"`
}

// Validate ensures the goal adheres to domain rules
// Returns an error if validation fails
func (g *Goal) Validate() error {
	if g.Title == "" {
		return ErrEmptyTitle
	}
	if g.TargetAmount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidTargetAmount
	}
	if g.CurrentAmount.IsNegative() {
		return ErrNegativeAmount
	}
	if g.TargetDate.IsZero() {
		return ErrMissingTargetDate
	}
	switch g.Category {
	case GoalCategorySavings, GoalCategoryDebt, GoalCategoryInvestment, GoalCategoryPurchase:
	default:
		return ErrInvalidGoalCategory
	}
	switch g.Priority {
	case GoalPriorityLow, GoalPriorityMedium, GoalPriorityHigh:
	default:
		return ErrInvalidGoalPriority
	}
	return nil
}
