package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validGoal() Goal {
	return Goal{
		ID:           uuid.New(),
		Title:        "Emergency Fund",
		TargetAmount: decimal.NewFromInt(10000),
		TargetDate:   NewDate(2025, time.June, 1),
		Category:     GoalCategorySavings,
		Priority:     GoalPriorityMedium,
	}
}

func TestGoal_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Goal)
		wantErr error
	}{
		{
			name:   "valid goal passes",
			mutate: func(g *Goal) {},
		},
		{
			name:    "empty title fails",
			mutate:  func(g *Goal) { g.Title = "" },
			wantErr: ErrEmptyTitle,
		},
		{
			name:    "zero target amount fails",
			mutate:  func(g *Goal) { g.TargetAmount = decimal.Zero },
			wantErr: ErrInvalidTargetAmount,
		},
		{
			name:    "negative current amount fails",
			mutate:  func(g *Goal) { g.CurrentAmount = decimal.NewFromInt(-5) },
			wantErr: ErrNegativeAmount,
		},
		{
			name:    "missing target date fails",
			mutate:  func(g *Goal) { g.TargetDate = Date{} },
			wantErr: ErrMissingTargetDate,
		},
		{
			name:    "unknown category fails",
			mutate:  func(g *Goal) { g.Category = "vacation" },
			wantErr: ErrInvalidGoalCategory,
		},
		{
			name:    "unknown priority fails",
			mutate:  func(g *Goal) { g.Priority = "urgent" },
			wantErr: ErrInvalidGoalPriority,
		},
		{
			name: "all categories pass",
			mutate: func(g *Goal) {
				g.Category = GoalCategoryPurchase
				g.Priority = GoalPriorityHigh
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := validGoal()
			tt.mutate(&g)
			err := g.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAccount_Validate(t *testing.T) {
	account := Account{
		ID:       uuid.New(),
		Name:     "Main Checking",
		Type:     AccountTypeChecking,
		Balance:  decimal.NewFromFloat(5420.50),
		Currency: "USD",
	}
	assert.NoError(t, account.Validate())

	noName := account
	noName.Name = ""
	assert.ErrorIs(t, noName.Validate(), ErrEmptyAccountName)

	badType := account
	badType.Type = "cash"
	assert.ErrorIs(t, badType.Validate(), ErrInvalidAccountType)

	noCurrency := account
	noCurrency.Currency = ""
	assert.ErrorIs(t, noCurrency.Validate(), ErrEmptyCurrency)
}
