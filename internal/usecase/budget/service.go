package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"financehub/internal/domain"
	"financehub/internal/usecase/dashboard"
)

// Alert threshold applied when the caller does not set one.
const defaultAlertThreshold = 80

// Store is the slice of the state container this service needs. The
// transaction list is read to derive the initial spent value.
type Store interface {
	Transactions() []domain.Transaction
	Budgets() []domain.Budget
	ReplaceBudgets(ctx context.Context, budgets []domain.Budget) error
}

// AddInput represents the input for creating a budget. Limit and
// AlertThreshold arrive as strings; Period defaults to monthly and
// AlertThreshold to 80 when left empty.
type AddInput struct {
	Category       string
	Limit          string
	Period         domain.BudgetPeriod
	AlertThreshold string
}

// Service manages budgets.
type Service struct {
	store Store
	log   zerolog.Logger
}

// NewService creates a new Service instance
func NewService(store Store, log zerolog.Logger) *Service {
	return &Service{store: store, log: log}
}

// Add validates the input and appends a new budget. The initial Spent is
// derived from the current transaction list, never taken from the caller.
func (s *Service) Add(ctx context.Context, input AddInput) (*domain.Budget, error) {
	limit, err := decimal.NewFromString(input.Limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidAmount, input.Limit)
	}

	period := input.Period
	if period == "" {
		period = domain.BudgetPeriodMonthly
	}

	threshold := decimal.NewFromInt(defaultAlertThreshold)
	if input.AlertThreshold != "" {
		threshold, err = decimal.NewFromString(input.AlertThreshold)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidAmount, input.AlertThreshold)
		}
	}

	budget := domain.Budget{
		ID:             uuid.New(),
		Category:       input.Category,
		Limit:          limit,
		Spent:          dashboard.BudgetSpent(s.store.Transactions(), input.Category),
		Period:         period,
		AlertThreshold: threshold,
	}
	if err := budget.Validate(); err != nil {
		return nil, err
	}

	current := s.store.Budgets()
	updated := make([]domain.Budget, 0, len(current)+1)
	updated = append(updated, current...)
	updated = append(updated, budget)

	if err := s.store.ReplaceBudgets(ctx, updated); err != nil {
		return nil, fmt.Errorf("persist budgets: %w", err)
	}

	s.log.Debug().
		Str("id", budget.ID.String()).
		Str("category", budget.Category).
		Str("limit", budget.Limit.String()).
		Msg("budget created")

	return &budget, nil
}

// UpdateLimit replaces only the limit of the matching budget. An unknown
// id is a benign no-op and returns (nil, nil).
func (s *Service) UpdateLimit(ctx context.Context, id uuid.UUID, newLimit string) (*domain.Budget, error) {
	limit, err := decimal.NewFromString(newLimit)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidAmount, newLimit)
	}

	current := s.store.Budgets()
	index := -1
	for i := range current {
		if current[i].ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		return nil, nil
	}

	updated := make([]domain.Budget, len(current))
	copy(updated, current)
	updated[index].Limit = limit
	if err := updated[index].Validate(); err != nil {
		return nil, err
	}

	if err := s.store.ReplaceBudgets(ctx, updated); err != nil {
		return nil, fmt.Errorf("persist budgets: %w", err)
	}

	s.log.Debug().
		Str("id", id.String()).
		Str("limit", limit.String()).
		Msg("budget limit updated")

	return &updated[index], nil
}

// Delete removes the matching budget. An unknown id is a benign no-op.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	current := s.store.Budgets()
	updated := make([]domain.Budget, 0, len(current))
	for _, b := range current {
		if b.ID != id {
			updated = append(updated, b)
		}
	}
	if len(updated) == len(current) {
		return nil
	}

	if err := s.store.ReplaceBudgets(ctx, updated); err != nil {
		return fmt.Errorf("persist budgets: %w", err)
	}

	s.log.Debug().Str("id", id.String()).Msg("budget deleted")
	return nil
}
