package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"financehub/internal/domain"
)

// Store is the slice of the state container this service needs.
type Store interface {
	Goals() []domain.Goal
	ReplaceGoals(ctx context.Context, goals []domain.Goal) error
}

// AddInput represents the input for creating a goal. TargetAmount and
// TargetDate arrive as strings; Category defaults to savings and
// Priority to medium when left empty, matching the entry form defaults.
type AddInput struct {
	Title        string
	TargetAmount string
	TargetDate   string
	Category     domain.GoalCategory
	Priority     domain.GoalPriority
	Description  string
}

// Service manages goals.
type Service struct {
	store Store
	log   zerolog.Logger
}

// NewService creates a new Service instance
func NewService(store Store, log zerolog.Logger) *Service {
	return &Service{store: store, log: log}
}

// Add validates the input and appends a new goal. CurrentAmount always
// starts at zero; there is no contribution mechanism in the core.
func (s *Service) Add(ctx context.Context, input AddInput) (*domain.Goal, error) {
	target, err := decimal.NewFromString(input.TargetAmount)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidAmount, input.TargetAmount)
	}

	targetDate, err := domain.ParseDate(input.TargetDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidDate, input.TargetDate)
	}

	category := input.Category
	if category == "" {
		category = domain.GoalCategorySavings
	}
	priority := input.Priority
	if priority == "" {
		priority = domain.GoalPriorityMedium
	}

	g := domain.Goal{
		ID:            uuid.New(),
		Title:         input.Title,
		TargetAmount:  target,
		CurrentAmount: decimal.Zero,
		TargetDate:    targetDate,
		Category:      category,
		Priority:      priority,
		Description:   input.Description,
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}

	current := s.store.Goals()
	updated := make([]domain.Goal, 0, len(current)+1)
	updated = append(updated, current...)
	updated = append(updated, g)

	if err := s.store.ReplaceGoals(ctx, updated); err != nil {
		return nil, fmt.Errorf("persist goals: %w", err)
	}

	s.log.Debug().
		Str("id", g.ID.String()).
		Str("title", g.Title).
		Str("target", g.TargetAmount.String()).
		Msg("goal created")

	return &g, nil
}

// Delete removes the matching goal. An unknown id is a benign no-op.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	current := s.store.Goals()
	updated := make([]domain.Goal, 0, len(current))
	for _, g := range current {
		if g.ID != id {
			updated = append(updated, g)
		}
	}
	if len(updated) == len(current) {
		return nil
	}

	if err := s.store.ReplaceGoals(ctx, updated); err != nil {
		return fmt.Errorf("persist goals: %w", err)
	}

	s.log.Debug().Str("id", id.String()).Msg("goal deleted")
	return nil
}
