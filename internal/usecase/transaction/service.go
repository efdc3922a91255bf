package transaction

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
	Transactions() []domain.Transaction
	ReplaceTransactions(ctx context.Context, transactions []domain.Transaction) error
}

// AddInput represents the input for recording a transaction. Amount and
// Date arrive as strings, the way forms deliver them; values that fail to
// parse reject the mutation instead of being stored as zero.
type AddInput struct {
	Type               string
	Amount             string
	Category           string
	Description        string
	Date               string
	Tags               []string
	Recurring          bool
	RecurringFrequency string
}

// Service records transactions. Transactions are immutable once created;
// no update or delete is exposed.
type Service struct {
	store Store
	log   zerolog.Logger
}

// NewService creates a new Service instance
func NewService(store Store, log zerolog.Logger) *Service {
	return &Service{store: store, log: log}
}

// Add validates the input, assigns a fresh id and prepends the new
// transaction to the list (newest-first is a list invariant), then
// persists the collection. On any error the collection is untouched.
func (s *Service) Add(ctx context.Context, input AddInput) (*domain.Transaction, error) {
	amount, err := decimal.NewFromString(input.Amount)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidAmount, input.Amount)
	}

	date, err := domain.ParseDate(input.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidDate, input.Date)
	}

	tx := domain.Transaction{
		ID:                 uuid.New(),
		Type:               domain.TransactionType(input.Type),
		Amount:             amount,
		Category:           input.Category,
		Description:        input.Description,
		Date:               date,
		Tags:               input.Tags,
		Recurring:          input.Recurring,
		RecurringFrequency: domain.Frequency(input.RecurringFrequency),
	}
	tx.Normalize()
	if err := tx.Validate(); err != nil {
		return nil, err
	}

	current := s.store.Transactions()
	updated := make([]domain.Transaction, 0, len(current)+1)
	updated = append(updated, tx)
	updated = append(updated, current...)

	if err := s.store.ReplaceTransactions(ctx, updated); err != nil {
		return nil, fmt.Errorf("persist transactions: %w", err)
	}

	s.log.Debug().
		Str("id", tx.ID.String()).
		Str("type", string(tx.Type)).
		Str("category", tx.Category).
		Str("amount", tx.Amount.String()).
		Msg("transaction recorded")

	return &tx, nil
}
