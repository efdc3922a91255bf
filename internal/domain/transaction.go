package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the direction of a transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Frequency represents how often a recurring transaction repeats
type Frequency string

const (
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

// Validation errors shared by the mutation services.
var (
	ErrInvalidTransactionType = errors.New("transaction type must be income or expense")
	ErrInvalidAmount          = errors.New("amount must be a decimal number")
	ErrNegativeAmount         = errors.New("amount must not be negative")
	ErrEmptyCategory          = errors.New("category cannot be empty")
	ErrEmptyDescription       = errors.New("description cannot be empty")
	ErrMissingDate            = errors.New("date is required")
	ErrDuplicateTag           = errors.New("tags must not contain duplicates")
	ErrInvalidFrequency       = errors.New("recurring frequency must be weekly, monthly or yearly")
)

// Transaction represents a single income or expense entry.
// Transactions are immutable once created; there is no update or delete.
type Transaction struct {
	ID                 uuid.UUID       `json:"id"`
	Type               TransactionType `json:"type"`
	Amount             decimal.Decimal `json:"amount"`
	Category           string          `json:"category"`
	Description        string          `json:"description"`
	Date               Date            `json:"date"`
	Tags               []string        `json:"tags,omitempty"`
	Recurring          bool            `json:"recurring,omitempty"`
	RecurringFrequency Frequency       `json:"recurringFrequency,omitempty"`
}

// Validate ensures the transaction adheres to domain rules
// Returns an error if validation fails
func (t *Transaction) Validate() error {
	if t.Type != TransactionTypeIncome && t.Type != TransactionTypeExpense {
		return ErrInvalidTransactionType
	}
	if t.Amount.IsNegative() {
		return ErrNegativeAmount
	}
	if t.Category == "" {
		return ErrEmptyCategory
	}
	if t.Description == "" {
		return ErrEmptyDescription
	}
	if t.Date.IsZero() {
		return ErrMissingDate
	}

	seen := make(map[string]struct{}, len(t.Tags))
	for _, tag := range t.Tags {
		if _, ok := seen[tag]; ok {
			return ErrDuplicateTag
		}
		seen[tag] = struct{}{}
	}

	// RecurringFrequency is only meaningful on recurring transactions;
	// Normalize clears it otherwise.
	if t.RecurringFrequency != "" {
		switch t.RecurringFrequency {
		case FrequencyWeekly, FrequencyMonthly, FrequencyYearly:
		default:
			return ErrInvalidFrequency
		}
	}

	return nil
}

// Normalize enforces the structural invariants that are repaired rather
// than rejected: duplicate tags collapse to their first occurrence (order
// preserved) and the recurring frequency is dropped when the transaction
// is not recurring.
func (t *Transaction) Normalize() {
	if len(t.Tags) > 0 {
		seen := make(map[string]struct{}, len(t.Tags))
		deduped := t.Tags[:0]
		for _, tag := range t.Tags {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			deduped = append(deduped, tag)
		}
		t.Tags = deduped
	}
	if !t.Recurring {
		t.RecurringFrequency = ""
	}
}

// InMonth reports whether the transaction falls in the given calendar
// month and year of the local calendar.
func (t *Transaction) InMonth(month time.Month, year int) bool {
	return t.Date.Month() == month && t.Date.Year() == year
}
