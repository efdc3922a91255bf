package domain

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountType represents the kind of financial account
type AccountType string

const (
	AccountTypeChecking   AccountType = "checking"
	AccountTypeSavings    AccountType = "savings"
	AccountTypeCredit     AccountType = "credit"
	AccountTypeInvestment AccountType = "investment"
)

var (
	ErrEmptyAccountName   = errors.New("account name cannot be empty")
	ErrInvalidAccountType = errors.New("account type must be checking, savings, credit or investment")
	ErrEmptyCurrency      = errors.New("account currency cannot be empty")
)

// Account represents a financial account balance. Accounts are read-mostly
// reference data: the core seeds a fixed default set on first run and
// exposes no create, update or delete operation.
type Account struct {
	ID       uuid.UUID       `json:"id"`
	Name     string          `json:"name"`
	Type     AccountType     `json:"type"`
	Balance  decimal.Decimal `json:"balance"`
	Currency string          `json:"currency"`
}

// Validate ensures the account adheres to domain rules
func (a *Account) Validate() error {
	if a.Name == "" {
		return ErrEmptyAccountName
	}
	switch a.Type {
	case AccountTypeChecking, AccountTypeSavings, AccountTypeCredit, AccountTypeInvestment:
	default:
		return ErrInvalidAccountType
	}
	if a.Currency == "" {
		return ErrEmptyCurrency
	}
	return nil
}
