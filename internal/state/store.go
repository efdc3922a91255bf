// Package state holds the four in-memory collections that every reader
// and mutation service shares. The container is constructed once at the
// application root and injected explicitly; there are no ambient
// singletons.
package state

import (
	"context"
	"sync"

	"financehub/internal/domain"
)

// Gateway defines the persistence boundary the store mirrors itself to.
// Loads fail soft inside the gateway; saves are synchronous whole-document
// overwrites.
type Gateway interface {
	LoadTransactions(ctx context.Context) []domain.Transaction
	SaveTransactions(ctx context.Context, transactions []domain.Transaction) error
	LoadBudgets(ctx context.Context) []domain.Budget
	SaveBudgets(ctx context.Context, budgets []domain.Budget) error
	LoadGoals(ctx context.Context) []domain.Goal
	SaveGoals(ctx context.Context, goals []domain.Goal) error
	LoadAccounts(ctx context.Context) ([]domain.Account, bool)
	SaveAccounts(ctx context.Context, accounts []domain.Account) error
}

// Store owns the current collections. Every mutation installs a freshly
// built slice (copy-on-write), so a snapshot handed to a reader is never
// modified afterwards: readers only ever observe the state before or
// after a mutation, never a torn one. The mutex keeps snapshots safe
// against a writer on another goroutine; it does not order concurrent
// writers, which the single-threaded execution model already serializes.
type Store struct {
	mu      sync.RWMutex
	gateway Gateway

	transactions []domain.Transaction
	budgets      []domain.Budget
	goals        []domain.Goal
	accounts     []domain.Account
}

// Open restores all collections from the gateway. Collections with no
// usable stored data start empty; accounts fall back to the given seed,
// which is persisted immediately so later runs find it.
func Open(ctx context.Context, gateway Gateway, accountSeed []domain.Account) (*Store, error) {
	s := &Store{
		gateway:      gateway,
		transactions: gateway.LoadTransactions(ctx),
		budgets:      gateway.LoadBudgets(ctx),
		goals:        gateway.LoadGoals(ctx),
	}

	accounts, ok := gateway.LoadAccounts(ctx)
	if !ok {
		accounts = accountSeed
		if err := gateway.SaveAccounts(ctx, accounts); err != nil {
			return nil, err
		}
	}
	s.accounts = accounts

	return s, nil
}

// Transactions returns the current transaction snapshot, newest-first.
func (s *Store) Transactions() []domain.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.transactions
}

// Budgets returns the current budget snapshot.
func (s *Store) Budgets() []domain.Budget {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.budgets
}

// Goals returns the current goal snapshot.
func (s *Store) Goals() []domain.Goal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.goals
}

// Accounts returns the current account snapshot.
func (s *Store) Accounts() []domain.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accounts
}

// ReplaceTransactions installs a new transaction list and mirrors it to
// the durable store. On persistence failure the in-memory state is left
// unchanged.
func (s *Store) ReplaceTransactions(ctx context.Context, transactions []domain.Transaction) error {
	if err := s.gateway.SaveTransactions(ctx, transactions); err != nil {
		return err
	}
	s.mu.Lock()
	s.transactions = transactions
	s.mu.Unlock()
	return nil
}

// ReplaceBudgets installs a new budget list and mirrors it.
func (s *Store) ReplaceBudgets(ctx context.Context, budgets []domain.Budget) error {
	if err := s.gateway.SaveBudgets(ctx, budgets); err != nil {
		return err
	}
	s.mu.Lock()
	s.budgets = budgets
	s.mu.Unlock()
	return nil
}

// ReplaceGoals installs a new goal list and mirrors it.
func (s *Store) ReplaceGoals(ctx context.Context, goals []domain.Goal) error {
	if err := s.gateway.SaveGoals(ctx, goals); err != nil {
		return err
	}
	s.mu.Lock()
	s.goals = goals
	s.mu.Unlock()
	return nil
}
