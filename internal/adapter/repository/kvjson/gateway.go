// Package kvjson mirrors each collection to a durable key-value store as a
// JSON-encoded array under a namespaced key. Saves are whole-document
// overwrites; loads fail soft so a missing or corrupt entry can never block
// startup or corrupt another collection.
package kvjson

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"financehub/internal/domain"
)

// DefaultKeyPrefix namespaces the collection keys in the store.
const DefaultKeyPrefix = "financeHub_"

// Collection keys, appended to the prefix.
const (
	keyTransactions = "transactions"
	keyBudgets      = "budgets"
	keyGoals        = "goals"
	keyAccounts     = "accounts"
)

// Gateway is the persistence boundary between the in-memory collections
// and the durable key-value store.
type Gateway struct {
	kv     domain.KVStore
	prefix string
	log    zerolog.Logger
}

// NewGateway creates a Gateway over the given store. An empty prefix
// falls back to DefaultKeyPrefix.
func NewGateway(kv domain.KVStore, prefix string, log zerolog.Logger) *Gateway {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &Gateway{kv: kv, prefix: prefix, log: log}
}

// LoadTransactions restores the transaction list, newest-first as saved.
// Absent or unreadable data yields an empty list.
func (g *Gateway) LoadTransactions(ctx context.Context) []domain.Transaction {
	var out []domain.Transaction
	if !g.load(ctx, keyTransactions, &out) || out == nil {
		return []domain.Transaction{}
	}
	return out
}

// SaveTransactions overwrites the stored transaction list.
func (g *Gateway) SaveTransactions(ctx context.Context, transactions []domain.Transaction) error {
	return g.save(ctx, keyTransactions, transactions)
}

// LoadBudgets restores the budget list. Stored Spent values are carried
// through as cache hints only; readers recompute them from transactions.
func (g *Gateway) LoadBudgets(ctx context.Context) []domain.Budget {
	var out []domain.Budget
	if !g.load(ctx, keyBudgets, &out) || out == nil {
		return []domain.Budget{}
	}
	return out
}

// SaveBudgets overwrites the stored budget list.
func (g *Gateway) SaveBudgets(ctx context.Context, budgets []domain.Budget) error {
	return g.save(ctx, keyBudgets, budgets)
}

// LoadGoals restores the goal list.
func (g *Gateway) LoadGoals(ctx context.Context) []domain.Goal {
	var out []domain.Goal
	if !g.load(ctx, keyGoals, &out) || out == nil {
		return []domain.Goal{}
	}
	return out
}

// SaveGoals overwrites the stored goal list.
func (g *Gateway) SaveGoals(ctx context.Context, goals []domain.Goal) error {
	return g.save(ctx, keyGoals, goals)
}

// LoadAccounts restores the account list. The second return value is false
// when no usable account data exists, in which case the caller seeds the
// fixed default set.
func (g *Gateway) LoadAccounts(ctx context.Context) ([]domain.Account, bool) {
	var out []domain.Account
	if !g.load(ctx, keyAccounts, &out) || out == nil {
		return nil, false
	}
	return out, true
}

// SaveAccounts overwrites the stored account list.
func (g *Gateway) SaveAccounts(ctx context.Context, accounts []domain.Account) error {
	return g.save(ctx, keyAccounts, accounts)
}

// load reads and decodes one collection. It returns false when the entry
// is absent, unreadable or fails to parse; the store is for restart
// recovery only, so none of those are surfaced as errors.
func (g *Gateway) load(ctx context.Context, key string, dst any) bool {
	fullKey := g.prefix + key

	raw, found, err := g.kv.Get(ctx, fullKey)
	if err != nil {
		g.log.Warn().Err(err).Str("key", fullKey).Msg("failed to read collection, falling back to default")
		return false
	}
	if !found {
		return false
	}

	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		g.log.Warn().Err(err).Str("key", fullKey).Msg("stored collection is corrupt, falling back to default")
		return false
	}
	return true
}

func (g *Gateway) save(ctx context.Context, key string, value any) error {
	fullKey := g.prefix + key

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := g.kv.Set(ctx, fullKey, string(data)); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
