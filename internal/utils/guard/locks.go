// Package guard serializes mutating ledger operations. It provides one mutex
// per account id, always acquired in ascending-id order so that operations
// touching overlapping account sets cannot deadlock, and an idempotency cache
// that collapses duplicate client retries onto the first committed result.
package guard

import (
	"sort"
	"sync"
)

// AccountLocks hands out one mutex per account id. Locks are created lazily
// and never discarded; the set of accounts per user is small.
type AccountLocks struct {
	locks sync.Map // account id -> *sync.Mutex
}

// NewAccountLocks creates an empty lock registry.
func NewAccountLocks() *AccountLocks {
	return &AccountLocks{}
}

func (l *AccountLocks) mutexFor(accountID string) *sync.Mutex {
	if m, ok := l.locks.Load(accountID); ok {
		return m.(*sync.Mutex)
	}
	m, _ := l.locks.LoadOrStore(accountID, &sync.Mutex{})
	return m.(*sync.Mutex)
}

// Lock acquires the mutexes for the given accounts, deduplicated and in
// ascending id order, and returns a function releasing all of them. The fixed
// order is what prevents deadlock between concurrent operations on
// overlapping account pairs; it is an internal policy, not a caller-visible
// ordering guarantee.
func (l *AccountLocks) Lock(accountIDs ...string) func() {
	ids := uniqueSorted(accountIDs)
	acquired := make([]*sync.Mutex, 0, len(ids))
	for _, id := range ids {
		m := l.mutexFor(id)
		m.Lock()
		acquired = append(acquired, m)
	}
	return func() {
		for i := len(acquired) - 1; i >= 0; i-- {
			acquired[i].Unlock()
		}
	}
}

func uniqueSorted(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
