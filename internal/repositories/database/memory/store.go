// Package memory is an in-process storage backend. It backs the test suites and
// the STORAGE_BACKEND=memory mode; data does not survive a restart.
package memory

import (
	"context"
	"sync"

	"github.com/SscSPs/accountflow_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/accountflow_ledger/internal/core/ports/repositories"
)

type txKey struct{}

type refKey struct {
	refType domain.ReferenceType
	refID   string
}

type tables struct {
	plans       map[string]domain.BillingPlan
	accounts    map[string]domain.Account
	presets     map[string]domain.Preset
	titles      map[string]domain.Title
	entries     map[string]domain.Entry
	journals    map[string]domain.Journal
	journalRefs map[refKey]string
}

func newTables() tables {
	return tables{
		plans:       make(map[string]domain.BillingPlan),
		accounts:    make(map[string]domain.Account),
		presets:     make(map[string]domain.Preset),
		titles:      make(map[string]domain.Title),
		entries:     make(map[string]domain.Entry),
		journals:    make(map[string]domain.Journal),
		journalRefs: make(map[refKey]string),
	}
}

func (t tables) clone() tables {
	c := newTables()
	for k, v := range t.plans {
		c.plans[k] = v
	}
	for k, v := range t.accounts {
		c.accounts[k] = v
	}
	for k, v := range t.presets {
		c.presets[k] = v
	}
	for k, v := range t.titles {
		c.titles[k] = copyTitle(v)
	}
	for k, v := range t.entries {
		c.entries[k] = v
	}
	for k, v := range t.journals {
		c.journals[k] = copyJournal(v)
	}
	for k, v := range t.journalRefs {
		c.journalRefs[k] = v
	}
	return c
}

// Store holds every table. Units of work run one at a time; a failed unit
// restores the snapshot taken when it started. A nested unit behaves like a
// savepoint: its failure undoes only its own writes.
//
// Reads and writes outside a unit of work wait for the running unit, so they
// never observe writes that may still be rolled back.
type Store struct {
	txMu sync.Mutex
	mu   sync.RWMutex
	data tables
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{data: newTables()}
}

var _ portsrepo.TransactionManager = (*Store)(nil)

// WithinTx runs fn as one unit of work.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if !inTx(ctx) {
		s.txMu.Lock()
		defer s.txMu.Unlock()
		ctx = context.WithValue(ctx, txKey{}, true)
	}

	s.mu.RLock()
	snapshot := s.data.clone()
	s.mu.RUnlock()

	if err := fn(ctx); err != nil {
		s.mu.Lock()
		s.data = snapshot
		s.mu.Unlock()
		return err
	}
	return nil
}

func inTx(ctx context.Context) bool {
	return ctx.Value(txKey{}) != nil
}

func (s *Store) read(ctx context.Context, fn func(t *tables)) {
	if !inTx(ctx) {
		s.txMu.Lock()
		defer s.txMu.Unlock()
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(&s.data)
}

func (s *Store) write(ctx context.Context, fn func(t *tables) error) error {
	if !inTx(ctx) {
		s.txMu.Lock()
		defer s.txMu.Unlock()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&s.data)
}

func copyTitle(t domain.Title) domain.Title {
	if t.Recurrence != nil {
		r := *t.Recurrence
		t.Recurrence = &r
	}
	return t
}

func copyJournal(j domain.Journal) domain.Journal {
	lines := make([]domain.JournalLine, len(j.Lines))
	copy(lines, j.Lines)
	j.Lines = lines
	return j
}

func page[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
