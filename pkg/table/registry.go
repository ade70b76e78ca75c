package table

import (
	"strings"
	"sync"

	"github.com/HugoManns/pokerhands-tests/internal/rng"
	"github.com/sirupsen/logrus"
)

// Registry keeps track of the open tables
type Registry struct {
	tables    map[string]*Table
	generator func() rng.Generator
	logger    logrus.FieldLogger
	lock      sync.RWMutex
}

// NewRegistry returns a registry whose tables are shuffled with generators from newGenerator
// newGenerator is never called concurrently.
func NewRegistry(newGenerator func() rng.Generator, logger logrus.FieldLogger) *Registry {
	return &Registry{
		tables:    make(map[string]*Table),
		generator: newGenerator,
		logger:    logger,
	}
}

// Create opens a new table
func (r *Registry) Create(name string) *Table {
	r.lock.Lock()
	defer r.lock.Unlock()

	// the generator factory may carry state, so it is only called under the lock
	t := New(name, r.generator(), r.logger)
	r.tables[t.UUID] = t

	return t
}

// Get returns the table by its UUID
// The UUID is case-insensitive.
func (r *Registry) Get(uuid string) (*Table, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	t, ok := r.tables[strings.ToLower(uuid)]
	if !ok {
		return nil, ErrTableNotFound
	}

	return t, nil
}

// Close removes the table
func (r *Registry) Close(uuid string) bool {
	r.lock.Lock()
	defer r.lock.Unlock()

	uuid = strings.ToLower(uuid)
	if _, ok := r.tables[uuid]; !ok {
		return false
	}

	delete(r.tables, uuid)
	return true
}

// Len returns the number of open tables
func (r *Registry) Len() int {
	r.lock.RLock()
	defer r.lock.RUnlock()

	return len(r.tables)
}
