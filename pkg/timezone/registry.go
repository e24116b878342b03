package timezone

import (
	"errors"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/solartime/lmt-go/pkg/offset"
)

// Registry errors.
var (
	ErrEmptyAlias = errors.New("alias name is empty")
)

// Record is an audit entry for a single alias registration.
type Record struct {
	// ID uniquely identifies this registration.
	ID string

	// Alias is the registered name.
	Alias string

	// Offset is the offset captured at registration time.
	Offset offset.Offset

	// RegisteredAt is when the registration happened.
	RegisteredAt time.Time
}

// Registry is an alias table mapping names to fixed offsets.
// Registrations are last-write-wins; every write is recorded in the
// audit history. The zero value is not usable, use NewRegistry.
type Registry struct {
	mu sync.RWMutex

	// aliases holds the current offset for each alias name.
	aliases map[string]offset.Offset

	// history records every registration in order.
	history []Record

	logger *slog.Logger
}

// NewRegistry creates an empty alias registry.
func NewRegistry() *Registry {
	return &Registry{
		aliases: make(map[string]offset.Offset),
	}
}

// SetLogger attaches a logger for registration events.
// Passing nil disables logging.
func (r *Registry) SetLogger(logger *slog.Logger) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logger = logger
}

// Register stores the offset under the given alias name, replacing any
// previous registration of the same name.
// Returns ErrEmptyAlias if the name is empty.
func (r *Registry) Register(name string, off offset.Offset) error {
	if name == "" {
		return ErrEmptyAlias
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.aliases[name] = off
	r.history = append(r.history, Record{
		ID:           uuid.NewString(),
		Alias:        name,
		Offset:       off,
		RegisteredAt: time.Now(),
	})

	if r.logger != nil {
		r.logger.Debug("alias registered",
			slog.String("alias", name),
			slog.String("offset", off.String()),
		)
	}

	return nil
}

// Lookup returns the offset registered under the given alias name.
func (r *Registry) Lookup(name string) (offset.Offset, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	off, ok := r.aliases[name]
	return off, ok
}

// Names returns all registered alias names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.aliases))
	for name := range r.aliases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered aliases.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.aliases)
}

// History returns a copy of the audit records in registration order.
func (r *Registry) History() []Record {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]Record, len(r.history))
	copy(records, r.history)
	return records
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// DefaultRegistry returns the process-wide alias registry.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}
