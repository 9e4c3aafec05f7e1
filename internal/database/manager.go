package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dhima/employee-directory/internal/logging"
	"go.uber.org/zap"
)

// ErrUnavailable is returned by Acquire when no usable connection exists.
var ErrUnavailable = errors.New("database unavailable")

// SchemaFunc prepares a freshly opened handle before it is handed out.
type SchemaFunc func(ctx context.Context, db *sql.DB) error

// Stats is a snapshot of the manager's connection counters.
type Stats struct {
	Connected        bool  `json:"connected"`
	Connects         int64 `json:"connects"`
	ConnectFailures  int64 `json:"connect_failures"`
	LivenessFailures int64 `json:"liveness_failures"`
	SchemaFailures   int64 `json:"schema_failures"`
}

// reconnectTimeout bounds a shared reconnect, which runs detached from the
// context of the caller that happened to trigger it.
const reconnectTimeout = 15 * time.Second

// Manager owns the single shared database handle. The handle is opened
// lazily, probed before every use, and replaced when the probe fails.
type Manager struct {
	open   Opener
	schema SchemaFunc
	logger logging.Logger

	mu          sync.Mutex
	db          *sql.DB
	schemaReady bool
	// retired is the handle replaced by the last reconnect. It stays open so
	// in-flight requests holding it can finish, and is closed on the next
	// reconnect or on Close.
	retired *sql.DB

	connects         atomic.Int64
	connectFailures  atomic.Int64
	livenessFailures atomic.Int64
	schemaFailures   atomic.Int64
}

// NewManager creates a manager that runs EnsureSchema on every new handle.
func NewManager(open Opener, logger logging.Logger) *Manager {
	return NewManagerWithSchema(open, EnsureSchema, logger)
}

// NewManagerWithSchema allows a custom schema step.
func NewManagerWithSchema(open Opener, schema SchemaFunc, logger logging.Logger) *Manager {
	return &Manager{
		open:   open,
		schema: schema,
		logger: logger.With(zap.String("component", "db_manager")),
	}
}

// Acquire returns a live handle, reconnecting if the current one is missing
// or fails its liveness probe. Errors wrap ErrUnavailable. A handle whose
// schema step failed gets the step retried until it succeeds.
func (m *Manager) Acquire(ctx context.Context) (*sql.DB, error) {
	current, ready := m.snapshot()
	if current != nil {
		err := current.PingContext(ctx)
		if err == nil {
			if ready {
				return current, nil
			}
			return m.prepare(ctx, current), nil
		}
		m.livenessFailures.Add(1)
		m.logger.Warn("database liveness probe failed, reconnecting", zap.Error(err))
	}

	return m.reconnect(ctx, current)
}

// reconnect replaces stale with a fresh handle. Callers racing on the same
// stale handle share one attempt: whoever holds the lock second sees the
// replacement and returns it.
func (m *Manager) reconnect(ctx context.Context, stale *sql.DB) (*sql.DB, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.db != nil && m.db != stale {
		return m.db, nil
	}

	ctx, cancel := detached(ctx)
	defer cancel()

	fresh, err := m.open(ctx)
	if err != nil {
		m.connectFailures.Add(1)
		m.logger.Error("failed to connect to database", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	m.schemaReady = m.ensureSchema(ctx, fresh)
	m.db = fresh
	m.connects.Add(1)
	m.logger.Info("database connection established", zap.Int64("connects", m.connects.Load()))

	if stale != nil {
		m.retire(stale)
	}
	return fresh, nil
}

// prepare reruns the schema step on a live handle whose earlier attempt failed.
func (m *Manager) prepare(ctx context.Context, db *sql.DB) *sql.DB {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.db == db && !m.schemaReady {
		ctx, cancel := detached(ctx)
		defer cancel()
		m.schemaReady = m.ensureSchema(ctx, db)
	}
	return db
}

func (m *Manager) ensureSchema(ctx context.Context, db *sql.DB) bool {
	if err := m.schema(ctx, db); err != nil {
		m.schemaFailures.Add(1)
		m.logger.Error("schema initialization failed", zap.Error(err))
		return false
	}
	return true
}

// retire must be called with mu held.
func (m *Manager) retire(stale *sql.DB) {
	if m.retired != nil && m.retired != stale {
		if err := m.retired.Close(); err != nil {
			m.logger.Debug("closing retired handle", zap.Error(err))
		}
	}
	m.retired = stale
}

func detached(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), reconnectTimeout)
}

func (m *Manager) snapshot() (*sql.DB, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.db, m.schemaReady
}

func (m *Manager) current() *sql.DB {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.db
}

// Stats returns the current connection counters.
func (m *Manager) Stats() Stats {
	return Stats{
		Connected:        m.current() != nil,
		Connects:         m.connects.Load(),
		ConnectFailures:  m.connectFailures.Load(),
		LivenessFailures: m.livenessFailures.Load(),
		SchemaFailures:   m.schemaFailures.Load(),
	}
}

// Close releases the current and retired handles. Only called at process
// shutdown.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.retired != nil {
		if err := m.retired.Close(); err != nil {
			m.logger.Debug("closing retired handle", zap.Error(err))
		}
		m.retired = nil
	}
	if m.db == nil {
		return nil
	}
	err := m.db.Close()
	m.db = nil
	m.schemaReady = false
	return err
}
