// Package prefs owns the user's preference and status state and is its only writer.
package prefs

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"voluntaura/internal/models"
)

// DefaultKey is the storage key the state snapshot lives under.
const DefaultKey = "voluntaura-storage"

// ErrNotFound is returned by a Persister when nothing is stored under a key.
var ErrNotFound = errors.New("state not found")

// Persister is durable local key-value storage.
type Persister interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
}

// Option customises a Container.
type Option func(*Container)

// WithPersistFailureHook registers a callback invoked once when a write fails
// and the container falls back to memory.
func WithPersistFailureHook(fn func(error)) Option {
	return func(c *Container) {
		c.onPersistFailure = fn
	}
}

// Container serialises mutations of State and persists every new snapshot.
type Container struct {
	mu        sync.Mutex
	state     State
	persister Persister
	key       string
	logger    *zap.Logger

	// degraded is set after the first failed write; later mutations stay in memory.
	degraded         bool
	onPersistFailure func(error)
}

// New loads the snapshot stored under key. Read or decode failures fall back to
// DefaultState. A nil persister keeps state in memory only.
func New(ctx context.Context, persister Persister, key string, logger *zap.Logger, opts ...Option) *Container {
	if logger == nil {
		logger = zap.NewNop()
	}
	if key == "" {
		key = DefaultKey
	}

	c := &Container{
		state:     DefaultState(),
		persister: persister,
		key:       key,
		logger:    logger,
		degraded:  persister == nil,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.state = c.load(ctx)
	return c
}

func (c *Container) load(ctx context.Context) State {
	if c.persister == nil {
		return DefaultState()
	}
	data, err := c.persister.Load(ctx, c.key)
	if errors.Is(err, ErrNotFound) {
		c.logger.Debug("no stored state, using defaults", zap.String("key", c.key))
		return DefaultState()
	}
	if err != nil {
		c.logger.Warn("unable to read stored state, using defaults", zap.String("key", c.key), zap.Error(err))
		return DefaultState()
	}
	s, err := Decode(data)
	if err != nil {
		c.logger.Warn("stored state is malformed, using defaults", zap.String("key", c.key), zap.Error(err))
		return DefaultState()
	}
	return s
}

// Snapshot returns the current state.
func (c *Container) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Degraded reports whether persistence has been abandoned for this process.
func (c *Container) Degraded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.degraded
}

// update applies fn, stores the result and persists it before returning.
func (c *Container) update(ctx context.Context, op string, fn func(State) State) State {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = fn(c.state)
	c.persist(ctx, op)
	return c.state
}

func (c *Container) persist(ctx context.Context, op string) {
	if c.degraded {
		return
	}
	data, err := Encode(c.state)
	if err == nil {
		err = c.persister.Save(ctx, c.key, data)
	}
	if err != nil {
		c.degraded = true
		c.logger.Warn("state write failed, continuing in memory",
			zap.String("op", op), zap.String("key", c.key), zap.Error(err))
		if c.onPersistFailure != nil {
			c.onPersistFailure(err)
		}
	}
}

// AddToStatusSet inserts id into the kind set and persists.
func (c *Container) AddToStatusSet(ctx context.Context, kind models.StatusKind, id string) State {
	return c.update(ctx, "add_status", func(s State) State { return s.AddStatus(kind, id) })
}

// RemoveFromStatusSet drops id from the kind set and persists.
func (c *Container) RemoveFromStatusSet(ctx context.Context, kind models.StatusKind, id string) State {
	return c.update(ctx, "remove_status", func(s State) State { return s.RemoveStatus(kind, id) })
}

// UpdateFilters merges a discover filter patch.
func (c *Container) UpdateFilters(ctx context.Context, p FiltersPatch) State {
	return c.update(ctx, "update_filters", func(s State) State { return s.UpdateFilters(p) })
}

// ClearFilters restores the default filters.
func (c *Container) ClearFilters(ctx context.Context) State {
	return c.update(ctx, "clear_filters", State.ClearFilters)
}

// UpdateQuestionnaireAnswers merges a questionnaire patch.
func (c *Container) UpdateQuestionnaireAnswers(ctx context.Context, p AnswersPatch) State {
	return c.update(ctx, "update_answers", func(s State) State { return s.UpdateAnswers(p) })
}

// SetQuestionnaireCompleted records whether the wizard was finished.
func (c *Container) SetQuestionnaireCompleted(ctx context.Context, done bool) State {
	return c.update(ctx, "questionnaire_completed", func(s State) State { return s.WithQuestionnaireCompleted(done) })
}

// SetGoalHours replaces the monthly goal.
func (c *Container) SetGoalHours(ctx context.Context, hours float64) State {
	return c.update(ctx, "goal_hours", func(s State) State { return s.WithGoalHours(hours) })
}

// AddScheduledHours adds to the hours scheduled this month.
func (c *Container) AddScheduledHours(ctx context.Context, hours float64) State {
	return c.update(ctx, "scheduled_hours", func(s State) State { return s.AddScheduledHours(hours) })
}
