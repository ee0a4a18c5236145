// Package swipe implements the one-card-at-a-time match feed.
package swipe

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"voluntaura/internal/catalog"
	"voluntaura/internal/filter"
	"voluntaura/internal/models"
	"voluntaura/internal/prefs"
	"voluntaura/internal/set"
)

// LookAhead is how many cards are stacked for rendering.
const LookAhead = 3

// ErrExhausted is returned when an action needs a head card and none is left.
var ErrExhausted = errors.New("no more opportunities")

// State of the session.
type State string

const (
	Active    State = "active"
	Exhausted State = "exhausted"
)

// Prefs is the part of the preference container the session needs.
type Prefs interface {
	Snapshot() prefs.State
	AddToStatusSet(ctx context.Context, kind models.StatusKind, id string) prefs.State
}

// Notifier is told about matches so the presentation layer can celebrate.
type Notifier interface {
	Matched(opp models.Opportunity)
}

// Options tune session behaviour.
type Options struct {
	// ResetOnRetake clears the presented set when the questionnaire is
	// completed again. Off by default: previously passed cards stay hidden.
	ResetOnRetake bool
}

// Session tracks which cards were resolved during this visit. It is not persisted.
type Session struct {
	mu        sync.Mutex
	id        string
	catalog   *catalog.Catalog
	prefs     Prefs
	notifier  Notifier
	logger    *zap.Logger
	opts      Options
	cursor    int
	presented set.Ordered[string]
}

// NewSession starts an empty session. notifier and logger may be nil.
func NewSession(cat *catalog.Catalog, p Prefs, notifier Notifier, logger *zap.Logger, opts Options) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	id := uuid.NewString()
	return &Session{
		id:       id,
		catalog:  cat,
		prefs:    p,
		notifier: notifier,
		logger:   logger.With(zap.String("session", id)),
		opts:     opts,
	}
}

// ID identifies the session in logs and API responses.
func (s *Session) ID() string {
	return s.id
}

// Feed is the questionnaire-filtered catalog minus presented cards.
func (s *Session) Feed() []models.Opportunity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.feedLocked()
}

func (s *Session) feedLocked() []models.Opportunity {
	return filter.Feed(s.catalog.All(), s.prefs.Snapshot().Answers, s.presented)
}

// Window returns the head card followed by up to LookAhead-1 cards behind it.
func (s *Session) Window() []models.Opportunity {
	feed := s.Feed()
	if len(feed) > LookAhead {
		feed = feed[:LookAhead]
	}
	return feed
}

// Head returns the card currently on top.
func (s *Session) Head() (models.Opportunity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.headLocked()
}

func (s *Session) headLocked() (models.Opportunity, error) {
	feed := s.feedLocked()
	if len(feed) == 0 {
		return models.Opportunity{}, ErrExhausted
	}
	return feed[0], nil
}

// Remaining is the number of cards left to resolve.
func (s *Session) Remaining() int {
	return len(s.Feed())
}

// State reports Active while a head card exists.
func (s *Session) State() State {
	if s.Remaining() == 0 {
		return Exhausted
	}
	return Active
}

// Cursor counts cards resolved since the last reset.
func (s *Session) Cursor() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor
}

// Presented returns the ids resolved since the last reset.
func (s *Session) Presented() set.Ordered[string] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.presented
}

// SwipeLeft passes on the head card.
func (s *Session) SwipeLeft(_ context.Context) (models.Opportunity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	head, err := s.headLocked()
	if err != nil {
		return head, err
	}
	s.resolveLocked(head.ID)
	s.logger.Debug("passed", zap.String("opportunity", head.ID), zap.Int("cursor", s.cursor))
	return head, nil
}

// SwipeRight matches the head card, records it in the matched set and
// notifies the celebration.
func (s *Session) SwipeRight(ctx context.Context) (models.Opportunity, error) {
	s.mu.Lock()
	head, err := s.headLocked()
	if err != nil {
		s.mu.Unlock()
		return head, err
	}
	s.resolveLocked(head.ID)
	s.mu.Unlock()

	s.prefs.AddToStatusSet(ctx, models.StatusMatched, head.ID)
	if s.notifier != nil {
		s.notifier.Matched(head)
	}
	s.logger.Debug("matched", zap.String("opportunity", head.ID))
	return head, nil
}

// Save bookmarks the head card without resolving it. The lock is held until
// the save is recorded so a concurrent swipe cannot move the head in between.
func (s *Session) Save(ctx context.Context) (models.Opportunity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	head, err := s.headLocked()
	if err != nil {
		return head, err
	}
	s.prefs.AddToStatusSet(ctx, models.StatusSaved, head.ID)
	s.logger.Debug("saved", zap.String("opportunity", head.ID))
	return head, nil
}

// Reset forgets every resolved card.
func (s *Session) Reset() State {
	s.mu.Lock()
	s.cursor = 0
	s.presented = set.Ordered[string]{}
	s.mu.Unlock()

	s.logger.Debug("session reset")
	return s.State()
}

// Retaken is called after the questionnaire is completed again.
func (s *Session) Retaken() State {
	if s.opts.ResetOnRetake {
		return s.Reset()
	}
	return s.State()
}

func (s *Session) resolveLocked(id string) {
	s.presented = s.presented.Add(id)
	s.cursor++
}
