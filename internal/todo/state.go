package todo

import (
	"fmt"
	"log/slog"
	"time"

	"todo-cli/internal/model"
)

// State is the process-wide to-do container.
type State struct {
	items  *ItemStore
	order  *IDList
	filter *FilterState

	ids    IDGenerator
	strict bool
	log    *slog.Logger
	now    func() time.Time

	listeners   []listenerEntry
	listenerSeq int
}

type Option func(*State)

// WithIDGenerator replaces the default RandomIDs("item") generator.
func WithIDGenerator(g IDGenerator) Option {
	return func(s *State) {
		if g != nil {
			s.ids = g
		}
	}
}

// WithStrict makes invariant violations panic instead of being logged and skipped.
func WithStrict(strict bool) Option {
	return func(s *State) { s.strict = strict }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *State) {
		if l != nil {
			s.log = l
		}
	}
}

// WithFilter sets the initial filter without emitting an event.
func WithFilter(f model.Filter) Option {
	return func(s *State) { s.filter.Set(f) }
}

func WithClock(now func() time.Time) Option {
	return func(s *State) {
		if now != nil {
			s.now = now
		}
	}
}

func NewState(opts ...Option) *State {
	s := &State{
		items:  NewItemStore(),
		order:  NewIDList(),
		filter: &FilterState{},
		ids:    NewRandomIDs("item"),
		log:    slog.New(slog.DiscardHandler),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *State) Item(id string) (model.Item, bool) {
	return s.items.Get(id)
}

// IDs returns every live identifier in display order.
func (s *State) IDs() []string {
	return s.order.IDs()
}

func (s *State) Filter() model.Filter {
	return s.filter.Get()
}

func (s *State) Len() int { return s.order.Len() }

// Visible recomputes the filtered view for the current filter.
func (s *State) Visible() []string {
	return s.VisibleFor(s.filter.Get())
}

// VisibleFor computes the view under f without changing the current filter.
func (s *State) VisibleFor(f model.Filter) []string {
	out, err := Filtered(s.order.IDs(), f, s.items.Get)
	if err != nil {
		s.violation(err)
	}
	return out
}

func (s *State) Counts() Counts {
	return countItems(s.order.IDs(), s.items.Get)
}

// CheckInvariants verifies that the list has no duplicates, that every listed
// id has an item, and that the store holds nothing the list does not.
func (s *State) CheckInvariants() error {
	seen := make(map[string]struct{}, s.order.Len())
	for _, id := range s.order.IDs() {
		if _, dup := seen[id]; dup {
			return errDuplicate(id)
		}
		seen[id] = struct{}{}
		if !s.items.Has(id) {
			return errStale(id)
		}
	}
	if s.items.Len() != len(seen) {
		return fmt.Errorf("invariant violation: store has %d items, list has %d ids", s.items.Len(), len(seen))
	}
	return nil
}

// ReportStale records that a caller found id referenced but not stored.
// Strict states panic; others log at error level.
func (s *State) ReportStale(id string) {
	s.violation(errStale(id))
}

func (s *State) violation(err error) {
	if s.strict {
		panic(err)
	}
	s.log.Error("todo invariant violation", "err", err.Error())
}
