package todo

import (
	"time"

	"todo-cli/internal/model"
)

type EventKind string

const (
	EventAdded   EventKind = "added"
	EventToggled EventKind = "toggled"
	EventRemoved EventKind = "removed"
	EventFilter  EventKind = "filter"
)

// Event describes one applied mutation. Item is the item after the mutation
// (or, for EventRemoved, the item as it was just before eviction).
type Event struct {
	Kind   EventKind    `json:"kind"`
	ID     string       `json:"id,omitempty"`
	Item   model.Item   `json:"item"`
	Filter model.Filter `json:"filter"`
	At     time.Time    `json:"at"`
}

// Listener observes applied mutations. It runs synchronously inside the mutating call.
type Listener func(Event)

type listenerEntry struct {
	id int
	fn Listener
}

// OnChange registers l and returns a func that unregisters it.
func (s *State) OnChange(l Listener) func() {
	s.listenerSeq++
	id := s.listenerSeq
	s.listeners = append(s.listeners, listenerEntry{id: id, fn: l})
	return func() {
		for i, e := range s.listeners {
			if e.id == id {
				s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

func (s *State) emit(kind EventKind, id string, it model.Item) {
	ev := Event{
		Kind:   kind,
		ID:     id,
		Item:   it,
		Filter: s.filter.Get(),
		At:     s.now().UTC(),
	}
	s.log.Debug("todo change", "kind", string(kind), "id", id, "completed", it.Completed, "filter", string(ev.Filter))
	for _, e := range s.listeners {
		e.fn(ev)
	}
}
