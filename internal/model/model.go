package model

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultTitle is used when an item is created without a title.
const DefaultTitle = "No title"

// Item is one to-do record. Identity lives outside the record (see todo.ItemStore).
type Item struct {
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// NewItem returns an incomplete item, defaulting an empty title to DefaultTitle.
// Whitespace is kept as typed.
func NewItem(title string) Item {
	if title == "" {
		title = DefaultTitle
	}
	return Item{Title: title}
}

// Toggled returns a copy with Completed flipped.
func (it Item) Toggled() Item {
	it.Completed = !it.Completed
	return it
}

type Filter string

const (
	FilterAll       Filter = "all"
	FilterCompleted Filter = "completed"
	FilterActive    Filter = "active"
)

var ErrUnknownFilter = errors.New("unknown filter")

// Filters lists every filter in selector order.
func Filters() []Filter {
	return []Filter{FilterAll, FilterActive, FilterCompleted}
}

func ParseFilter(s string) (Filter, error) {
	switch Filter(strings.ToLower(strings.TrimSpace(s))) {
	case "", FilterAll:
		return FilterAll, nil
	case FilterCompleted, "done":
		return FilterCompleted, nil
	case FilterActive, "open":
		return FilterActive, nil
	default:
		return "", fmt.Errorf("%w: %q (want all|active|completed)", ErrUnknownFilter, s)
	}
}

func (f Filter) String() string { return string(f) }

// Valid reports whether f is one of the three known filters.
func (f Filter) Valid() bool {
	switch f {
	case FilterAll, FilterCompleted, FilterActive:
		return true
	}
	return false
}

// Next cycles all -> active -> completed -> all.
func (f Filter) Next() Filter {
	switch f {
	case FilterAll:
		return FilterActive
	case FilterActive:
		return FilterCompleted
	default:
		return FilterAll
	}
}

// Matches reports whether an item with the given completed flag is visible under f.
func (f Filter) Matches(completed bool) bool {
	switch f {
	case FilterCompleted:
		return completed
	case FilterActive:
		return !completed
	default:
		return true
	}
}
