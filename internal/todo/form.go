package todo

import (
	"fmt"

	"todo-cli/internal/model"
)

// Submit creates an item from the submitted title (empty -> model.DefaultTitle),
// stores it, and appends its fresh identifier to the list.
func (s *State) Submit(title string) (string, error) {
	id, err := s.ids.NewID()
	if err != nil {
		return "", fmt.Errorf("create item: %w", err)
	}
	if !s.order.Append(id) {
		// Generators must not repeat ids; don't clobber the live item.
		s.violation(errDuplicate(id))
		return "", errDuplicate(id)
	}
	it := model.NewItem(title)
	s.items.Set(id, it)
	s.emit(EventAdded, id, it)
	return id, nil
}

// Toggle flips the completed flag of id. It reports false when id is not live.
func (s *State) Toggle(id string) bool {
	it, ok := s.items.Get(id)
	if !ok {
		return false
	}
	it = it.Toggled()
	s.items.Set(id, it)
	s.emit(EventToggled, id, it)
	return true
}

// Remove drops id from the list and evicts it from the store.
// Removing an id that is already gone is a no-op and reports false.
func (s *State) Remove(id string) bool {
	it, hadItem := s.items.Get(id)
	inList := s.order.Remove(id)
	s.items.Remove(id)
	if !inList && !hadItem {
		return false
	}
	s.emit(EventRemoved, id, it)
	return true
}

// SetFilter changes the display mode. Setting the current value again emits nothing.
func (s *State) SetFilter(f model.Filter) {
	if s.filter.Get() == f {
		return
	}
	s.filter.Set(f)
	s.emit(EventFilter, "", model.Item{})
}
