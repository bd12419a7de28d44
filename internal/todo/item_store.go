package todo

import "todo-cli/internal/model"

// ItemStore maps identifiers to items. It has no ordering; see IDList for that.
type ItemStore struct {
	items map[string]model.Item
}

func NewItemStore() *ItemStore {
	return &ItemStore{items: map[string]model.Item{}}
}

func (s *ItemStore) Get(id string) (model.Item, bool) {
	it, ok := s.items[id]
	return it, ok
}

// Set creates or replaces the entry for id.
func (s *ItemStore) Set(id string, it model.Item) {
	s.items[id] = it
}

// Remove evicts id. Removing an absent id is a no-op; it reports whether an entry existed.
func (s *ItemStore) Remove(id string) bool {
	if _, ok := s.items[id]; !ok {
		return false
	}
	delete(s.items, id)
	return true
}

func (s *ItemStore) Has(id string) bool {
	_, ok := s.items[id]
	return ok
}

func (s *ItemStore) Len() int { return len(s.items) }
