package todo

import "slices"

// IDList is the ordered sequence of live identifiers. Insertion order is display order.
type IDList struct {
	ids []string
	pos map[string]struct{}
}

func NewIDList() *IDList {
	return &IDList{pos: map[string]struct{}{}}
}

// Append adds id to the end. It returns false, leaving the list unchanged,
// when id is already present.
func (l *IDList) Append(id string) bool {
	if _, ok := l.pos[id]; ok {
		return false
	}
	l.ids = append(l.ids, id)
	l.pos[id] = struct{}{}
	return true
}

// Remove deletes id, keeping the relative order of the rest.
// It reports false (and does nothing) when id is not in the list.
func (l *IDList) Remove(id string) bool {
	if _, ok := l.pos[id]; !ok {
		return false
	}
	i := slices.Index(l.ids, id)
	l.ids = slices.Delete(l.ids, i, i+1)
	delete(l.pos, id)
	return true
}

func (l *IDList) Contains(id string) bool {
	_, ok := l.pos[id]
	return ok
}

// IDs returns a copy of the ordered identifiers.
func (l *IDList) IDs() []string {
	return slices.Clone(l.ids)
}

func (l *IDList) Len() int { return len(l.ids) }
