package todo

import "todo-cli/internal/model"

// Lookup resolves an identifier to its item.
type Lookup func(id string) (model.Item, bool)

// Filtered derives the identifiers to display for filter f, preserving the
// order of ids. Every filter, including FilterAll, resolves each id.
//
// Identifiers lookup cannot resolve are left out of the result; the first one
// is reported as an error wrapping ErrStaleIdentifier.
func Filtered(ids []string, f model.Filter, lookup Lookup) ([]string, error) {
	if f == "" {
		f = model.FilterAll
	}
	var err error
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		it, ok := lookup(id)
		if !ok {
			if err == nil {
				err = errStale(id)
			}
			continue
		}
		if f.Matches(it.Completed) {
			out = append(out, id)
		}
	}
	return out, err
}

// Counts summarises the list for status lines.
type Counts struct {
	Total     int `json:"total"`
	Active    int `json:"active"`
	Completed int `json:"completed"`
}

func countItems(ids []string, lookup Lookup) Counts {
	var c Counts
	for _, id := range ids {
		it, ok := lookup(id)
		if !ok {
			continue
		}
		c.Total++
		if it.Completed {
			c.Completed++
		} else {
			c.Active++
		}
	}
	return c
}
