package todo

import "todo-cli/internal/model"

// FilterState holds the current display mode. The zero value is FilterAll.
type FilterState struct {
	value model.Filter
}

// Set replaces the filter. Values outside the enum are a caller error and are not checked here.
func (f *FilterState) Set(v model.Filter) { f.value = v }

func (f *FilterState) Get() model.Filter {
	if f.value == "" {
		return model.FilterAll
	}
	return f.value
}
