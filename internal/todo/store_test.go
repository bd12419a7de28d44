package todo

import (
	"testing"

	"todo-cli/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemStore_SetGetRemove(t *testing.T) {
	s := NewItemStore()

	_, ok := s.Get("item-a")
	require.False(t, ok)

	s.Set("item-a", model.Item{Title: "A"})
	s.Set("item-a", model.Item{Title: "A2", Completed: true})
	got, ok := s.Get("item-a")
	require.True(t, ok)
	assert.Equal(t, model.Item{Title: "A2", Completed: true}, got)
	assert.Equal(t, 1, s.Len())

	assert.True(t, s.Remove("item-a"))
	assert.False(t, s.Remove("item-a"), "second remove should be a no-op")
	assert.False(t, s.Has("item-a"))
	assert.Equal(t, 0, s.Len())
}

func TestIDList_AppendRemovePreservesOrder(t *testing.T) {
	l := NewIDList()
	for _, id := range []string{"a", "b", "c", "d"} {
		require.True(t, l.Append(id))
	}
	require.False(t, l.Append("b"), "duplicate append must be refused")

	require.True(t, l.Remove("b"))
	require.False(t, l.Remove("b"))
	assert.Equal(t, []string{"a", "c", "d"}, l.IDs())
	assert.False(t, l.Contains("b"))
	assert.Equal(t, 3, l.Len())

	// IDs hands out a copy.
	ids := l.IDs()
	ids[0] = "zzz"
	assert.Equal(t, "a", l.IDs()[0])
}

func TestFilterState_DefaultsToAll(t *testing.T) {
	var f FilterState
	assert.Equal(t, model.FilterAll, f.Get())
	f.Set(model.FilterActive)
	assert.Equal(t, model.FilterActive, f.Get())
}
