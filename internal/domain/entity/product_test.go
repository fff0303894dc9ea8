package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeImages(t *testing.T) {
	tests := []struct {
		name     string
		existing []string
		incoming []string
		want     []string
	}{
		{name: "existing first", existing: []string{"a", "b"}, incoming: []string{"c"}, want: []string{"a", "b", "c"}},
		{name: "truncated to five", existing: []string{"a", "b", "c"}, incoming: []string{"d", "e", "f", "g"}, want: []string{"a", "b", "c", "d", "e"}},
		{name: "empty", existing: nil, incoming: nil, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MergeImages(tt.existing, tt.incoming))
		})
	}
}

func TestProduct_RetainAttached(t *testing.T) {
	p := &Product{Images: []string{"u1", "u2", "u3"}}

	got := p.RetainAttached([]string{"u3", "foreign", "u1", "u3"})

	assert.Equal(t, []string{"u3", "u1"}, got)
}

func TestDroppedImages(t *testing.T) {
	got := DroppedImages([]string{"u1", "u2", "u3"}, []string{"u2", "n1"})

	assert.Equal(t, []string{"u1", "u3"}, got)
}

func TestProduct_RemoveImageAt(t *testing.T) {
	original := []string{"u1", "u2", "u3"}
	p := &Product{Images: original}

	removed, ok := p.RemoveImageAt(1)
	require.True(t, ok)
	assert.Equal(t, "u2", removed)
	assert.Equal(t, []string{"u1", "u3"}, p.Images)
	assert.Equal(t, []string{"u1", "u2", "u3"}, original, "caller slice must not be mutated")

	for _, idx := range []int{-1, 2, 10} {
		_, ok := p.RemoveImageAt(idx)
		assert.False(t, ok, "index %d", idx)
	}
	assert.Len(t, p.Images, 2)
}

func TestProduct_AvailableImageSlots(t *testing.T) {
	assert.Equal(t, 5, (&Product{}).AvailableImageSlots())
	assert.Equal(t, 1, (&Product{Images: []string{"1", "2", "3", "4"}}).AvailableImageSlots())
	assert.Equal(t, 0, (&Product{Images: []string{"1", "2", "3", "4", "5"}}).AvailableImageSlots())
}

func TestProduct_MarshalJSON(t *testing.T) {
	t.Run("derived image is first entry", func(t *testing.T) {
		data, err := json.Marshal(Product{Name: "Laptop", Images: []string{"u1", "u2"}})
		require.NoError(t, err)

		var got map[string]any
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, "u1", got["image"])
		assert.Equal(t, []any{"u1", "u2"}, got["images"])
		assert.NotContains(t, got, "originalPrice")
	})

	t.Run("no images renders empty values", func(t *testing.T) {
		data, err := json.Marshal(&Product{Name: "Mouse"})
		require.NoError(t, err)

		var got map[string]any
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, "", got["image"])
		assert.Equal(t, []any{}, got["images"])
		assert.Equal(t, []any{}, got["specs"])
	})
}

func TestTicketEnums(t *testing.T) {
	assert.True(t, PriorityHigh.IsValid())
	assert.False(t, TicketPriority("Urgent").IsValid())
	assert.True(t, StatusInProgress.IsValid())
	assert.False(t, TicketStatus("Resolved").IsValid())
	assert.Equal(t, "TCK-1001", FormatTicketID(1001))
}
