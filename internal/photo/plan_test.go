package photo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPlanItems(t *testing.T) {
	items := DefaultPlan.Items()
	require.Len(t, items, 22)

	assert.Equal(t, Item{Category: "opt", Index: 1, Width: 512, Height: 512}, items[0])
	assert.Equal(t, "opt-12.jpg", items[11].FileName())
	assert.Equal(t, Item{Category: "stem", Index: 1, Width: 1280, Height: 720}, items[12])
	assert.Equal(t, "tall-04.jpg", items[21].FileName())
	assert.Equal(t, 720, items[21].Width)
	assert.Equal(t, 1280, items[21].Height)
}

func TestFileName(t *testing.T) {
	tests := []struct {
		category string
		index    int
		expected string
	}{
		{"opt", 1, "opt-01.jpg"},
		{"stem", 10, "stem-10.jpg"},
		{"tall", 123, "tall-123.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FileName(tt.category, tt.index))
		})
	}
}
