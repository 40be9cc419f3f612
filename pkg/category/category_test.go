package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_IsValid(t *testing.T) {
	registry := Default()

	testCases := []struct {
		label Label
		want  bool
	}{
		{Sleep, true},
		{Study, true},
		{Other, true},
		{Uncovered, false},
		{Label("gaming"), false},
		{Label(""), false},
	}
	for _, tc := range testCases {
		t.Run(string(tc.label), func(t *testing.T) {
			assert.Equal(t, tc.want, registry.IsValid(tc.label))
		})
	}
}

func TestRegistry_ColorOf(t *testing.T) {
	registry := Default()

	assert.Equal(t, Color("#CFB6B6"), registry.ColorOf(Sleep))
	assert.Equal(t, Color("#E1E1E1"), registry.ColorOf(Uncovered))
	assert.Equal(t, FallbackColor, registry.ColorOf(Label("does-not-exist")))
}

func TestRegistry_CategoriesKeepOrderAndExcludeUncovered(t *testing.T) {
	registry := Default()

	categories := registry.Categories()

	assert.Len(t, categories, 13)
	assert.Equal(t, University, categories[0].Label)
	assert.Equal(t, Other, categories[len(categories)-1].Label)
	for _, c := range categories {
		assert.NotEqual(t, Uncovered, c.Label)
	}
}

func TestRegistry_CategoriesReturnsCopy(t *testing.T) {
	registry := Default()

	categories := registry.Categories()
	categories[0].Color = "#000000"

	assert.Equal(t, Color("#B6D3FF"), registry.ColorOf(University))
}

func TestNewRegistry_SkipsDuplicatesAndReservedLabel(t *testing.T) {
	registry := NewRegistry([]Category{
		{Sleep, "sleep", "#111111"},
		{Sleep, "sleep again", "#222222"},
		{Label("blank"), "blank", "#333333"},
	}, Category{Label("blank"), "blank", "#444444"})

	assert.Len(t, registry.Categories(), 1)
	assert.Equal(t, Color("#111111"), registry.ColorOf(Sleep))
	assert.Equal(t, Label("blank"), registry.Uncovered())
	assert.False(t, registry.IsValid(Label("blank")))
	assert.Equal(t, "sleep", registry.NameOf(Sleep))
	assert.Equal(t, "mystery", registry.NameOf(Label("mystery")))
}
