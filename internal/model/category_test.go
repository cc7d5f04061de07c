package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "simple name", input: "Food", want: "food"},
		{name: "two words", input: "Pet Care", want: "pet-care"},
		{name: "punctuation run collapses", input: "Bills & Utilities", want: "bills-utilities"},
		{name: "surrounding junk trimmed", input: "  --Rent!  ", want: "rent"},
		{name: "digits survive", input: "401k Savings", want: "401k-savings"},
		{name: "only separators", input: "!!!", want: ""},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.input))
		})
	}
}

func TestNewCategory(t *testing.T) {
	c := NewCategory("  Pet Care ")
	assert.Equal(t, "pet-care", c.ID)
	assert.Equal(t, "Pet Care", c.Name)
	assert.NoError(t, c.Validate())
}

func TestCategoryValidate(t *testing.T) {
	assert.Error(t, Category{ID: "food"}.Validate(), "missing name")
	assert.Error(t, Category{Name: "Food"}.Validate(), "missing id")
	assert.NoError(t, Category{ID: "food", Name: "Food"}.Validate())
}
