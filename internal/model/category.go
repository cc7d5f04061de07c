package model

import (
	"errors"
	"fmt"
	"strings"
)

// Category is a named classification bucket for records. Its ID is a URL-safe
// slug derived from the name; identity is determined by the slug while Name
// preserves the casing the user supplied.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// NewCategory builds a category from a display name, deriving its slug ID.
func NewCategory(name string) Category {
	name = strings.TrimSpace(name)
	return Category{ID: Slugify(name), Name: name}
}

// Validate checks the shape invariants that every stored category must hold.
func (c Category) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return errors.New("category: missing name")
	}
	if c.ID == "" {
		return fmt.Errorf("category %q: missing id", c.Name)
	}
	return nil
}

// Slugify derives a URL-safe slug from a category name: lowercase, with runs
// of non-alphanumeric characters collapsed to a single "-" and no leading or
// trailing separator. Names made of nothing but separators slugify to "".
func Slugify(name string) string {
	var b strings.Builder
	pending := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pending && b.Len() > 0 {
				b.WriteByte('-')
			}
			pending = false
			b.WriteRune(r)
		default:
			pending = true
		}
	}
	return b.String()
}
