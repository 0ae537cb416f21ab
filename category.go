package moneytracker

import (
	"fmt"
	"regexp"
	"strings"
)

var colorRE = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Category is a user defined label with an optional display color.
type Category struct {
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// NewCategory validates a category. color is either empty or "#rrggbb".
func NewCategory(name, color string) (Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Category{}, ErrEmptyTitle
	}
	color = strings.ToLower(strings.TrimSpace(color))
	if color != "" && !colorRE.MatchString(color) {
		return Category{}, fmt.Errorf("invalid color %q for category %q, want #rrggbb", color, name)
	}
	return Category{Name: name, Color: color}, nil
}
