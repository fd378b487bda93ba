// Package fonts holds the font family, size and color choices offered by the toolbar.
package fonts

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	// MaxSuggestions caps the family listbox.
	MaxSuggestions = 10

	minSize  = 8
	maxSize  = 72
	sizeStep = 2
)

var fallbackFamilies = []string{
	"Arial",
	"Courier New",
	"DejaVu Sans",
	"DejaVu Sans Mono",
	"Georgia",
	"Helvetica",
	"Liberation Mono",
	"Liberation Sans",
	"Times New Roman",
	"Verdana",
}

// Families returns the sorted, deduplicated union of the system families,
// the built-in fallbacks and any extra names from the config.
func Families(extra ...string) []string {
	return merge(systemFamilies(), fallbackFamilies, extra)
}

func merge(lists ...[]string) []string {
	seen := map[string]bool{}
	var out []string
	for _, l := range lists {
		for _, f := range l {
			f = strings.TrimSpace(f)
			if f == "" || seen[strings.ToLower(f)] {
				continue
			}
			seen[strings.ToLower(f)] = true
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return strings.ToLower(out[i]) < strings.ToLower(out[j]) })
	return out
}

// Filter returns at most MaxSuggestions families containing query, ignoring case.
// An empty query matches everything.
func Filter(families []string, query string) []string {
	q := strings.ToLower(query)
	out := make([]string, 0, MaxSuggestions)
	for _, f := range families {
		if strings.Contains(strings.ToLower(f), q) {
			out = append(out, f)
			if len(out) == MaxSuggestions {
				break
			}
		}
	}
	return out
}

// Sizes lists the sizes offered by the size box: 8, 10, ... 72.
func Sizes() []int {
	out := make([]int, 0, (maxSize-minSize)/sizeStep+1)
	for s := minSize; s <= maxSize; s += sizeStep {
		out = append(out, s)
	}
	return out
}

// ParseSize parses a typed size. ok is false for anything that is not a positive integer.
func ParseSize(s string) (size int, ok bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// ParseColor accepts "#rgb" or "#rrggbb" and returns the lowercase six-digit form.
func ParseColor(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s != "" && !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return "", fmt.Errorf("invalid color %q: %w", s, err)
	}
	return c.Hex(), nil
}

// IsLight reports whether a valid hex color is closer to white than black.
// Invalid input counts as dark.
func IsLight(hex string) bool {
	c, err := colorful.Hex(hex)
	if err != nil {
		return false
	}
	_, _, l := c.Hsl()
	return l > 0.6
}
