package dom

import (
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/Nareth123/angular/engine/style"
	"github.com/Nareth123/angular/pkg/env"
)

// StyleReader reads resolved element styles. Parsed style maps are kept in a
// bounded LRU cache keyed by element identity; writers must call Invalidate
// after mutating an element's inline styles.
type StyleReader struct {
	caps  env.Capabilities
	cache *lru.Cache[Element, map[string]string]
}

// NewStyleReader creates a reader with a style cache of the given size.
func NewStyleReader(caps env.Capabilities, cacheSize int) (*StyleReader, error) {
	if cacheSize <= 0 {
		return nil, fmt.Errorf("style cache size must be positive, got %d", cacheSize)
	}
	cache, err := lru.New[Element, map[string]string](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create style cache: %w", err)
	}
	return &StyleReader{caps: caps, cache: cache}, nil
}

// ComputedStyle returns the resolved value of prop on el, or "" when the
// property is unset or the host cannot read styles. The margin and padding
// shorthands are reconstructed from their longhands when not set directly.
func (r *StyleReader) ComputedStyle(el Element, prop string) string {
	if !r.caps.ComputedStyles || el == nil {
		return ""
	}
	styles := r.styles(el)
	key := style.CamelCaseToDashCase(strings.TrimSpace(prop))
	if value, ok := styles[key]; ok {
		return value
	}
	if key == "margin" || key == "padding" {
		return reconstructShorthand(styles, key)
	}
	return ""
}

// Invalidate drops the cached styles of el.
func (r *StyleReader) Invalidate(el Element) {
	if el != nil {
		r.cache.Remove(el)
	}
}

func (r *StyleReader) styles(el Element) map[string]string {
	if cached, ok := r.cache.Get(el); ok {
		return cached
	}
	styles := ReadStyleAttr(el)
	r.cache.Add(el, styles)
	return styles
}

// reconstructShorthand rebuilds a box shorthand (margin, padding) from its
// four longhands. All four must be present; otherwise the shorthand is
// treated as unset.
func reconstructShorthand(styles map[string]string, prop string) string {
	top, hasTop := styles[prop+"-top"]
	right, hasRight := styles[prop+"-right"]
	bottom, hasBottom := styles[prop+"-bottom"]
	left, hasLeft := styles[prop+"-left"]
	if !hasTop || !hasRight || !hasBottom || !hasLeft {
		return ""
	}
	switch {
	case top == bottom && right == left && top == right:
		return top
	case top == bottom && right == left:
		return top + " " + right
	case right == left:
		return top + " " + right + " " + bottom
	default:
		return top + " " + right + " " + bottom + " " + left
	}
}
