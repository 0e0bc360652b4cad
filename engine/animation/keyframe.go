package animation

import (
	"sort"

	"github.com/mohae/deepcopy"
)

const (
	// PreStyleValue marks a keyframe value substituted from the element's
	// styles captured immediately before the animation.
	PreStyleValue = "!"
	// AutoStyleValue marks a keyframe value substituted from the element's
	// styles captured immediately after the animation.
	AutoStyleValue = "*"
)

// Styles maps style property names to their values.
type Styles map[string]any

// Clone returns a deep copy of the styles so callers can mutate the result
// without aliasing the source.
func (s Styles) Clone() Styles {
	if s == nil {
		return nil
	}
	copied, ok := deepcopy.Copy(map[string]any(s)).(map[string]any)
	if !ok {
		return Styles{}
	}
	return Styles(copied)
}

// SortedProps returns the property names of the styles in sorted order, so
// passes over a keyframe stay deterministic.
func (s Styles) SortedProps() []string {
	props := make([]string, 0, len(s))
	for prop := range s {
		props = append(props, prop)
	}
	sort.Strings(props)
	return props
}

// Keyframe is a style snapshot at a normalized timeline offset in [0,1].
type Keyframe struct {
	Styles Styles
	Offset float64
}

// NewKeyframe creates an empty keyframe at the given offset.
func NewKeyframe(offset float64) *Keyframe {
	return &Keyframe{Styles: Styles{}, Offset: offset}
}

// GetOrSetDefault returns the value stored under key, inserting and
// returning defaultValue when the key is absent. The caller owns the map.
func GetOrSetDefault[K comparable, V any](m map[K]V, key K, defaultValue V) V {
	if value, ok := m[key]; ok {
		return value
	}
	m[key] = defaultValue
	return defaultValue
}
