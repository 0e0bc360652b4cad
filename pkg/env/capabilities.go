package env

// Capabilities describes what the host environment can do with document
// elements. It is computed once at startup and threaded explicitly to every
// consumer instead of being probed lazily through package-level state.
type Capabilities struct {
	// Elements reports whether an element tree is available at all.
	Elements bool
	// Selectors reports whether a selector engine can match elements.
	Selectors bool
	// ComputedStyles reports whether element styles can be read back.
	ComputedStyles bool
}

// Detect returns the capabilities of the current host. The in-process host
// owns its parsed documents, so the full capability set is available; hosts
// that operate without documents should use None instead.
func Detect() Capabilities {
	return Capabilities{
		Elements:       true,
		Selectors:      true,
		ComputedStyles: true,
	}
}

// None returns the capability set of a host without element support. Every
// element operation degrades to its safe default under this value.
func None() Capabilities {
	return Capabilities{}
}
