package dom

import (
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"

	"github.com/Nareth123/angular/pkg/env"
)

// Element is a node of a parsed document tree.
type Element = *html.Node

// Adapter exposes element location and comparison over a parsed document.
// Every method degrades to its safe default (false, empty) when the host
// capabilities lack element or selector support, or when inputs are absent.
type Adapter struct {
	caps env.Capabilities
}

// NewAdapter creates an adapter bound to the given host capabilities.
func NewAdapter(caps env.Capabilities) *Adapter {
	return &Adapter{caps: caps}
}

// Contains reports whether el sits inside container (or is container itself).
func (a *Adapter) Contains(container, el Element) bool {
	if !a.caps.Elements || container == nil || el == nil {
		return false
	}
	for node := el; node != nil; node = node.Parent {
		if node == container {
			return true
		}
	}
	return false
}

// Matches reports whether el matches the selector. Unparsable selectors and
// non-element nodes never match.
func (a *Adapter) Matches(el Element, selector string) bool {
	if !a.caps.Selectors || el == nil || el.Type != html.ElementNode {
		return false
	}
	sel, err := cascadia.ParseGroup(selector)
	if err != nil {
		return false
	}
	return sel.Match(el)
}

// Query returns the elements below el matching the selector: all of them
// when multi is set, otherwise at most the first.
func (a *Adapter) Query(el Element, selector string, multi bool) []Element {
	if !a.caps.Selectors || el == nil {
		return nil
	}
	sel, err := cascadia.ParseGroup(selector)
	if err != nil {
		return nil
	}
	if multi {
		return cascadia.QueryAll(el, sel)
	}
	if first := cascadia.Query(el, sel); first != nil {
		return []Element{first}
	}
	return nil
}
