package dom

import (
	"sort"
	"strings"

	"golang.org/x/net/html"

	"github.com/Nareth123/angular/engine/style"
)

const styleAttr = "style"

// ReadStyleAttr parses the inline style attribute of el into a property map.
// Property names come back in dash-case.
func ReadStyleAttr(el Element) map[string]string {
	styles := make(map[string]string)
	if el == nil {
		return styles
	}
	for _, attr := range el.Attr {
		if attr.Key != styleAttr {
			continue
		}
		for _, decl := range strings.Split(attr.Val, ";") {
			prop, value, found := strings.Cut(decl, ":")
			if !found {
				continue
			}
			prop = style.CamelCaseToDashCase(strings.TrimSpace(prop))
			value = strings.TrimSpace(value)
			if prop != "" && value != "" {
				styles[prop] = value
			}
		}
	}
	return styles
}

// WriteStyleAttr replaces the inline style attribute of el with the given
// property map. Properties are written in sorted order so output is stable.
func WriteStyleAttr(el Element, styles map[string]string) {
	if el == nil {
		return
	}
	props := make([]string, 0, len(styles))
	for prop := range styles {
		props = append(props, prop)
	}
	sort.Strings(props)
	decls := make([]string, 0, len(props))
	for _, prop := range props {
		decls = append(decls, prop+": "+styles[prop])
	}
	serialized := strings.Join(decls, "; ")
	for i := range el.Attr {
		if el.Attr[i].Key == styleAttr {
			el.Attr[i].Val = serialized
			return
		}
	}
	el.Attr = append(el.Attr, html.Attribute{Key: styleAttr, Val: serialized})
}

// SetStyles merges the given styles into the inline style attribute of el.
func SetStyles(el Element, styles map[string]any) {
	if el == nil || len(styles) == 0 {
		return
	}
	current := ReadStyleAttr(el)
	for prop, value := range styles {
		current[style.CamelCaseToDashCase(prop)] = style.ValueToString(value)
	}
	WriteStyleAttr(el, current)
}

// EraseStyles removes the given properties from the inline style attribute
// of el. Values in the map are ignored.
func EraseStyles(el Element, styles map[string]any) {
	if el == nil || len(styles) == 0 {
		return
	}
	current := ReadStyleAttr(el)
	for prop := range styles {
		delete(current, style.CamelCaseToDashCase(prop))
	}
	WriteStyleAttr(el, current)
}
