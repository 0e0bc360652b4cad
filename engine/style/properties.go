package style

import (
	"regexp"
	"strings"

	"github.com/Nareth123/angular/pkg/env"
)

var (
	camelCasePattern = regexp.MustCompile(`([a-z0-9])([A-Z])`)
	dashCasePattern  = regexp.MustCompile(`-+([a-z0-9])`)
)

// CamelCaseToDashCase converts a camelCase property name to dash-case.
func CamelCaseToDashCase(prop string) string {
	return strings.ToLower(camelCasePattern.ReplaceAllString(prop, "$1-$2"))
}

// DashCaseToCamelCase converts a dash-case property name to camelCase.
func DashCaseToCamelCase(prop string) string {
	return dashCasePattern.ReplaceAllStringFunc(prop, func(m string) string {
		return strings.ToUpper(strings.TrimLeft(m, "-"))
	})
}

// HyphenateKeys returns a copy of styles with every property name
// converted to dash-case. Values are carried over untouched.
func HyphenateKeys(styles map[string]any) map[string]any {
	hyphenated := make(map[string]any, len(styles))
	for prop, value := range styles {
		hyphenated[CamelCaseToDashCase(prop)] = value
	}
	return hyphenated
}

// ContainsVendorPrefix reports whether the property already carries a
// vendor prefix.
func ContainsVendorPrefix(prop string) bool {
	for _, prefix := range []string{"-webkit-", "-moz-", "-ms-", "-o-"} {
		if strings.HasPrefix(prop, prefix) {
			return true
		}
	}
	return false
}

// ValidateStyleProperty reports whether the property is animatable on the
// host. Unprefixed properties fall back to their -webkit- form before being
// rejected. Hosts without element support cannot probe style support and
// accept every property.
func ValidateStyleProperty(prop string, caps env.Capabilities) bool {
	if !caps.Elements {
		return true
	}
	key := CamelCaseToDashCase(strings.TrimSpace(prop))
	if _, ok := supportedProperties[key]; ok {
		return true
	}
	if !ContainsVendorPrefix(key) {
		_, ok := supportedProperties["-webkit-"+key]
		return ok
	}
	return false
}

// supportedProperties lists the style properties the renderer knows how to
// apply. The set mirrors the animatable surface of CSS 2.1 plus the
// transform and filter families.
var supportedProperties = buildPropertySet(
	"all",
	"background",
	"background-color",
	"background-position",
	"background-size",
	"border",
	"border-bottom",
	"border-bottom-color",
	"border-bottom-left-radius",
	"border-bottom-right-radius",
	"border-bottom-width",
	"border-color",
	"border-left",
	"border-left-color",
	"border-left-width",
	"border-radius",
	"border-right",
	"border-right-color",
	"border-right-width",
	"border-spacing",
	"border-top",
	"border-top-color",
	"border-top-left-radius",
	"border-top-right-radius",
	"border-top-width",
	"border-width",
	"bottom",
	"box-shadow",
	"clip",
	"clip-path",
	"color",
	"column-count",
	"column-gap",
	"column-width",
	"filter",
	"flex",
	"flex-basis",
	"flex-grow",
	"flex-shrink",
	"font",
	"font-size",
	"font-size-adjust",
	"font-stretch",
	"font-weight",
	"grid-column-gap",
	"grid-gap",
	"grid-row-gap",
	"height",
	"left",
	"letter-spacing",
	"line-height",
	"margin",
	"margin-bottom",
	"margin-left",
	"margin-right",
	"margin-top",
	"max-height",
	"max-width",
	"min-height",
	"min-width",
	"object-position",
	"opacity",
	"order",
	"outline",
	"outline-color",
	"outline-offset",
	"outline-width",
	"padding",
	"padding-bottom",
	"padding-left",
	"padding-right",
	"padding-top",
	"perspective",
	"perspective-origin",
	"right",
	"rotate",
	"scale",
	"text-decoration",
	"text-decoration-color",
	"text-indent",
	"text-shadow",
	"top",
	"transform",
	"transform-origin",
	"translate",
	"vertical-align",
	"visibility",
	"width",
	"word-spacing",
	"z-index",
	"-webkit-backdrop-filter",
	"-webkit-box-shadow",
	"-webkit-filter",
	"-webkit-text-fill-color",
	"-webkit-transform",
	"-webkit-transform-origin",
)

func buildPropertySet(props ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(props))
	for _, prop := range props {
		set[prop] = struct{}{}
	}
	return set
}
