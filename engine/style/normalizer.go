package style

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Normalizer canonicalizes style property names and values for the target
// rendering environment. Resolution failures are appended to the error sink
// instead of aborting the pass.
type Normalizer interface {
	NormalizePropertyName(prop string, errs *ErrorSink) string
	NormalizeStyleValue(userProp, normalizedProp string, value any, errs *ErrorSink) string
}

// -----------------------------------------------------------------------------
// Web Normalizer
// -----------------------------------------------------------------------------

// WebNormalizer canonicalizes property names to dash-case and appends the px
// unit to bare numeric values of dimensional properties.
type WebNormalizer struct{}

// NewWebNormalizer creates the normalizer for browser-style rendering hosts.
func NewWebNormalizer() *WebNormalizer {
	return &WebNormalizer{}
}

func (n *WebNormalizer) NormalizePropertyName(prop string, errs *ErrorSink) string {
	trimmed := strings.TrimSpace(prop)
	if trimmed == "" || strings.ContainsAny(trimmed, " \t\n") {
		errs.Append(&InvalidPropertyError{Prop: prop})
		return prop
	}
	return CamelCaseToDashCase(trimmed)
}

// unitSuffixPattern splits a numeric value from its trailing unit.
var unitSuffixPattern = regexp.MustCompile(`^[+-]?[\d.]+([a-z%]*)$`)

func (n *WebNormalizer) NormalizeStyleValue(
	userProp string,
	normalizedProp string,
	value any,
	errs *ErrorSink,
) string {
	unit := ""
	strVal := strings.TrimSpace(ValueToString(value))
	if _, dimensional := dimensionalProperties[normalizedProp]; dimensional && !isZero(value) {
		if isNumeric(value) {
			unit = "px"
		} else if match := unitSuffixPattern.FindStringSubmatch(strVal); match != nil && match[1] == "" {
			errs.Append(&InvalidCSSUnitValueError{Prop: userProp, Value: strVal})
		}
	}
	return strVal + unit
}

// -----------------------------------------------------------------------------
// Noop Normalizer
// -----------------------------------------------------------------------------

// NoopNormalizer passes property names through untouched and stringifies
// values. It serves hosts that apply no styles at all.
type NoopNormalizer struct{}

func NewNoopNormalizer() *NoopNormalizer {
	return &NoopNormalizer{}
}

func (n *NoopNormalizer) NormalizePropertyName(prop string, _ *ErrorSink) string {
	return prop
}

func (n *NoopNormalizer) NormalizeStyleValue(_, _ string, value any, _ *ErrorSink) string {
	return ValueToString(value)
}

// -----------------------------------------------------------------------------
// Helpers
// -----------------------------------------------------------------------------

// ValueToString renders a style value the way a stylesheet would carry it.
// Floats drop their trailing zeros so 10.0 renders as "10".
func ValueToString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func isNumeric(value any) bool {
	switch value.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return true
	default:
		return false
	}
}

func isZero(value any) bool {
	switch v := value.(type) {
	case int:
		return v == 0
	case int64:
		return v == 0
	case uint64:
		return v == 0
	case float64:
		return v == 0
	case float32:
		return v == 0
	case string:
		return strings.TrimSpace(v) == "0"
	default:
		return false
	}
}

// dimensionalProperties lists the properties whose bare numeric values are
// interpreted as pixel lengths.
var dimensionalProperties = buildPropertySet(
	"width",
	"height",
	"min-width",
	"min-height",
	"max-width",
	"max-height",
	"left",
	"top",
	"bottom",
	"right",
	"font-size",
	"outline-width",
	"outline-offset",
	"padding-top",
	"padding-left",
	"padding-bottom",
	"padding-right",
	"margin-top",
	"margin-left",
	"margin-bottom",
	"margin-right",
	"border-radius",
	"border-width",
	"border-top-width",
	"border-left-width",
	"border-right-width",
	"border-bottom-width",
	"text-indent",
	"perspective",
)
