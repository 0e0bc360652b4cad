package animation

import (
	"github.com/Nareth123/angular/engine/dom"
	"github.com/Nareth123/angular/engine/style"
)

// NormalizeKeyframes resolves placeholder values against the pre/post style
// snapshots, canonicalizes property names and values through the style
// normalizer, and merges keyframes that share a timeline offset. Resolution
// failures are collected across the whole pass and surfaced once as a
// *StyleResolutionError; no partial result is returned on failure.
//
// The driver and element are carried for the rendering host and are not
// consulted during normalization itself.
func NormalizeKeyframes(
	driver Driver,
	normalizer style.Normalizer,
	element dom.Element,
	keyframes []*Keyframe,
	preStyles Styles,
	postStyles Styles,
) ([]*Keyframe, error) {
	errs := &style.ErrorSink{}
	normalized := make([]*Keyframe, 0, len(keyframes))
	previousOffset := -1.0
	var previousKeyframe *Keyframe
	for _, keyframe := range keyframes {
		offset := keyframe.Offset
		isSameOffset := offset == previousOffset
		var target *Keyframe
		if isSameOffset && previousKeyframe != nil {
			target = previousKeyframe
		} else {
			target = NewKeyframe(offset)
		}
		for _, prop := range keyframe.Styles.SortedProps() {
			value := keyframe.Styles[prop]
			normalizedProp := normalizer.NormalizePropertyName(prop, errs)
			var normalizedValue any
			switch value {
			case PreStyleValue:
				normalizedValue = preStyles[prop]
			case AutoStyleValue:
				normalizedValue = postStyles[prop]
			default:
				normalizedValue = normalizer.NormalizeStyleValue(prop, normalizedProp, value, errs)
			}
			target.Styles[normalizedProp] = normalizedValue
		}
		if !isSameOffset {
			normalized = append(normalized, target)
		}
		previousKeyframe = target
		previousOffset = offset
	}
	if errs.Len() > 0 {
		return nil, NewStyleResolutionError(errs.Errors())
	}
	return normalized, nil
}

// BalancePreviousStyles folds the final styles of interrupted animations
// into the keyframe sequence: every carried-over property is written into
// the first keyframe, and properties the sequence never mentioned are
// pinned to the element's current value in all later keyframes so they do
// not snap.
func BalancePreviousStyles(
	reader *dom.StyleReader,
	element dom.Element,
	keyframes []*Keyframe,
	previousStyles Styles,
) {
	if len(previousStyles) == 0 || len(keyframes) == 0 {
		return
	}
	startingKeyframe := keyframes[0]
	var missingProps []string
	for _, prop := range previousStyles.SortedProps() {
		if _, has := startingKeyframe.Styles[prop]; !has {
			missingProps = append(missingProps, prop)
		}
		startingKeyframe.Styles[prop] = previousStyles[prop]
	}
	if len(missingProps) == 0 {
		return
	}
	for _, keyframe := range keyframes[1:] {
		for _, prop := range missingProps {
			keyframe.Styles[prop] = reader.ComputedStyle(element, prop)
		}
	}
}
