package animation

import (
	"fmt"

	"github.com/Nareth123/angular/engine/dom"
	"github.com/Nareth123/angular/engine/style"
	"github.com/Nareth123/angular/pkg/env"
)

// Driver performs the actual style application for compiled animations.
// The normalization core passes it through without invoking it.
type Driver interface {
	ValidateStyleProperty(prop string) bool
	ContainsElement(container, el dom.Element) bool
	Query(el dom.Element, selector string, multi bool) []dom.Element
	ComputeStyle(el dom.Element, prop, defaultValue string) string
	Animate(
		el dom.Element,
		keyframes []*Keyframe,
		duration float64,
		delay float64,
		easing string,
		previousPlayers []Player,
	) Player
}

// HostDriver serves hosts that resolve elements and styles from parsed
// documents but never schedule animation frames: Animate hands back a
// no-op player carrying the requested timing.
type HostDriver struct {
	caps    env.Capabilities
	adapter *dom.Adapter
	reader  *dom.StyleReader
}

// NewHostDriver creates a driver for the given host capabilities.
func NewHostDriver(caps env.Capabilities, styleCacheSize int) (*HostDriver, error) {
	reader, err := dom.NewStyleReader(caps, styleCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create host driver: %w", err)
	}
	return &HostDriver{
		caps:    caps,
		adapter: dom.NewAdapter(caps),
		reader:  reader,
	}, nil
}

// StyleReader exposes the driver's style reader for style balancing.
func (d *HostDriver) StyleReader() *dom.StyleReader {
	return d.reader
}

func (d *HostDriver) ValidateStyleProperty(prop string) bool {
	return style.ValidateStyleProperty(prop, d.caps)
}

func (d *HostDriver) ContainsElement(container, el dom.Element) bool {
	return d.adapter.Contains(container, el)
}

func (d *HostDriver) Query(el dom.Element, selector string, multi bool) []dom.Element {
	return d.adapter.Query(el, selector, multi)
}

func (d *HostDriver) ComputeStyle(el dom.Element, prop, defaultValue string) string {
	if value := d.reader.ComputedStyle(el, prop); value != "" {
		return value
	}
	return defaultValue
}

func (d *HostDriver) Animate(
	el dom.Element,
	keyframes []*Keyframe,
	duration float64,
	delay float64,
	easing string,
	previousPlayers []Player,
) Player {
	return NewNoopPlayer(duration, delay)
}
