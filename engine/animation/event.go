package animation

import (
	"fmt"
	"strings"

	"github.com/Nareth123/angular/engine/dom"
)

// Phase is one of the three lifecycle phases of a player.
type Phase string

const (
	PhaseStart   Phase = "start"
	PhaseDone    Phase = "done"
	PhaseDestroy Phase = "destroy"
)

func (p Phase) String() string {
	return string(p)
}

// ParsePhase validates a textual phase name at the boundary. Phase names
// arriving from outside the process go through here so unknown names are
// rejected before they reach the adapter.
func ParsePhase(name string) (Phase, error) {
	switch Phase(name) {
	case PhaseStart, PhaseDone, PhaseDestroy:
		return Phase(name), nil
	default:
		return "", fmt.Errorf("unknown animation phase %q", name)
	}
}

// Event is the payload delivered to lifecycle callbacks.
type Event struct {
	Element     dom.Element
	TriggerName string
	FromState   string
	ToState     string
	Phase       Phase
	// TotalTime is the animation duration in milliseconds.
	TotalTime float64
	Disabled  bool
	// Data is an opaque side-channel carried across copies by reference.
	Data any
}

// MakeEvent assembles a lifecycle event payload.
func MakeEvent(
	element dom.Element,
	triggerName string,
	fromState string,
	toState string,
	phase Phase,
	totalTime float64,
) *Event {
	return &Event{
		Element:     element,
		TriggerName: triggerName,
		FromState:   fromState,
		ToState:     toState,
		Phase:       phase,
		TotalTime:   totalTime,
	}
}

// CopyEvent produces a copy of e updated to the given phase. An empty phase
// falls back to the source's phase; the total time comes from the player
// when one is given, and the disabled flag reflects the player's current
// state. The opaque Data field carries over by reference.
func CopyEvent(e *Event, phase Phase, player Player) *Event {
	if phase == "" {
		phase = e.Phase
	}
	totalTime := e.TotalTime
	if player != nil {
		totalTime = player.TotalTime()
	}
	event := MakeEvent(e.Element, e.TriggerName, e.FromState, e.ToState, phase, totalTime)
	event.Disabled = PlayerDisabled(player)
	event.Data = e.Data
	return event
}

// BindLifecycle registers callback to fire when the player reaches the
// given phase. With a non-nil event the callback receives a copy of it
// updated to that phase; otherwise it receives nil. Phases outside the
// closed enumeration register nothing.
func BindLifecycle(player Player, phase Phase, event *Event, callback func(*Event)) {
	listen := func() {
		if event != nil {
			callback(CopyEvent(event, phase, player))
			return
		}
		callback(nil)
	}
	switch phase {
	case PhaseStart:
		player.OnStart(listen)
	case PhaseDone:
		player.OnDone(listen)
	case PhaseDestroy:
		player.OnDestroy(listen)
	}
}

// ParseTimelineCommand splits a timeline command of the form "@id.action"
// into its trigger id and action.
func ParseTimelineCommand(command string) (string, string, error) {
	if !strings.HasPrefix(command, "@") {
		return "", "", fmt.Errorf("timeline command %q must start with '@'", command)
	}
	id, action, found := strings.Cut(command[1:], ".")
	if !found || id == "" || action == "" {
		return "", "", fmt.Errorf("timeline command %q must have the form '@id.action'", command)
	}
	return id, action, nil
}
