package animation

import "sync"

// Player is the control surface of one running animation. Lifecycle
// callbacks registered after the phase has already been reached fire
// immediately; otherwise they fire at most once when the phase is reached.
type Player interface {
	OnStart(fn func())
	OnDone(fn func())
	OnDestroy(fn func())
	Init()
	Play()
	Pause()
	Restart()
	Finish()
	Destroy()
	Reset()
	HasStarted() bool
	// TotalTime is the duration of the animation in milliseconds.
	TotalTime() float64
	GetPosition() float64
	SetPosition(position float64)
}

// Disableable is probed by the event adapter for the optional disabled
// flag; players that do not implement it count as enabled.
type Disableable interface {
	Disabled() bool
}

// PlayerDisabled reports the disabled state of the player, defaulting to
// false for absent players and players without the flag.
func PlayerDisabled(player Player) bool {
	if d, ok := player.(Disableable); ok {
		return d.Disabled()
	}
	return false
}

// -----------------------------------------------------------------------------
// Noop Player
// -----------------------------------------------------------------------------

// NoopPlayer applies no styles and finishes as soon as it is played. It
// carries the timing of the animation it stands in for.
type NoopPlayer struct {
	mu        sync.Mutex
	onStart   []func()
	onDone    []func()
	onDestroy []func()
	started   bool
	finished  bool
	destroyed bool
	totalTime float64
}

// NewNoopPlayer creates a no-op player for an animation of the given
// duration and delay, both in milliseconds.
func NewNoopPlayer(duration, delay float64) *NoopPlayer {
	return &NoopPlayer{totalTime: duration + delay}
}

func (p *NoopPlayer) OnStart(fn func()) {
	p.register(&p.onStart, &p.started, fn)
}

func (p *NoopPlayer) OnDone(fn func()) {
	p.register(&p.onDone, &p.finished, fn)
}

func (p *NoopPlayer) OnDestroy(fn func()) {
	p.register(&p.onDestroy, &p.destroyed, fn)
}

// register appends fn to the callback list, or fires it immediately when
// the phase has already been reached.
func (p *NoopPlayer) register(fns *[]func(), reached *bool, fn func()) {
	p.mu.Lock()
	if *reached {
		p.mu.Unlock()
		fn()
		return
	}
	*fns = append(*fns, fn)
	p.mu.Unlock()
}

func (p *NoopPlayer) Init() {}

func (p *NoopPlayer) Play() {
	p.fire(&p.started, &p.onStart)
	p.Finish()
}

func (p *NoopPlayer) Pause() {}

func (p *NoopPlayer) Restart() {}

func (p *NoopPlayer) Finish() {
	p.fire(&p.finished, &p.onDone)
}

func (p *NoopPlayer) Destroy() {
	p.Finish()
	p.fire(&p.destroyed, &p.onDestroy)
}

func (p *NoopPlayer) Reset() {
	p.mu.Lock()
	p.started = false
	p.finished = false
	p.mu.Unlock()
}

func (p *NoopPlayer) HasStarted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.started
}

func (p *NoopPlayer) TotalTime() float64 {
	return p.totalTime
}

func (p *NoopPlayer) GetPosition() float64 { return 0 }

func (p *NoopPlayer) SetPosition(float64) {}

// fire flips the phase flag and runs its pending callbacks exactly once.
// Callbacks run outside the lock so they may re-enter the player.
func (p *NoopPlayer) fire(reached *bool, fns *[]func()) {
	p.mu.Lock()
	if *reached {
		p.mu.Unlock()
		return
	}
	*reached = true
	pending := *fns
	*fns = nil
	p.mu.Unlock()
	for _, fn := range pending {
		fn()
	}
}
