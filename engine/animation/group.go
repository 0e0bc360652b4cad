package animation

import (
	"math"
	"sync"

	"github.com/google/uuid"

	"github.com/Nareth123/angular/pkg/logger"
)

// GroupPlayer drives a set of independently running players as one unit:
// start fires on the first constituent start observed, done once every
// constituent is done, destroy once every constituent is destroyed.
type GroupPlayer struct {
	id      string
	players []Player

	mu           sync.Mutex
	onStart      []func()
	onDone       []func()
	onDestroy    []func()
	started      bool
	finished     bool
	destroyed    bool
	doneCount    int
	destroyCount int

	totalTime float64
	longest   Player
}

// NewGroupPlayer aggregates the given players. An empty group counts as
// finished right away.
func NewGroupPlayer(players []Player) *GroupPlayer {
	g := &GroupPlayer{
		id:      uuid.NewString(),
		players: players,
	}
	for _, player := range players {
		if g.longest == nil || player.TotalTime() > g.totalTime {
			g.totalTime = player.TotalTime()
			g.longest = player
		}
	}
	for _, player := range players {
		player.OnStart(g.markStarted)
		player.OnDone(g.playerDone)
		player.OnDestroy(g.playerDestroyed)
	}
	if len(players) == 0 {
		g.fire(&g.finished, &g.onDone)
	}
	logger.Debug("created group player", "id", g.id, "players", len(players), "total_time", g.totalTime)
	return g
}

// ID identifies the group for log correlation.
func (g *GroupPlayer) ID() string {
	return g.id
}

// Players returns the constituent players.
func (g *GroupPlayer) Players() []Player {
	return g.players
}

func (g *GroupPlayer) OnStart(fn func()) {
	g.register(&g.onStart, &g.started, fn)
}

func (g *GroupPlayer) OnDone(fn func()) {
	g.register(&g.onDone, &g.finished, fn)
}

func (g *GroupPlayer) OnDestroy(fn func()) {
	g.register(&g.onDestroy, &g.destroyed, fn)
}

func (g *GroupPlayer) Init() {
	for _, player := range g.players {
		player.Init()
	}
}

func (g *GroupPlayer) Play() {
	g.markStarted()
	for _, player := range g.players {
		player.Play()
	}
}

func (g *GroupPlayer) Pause() {
	for _, player := range g.players {
		player.Pause()
	}
}

func (g *GroupPlayer) Restart() {
	g.Reset()
	for _, player := range g.players {
		player.Restart()
	}
}

func (g *GroupPlayer) Finish() {
	for _, player := range g.players {
		player.Finish()
	}
}

func (g *GroupPlayer) Destroy() {
	for _, player := range g.players {
		player.Destroy()
	}
	if len(g.players) == 0 {
		g.fire(&g.destroyed, &g.onDestroy)
	}
}

func (g *GroupPlayer) Reset() {
	g.mu.Lock()
	g.started = false
	g.finished = false
	g.destroyed = false
	g.doneCount = 0
	g.destroyCount = 0
	g.mu.Unlock()
	for _, player := range g.players {
		player.Reset()
	}
}

func (g *GroupPlayer) HasStarted() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.started
}

func (g *GroupPlayer) TotalTime() float64 {
	return g.totalTime
}

func (g *GroupPlayer) GetPosition() float64 {
	if g.longest == nil {
		return 0
	}
	return g.longest.GetPosition()
}

// SetPosition moves every constituent to the group-relative position,
// clamping players shorter than the group to their own end.
func (g *GroupPlayer) SetPosition(position float64) {
	timeAtPosition := position * g.totalTime
	for _, player := range g.players {
		playerPosition := 1.0
		if player.TotalTime() > 0 {
			playerPosition = math.Min(1, timeAtPosition/player.TotalTime())
		}
		player.SetPosition(playerPosition)
	}
}

func (g *GroupPlayer) markStarted() {
	g.fire(&g.started, &g.onStart)
}

func (g *GroupPlayer) playerDone() {
	g.mu.Lock()
	g.doneCount++
	allDone := g.doneCount >= len(g.players)
	g.mu.Unlock()
	if allDone {
		g.fire(&g.finished, &g.onDone)
	}
}

func (g *GroupPlayer) playerDestroyed() {
	g.mu.Lock()
	g.destroyCount++
	allDestroyed := g.destroyCount >= len(g.players)
	g.mu.Unlock()
	if allDestroyed {
		g.fire(&g.destroyed, &g.onDestroy)
	}
}

func (g *GroupPlayer) register(fns *[]func(), reached *bool, fn func()) {
	g.mu.Lock()
	if *reached {
		g.mu.Unlock()
		fn()
		return
	}
	*fns = append(*fns, fn)
	g.mu.Unlock()
}

func (g *GroupPlayer) fire(reached *bool, fns *[]func()) {
	g.mu.Lock()
	if *reached {
		g.mu.Unlock()
		return
	}
	*reached = true
	pending := *fns
	*fns = nil
	g.mu.Unlock()
	for _, fn := range pending {
		fn()
	}
}
