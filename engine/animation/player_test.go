package animation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nareth123/angular/engine/animation"
)

func TestNoopPlayer(t *testing.T) {
	t.Run("Should fire start and done on play", func(t *testing.T) {
		player := animation.NewNoopPlayer(100, 50)
		var phases []string
		player.OnStart(func() { phases = append(phases, "start") })
		player.OnDone(func() { phases = append(phases, "done") })
		player.Play()
		assert.Equal(t, []string{"start", "done"}, phases)
		assert.True(t, player.HasStarted())
	})

	t.Run("Should carry duration plus delay as total time", func(t *testing.T) {
		player := animation.NewNoopPlayer(100, 50)
		assert.Equal(t, 150.0, player.TotalTime())
	})

	t.Run("Should fire done callbacks registered after finishing", func(t *testing.T) {
		player := animation.NewNoopPlayer(0, 0)
		player.Finish()
		fired := false
		player.OnDone(func() { fired = true })
		assert.True(t, fired)
	})

	t.Run("Should fire each phase at most once", func(t *testing.T) {
		player := animation.NewNoopPlayer(0, 0)
		count := 0
		player.OnDone(func() { count++ })
		player.Finish()
		player.Finish()
		player.Play()
		assert.Equal(t, 1, count)
	})

	t.Run("Should fire done before destroy on destroy", func(t *testing.T) {
		player := animation.NewNoopPlayer(0, 0)
		var phases []string
		player.OnDone(func() { phases = append(phases, "done") })
		player.OnDestroy(func() { phases = append(phases, "destroy") })
		player.Destroy()
		assert.Equal(t, []string{"done", "destroy"}, phases)
	})
}

func TestGroupPlayer(t *testing.T) {
	t.Run("Should fire done only after all constituents are done", func(t *testing.T) {
		p1 := animation.NewNoopPlayer(100, 0)
		p2 := animation.NewNoopPlayer(200, 0)
		group := animation.NewGroupPlayer([]animation.Player{p1, p2})
		done := false
		group.OnDone(func() { done = true })
		p1.Finish()
		assert.False(t, done)
		p2.Finish()
		assert.True(t, done)
	})

	t.Run("Should fire start once on the first constituent start", func(t *testing.T) {
		p1 := animation.NewNoopPlayer(100, 0)
		p2 := animation.NewNoopPlayer(200, 0)
		group := animation.NewGroupPlayer([]animation.Player{p1, p2})
		starts := 0
		group.OnStart(func() { starts++ })
		p1.Play()
		p2.Play()
		assert.Equal(t, 1, starts)
	})

	t.Run("Should fire destroy only after all constituents are destroyed", func(t *testing.T) {
		p1 := animation.NewNoopPlayer(100, 0)
		p2 := animation.NewNoopPlayer(200, 0)
		group := animation.NewGroupPlayer([]animation.Player{p1, p2})
		destroyed := false
		group.OnDestroy(func() { destroyed = true })
		p1.Destroy()
		assert.False(t, destroyed)
		p2.Destroy()
		assert.True(t, destroyed)
	})

	t.Run("Should aggregate lifecycle through its own controls", func(t *testing.T) {
		p1 := animation.NewNoopPlayer(100, 0)
		p2 := animation.NewNoopPlayer(200, 0)
		group := animation.NewGroupPlayer([]animation.Player{p1, p2})
		var phases []string
		group.OnStart(func() { phases = append(phases, "start") })
		group.OnDone(func() { phases = append(phases, "done") })
		group.Play()
		assert.Equal(t, []string{"start", "done"}, phases)
	})

	t.Run("Should clear destroy state on reset", func(t *testing.T) {
		p1 := animation.NewNoopPlayer(100, 0)
		p2 := animation.NewNoopPlayer(200, 0)
		group := animation.NewGroupPlayer([]animation.Player{p1, p2})
		group.Destroy()
		group.Reset()
		fired := false
		group.OnDestroy(func() { fired = true })
		assert.False(t, fired, "destroy must not be reported as already reached after a reset")
		assert.False(t, group.HasStarted())
	})

	t.Run("Should report the longest constituent as total time", func(t *testing.T) {
		group := animation.NewGroupPlayer([]animation.Player{
			animation.NewNoopPlayer(100, 0),
			animation.NewNoopPlayer(200, 50),
		})
		assert.Equal(t, 250.0, group.TotalTime())
	})
}

func TestComposePlayers(t *testing.T) {
	t.Run("Should return an already-done player for zero players", func(t *testing.T) {
		player := animation.ComposePlayers(nil)
		require.NotNil(t, player)
		fired := false
		player.OnDone(func() { fired = true })
		assert.True(t, fired)
	})

	t.Run("Should return the sole player unchanged", func(t *testing.T) {
		sole := animation.NewNoopPlayer(10, 0)
		assert.Same(t, sole, animation.ComposePlayers([]animation.Player{sole}))
	})

	t.Run("Should wrap two or more players in a distinct group player", func(t *testing.T) {
		p1 := animation.NewNoopPlayer(10, 0)
		p2 := animation.NewNoopPlayer(20, 0)
		composed := animation.ComposePlayers([]animation.Player{p1, p2})
		require.NotNil(t, composed)
		assert.NotSame(t, animation.Player(p1), composed)
		assert.NotSame(t, animation.Player(p2), composed)
		group, ok := composed.(*animation.GroupPlayer)
		require.True(t, ok)
		assert.Len(t, group.Players(), 2)
		assert.NotEmpty(t, group.ID())
	})
}
