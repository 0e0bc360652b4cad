package timeline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nareth123/angular/engine/timeline"
)

const fadeDefinition = `
name: fade-in
duration: 300
delay: 50
easing: ease-out
default_styles:
  visibility: visible
steps:
  - offset: 0
    styles:
      opacity: "0"
  - offset: 1
    styles:
      opacity: "1"
      visibility: hidden
`

func TestDecode(t *testing.T) {
	t.Run("Should decode a valid definition", func(t *testing.T) {
		def, err := timeline.Decode([]byte(fadeDefinition))
		require.NoError(t, err)
		assert.Equal(t, "fade-in", def.Name)
		assert.Equal(t, 300.0, def.Duration)
		assert.Equal(t, 50.0, def.Delay)
		require.Len(t, def.Steps, 2)
		assert.NotEmpty(t, def.ID, "definitions without an id get one assigned")
	})

	t.Run("Should keep an explicit id", func(t *testing.T) {
		def, err := timeline.Decode([]byte("id: fade-1\nname: fade\nsteps:\n  - styles: {opacity: \"1\"}\n"))
		require.NoError(t, err)
		assert.Equal(t, "fade-1", def.ID)
	})

	t.Run("Should reject a definition without a name", func(t *testing.T) {
		_, err := timeline.Decode([]byte("steps:\n  - styles: {opacity: \"1\"}\n"))
		require.Error(t, err)
	})

	t.Run("Should reject a definition without steps", func(t *testing.T) {
		_, err := timeline.Decode([]byte("name: empty\n"))
		require.Error(t, err)
	})

	t.Run("Should reject offsets outside the unit interval", func(t *testing.T) {
		_, err := timeline.Decode([]byte("name: bad\nsteps:\n  - offset: 1.5\n    styles: {opacity: \"1\"}\n"))
		require.Error(t, err)
	})

	t.Run("Should reject malformed yaml", func(t *testing.T) {
		_, err := timeline.Decode([]byte("name: [unclosed"))
		require.Error(t, err)
	})
}

func TestDefinition_BuildKeyframes(t *testing.T) {
	t.Run("Should carry explicit offsets and merge default styles", func(t *testing.T) {
		def, err := timeline.Decode([]byte(fadeDefinition))
		require.NoError(t, err)
		keyframes, err := def.BuildKeyframes()
		require.NoError(t, err)
		require.Len(t, keyframes, 2)
		assert.Equal(t, 0.0, keyframes[0].Offset)
		assert.Equal(t, 1.0, keyframes[1].Offset)
		assert.Equal(t, "visible", keyframes[0].Styles["visibility"], "default styles fill gaps")
		assert.Equal(t, "hidden", keyframes[1].Styles["visibility"], "step styles win over defaults")
	})

	t.Run("Should distribute missing offsets evenly", func(t *testing.T) {
		def, err := timeline.Decode([]byte(
			"name: spread\nsteps:\n" +
				"  - styles: {opacity: \"0\"}\n" +
				"  - styles: {opacity: \"0.5\"}\n" +
				"  - styles: {opacity: \"1\"}\n"))
		require.NoError(t, err)
		keyframes, err := def.BuildKeyframes()
		require.NoError(t, err)
		require.Len(t, keyframes, 3)
		assert.Equal(t, 0.0, keyframes[0].Offset)
		assert.Equal(t, 0.5, keyframes[1].Offset)
		assert.Equal(t, 1.0, keyframes[2].Offset)
	})

	t.Run("Should place a single step at the end of the timeline", func(t *testing.T) {
		def, err := timeline.Decode([]byte("name: single\nsteps:\n  - styles: {opacity: \"1\"}\n"))
		require.NoError(t, err)
		keyframes, err := def.BuildKeyframes()
		require.NoError(t, err)
		require.Len(t, keyframes, 1)
		assert.Equal(t, 1.0, keyframes[0].Offset)
	})

	t.Run("Should not mutate the definition's steps", func(t *testing.T) {
		def, err := timeline.Decode([]byte(fadeDefinition))
		require.NoError(t, err)
		_, err = def.BuildKeyframes()
		require.NoError(t, err)
		assert.NotContains(t, def.Steps[0].Styles, "visibility")
	})
}
