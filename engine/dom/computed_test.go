package dom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nareth123/angular/engine/dom"
	"github.com/Nareth123/angular/pkg/env"
)

func newReader(t *testing.T) *dom.StyleReader {
	t.Helper()
	reader, err := dom.NewStyleReader(env.Detect(), 16)
	require.NoError(t, err)
	return reader
}

func TestStyleReader_ComputedStyle(t *testing.T) {
	adapter := dom.NewAdapter(env.Detect())

	t.Run("Should read a directly set property", func(t *testing.T) {
		doc := parseDoc(t, `<div id="el" style="width: 10px; color: red"></div>`)
		el := queryOne(t, adapter, doc, "#el")
		reader := newReader(t)
		assert.Equal(t, "10px", reader.ComputedStyle(el, "width"))
		assert.Equal(t, "red", reader.ComputedStyle(el, "color"))
	})

	t.Run("Should canonicalize camelCase property lookups", func(t *testing.T) {
		doc := parseDoc(t, `<div id="el" style="background-color: blue"></div>`)
		el := queryOne(t, adapter, doc, "#el")
		reader := newReader(t)
		assert.Equal(t, "blue", reader.ComputedStyle(el, "backgroundColor"))
	})

	t.Run("Should reconstruct the margin shorthand from longhands", func(t *testing.T) {
		doc := parseDoc(t, `<div id="el" style="margin-top: 1px; margin-right: 2px; margin-bottom: 3px; margin-left: 4px"></div>`)
		el := queryOne(t, adapter, doc, "#el")
		reader := newReader(t)
		assert.Equal(t, "1px 2px 3px 4px", reader.ComputedStyle(el, "margin"))
	})

	t.Run("Should collapse equal longhands in the shorthand", func(t *testing.T) {
		doc := parseDoc(t, `<div id="el" style="padding-top: 5px; padding-right: 5px; padding-bottom: 5px; padding-left: 5px"></div>`)
		el := queryOne(t, adapter, doc, "#el")
		reader := newReader(t)
		assert.Equal(t, "5px", reader.ComputedStyle(el, "padding"))
	})

	t.Run("Should collapse vertical and horizontal pairs", func(t *testing.T) {
		doc := parseDoc(t, `<div id="el" style="margin-top: 1px; margin-right: 2px; margin-bottom: 1px; margin-left: 2px"></div>`)
		el := queryOne(t, adapter, doc, "#el")
		reader := newReader(t)
		assert.Equal(t, "1px 2px", reader.ComputedStyle(el, "margin"))
	})

	t.Run("Should treat a partial longhand set as unset", func(t *testing.T) {
		doc := parseDoc(t, `<div id="el" style="margin-top: 1px"></div>`)
		el := queryOne(t, adapter, doc, "#el")
		reader := newReader(t)
		assert.Equal(t, "", reader.ComputedStyle(el, "margin"))
	})

	t.Run("Should prefer a directly set shorthand over reconstruction", func(t *testing.T) {
		doc := parseDoc(t, `<div id="el" style="margin: 9px; margin-top: 1px"></div>`)
		el := queryOne(t, adapter, doc, "#el")
		reader := newReader(t)
		assert.Equal(t, "9px", reader.ComputedStyle(el, "margin"))
	})

	t.Run("Should return empty without computed-style support", func(t *testing.T) {
		doc := parseDoc(t, `<div id="el" style="width: 10px"></div>`)
		el := queryOne(t, adapter, doc, "#el")
		reader, err := dom.NewStyleReader(env.None(), 16)
		require.NoError(t, err)
		assert.Equal(t, "", reader.ComputedStyle(el, "width"))
	})

	t.Run("Should observe style writes after invalidation", func(t *testing.T) {
		doc := parseDoc(t, `<div id="el" style="width: 10px"></div>`)
		el := queryOne(t, adapter, doc, "#el")
		reader := newReader(t)
		assert.Equal(t, "10px", reader.ComputedStyle(el, "width"))
		dom.SetStyles(el, map[string]any{"width": "20px"})
		reader.Invalidate(el)
		assert.Equal(t, "20px", reader.ComputedStyle(el, "width"))
	})

	t.Run("Should reject a non-positive cache size", func(t *testing.T) {
		_, err := dom.NewStyleReader(env.Detect(), 0)
		require.Error(t, err)
	})
}

func TestStyleAttrHelpers(t *testing.T) {
	adapter := dom.NewAdapter(env.Detect())

	t.Run("Should merge styles into the attribute", func(t *testing.T) {
		doc := parseDoc(t, `<div id="el" style="color: red"></div>`)
		el := queryOne(t, adapter, doc, "#el")
		dom.SetStyles(el, map[string]any{"width": 10, "backgroundColor": "blue"})
		styles := dom.ReadStyleAttr(el)
		assert.Equal(t, "red", styles["color"])
		assert.Equal(t, "10", styles["width"])
		assert.Equal(t, "blue", styles["background-color"])
	})

	t.Run("Should erase only the listed properties", func(t *testing.T) {
		doc := parseDoc(t, `<div id="el" style="color: red; width: 10px"></div>`)
		el := queryOne(t, adapter, doc, "#el")
		dom.EraseStyles(el, map[string]any{"width": nil})
		styles := dom.ReadStyleAttr(el)
		assert.Equal(t, "red", styles["color"])
		assert.NotContains(t, styles, "width")
	})

	t.Run("Should tolerate nil elements", func(t *testing.T) {
		assert.Empty(t, dom.ReadStyleAttr(nil))
		dom.SetStyles(nil, map[string]any{"width": 1})
		dom.EraseStyles(nil, map[string]any{"width": 1})
	})
}
