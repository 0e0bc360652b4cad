package timeline

import (
	"fmt"

	"dario.cat/mergo"

	"github.com/Nareth123/angular/engine/animation"
)

// BuildKeyframes turns the definition's steps into raw keyframes for the
// normalizer. Default styles merge into every step without overriding the
// step's own declarations, and steps without an explicit offset are
// distributed evenly across the timeline.
func (d *Definition) BuildKeyframes() ([]*animation.Keyframe, error) {
	keyframes := make([]*animation.Keyframe, 0, len(d.Steps))
	for i, step := range d.Steps {
		styles := make(map[string]any, len(step.Styles))
		for prop, value := range step.Styles {
			styles[prop] = value
		}
		if len(d.DefaultStyles) > 0 {
			if err := mergo.Merge(&styles, d.DefaultStyles); err != nil {
				return nil, fmt.Errorf("failed to merge default styles into step %d: %w", i, err)
			}
		}
		keyframes = append(keyframes, &animation.Keyframe{
			Styles: animation.Styles(styles),
			Offset: d.stepOffset(i),
		})
	}
	return keyframes, nil
}

func (d *Definition) stepOffset(i int) float64 {
	if offset := d.Steps[i].Offset; offset != nil {
		return *offset
	}
	if len(d.Steps) == 1 {
		return 1
	}
	return float64(i) / float64(len(d.Steps)-1)
}
