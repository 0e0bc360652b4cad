package timeline

// Definition is a declarative animation timeline: an ordered sequence of
// style steps placed on the [0,1] offset axis.
type Definition struct {
	ID       string  `yaml:"id"`
	Name     string  `yaml:"name"     validate:"required"`
	Duration float64 `yaml:"duration" validate:"min=0"`
	Delay    float64 `yaml:"delay"    validate:"min=0"`
	Easing   string  `yaml:"easing"`
	// DefaultStyles are merged into every step; step styles win.
	DefaultStyles map[string]any `yaml:"default_styles"`
	Steps         []Step         `yaml:"steps" validate:"required,min=1,dive"`
}

// Step is one keyframe declaration. A nil offset means "distribute evenly
// across the timeline".
type Step struct {
	Offset *float64       `yaml:"offset" validate:"omitempty,min=0,max=1"`
	Styles map[string]any `yaml:"styles" validate:"required,min=1"`
}
