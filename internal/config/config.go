// Package config provides YAML-based configuration loading for the
// Cube Blast front-end and simulation pacing.
package config

// BlastConfig contains all configuration for Cube Blast.
type BlastConfig struct {
	Timing   BlastTiming   `yaml:"timing"`
	Gameplay BlastGameplay `yaml:"gameplay"`
	Render   BlastRender   `yaml:"render"`
}

// BlastTiming defines how many platform ticks each cascade phase holds,
// so a cascade is visible instead of resolving in a single frame.
type BlastTiming struct {
	TicksPerProjectileStep int `yaml:"ticks_per_projectile_step"`
	TicksPerFallPhase      int `yaml:"ticks_per_fall_phase"`
	TicksPerFillPhase      int `yaml:"ticks_per_fill_phase"`
	// MaxTicksPerAction bounds headless runs.
	MaxTicksPerAction int `yaml:"max_ticks_per_action"`
}

// BlastGameplay defines front-end gameplay options.
type BlastGameplay struct {
	ShowRocketHint bool `yaml:"show_rocket_hint"`
	AutoAdvance    bool `yaml:"auto_advance"`
	// QueueLimit caps selections waiting behind a running cascade.
	QueueLimit int `yaml:"queue_limit"`
}

// BlastRender defines board drawing parameters.
type BlastRender struct {
	CellWidth       int    `yaml:"cell_width"`
	BlockGlyph      string `yaml:"block_glyph"`
	ProjectileGlyph string `yaml:"projectile_glyph"`
	ShowCoordinates bool   `yaml:"show_coordinates"`
}

// Normalize replaces out-of-range values with their defaults.
func (c *BlastConfig) Normalize() {
	def := DefaultBlastConfig()
	if c.Timing.TicksPerProjectileStep < 0 {
		c.Timing.TicksPerProjectileStep = def.Timing.TicksPerProjectileStep
	}
	if c.Timing.TicksPerFallPhase < 0 {
		c.Timing.TicksPerFallPhase = def.Timing.TicksPerFallPhase
	}
	if c.Timing.TicksPerFillPhase < 0 {
		c.Timing.TicksPerFillPhase = def.Timing.TicksPerFillPhase
	}
	if c.Timing.MaxTicksPerAction <= 0 {
		c.Timing.MaxTicksPerAction = def.Timing.MaxTicksPerAction
	}
	if c.Gameplay.QueueLimit <= 0 {
		c.Gameplay.QueueLimit = def.Gameplay.QueueLimit
	}
	if c.Render.CellWidth < 1 || c.Render.CellWidth > 4 {
		c.Render.CellWidth = def.Render.CellWidth
	}
	if c.Render.BlockGlyph == "" {
		c.Render.BlockGlyph = def.Render.BlockGlyph
	}
	if c.Render.ProjectileGlyph == "" {
		c.Render.ProjectileGlyph = def.Render.ProjectileGlyph
	}
}
