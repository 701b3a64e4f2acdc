package config

import (
	_ "embed"
)

//go:embed defaults/blast.yaml
var defaultBlastYAML []byte

// DefaultBlastConfig returns the default Cube Blast configuration.
func DefaultBlastConfig() BlastConfig {
	return BlastConfig{
		Timing: BlastTiming{
			TicksPerProjectileStep: 1,
			TicksPerFallPhase:      3,
			TicksPerFillPhase:      3,
			MaxTicksPerAction:      5000,
		},
		Gameplay: BlastGameplay{
			ShowRocketHint: true,
			AutoAdvance:    false,
			QueueLimit:     4,
		},
		Render: BlastRender{
			CellWidth:       3,
			BlockGlyph:      "■",
			ProjectileGlyph: "*",
			ShowCoordinates: false,
		},
	}
}
