package config

import (
	_ "embed"
)

//go:embed defaults/ringflip.yaml
var defaultRingflipYAML []byte

// DefaultRingflipConfig returns the hard-coded configuration, used when the
// embedded YAML cannot be parsed.
func DefaultRingflipConfig() RingflipConfig {
	return RingflipConfig{
		World: WorldConfig{
			BaseGravity:  9.81,
			Floor:        -4.5,
			Ceiling:      4.5,
			PlayerStartX: 0,
			PlayerStartY: 0,
			PlayerRadius: 0.3,
			CameraLead:   2.5,
		},
		Rings: RingsConfig{
			FirstOffset:      3.0,
			HalfWidth:        0.9,
			RimRadius:        0.15,
			MissedRange:      4.0,
			SpawnTrigger:     -2.0,
			PerfectTolerance: 0.5,
			FadeSeconds:      0.5,
			SlantMinDegrees:  15,
			SlantMaxDegrees:  25,
			HeightLimit:      3.0,
		},
		Session: SessionConfig{
			ImmunitySeconds: 0.5,
			PopupSeconds:    0.8,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRingflipYAML
}
