// Package config provides YAML-based configuration loading and the
// difficulty profile store for ringflip.
package config

// RingflipConfig contains all tunable configuration for the ring game.
type RingflipConfig struct {
	World    WorldConfig    `yaml:"world"`
	Rings    RingsConfig    `yaml:"rings"`
	Session  SessionConfig  `yaml:"session"`
	Profiles ProfilesConfig `yaml:"profiles"`
}

// WorldConfig defines the play field in world units (Y grows upward).
type WorldConfig struct {
	BaseGravity  float64 `yaml:"base_gravity"`  // acceleration per unit of gravity scale
	Floor        float64 `yaml:"floor"`         // lowest y the player may reach
	Ceiling      float64 `yaml:"ceiling"`       // highest y the player may reach
	PlayerStartX float64 `yaml:"player_start_x"`
	PlayerStartY float64 `yaml:"player_start_y"`
	PlayerRadius float64 `yaml:"player_radius"`
	CameraLead   float64 `yaml:"camera_lead"` // world units kept visible left of the player
}

// RingsConfig defines ring geometry and judgement tuning.
type RingsConfig struct {
	FirstOffset      float64 `yaml:"first_offset"`      // first ring x relative to player start
	HalfWidth        float64 `yaml:"half_width"`        // ring center to rim center
	RimRadius        float64 `yaml:"rim_radius"`        // rim collider radius
	MissedRange      float64 `yaml:"missed_range"`      // player x beyond ring x that counts as a miss
	SpawnTrigger     float64 `yaml:"spawn_trigger"`     // player x relative to ring x that spawns the successor
	PerfectTolerance float64 `yaml:"perfect_tolerance"` // max horizontal offset for a perfect pass
	FadeSeconds      float64 `yaml:"fade_seconds"`
	SlantMinDegrees  float64 `yaml:"slant_min_degrees"`
	SlantMaxDegrees  float64 `yaml:"slant_max_degrees"`
	HeightLimit      float64 `yaml:"height_limit"` // |y| clamp for spawned rings
}

// SessionConfig defines game-over arbitration and HUD timings.
type SessionConfig struct {
	ImmunitySeconds float64 `yaml:"immunity_seconds"` // grace window after a gravity flip
	PopupSeconds    float64 `yaml:"popup_seconds"`    // combo popup lifetime
}

// ProfilesConfig optionally overrides built-in difficulty profiles.
// A nil entry keeps the built-in values.
type ProfilesConfig struct {
	Easy   *DifficultyProfile `yaml:"easy,omitempty"`
	Medium *DifficultyProfile `yaml:"medium,omitempty"`
	Hard   *DifficultyProfile `yaml:"hard,omitempty"`
}

// DifficultyProfile is an immutable set of tuning values for one difficulty.
type DifficultyProfile struct {
	GravityScale        float64 `yaml:"gravity_scale"`
	VerticalJumpForce   float64 `yaml:"vertical_jump_force"`
	HorizontalJumpForce float64 `yaml:"horizontal_jump_force"`
	MaxSpeed            float64 `yaml:"max_speed"`
	RingSpawnDistance   float64 `yaml:"ring_spawn_distance"`
	RingHeightVariance  float64 `yaml:"ring_height_variance"` // successor y is drawn from ±variance
}
