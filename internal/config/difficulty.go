package config

import (
	"fmt"
	"strings"
)

// DifficultyLevel selects one of the three built-in profiles.
type DifficultyLevel int

const (
	Easy DifficultyLevel = iota
	Medium
	Hard
)

// Levels lists every difficulty in slider order.
var Levels = []DifficultyLevel{Easy, Medium, Hard}

// String returns the display name of the level.
func (l DifficultyLevel) String() string {
	switch l {
	case Easy:
		return "Easy"
	case Medium:
		return "Medium"
	case Hard:
		return "Hard"
	default:
		return fmt.Sprintf("DifficultyLevel(%d)", int(l))
	}
}

// ClampLevel converts an arbitrary index into a valid level.
func ClampLevel(index int) DifficultyLevel {
	switch {
	case index < int(Easy):
		return Easy
	case index > int(Hard):
		return Hard
	default:
		return DifficultyLevel(index)
	}
}

// ParseLevel parses a difficulty name (case-insensitive). "normal" is
// accepted as an alias of medium.
func ParseLevel(name string) (DifficultyLevel, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "easy":
		return Easy, nil
	case "medium", "normal":
		return Medium, nil
	case "hard":
		return Hard, nil
	default:
		return Medium, fmt.Errorf("config: unknown difficulty %q", name)
	}
}

// Built-in profiles.
var (
	easyProfile = DifficultyProfile{
		GravityScale:        2.5,
		VerticalJumpForce:   8.0,
		HorizontalJumpForce: 2.0,
		MaxSpeed:            2.8,
		RingSpawnDistance:   4.5,
		RingHeightVariance:  1.5,
	}
	mediumProfile = DifficultyProfile{
		GravityScale:        3.0,
		VerticalJumpForce:   8.5,
		HorizontalJumpForce: 2.0,
		MaxSpeed:            3.0,
		RingSpawnDistance:   5.0,
		RingHeightVariance:  2.0,
	}
	hardProfile = DifficultyProfile{
		GravityScale:        4.0,
		VerticalJumpForce:   10.0,
		HorizontalJumpForce: 2.5,
		MaxSpeed:            3.5,
		RingSpawnDistance:   6.0,
		RingHeightVariance:  3.0,
	}
)

// Profiles is the difficulty profile store. The current level is chosen
// before play starts and the returned profiles are value snapshots.
type Profiles struct {
	table   [3]DifficultyProfile
	current DifficultyLevel
}

// NewProfiles builds a store from the built-in table with optional overrides.
func NewProfiles(overrides ProfilesConfig) *Profiles {
	p := &Profiles{
		table:   [3]DifficultyProfile{easyProfile, mediumProfile, hardProfile},
		current: Medium,
	}
	if overrides.Easy != nil {
		p.table[Easy] = *overrides.Easy
	}
	if overrides.Medium != nil {
		p.table[Medium] = *overrides.Medium
	}
	if overrides.Hard != nil {
		p.table[Hard] = *overrides.Hard
	}
	return p
}

// SetDifficulty selects a level by index, clamping out-of-range values.
func (p *Profiles) SetDifficulty(index int) {
	p.current = ClampLevel(index)
}

// Current returns the selected level.
func (p *Profiles) Current() DifficultyLevel {
	return p.current
}

// Name returns the display name of the selected level.
func (p *Profiles) Name() string {
	return p.current.String()
}

// GetCurrentProfile returns a copy of the selected level's profile.
func (p *Profiles) GetCurrentProfile() DifficultyProfile {
	return p.table[p.current]
}

// Profile returns a copy of the profile for any level.
func (p *Profiles) Profile(level DifficultyLevel) DifficultyProfile {
	return p.table[ClampLevel(int(level))]
}
