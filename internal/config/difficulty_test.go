package config

import "testing"

func TestProfilesAreDistinct(t *testing.T) {
	p := NewProfiles(ProfilesConfig{})

	seen := make(map[DifficultyProfile]DifficultyLevel)
	for _, level := range Levels {
		prof := p.Profile(level)
		if other, dup := seen[prof]; dup {
			t.Errorf("%v and %v share the same profile %+v", level, other, prof)
		}
		seen[prof] = level
	}
}

func TestBuiltInProfileValues(t *testing.T) {
	p := NewProfiles(ProfilesConfig{})

	tests := []struct {
		level    DifficultyLevel
		expected DifficultyProfile
	}{
		{Easy, DifficultyProfile{2.5, 8.0, 2.0, 2.8, 4.5, 1.5}},
		{Medium, DifficultyProfile{3.0, 8.5, 2.0, 3.0, 5.0, 2.0}},
		{Hard, DifficultyProfile{4.0, 10.0, 2.5, 3.5, 6.0, 3.0}},
	}

	for _, tc := range tests {
		t.Run(tc.level.String(), func(t *testing.T) {
			p.SetDifficulty(int(tc.level))
			if got := p.GetCurrentProfile(); got != tc.expected {
				t.Errorf("GetCurrentProfile() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestSwitchingDoesNotMutateSnapshot(t *testing.T) {
	p := NewProfiles(ProfilesConfig{})
	p.SetDifficulty(int(Easy))
	snapshot := p.GetCurrentProfile()

	p.SetDifficulty(int(Hard))
	_ = p.GetCurrentProfile()

	if snapshot != easyProfile {
		t.Errorf("snapshot changed after switching: %+v", snapshot)
	}

	snapshot.GravityScale = 99
	if p.Profile(Easy).GravityScale == 99 {
		t.Error("mutating a snapshot must not change the store")
	}
}

func TestSetDifficultyClamps(t *testing.T) {
	p := NewProfiles(ProfilesConfig{})

	tests := []struct {
		index    int
		expected DifficultyLevel
	}{
		{-5, Easy},
		{0, Easy},
		{1, Medium},
		{2, Hard},
		{7, Hard},
	}

	for _, tc := range tests {
		p.SetDifficulty(tc.index)
		if p.Current() != tc.expected {
			t.Errorf("SetDifficulty(%d) -> %v, expected %v", tc.index, p.Current(), tc.expected)
		}
	}
}

func TestDefaultLevelIsMedium(t *testing.T) {
	p := NewProfiles(ProfilesConfig{})
	if p.Current() != Medium || p.Name() != "Medium" {
		t.Errorf("default level = %v", p.Current())
	}
}

func TestProfileOverrides(t *testing.T) {
	custom := DifficultyProfile{GravityScale: 5, VerticalJumpForce: 11, HorizontalJumpForce: 3, MaxSpeed: 4, RingSpawnDistance: 7, RingHeightVariance: 3.5}
	p := NewProfiles(ProfilesConfig{Hard: &custom})

	if p.Profile(Hard) != custom {
		t.Errorf("Hard = %+v, expected override", p.Profile(Hard))
	}
	if p.Profile(Easy) != easyProfile {
		t.Error("Easy should keep the built-in profile")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyLevel
		wantErr bool
	}{
		{"easy", Easy, false},
		{" HARD ", Hard, false},
		{"normal", Medium, false},
		{"Medium", Medium, false},
		{"insane", Medium, true},
	}

	for _, tc := range tests {
		got, err := ParseLevel(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if got != tc.want {
			t.Errorf("ParseLevel(%q) = %v, expected %v", tc.in, got, tc.want)
		}
	}
}
