package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const configFileName = "ringflip.yaml"

// Load loads the ring game configuration.
// Search order: customPath -> ~/.ringflip/configs/ringflip.yaml ->
// ./configs/ringflip.yaml -> embedded default.
// Values missing from a file keep their defaults.
func Load(customPath string) (RingflipConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultRingflipConfig(), fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return DefaultRingflipConfig(), fmt.Errorf("config: cannot parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath(configFileName), filepath.Join("configs", configFileName)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultRingflipYAML)
	if err != nil {
		return DefaultRingflipConfig(), nil
	}
	return cfg, nil
}

// Parse decodes YAML on top of the hard-coded defaults and validates it.
func Parse(data []byte) (RingflipConfig, error) {
	cfg := DefaultRingflipConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects configurations that cannot produce a playable field.
func (c RingflipConfig) Validate() error {
	var errs []error
	if c.World.Ceiling <= c.World.Floor {
		errs = append(errs, fmt.Errorf("world.ceiling (%g) must be above world.floor (%g)", c.World.Ceiling, c.World.Floor))
	}
	if c.World.PlayerRadius <= 0 {
		errs = append(errs, errors.New("world.player_radius must be positive"))
	}
	if c.Rings.HalfWidth <= c.Rings.RimRadius {
		errs = append(errs, errors.New("rings.half_width must exceed rings.rim_radius"))
	}
	if c.Rings.SlantMaxDegrees < c.Rings.SlantMinDegrees {
		errs = append(errs, errors.New("rings.slant_max_degrees must be >= slant_min_degrees"))
	}
	if c.Rings.FadeSeconds < 0 || c.Session.ImmunitySeconds < 0 {
		errs = append(errs, errors.New("durations must not be negative"))
	}
	return errors.Join(errs...)
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".ringflip", "configs", filename)
}

// Env holds settings read from the process environment (and .env files).
type Env struct {
	Difficulty string // RINGFLIP_DIFFICULTY
	DBPath     string // RINGFLIP_DB
	Sound      bool   // RINGFLIP_SOUND
	LogLevel   string // RINGFLIP_LOG_LEVEL
	LogFile    string // RINGFLIP_LOG_FILE
}

// LoadEnv loads the given .env files (default ".env") if present and reads
// the RINGFLIP_* variables. Variables already set in the environment win
// over .env contents. A missing .env file is not an error.
func LoadEnv(files ...string) (Env, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return readEnv(), fmt.Errorf("config: cannot load %s: %w", f, err)
		}
	}
	return readEnv(), nil
}

func readEnv() Env {
	env := Env{
		Difficulty: os.Getenv("RINGFLIP_DIFFICULTY"),
		DBPath:     os.Getenv("RINGFLIP_DB"),
		LogLevel:   os.Getenv("RINGFLIP_LOG_LEVEL"),
		LogFile:    os.Getenv("RINGFLIP_LOG_FILE"),
	}
	if v, err := strconv.ParseBool(os.Getenv("RINGFLIP_SOUND")); err == nil {
		env.Sound = v
	}
	return env
}

// Or returns v if non-empty, otherwise fallback.
func Or(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}
