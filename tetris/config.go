package tetris

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"slices"

	"github.com/goccy/go-yaml"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

const (
	RandomizerUniform = "uniform"
	RandomizerBag     = "bag"
)

// nesGravity is the classic frames-per-row table, levels 0 through 29.
var nesGravity = []int{
	48, 43, 38, 33, 28, 23, 18, 13, 8, 6,
	5, 5, 5, 4, 4, 4, 3, 3, 3,
	2, 2, 2, 2, 2, 2, 2, 2, 2, 2,
	1,
}

// Config holds everything a Game needs at construction.
type Config struct {
	Rows    int `yaml:"rows" mapstructure:"rows"`
	Columns int `yaml:"columns" mapstructure:"columns"`

	// Spawn is where new active pieces are placed. A nil Spawn centers the
	// piece box against the top of the well.
	Spawn *Position `yaml:"spawn,omitempty" mapstructure:"spawn"`

	FramesPerSecond int   `yaml:"frames_per_second" mapstructure:"frames_per_second"`
	GravityFrames   []int `yaml:"gravity_frames,flow" mapstructure:"gravity_frames"`

	Randomizer string `yaml:"randomizer" mapstructure:"randomizer"`

	// Seed makes the piece sequence reproducible. Nil seeds from the clock.
	Seed *uint64 `yaml:"seed,omitempty" mapstructure:"seed"`

	// Generator overrides Randomizer and Seed when set.
	Generator Generator `yaml:"-" mapstructure:"-"`

	Logger *log.Logger `yaml:"-" mapstructure:"-"`
}

// DefaultConfig returns a 20x10 well with the classic gravity table.
func DefaultConfig() Config {
	return Config{
		Rows:            20,
		Columns:         10,
		FramesPerSecond: 60,
		GravityFrames:   slices.Clone(nesGravity),
		Randomizer:      RandomizerUniform,
	}
}

// SpawnPosition resolves the spawn point.
func (c Config) SpawnPosition() Position {
	if c.Spawn != nil {
		return *c.Spawn
	}
	return Position{Col: (c.Columns - PieceSize + 1) / 2, Row: c.Rows - PieceSize}
}

// Validate checks dimensions, the spawn box and the gravity curve.
func (c Config) Validate() error {
	if c.Rows < PieceSize || c.Columns < PieceSize {
		return fmt.Errorf("%w: well must be at least %dx%d, got %dx%d",
			ErrInvalidConfig, PieceSize, PieceSize, c.Rows, c.Columns)
	}

	spawn := c.SpawnPosition()
	if spawn.Col < 0 || spawn.Row < 0 || spawn.Col+PieceSize > c.Columns || spawn.Row+PieceSize > c.Rows {
		return fmt.Errorf("%w: spawn %s puts the piece box outside the %dx%d well",
			ErrInvalidConfig, spawn, c.Rows, c.Columns)
	}

	if c.FramesPerSecond <= 0 {
		return fmt.Errorf("%w: frames_per_second must be positive, got %d", ErrInvalidConfig, c.FramesPerSecond)
	}
	if len(c.GravityFrames) == 0 {
		return fmt.Errorf("%w: gravity_frames is empty", ErrInvalidConfig)
	}
	for i, f := range c.GravityFrames {
		if f <= 0 {
			return fmt.Errorf("%w: gravity_frames[%d] must be positive, got %d", ErrInvalidConfig, i, f)
		}
		if i > 0 && f > c.GravityFrames[i-1] {
			return fmt.Errorf("%w: gravity_frames must not increase, level %d is %d after %d",
				ErrInvalidConfig, i, f, c.GravityFrames[i-1])
		}
	}

	switch c.Randomizer {
	case RandomizerUniform, RandomizerBag:
	default:
		return fmt.Errorf("%w: unknown randomizer %q", ErrInvalidConfig, c.Randomizer)
	}
	return nil
}

// Gravity returns the fall curve described by c.
func (c Config) Gravity() Gravity {
	return NewGravity(c.FramesPerSecond, c.GravityFrames)
}

// ReadConfig decodes YAML from r over DefaultConfig and validates the result.
func ReadConfig(r io.Reader) (Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads the named YAML file from fsys.
func LoadConfig(fsys fs.FS, name string) (Config, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := ReadConfig(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", name, err)
	}
	return cfg, nil
}

// YAML encodes c in the format ReadConfig accepts.
func (c Config) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}
