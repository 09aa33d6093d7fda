package tetris_test

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := tetris.DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 20, cfg.Rows)
	assert.Equal(t, 10, cfg.Columns)
	assert.Equal(t, tetris.Position{Col: 3, Row: 16}, cfg.SpawnPosition())
	assert.Equal(t, tetris.RandomizerUniform, cfg.Randomizer)
	assert.Nil(t, cfg.Seed)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*tetris.Config)
	}{
		{"too few rows", func(c *tetris.Config) { c.Rows = 3 }},
		{"too few columns", func(c *tetris.Config) { c.Columns = 2 }},
		{"spawn past the right wall", func(c *tetris.Config) { c.Spawn = &tetris.Position{Col: 7, Row: 16} }},
		{"spawn above the well", func(c *tetris.Config) { c.Spawn = &tetris.Position{Col: 3, Row: 17} }},
		{"negative spawn", func(c *tetris.Config) { c.Spawn = &tetris.Position{Col: -1, Row: 0} }},
		{"zero fps", func(c *tetris.Config) { c.FramesPerSecond = 0 }},
		{"empty curve", func(c *tetris.Config) { c.GravityFrames = nil }},
		{"zero frames", func(c *tetris.Config) { c.GravityFrames = []int{3, 0} }},
		{"increasing curve", func(c *tetris.Config) { c.GravityFrames = []int{10, 8, 9} }},
		{"unknown randomizer", func(c *tetris.Config) { c.Randomizer = "shuffle" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tetris.DefaultConfig()
			tt.modify(&cfg)
			assert.ErrorIs(t, cfg.Validate(), tetris.ErrInvalidConfig)
		})
	}

	t.Run("custom spawn in range", func(t *testing.T) {
		cfg := tetris.DefaultConfig()
		cfg.Spawn = &tetris.Position{Col: 6, Row: 16}
		assert.NoError(t, cfg.Validate())
	})
}

func TestReadConfig(t *testing.T) {
	cfg, err := tetris.ReadConfig(strings.NewReader(`
rows: 22
randomizer: bag
seed: 7
spawn:
  col: 2
  row: 18
`))
	require.NoError(t, err)

	assert.Equal(t, 22, cfg.Rows)
	assert.Equal(t, 10, cfg.Columns, "unset keys keep their defaults")
	assert.Equal(t, tetris.RandomizerBag, cfg.Randomizer)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, uint64(7), *cfg.Seed)
	assert.Equal(t, tetris.Position{Col: 2, Row: 18}, cfg.SpawnPosition())
	assert.Equal(t, tetris.DefaultConfig().GravityFrames, cfg.GravityFrames)

	t.Run("invalid values", func(t *testing.T) {
		_, err := tetris.ReadConfig(strings.NewReader("columns: 2\n"))
		assert.ErrorIs(t, err, tetris.ErrInvalidConfig)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := tetris.ReadConfig(strings.NewReader("rows: twenty\n"))
		assert.Error(t, err)
		assert.NotErrorIs(t, err, tetris.ErrInvalidConfig)
	})
}

func TestLoadConfig(t *testing.T) {
	fsys := fstest.MapFS{
		"small.yaml": {Data: []byte("rows: 8\ncolumns: 6\ngravity_frames: [10, 5, 2]\n")},
		"bad.yaml":   {Data: []byte("randomizer: dice\n")},
	}

	cfg, err := tetris.LoadConfig(fsys, "small.yaml")
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Rows)
	assert.Equal(t, 6, cfg.Columns)
	assert.Equal(t, []int{10, 5, 2}, cfg.GravityFrames)
	assert.Equal(t, tetris.Position{Col: 1, Row: 4}, cfg.SpawnPosition())

	_, err = tetris.LoadConfig(fsys, "bad.yaml")
	assert.ErrorIs(t, err, tetris.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "bad.yaml")

	_, err = tetris.LoadConfig(fsys, "missing.yaml")
	assert.Error(t, err)
}

func TestConfigYAML(t *testing.T) {
	seed := uint64(99)
	cfg := tetris.DefaultConfig()
	cfg.Rows = 24
	cfg.Seed = &seed

	data, err := cfg.YAML()
	require.NoError(t, err)

	back, err := tetris.ReadConfig(strings.NewReader(string(data)))
	require.NoError(t, err)
	assert.Equal(t, 24, back.Rows)
	assert.Equal(t, seed, *back.Seed)
}
