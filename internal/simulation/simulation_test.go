package simulation

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.json")
	data := `{"board": {"width": 8, "diagonal": true}, "ability": {"duration_ticks": 3}}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Board.Width)
	assert.True(t, cfg.Board.Diagonal)
	assert.Equal(t, 15, cfg.Board.Height, "unset fields keep their defaults")
	assert.Equal(t, 3, cfg.Ability.DurationTicks)
	assert.Equal(t, 100*time.Millisecond, cfg.PollInterval())
}

func TestLoadConfigBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("LIFEGRID_STRAYS=3\nLIFEGRID_SEED=42\n"), 0o644))
	t.Setenv(EnvPollInterval, "10")
	t.Setenv(EnvLogLevel, "debug")
	t.Cleanup(func() {
		os.Unsetenv(EnvStrays)
		os.Unsetenv(EnvSeed)
	})

	cfg := DefaultConfig()
	require.NoError(t, cfg.ApplyEnv(path))

	assert.Equal(t, 3, cfg.Population.Strays)
	assert.Equal(t, int64(42), cfg.Population.Seed)
	assert.Equal(t, 10*time.Millisecond, cfg.PollInterval())
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestApplyEnvInvalidNumber(t *testing.T) {
	t.Setenv(EnvTickDelay, "soon")
	cfg := DefaultConfig()
	assert.Error(t, cfg.ApplyEnv(""))
}

func TestInterrupt(t *testing.T) {
	i := NewInterrupt()
	assert.False(t, i.IsSet())

	var wg sync.WaitGroup
	for n := 0; n < 4; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			i.Set()
		}()
	}
	wg.Wait()

	assert.True(t, i.IsSet())
	select {
	case <-i.Done():
	default:
		t.Fatal("Done should be closed once set")
	}
}

func TestZeroInterrupt(t *testing.T) {
	var i Interrupt
	assert.False(t, i.IsSet())
	i.Set()
	assert.True(t, i.IsSet())
}
