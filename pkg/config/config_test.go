package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boristopalov/bandits/pkg/core"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bandits.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 100, cfg.Episodes)
	assert.Equal(t, 2000, cfg.Steps)
	assert.Equal(t, 10, cfg.Arms)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, 50, cfg.SmoothWindow)

	quick := Quick()
	assert.Equal(t, 20, quick.Episodes)
	assert.Equal(t, 1000, quick.Steps)
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
name: hackathon
episodes: 50
steps: 1000
chart: out.html
agents:
  - kind: epsilon-greedy
    name: greedy
    team: blue
    algorithm: Greedy
    epsilon: 0
  - kind: ucb1
    c: 1.5
  - kind: llm
    provider: gemini
    model: gemini-2.0-flash
    consult_every: 10
logging:
  verbose: true
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "hackathon", cfg.Name)
	assert.Equal(t, 50, cfg.Episodes)
	assert.Equal(t, 1000, cfg.Steps)
	assert.Equal(t, 10, cfg.Arms, "unset fields keep their defaults")
	assert.Equal(t, "out.html", cfg.Chart)
	assert.True(t, cfg.Logging.Verbose)

	require.Len(t, cfg.Agents, 3)
	greedy := cfg.Agents[0]
	assert.Equal(t, "greedy", greedy.Key())
	require.NotNil(t, greedy.Epsilon)
	assert.Equal(t, 0.0, *greedy.Epsilon)
	assert.Equal(t, "ucb1", cfg.Agents[1].Key())
	require.NotNil(t, cfg.Agents[1].Confidence)
	assert.Equal(t, 1.5, *cfg.Agents[1].Confidence)
	assert.Nil(t, cfg.Agents[1].Epsilon)
	assert.Equal(t, 10, cfg.Agents[2].ConsultEvery)
}

func TestLoadConfigErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("bad yaml", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, "episodes: [1, 2"))
		assert.Error(t, err)
	})

	tests := map[string]string{
		"zero episodes":  "episodes: 0",
		"negative steps": "steps: -1",
		"zero arms":      "arms: 0",
		"bad window":     "smooth_window: -2",
		"agent kind":     "agents:\n  - name: x",
		"duplicate name": "agents:\n  - kind: random\n  - kind: random",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, body))
			assert.ErrorIs(t, err, core.ErrInvalidConfiguration)
		})
	}
}
