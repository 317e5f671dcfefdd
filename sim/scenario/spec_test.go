package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meenakshi184/wifisim/sim"
)

func TestPresets_AreValidSweeps(t *testing.T) {
	for _, name := range []string{"round-robin", "contention", "csma"} {
		t.Run(name, func(t *testing.T) {
			spec := Preset(name, 42)
			require.NotNil(t, spec)
			require.NoError(t, spec.Validate())
			require.Len(t, spec.Runs, 3)

			users := []int{spec.Runs[0].Users, spec.Runs[1].Users, spec.Runs[2].Users}
			assert.Equal(t, []int{1, 10, 100}, users)
			for i := range spec.Runs {
				cfg := spec.Config(i)
				assert.NoError(t, cfg.Validate())
				assert.Equal(t, int64(42), cfg.Seed)
			}
		})
	}
}

func TestPreset_UnknownName_ReturnsNil(t *testing.T) {
	assert.Nil(t, Preset("aloha", 1))
}

func TestLoad_ParsesAndMaterializesRuns(t *testing.T) {
	// GIVEN a scenario spec on disk
	content := `version: "1"
seed: 7
runs:
  - name: small
    users: 10
    packets_per_user: 10
    policy: round-robin
  - name: contended
    users: 100
    packets_per_user: 10
    policy: contention
    seed: 99
    time_budget_s: 0.05
    queue_capacity: 20
    max_backoff_us: 5000
`
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	// WHEN it is loaded
	spec, err := Load(path)
	require.NoError(t, err)
	require.Len(t, spec.Runs, 2)

	// THEN the first run inherits the spec seed and engine defaults
	cfg0 := spec.Config(0)
	assert.Equal(t, int64(7), cfg0.Seed)
	assert.Equal(t, sim.PolicyRoundRobin, cfg0.Policy)
	assert.Equal(t, 50, cfg0.QueueCapacity)

	// AND the second run's overrides win
	cfg1 := spec.Config(1)
	assert.Equal(t, int64(99), cfg1.Seed)
	assert.Equal(t, int64(0.05*float64(sim.TicksPerSecond)), cfg1.TimeBudget)
	assert.Equal(t, 20, cfg1.QueueCapacity)
	assert.Equal(t, int64(5000), cfg1.MaxBackoff)
	assert.NoError(t, cfg1.Validate())
}

func TestLoad_RejectsInvalidSpecs(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"no runs", "version: \"1\"\nseed: 1\n"},
		{"unknown policy", "runs:\n  - {name: x, users: 1, packets_per_user: 1, policy: aloha}\n"},
		{"zero users", "runs:\n  - {name: x, users: 0, packets_per_user: 1, policy: csma}\n"},
		{"not yaml", "{{{"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
