package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KwintenF/FastEMRIWaveforms/trajectory"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_PartialConfigUsesDefaults(t *testing.T) {
	path := writeConfig(t, "run.json", `{"mass": 5e5, "nmodes": 3, "doppler": false, "strategy": "host"}`)
	cfg, err := Load(path)
	require.NoError(t, err)

	g := cfg.Geometry()
	assert.Equal(t, 5e5, g.M)
	assert.Equal(t, DefaultMassCO, g.Mu)
	assert.Equal(t, DefaultDistGpc, g.Dist)

	p := cfg.Params()
	assert.Equal(t, 3, p.NModes)
	assert.False(t, p.Doppler)
	assert.Equal(t, DefaultDt, p.Dt)

	assert.Equal(t, DefaultSamples, cfg.GetSamples())
	assert.Equal(t, DefaultKnots, cfg.GetKnots())
	assert.False(t, cfg.GetFitted())
	assert.Empty(t, cfg.GetParquetPath())
	assert.Empty(t, cfg.GetPlotPath())
	assert.Len(t, cfg.KernelOptions(), 1)
}

func TestLoad_TrajectoryOptionsBuild(t *testing.T) {
	path := writeConfig(t, "run.json", `{"eccentricity": 0.1, "frequency": 1e-3, "knots": 5, "fitted": true}`)
	cfg, err := Load(path)
	require.NoError(t, err)

	traj, err := trajectory.BuildFitted(cfg.GetKnots(), 5e4, cfg.TrajectoryOptions()...)
	require.NoError(t, err)
	assert.Equal(t, 5, traj.Segments())
	assert.True(t, cfg.GetFitted())
}

func TestLoad_Rejects(t *testing.T) {
	cases := []struct {
		name, file, body, want string
	}{
		{"extension", "run.yaml", `{}`, ".json extension"},
		{"syntax", "run.json", `{"mass": }`, "parse config JSON"},
		{"negative mass", "run.json", `{"mass": -1}`, "mass must be"},
		{"eccentricity", "run.json", `{"eccentricity": 1.0}`, "eccentricity"},
		{"knots", "run.json", `{"knots": 161}`, "knots must be"},
		{"strategy", "run.json", `{"strategy": "gpu"}`, "strategy"},
		{"bessel", "run.json", `{"bessel": "table"}`, "bessel"},
		{"samples", "run.json", `{"samples": 0}`, "samples"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.file, tc.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_TooLarge(t *testing.T) {
	body := `{"mass": 1e6, "pad": "` + strings.Repeat("x", maxFileSize) + `"}`
	_, err := Load(writeConfig(t, "big.json", body))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too large")
}
