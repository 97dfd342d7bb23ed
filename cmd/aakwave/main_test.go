package main

import (
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KwintenF/FastEMRIWaveforms/internal/config"
	"github.com/KwintenF/FastEMRIWaveforms/internal/monitoring"
)

func TestRun_WritesOutputs(t *testing.T) {
	monitoring.SetLogger(nil)
	t.Cleanup(func() { monitoring.SetLogger(log.Printf) })

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "run.json")
	body := `{
		"samples": 4096, "dt": 10, "nmodes": 4, "doppler": false,
		"eccentricity": 0, "frequency": 0.00244140625, "precession": 0, "lense_thirring": 0,
		"knots": 8, "fitted": true, "strategy": "host", "bessel": "recurrence",
		"parquet_path": "` + filepath.Join(dir, "h.parquet") + `",
		"plot_path": "` + filepath.Join(dir, "h.png") + `"
	}`
	require.NoError(t, os.WriteFile(cfgPath, []byte(body), 0o600))

	cfg, err := config.Load(cfgPath)
	require.NoError(t, err)
	res, err := run(cfg)
	require.NoError(t, err)

	assert.Equal(t, 4096, res.Samples)
	assert.Equal(t, 8, res.Segments)
	// ν0 = 100/(n·dt); circular orbits radiate at 2ν0.
	assert.InDelta(t, 2*0.00244140625, res.Peak, 1e-12)
	for _, f := range []string{"h.parquet", "h.png"} {
		info, err := os.Stat(filepath.Join(dir, f))
		require.NoError(t, err, f)
		assert.Greater(t, info.Size(), int64(0), f)
	}
}

func TestRun_UnphysicalRecipe(t *testing.T) {
	monitoring.SetLogger(nil)
	t.Cleanup(func() { monitoring.SetLogger(log.Printf) })

	e, rate, n := 0.5, 1e-3, 1024
	_, err := run(&config.RunConfig{Eccentricity: &e, EccRate: &rate, Samples: &n})
	assert.ErrorContains(t, err, "trajectory")
}
