// Package config loads the JSON run configuration of the aakwave command.
package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/KwintenF/FastEMRIWaveforms/aak"
	"github.com/KwintenF/FastEMRIWaveforms/bessel"
	"github.com/KwintenF/FastEMRIWaveforms/spline"
	"github.com/KwintenF/FastEMRIWaveforms/trajectory"
)

// RunConfig is one waveform run. Every field is optional; the Get* methods
// and the Geometry/Params/TrajectoryOptions helpers fall back to defaults
// for anything omitted, so partial configs are safe.
type RunConfig struct {
	// Source geometry
	Mass      *float64 `json:"mass,omitempty"`       // M, solar masses
	Spin      *float64 `json:"spin,omitempty"`       // S
	MassCO    *float64 `json:"mass_co,omitempty"`    // Mu, solar masses
	SkyTheta  *float64 `json:"sky_theta,omitempty"`  // qS
	SkyPhi    *float64 `json:"sky_phi,omitempty"`    // phiS
	SpinTheta *float64 `json:"spin_theta,omitempty"` // qK
	SpinPhi   *float64 `json:"spin_phi,omitempty"`   // phiK
	DistGpc   *float64 `json:"dist_gpc,omitempty"`

	// Sampling and response
	Dt       *float64 `json:"dt,omitempty"`
	Samples  *int     `json:"samples,omitempty"`
	NModes   *int     `json:"nmodes,omitempty"`
	Doppler  *bool    `json:"doppler,omitempty"`
	Strategy *string  `json:"strategy,omitempty"` // "grid" | "host"
	Bessel   *string  `json:"bessel,omitempty"`   // "std" | "recurrence"

	// Trajectory recipe
	Knots         *int     `json:"knots,omitempty"`
	Eccentricity  *float64 `json:"eccentricity,omitempty"`
	EccRate       *float64 `json:"ecc_rate,omitempty"`
	Frequency     *float64 `json:"frequency,omitempty"`
	Chirp         *float64 `json:"chirp,omitempty"`
	Precession    *float64 `json:"precession,omitempty"`
	LenseThirring *float64 `json:"lense_thirring,omitempty"`
	Inclination   *float64 `json:"inclination,omitempty"`
	Fitted        *bool    `json:"fitted,omitempty"`

	// Output
	ParquetPath *string `json:"parquet_path,omitempty"`
	PlotPath    *string `json:"plot_path,omitempty"`
}

// Defaults for the fields that have no natural zero.
const (
	DefaultMass    = 1e6
	DefaultMassCO  = 10.0
	DefaultDistGpc = 1.0
	DefaultDt      = 10.0
	DefaultSamples = 1 << 16
	DefaultNModes  = 10
	DefaultKnots   = 100
)

const maxFileSize = 1 * 1024 * 1024 // 1MB

// Load reads a RunConfig from a JSON file with a .json extension and at
// most 1 MiB, then validates it.
func Load(path string) (*RunConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &RunConfig{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks the fields that are set.
func (c *RunConfig) Validate() error {
	positive := map[string]*float64{
		"mass": c.Mass, "mass_co": c.MassCO, "dist_gpc": c.DistGpc,
		"dt": c.Dt, "frequency": c.Frequency,
	}
	for name, v := range positive {
		if v != nil && !(*v > 0 && !math.IsInf(*v, 0)) {
			return fmt.Errorf("%s must be finite and > 0, got %v", name, *v)
		}
	}
	if c.Samples != nil && *c.Samples < 1 {
		return fmt.Errorf("samples must be >= 1, got %d", *c.Samples)
	}
	if c.NModes != nil && *c.NModes < 0 {
		return fmt.Errorf("nmodes must be non-negative, got %d", *c.NModes)
	}
	if c.Knots != nil && (*c.Knots < 1 || *c.Knots > spline.MaxSegments) {
		return fmt.Errorf("knots must be in [1, %d], got %d", spline.MaxSegments, *c.Knots)
	}
	if c.Eccentricity != nil && !(*c.Eccentricity >= 0 && *c.Eccentricity < 1) {
		return fmt.Errorf("eccentricity must be in [0, 1), got %v", *c.Eccentricity)
	}
	if c.Inclination != nil && !(*c.Inclination >= 0 && *c.Inclination <= math.Pi) {
		return fmt.Errorf("inclination must be in [0, pi], got %v", *c.Inclination)
	}
	for name, v := range map[string]*float64{
		"ecc_rate": c.EccRate, "chirp": c.Chirp, "precession": c.Precession,
		"lense_thirring": c.LenseThirring,
	} {
		if v != nil && (math.IsNaN(*v) || math.IsInf(*v, 0)) {
			return fmt.Errorf("%s must be finite, got %v", name, *v)
		}
	}
	if c.Strategy != nil && *c.Strategy != "grid" && *c.Strategy != "host" {
		return fmt.Errorf("strategy must be \"grid\" or \"host\", got %q", *c.Strategy)
	}
	if c.Bessel != nil && *c.Bessel != "std" && *c.Bessel != "recurrence" {
		return fmt.Errorf("bessel must be \"std\" or \"recurrence\", got %q", *c.Bessel)
	}

	return nil
}

func getFloat(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}

func getInt(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}

// Geometry returns the source description.
func (c *RunConfig) Geometry() aak.Geometry {
	return aak.Geometry{
		M:    getFloat(c.Mass, DefaultMass),
		S:    getFloat(c.Spin, 0.5),
		Mu:   getFloat(c.MassCO, DefaultMassCO),
		QS:   getFloat(c.SkyTheta, 1.0),
		PhiS: getFloat(c.SkyPhi, 0.5),
		QK:   getFloat(c.SpinTheta, 0.8),
		PhiK: getFloat(c.SpinPhi, 1.2),
		Dist: getFloat(c.DistGpc, DefaultDistGpc),
	}
}

// Params returns the kernel sampling parameters.
func (c *RunConfig) Params() aak.Params {
	doppler := true
	if c.Doppler != nil {
		doppler = *c.Doppler
	}

	return aak.Params{
		NModes:  getInt(c.NModes, DefaultNModes),
		Doppler: doppler,
		Dt:      getFloat(c.Dt, DefaultDt),
	}
}

// GetSamples returns the output length.
func (c *RunConfig) GetSamples() int { return getInt(c.Samples, DefaultSamples) }

// GetKnots returns the trajectory knot count.
func (c *RunConfig) GetKnots() int { return getInt(c.Knots, DefaultKnots) }

// GetFitted reports whether the trajectory goes through spline.Fit.
func (c *RunConfig) GetFitted() bool { return c.Fitted != nil && *c.Fitted }

// GetParquetPath returns the parquet output path, "" for none.
func (c *RunConfig) GetParquetPath() string {
	if c.ParquetPath == nil {
		return ""
	}
	return *c.ParquetPath
}

// GetPlotPath returns the PNG output path, "" for none.
func (c *RunConfig) GetPlotPath() string {
	if c.PlotPath == nil {
		return ""
	}
	return *c.PlotPath
}

// KernelOptions maps strategy and bessel onto aak options. Call Validate
// first; unknown names are ignored here.
func (c *RunConfig) KernelOptions() []aak.Option {
	var opts []aak.Option
	if c.Strategy != nil && *c.Strategy == "host" {
		opts = append(opts, aak.WithStrategy(aak.Host))
	}
	if c.Bessel != nil && *c.Bessel == "recurrence" {
		opts = append(opts, aak.WithBessel(bessel.Recurrence{}))
	}

	return opts
}

// TrajectoryOptions maps the recipe fields onto trajectory options. Call
// Validate first: the option constructors panic on out-of-range values.
func (c *RunConfig) TrajectoryOptions() []trajectory.Option {
	return []trajectory.Option{
		trajectory.WithEccentricity(
			getFloat(c.Eccentricity, trajectory.DefaultEccentricity),
			getFloat(c.EccRate, trajectory.DefaultEccRate)),
		trajectory.WithFrequency(
			getFloat(c.Frequency, trajectory.DefaultFrequency),
			getFloat(c.Chirp, trajectory.DefaultChirp)),
		trajectory.WithPrecession(getFloat(c.Precession, trajectory.DefaultPrecession)),
		trajectory.WithLenseThirring(getFloat(c.LenseThirring, trajectory.DefaultLenseThirring)),
		trajectory.WithInclination(getFloat(c.Inclination, trajectory.DefaultInclination)),
	}
}
