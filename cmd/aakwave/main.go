// Command aakwave generates an AAK EMRI strain series from a JSON run
// configuration.
//
// Pipeline: build a synthetic orbital-element trajectory, locate the spline
// segment of every output sample, synthesise the waveform, report its
// dominant frequency and write the optional parquet table and PNG plot.
//
// Usage:
//
//	aakwave -config run.json [-parquet h.parquet] [-plot h.png] [-quiet]
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/KwintenF/FastEMRIWaveforms/aak"
	"github.com/KwintenF/FastEMRIWaveforms/internal/config"
	"github.com/KwintenF/FastEMRIWaveforms/internal/monitoring"
	"github.com/KwintenF/FastEMRIWaveforms/internal/output"
	"github.com/KwintenF/FastEMRIWaveforms/spectrum"
	"github.com/KwintenF/FastEMRIWaveforms/spline"
	"github.com/KwintenF/FastEMRIWaveforms/trajectory"
)

var (
	configPath  = flag.String("config", "", "Path to a JSON run configuration (empty: all defaults)")
	parquetPath = flag.String("parquet", "", "Override the parquet output path")
	plotPath    = flag.String("plot", "", "Override the PNG output path")
	quiet       = flag.Bool("quiet", false, "Mute diagnostic logging")
)

func main() {
	flag.Parse()
	if *quiet {
		monitoring.SetLogger(nil)
	}

	cfg := &config.RunConfig{}
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatalf("aakwave: %v", err)
		}
	}
	if *parquetPath != "" {
		cfg.ParquetPath = parquetPath
	}
	if *plotPath != "" {
		cfg.PlotPath = plotPath
	}

	if _, err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, "aakwave:", err)
		os.Exit(1)
	}
}

// result summarises one run.
type result struct {
	Samples  int
	Segments int
	Peak     float64 // Hz, channel I
}

// run executes the pipeline described by cfg.
func run(cfg *config.RunConfig) (result, error) {
	p := cfg.Params()
	n := cfg.GetSamples()
	span := float64(n) * p.Dt

	build := trajectory.Build
	if cfg.GetFitted() {
		build = trajectory.BuildFitted
	}
	traj, err := build(cfg.GetKnots(), span, cfg.TrajectoryOptions()...)
	if err != nil {
		return result{}, fmt.Errorf("trajectory: %w", err)
	}

	seg, err := spline.Locate(traj.Knots, p.Dt, n)
	if err != nil {
		return result{}, fmt.Errorf("locate: %w", err)
	}
	monitoring.Logf("aakwave: %d knots, %d usable segments, %d samples at dt=%gs", traj.Segments(), seg.Count, n, p.Dt)

	h := make([]complex128, n)
	start := time.Now()
	if err := aak.Generate(h, traj, seg.SampleMap(), cfg.Geometry(), p, cfg.KernelOptions()...); err != nil {
		return result{}, fmt.Errorf("generate: %w", err)
	}
	monitoring.Logf("aakwave: synthesised %d samples, %d modes in %v", n, p.NModes, time.Since(start))

	res := result{Samples: n, Segments: seg.Count}
	if n >= 2 {
		if res.Peak, err = spectrum.DominantFrequency(h, p.Dt, spectrum.ChannelI); err != nil {
			return res, fmt.Errorf("spectrum: %w", err)
		}
		monitoring.Logf("aakwave: dominant frequency %.6g Hz", res.Peak)
	}

	if path := cfg.GetParquetPath(); path != "" {
		if err := output.SaveParquet(path, h, p.Dt, cfg); err != nil {
			return res, err
		}
	}
	if path := cfg.GetPlotPath(); path != "" {
		if err := output.SavePlot(path, h, p.Dt, "AAK strain"); err != nil {
			return res, err
		}
	}

	return res, nil
}
