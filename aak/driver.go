// SPDX-License-Identifier: MIT
// Package: aak
//
// driver.go - validation and dispatch.
//
// Generate:
//  1. Reject trajectories larger than the staging capacity (no memory is
//     read or written before this check).
//  2. Validate parameters, buffer lengths and the segment map.
//  3. Run the selected strategy once; every output slot is written by
//     exactly one goroutine.

package aak

import (
	"math"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/KwintenF/FastEMRIWaveforms/spline"
)

// Generate writes len(out) strain samples for traj into out.
//
// segMap[i] is the trajectory segment of sample i (see
// spline.Segmentation.SampleMap); len(segMap) must equal len(out).
func Generate(out []complex128, traj spline.Trajectory, segMap []int, g Geometry, p Params, opts ...Option) error {
	nseg := traj.Segments()
	if nseg > spline.MaxSegments {
		return aakErrorf(MethodGenerate, ErrTooManySegments, "%d segments, capacity %d", nseg, spline.MaxSegments)
	}
	if err := validateCall(traj, segMap, out, p); err != nil {
		return err
	}

	cfg := newConfig(opts...)
	s := newSynth(g, p, segMap, cfg.j)
	switch cfg.strategy {
	case Host:
		runHost(s, out, traj, cfg.workers, cfg.chunk)
	default:
		if err := runGrid(s, out, traj, cfg.blocks, cfg.threads); err != nil {
			return aakErrorf(MethodGenerate, err, "stage")
		}
	}

	return nil
}

// Waveform locates segments for n samples, builds the segment map and
// returns a freshly allocated strain buffer.
func Waveform(traj spline.Trajectory, g Geometry, p Params, n int, opts ...Option) ([]complex128, error) {
	if err := spline.CheckCapacity(traj.Segments()); err != nil {
		return nil, aakErrorf(MethodWaveform, err, "locate")
	}
	seg, err := spline.Locate(traj.Knots, p.Dt, n)
	if err != nil {
		return nil, aakErrorf(MethodWaveform, err, "locate")
	}
	out := make([]complex128, n)
	if err := Generate(out, traj, seg.SampleMap(), g, p, opts...); err != nil {
		return nil, err
	}

	return out, nil
}

// validateCall checks everything Generate needs before any write.
func validateCall(traj spline.Trajectory, segMap []int, out []complex128, p Params) error {
	if !(p.Dt > 0) || math.IsInf(p.Dt, 0) {
		return aakErrorf(MethodGenerate, ErrBadInput, "dt=%v", p.Dt)
	}
	if p.NModes < 0 {
		return aakErrorf(MethodGenerate, ErrBadInput, "nmodes=%d", p.NModes)
	}
	nseg := traj.Segments()
	if want := spline.NumOrders * nseg * spline.NumParams; len(traj.Coeffs) != want {
		return aakErrorf(MethodGenerate, ErrBadLength, "coeffs=%d, want %d", len(traj.Coeffs), want)
	}
	if len(segMap) != len(out) {
		return aakErrorf(MethodGenerate, ErrBadLength, "segment map=%d, output=%d", len(segMap), len(out))
	}
	for i, s := range segMap {
		if s < 0 || s >= nseg {
			return aakErrorf(MethodGenerate, ErrBadSegmentMap, "sample %d -> segment %d of %d", i, s, nseg)
		}
	}

	return nil
}

// gridBlock is one block of the Grid strategy.
type gridBlock struct {
	arena  spline.Arena
	staged sync.WaitGroup // one-shot barrier after staging
}

// runGrid launches blocks × threads goroutines. Threads of a block stage
// disjoint lanes of the trajectory into the block arena, wait on the
// barrier, then process samples i ≡ global id (mod blocks·threads).
// Every arena is reset before the first goroutine starts, so a staging
// error leaves out untouched.
func runGrid(s *synth, out []complex128, traj spline.Trajectory, blocks, threads int) error {
	n := len(out)
	if n == 0 {
		return nil
	}
	if maxBlocks := (n + threads - 1) / threads; blocks > maxBlocks {
		blocks = maxBlocks
	}
	stride := blocks * threads

	grid := make([]gridBlock, blocks)
	for b := range grid {
		if err := grid[b].arena.Reset(traj.Segments()); err != nil {
			return err
		}
	}

	var done sync.WaitGroup
	done.Add(stride)
	for b := range grid {
		blk := &grid[b]
		blk.staged.Add(threads)
		for th := 0; th < threads; th++ {
			go func(gid, lane int) {
				defer done.Done()
				blk.arena.Stage(traj, lane, threads)
				blk.staged.Done()
				blk.staged.Wait()

				var sc scratch
				knots, coeffs := blk.arena.Knots(), blk.arena.Coeffs()
				for i := gid; i < n; i += stride {
					out[i] = s.sample(i, knots, coeffs, &sc)
				}
			}(b*threads+th, th)
		}
	}
	done.Wait()

	return nil
}

// runHost splits the output into contiguous chunks processed by at most
// workers goroutines, reading the trajectory in place.
func runHost(s *synth, out []complex128, traj spline.Trajectory, workers, chunk int) {
	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < len(out); lo += chunk {
		lo, hi := lo, min(lo+chunk, len(out))
		g.Go(func() error {
			var sc scratch
			for i := lo; i < hi; i++ {
				out[i] = s.sample(i, traj.Knots, traj.Coeffs, &sc)
			}
			return nil
		})
	}
	_ = g.Wait()
}
