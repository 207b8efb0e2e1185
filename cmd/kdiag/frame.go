package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"kailash/internal/diag"
	"kailash/internal/gfx"
	"kailash/internal/observ"
)

type frameOptions struct {
	frames     int
	faultEvery int             // inject a backend fault every N frames (0 = never)
	faults     []gfx.ErrorCode // cycled through on each injection
}

var (
	frameCount      int
	frameFaultEvery int
	frameFaults     []string
)

var frameCmd = &cobra.Command{
	Use:   "frame",
	Short: "Run a headless frame loop that exercises every diagnostic path",
	RunE: func(cmd *cobra.Command, args []string) error {
		if frameCount < 0 {
			return fmt.Errorf("--frames must be >= 0, got %d", frameCount)
		}
		faults, err := parseCodes(frameFaults)
		if err != nil {
			return fmt.Errorf("invalid --fault: %w", err)
		}
		opts := frameOptions{frames: frameCount, faultEvery: frameFaultEvery, faults: faults}
		return runFrames(cmd.Context(), diag.FromContext(cmd.Context()), gfx.NewRegister(), opts)
	},
}

func init() {
	frameCmd.Flags().IntVar(&frameCount, "frames", 3, "number of frames to simulate")
	frameCmd.Flags().IntVar(&frameFaultEvery, "fault-every", 2, "inject a backend fault every N frames (0 disables)")
	frameCmd.Flags().StringSliceVar(&frameFaults, "fault", []string{"GL_INVALID_OPERATION"}, "backend error codes to inject")
}

// subsystems that update concurrently each frame.
var subsystems = []string{"Audio", "Assets", "Physics"}

// runFrames simulates the engine loop. Subsystem updates run concurrently and
// only log; the backend register is polled on this goroutine, which stands in
// for the thread owning the graphics context.
func runFrames(ctx context.Context, r *diag.Reporter, backend *gfx.Register, opts frameOptions) error {
	r.LogInfo(diag.VerbosityPhase, "Engine", "start")
	timer := observ.NewTimer()
	injected := 0

	for frame := 1; frame <= opts.frames; frame++ {
		idx := timer.Begin("update")
		g, gctx := errgroup.WithContext(ctx)
		for _, name := range subsystems {
			name := name
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				r.LogInfo(diag.VerbosityDebug, name, fmt.Sprintf("frame %d updated", frame))
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			r.LogError("Engine", fmt.Sprintf("frame %d aborted: %v", frame, err))
			return err
		}
		timer.End(idx, "")

		idx = timer.Begin("render")
		if opts.faultEvery > 0 && len(opts.faults) > 0 && frame%opts.faultEvery == 0 {
			backend.Raise(opts.faults[injected%len(opts.faults)])
			injected++
		}
		timer.End(idx, "")

		if n := pollBackend(r, backend, false); n > 0 {
			r.LogInfo(diag.VerbosityDetail, "Renderer", fmt.Sprintf("frame %d: %d backend error(s)", frame, n))
		}
		timer.Log(r, diag.VerbosityTrace)
		timer.Reset()
	}

	r.LogInfo(diag.VerbosityPhase, "Engine", fmt.Sprintf("stop after %d frame(s)", opts.frames))
	return nil
}
