package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"spincube/internal/config"
	"spincube/internal/frame"
	"spincube/internal/geometry"
	"spincube/internal/host"
	"spincube/internal/postprocess"
	"spincube/internal/raster"
	"spincube/internal/sequence"
	"spincube/internal/window"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	headless := flag.Bool("headless", false, "Run the frame loop without a window")
	export := flag.Bool("export", false, "Render one period offline and write frames")
	ticks := flag.Uint64("ticks", 0, "Stop after N frames in headless mode (0 = run until interrupted)")
	width := flag.Int("width", 0, "Viewport width (default: 640)")
	height := flag.Int("height", 0, "Viewport height (default: 480)")
	frames := flag.Int("frames", 0, "Frames to export (default: one full turn)")
	outputDir := flag.String("output", "", "Output directory for -export (default: ./frames)")
	format := flag.String("format", "", "Export format: webp, tga, webp-anim (default: webp)")
	workers := flag.Int("workers", 0, "Number of encoder goroutines (default: NumCPU)")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// CLI flags override config file and environment
	cfg.Resolve(config.Flags{
		Width:     *width,
		Height:    *height,
		Frames:    *frames,
		OutputDir: *outputDir,
		Format:    *format,
		Workers:   *workers,
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := log.New(os.Stderr, "spincube: ", log.LstdFlags)

	var err error
	switch {
	case *export:
		err = runExport(cfg, logger)
	case *headless:
		err = runHeadless(cfg, *ticks, logger)
	default:
		err = runWindow(cfg, logger)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setup links the cube program and brings the driver up. A link failure
// leaves the driver Uninitialized; it is reported here, not by the driver.
func setup(cfg config.Config, w, h int, clock frame.Clock, loop *host.Loop, logger *log.Logger, opts ...frame.Option) (*frame.Driver, *raster.Renderer, error) {
	r, err := raster.NewRenderer(w, h, geometry.Cube())
	if err != nil {
		return nil, nil, err
	}
	r.Background = cfg.Background

	opts = append([]frame.Option{
		frame.WithScene(cfg.Scene()),
		frame.WithDiagnostics(logger, cfg.MaxCondition),
	}, opts...)
	d := frame.New(clock, r, loop, opts...)
	if st := d.Setup(r); st != frame.Running {
		return nil, nil, fmt.Errorf("driver setup failed (state %s, viewport %dx%d)", st, w, h)
	}
	d.Start()
	return d, r, nil
}

func runWindow(cfg config.Config, logger *log.Logger) error {
	loop := &host.Loop{}
	_, r, err := setup(cfg, cfg.Width, cfg.Height, host.NewWallClock(), loop, logger)
	if err != nil {
		return err
	}
	return window.Run(window.Config{
		Title:  "spincube",
		Width:  cfg.Width,
		Height: cfg.Height,
		Hz:     cfg.Hz,
	}, loop, r)
}

func runHeadless(cfg config.Config, ticks uint64, logger *log.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	loop := &host.Loop{}
	d, _, err := setup(cfg, cfg.Width, cfg.Height, host.NewWallClock(), loop, logger)
	if err != nil {
		return err
	}

	start := time.Now()
	err = host.RunHeadless(ctx, host.HeadlessConfig{Hz: cfg.Hz, Frames: ticks, Logger: logger}, loop, nil)
	elapsed := time.Since(start)
	fmt.Printf("Frames: %d in %.1fs (%.1f fps)\n", d.Frames(), elapsed.Seconds(), float64(d.Frames())/elapsed.Seconds())
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func runExport(cfg config.Config, logger *log.Logger) error {
	format, err := sequence.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	ss := cfg.Supersample
	var angle float64
	loop := &host.Loop{}
	clock := &host.StepClock{}
	_, r, err := setup(cfg, cfg.Width*ss, cfg.Height*ss, clock, loop, logger,
		frame.WithObserver(func(fs frame.FrameState) { angle = fs.Angle }))
	if err != nil {
		return err
	}

	fmt.Printf("Spinning cube → %s\n", format)
	fmt.Printf("Frames: %d at %d fps, %dx%d (supersample %dx), Workers: %d\n",
		cfg.Frames, cfg.FPS, cfg.Width, cfg.Height, ss, cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	// Frame production stays on this goroutine; only encoding fans out.
	rendered := make([]sequence.Frame, 0, cfg.Frames)
	err = host.RunOffline(cfg.Frames, cfg.FrameMS(), loop, clock, func(i int) error {
		img := r.Image()
		if ss > 1 {
			img = postprocess.Downsample(img, cfg.Width, cfg.Height)
		}
		rendered = append(rendered, sequence.Frame{
			Index:  i,
			TimeMS: clock.ElapsedMillis(),
			Angle:  angle,
			Image:  img,
		})
		return nil
	})
	if err != nil {
		return err
	}
	fmt.Printf("Rendered %d frames in %.1fs\n", len(rendered), time.Since(start).Seconds())

	seqCfg := sequence.Config{
		OutputDir: cfg.OutputDir,
		Format:    format,
		Workers:   cfg.Workers,
		FrameMS:   cfg.FrameMS(),
		Progress:  os.Stdout,
	}

	failed := 0
	if format == sequence.FormatAnimatedWebP {
		path, err := sequence.WriteAnimation(seqCfg, rendered)
		if err != nil {
			return err
		}
		fmt.Printf("Animation: %s\n", path)
	} else {
		results := sequence.Run(seqCfg, rendered)
		for _, res := range results {
			if !res.Success {
				failed++
				if failed <= 20 {
					fmt.Printf("  frame %d: %s\n", res.Index, res.Error)
				}
			}
		}
		fmt.Printf("Written: %d/%d\n", len(results)-failed, len(results))
	}

	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", time.Since(start).Seconds())

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	os.MkdirAll(cfg.OutputDir, 0755)
	if err := sequence.WriteManifest(manifestPath, sequence.NewManifest(format, rendered)); err != nil {
		logger.Printf("manifest write failed: %v", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		return fmt.Errorf("%d frames failed", failed)
	}
	return nil
}
