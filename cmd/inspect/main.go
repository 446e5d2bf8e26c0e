package main

import (
	"flag"
	"fmt"
	"os"

	"spincube/internal/config"
	"spincube/internal/inspect"
	"spincube/internal/mathutil"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	at := flag.Float64("t", 0, "Elapsed milliseconds to evaluate")
	width := flag.Int("width", 0, "Viewport width (default: 640)")
	height := flag.Int("height", 0, "Viewport height (default: 480)")
	plotPath := flag.String("plot", "", "Write a plot of one period to this file (.png, .svg, .pdf)")
	samples := flag.Int("samples", 240, "Samples per period for -plot")
	flag.Parse()

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
	cfg.Resolve(config.Flags{Width: *width, Height: *height})

	scene := cfg.Scene()
	fs := scene.Compute(*at, cfg.Width, cfg.Height)

	fmt.Printf("t: %.1f ms, viewport %dx%d\n", *at, cfg.Width, cfg.Height)
	inspect.Dump(os.Stdout, fs)
	fmt.Printf("det(model): %.6f  cond(model): %.3g\n",
		mathutil.Determinant(fs.Model), mathutil.Condition(fs.Model))

	if *plotPath == "" {
		return
	}
	tr := inspect.Sample(scene, cfg.Width, cfg.Height, *samples)
	if err := inspect.Plot(tr, *plotPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Plot: %s (%d samples)\n", *plotPath, len(tr.TimeMS))
}
