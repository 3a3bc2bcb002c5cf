package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-recursive-pathtracer/pkg/core"
	"github.com/df07/go-recursive-pathtracer/pkg/loaders"
	"github.com/df07/go-recursive-pathtracer/pkg/renderer"
	"github.com/df07/go-recursive-pathtracer/pkg/scene"
)

// cliOptions holds the parsed command line
type cliOptions struct {
	sceneName  string
	configPath string
	outPath    string
	assetDir   string
	maxTexture int
	help       bool

	// Render settings given explicitly on the command line
	overrides func(*renderer.Config)
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(2)
	}

	if opts.help {
		printHelp(os.Stdout)
		return
	}

	if err := run(opts, renderer.NewDefaultLogger()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// renderFlags points at the render settings registered on a flag set
type renderFlags struct {
	width, height, samples, depth, cells *int
	seed                                 *int64
}

// defineFlags registers every command line flag on fs
func defineFlags(fs *flag.FlagSet, opts *cliOptions) renderFlags {
	fs.StringVar(&opts.sceneName, "scene", "reflect", "Built-in scene: "+strings.Join(scene.Names(), ", "))
	fs.StringVar(&opts.configPath, "config", "", "JSON render config file")
	fs.StringVar(&opts.outPath, "out", "", "Output PNG path (default output/<scene>/render_<timestamp>.png)")
	fs.StringVar(&opts.assetDir, "assets", "assets", "Directory holding scene textures and models")
	fs.IntVar(&opts.maxTexture, "max-texture", 0, "Downscale textures larger than this many pixels on a side (0 = full size)")
	fs.BoolVar(&opts.help, "help", false, "Show help information")

	defaults := renderer.DefaultConfig()
	return renderFlags{
		width:   fs.Int("width", defaults.Width, "Image width in pixels"),
		height:  fs.Int("height", defaults.Height, "Image height in pixels"),
		samples: fs.Int("samples", defaults.SampleCount, "Rays per diffuse or glossy bounce"),
		depth:   fs.Int("depth", defaults.MaxDepth, "Maximum bounces"),
		cells:   fs.Int("cells", defaults.Cells, "Approximate number of render tiles"),
		seed:    fs.Int64("seed", defaults.Seed, "Random seed"),
	}
}

// parseFlags parses args into cliOptions. Usage errors are written to output.
func parseFlags(args []string, output io.Writer) (cliOptions, error) {
	fs := flag.NewFlagSet("pathtracer", flag.ContinueOnError)
	fs.SetOutput(output)

	var opts cliOptions
	values := defineFlags(fs, &opts)
	if err := fs.Parse(args); err != nil {
		return cliOptions{}, err
	}

	// Only flags that were actually set override the config file
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	opts.overrides = func(cfg *renderer.Config) {
		if set["width"] {
			cfg.Width = *values.width
		}
		if set["height"] {
			cfg.Height = *values.height
		}
		if set["samples"] {
			cfg.SampleCount = *values.samples
		}
		if set["depth"] {
			cfg.MaxDepth = *values.depth
		}
		if set["cells"] {
			cfg.Cells = *values.cells
		}
		if set["seed"] {
			cfg.Seed = *values.seed
		}
	}
	return opts, nil
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, "Recursive Path Tracer")
	fmt.Fprintln(w, "Usage: pathtracer [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fs := flag.NewFlagSet("pathtracer", flag.ContinueOnError)
	fs.SetOutput(w)
	defineFlags(fs, &cliOptions{})
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Fprintf(w, "  %-15s %s\n", info.ID, info.Description)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Settings come from flags, then the -config file, then built-in defaults.")
	fmt.Fprintln(w, "Output is saved to output/<scene>/render_<timestamp>.png unless -out is given.")
}

// loadConfig applies defaults, then the config file, then flag overrides
func loadConfig(opts cliOptions) (renderer.Config, error) {
	cfg := renderer.DefaultConfig()
	if opts.configPath != "" {
		var err error
		cfg, err = renderer.LoadConfig(opts.configPath)
		if err != nil {
			return renderer.Config{}, err
		}
	}
	if opts.overrides != nil {
		opts.overrides(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return renderer.Config{}, fmt.Errorf("invalid settings: %w", err)
	}
	return cfg, nil
}

// createScene builds a built-in scene, loading its assets from opts.assetDir
func createScene(opts cliOptions, logger core.Logger) (*scene.Scene, error) {
	return scene.Build(opts.sceneName, scene.Options{
		AssetDir:       opts.assetDir,
		MaxTextureSize: opts.maxTexture,
		Logger:         logger,
	})
}

// outputPath returns -out when given, otherwise a timestamped file under
// output/<scene>/
func outputPath(opts cliOptions, now time.Time) string {
	if opts.outPath != "" {
		return opts.outPath
	}
	timestamp := now.Format("20060102_150405")
	return filepath.Join("output", opts.sceneName, fmt.Sprintf("render_%s.png", timestamp))
}

func run(opts cliOptions, logger core.Logger) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	logger.Printf("Starting Recursive Path Tracer...\n")
	sc, err := createScene(opts, logger)
	if err != nil {
		return err
	}
	logger.Printf("Scene %s: %d primitives\n", sc.Name, sc.GetPrimitiveCount())

	frame, stats, err := renderer.Render(sc, cfg, renderer.RenderOptions{
		Logger: logger,
		Progress: func(p renderer.TileProgress) {
			logger.Printf("Tile %d/%d done (%.0f%%)\n", p.TilesDone, p.TotalTiles, p.Percent())
		},
	})
	if err != nil {
		return err
	}
	logger.Printf("Render completed in %v (%.1f rays per pixel)\n", stats.Elapsed, stats.RaysPerPixel())

	filename := outputPath(opts, time.Now())
	if err := loaders.SavePNG(filename, frame.ToImage()); err != nil {
		return err
	}
	logger.Printf("Render saved as %s\n", filename)
	return nil
}
