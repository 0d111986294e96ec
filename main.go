package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/output"
	"github.com/df07/go-stochastic-raytracer/pkg/renderer"
	"github.com/df07/go-stochastic-raytracer/pkg/scene"
)

// options holds the parsed command line. Zero values for image settings
// mean "use the scene's default".
type options struct {
	scene    string
	width    int
	spp      int
	depth    int
	workers  int
	tileSize int
	seed     int64
	out      string
	texture  string
	debug    bool
	list     bool
	help     bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func parseFlags(args []string, stderr io.Writer) (options, *flag.FlagSet, error) {
	var opts options
	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.scene, "scene", "default", "Scene to render (see -list)")
	fs.IntVar(&opts.width, "width", 0, "Image width in pixels (0 = scene default)")
	fs.IntVar(&opts.spp, "spp", 0, "Samples per pixel (0 = scene default)")
	fs.IntVar(&opts.depth, "depth", 0, "Maximum ray bounce depth (0 = scene default)")
	fs.IntVar(&opts.workers, "workers", 0, "Worker goroutines (0 = one per CPU)")
	fs.IntVar(&opts.tileSize, "tile", 1, "Tile edge length in pixels")
	fs.Int64Var(&opts.seed, "seed", 42, "Seed for sampling and scene generation")
	fs.StringVar(&opts.out, "out", "", "Output file (.png, .ppm, .bmp, .tiff); default output/<scene>/render_<timestamp>.png")
	fs.StringVar(&opts.texture, "texture", "", "Image texture for scenes that use one")
	fs.BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	fs.BoolVar(&opts.list, "list", false, "List available scenes")
	fs.BoolVar(&opts.help, "help", false, "Show help information")

	err := fs.Parse(args)
	return opts, fs, err
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, fs, err := parseFlags(args, stderr)
	if err != nil {
		return 2
	}

	if opts.help {
		fmt.Fprintln(stdout, "Stochastic Raytracer")
		fmt.Fprintln(stdout, "Usage: raytracer [options]")
		fmt.Fprintln(stdout)
		fmt.Fprintln(stdout, "Options:")
		fs.SetOutput(stdout)
		fs.PrintDefaults()
		fmt.Fprintln(stdout)
		printScenes(stdout)
		return 0
	}
	if opts.list {
		printScenes(stdout)
		return 0
	}

	logger := core.NewWriterLogger(stdout, stderr, "raytracer", opts.debug)
	if err := render(opts, logger); err != nil {
		logger.Errorf("%v", err)
		return 1
	}
	return 0
}

func printScenes(w io.Writer) {
	fmt.Fprintln(w, "Available scenes:")
	for _, info := range scene.List() {
		fmt.Fprintf(w, "  %-14s %s\n", info.Name, info.Description)
	}
}

func render(opts options, logger core.Logger) error {
	outPath := opts.out
	if outPath == "" {
		timestamp := time.Now().Format("20060102_150405")
		outPath = filepath.Join("output", opts.scene, fmt.Sprintf("render_%s.png", timestamp))
	}
	// Fail before rendering rather than after
	if _, err := output.FormatFromPath(outPath); err != nil {
		return err
	}

	selected, err := scene.New(opts.scene, scene.Options{Seed: opts.seed, ImagePath: opts.texture})
	if err != nil {
		return err
	}
	if opts.width > 0 {
		selected.Params = selected.Params.WithWidth(opts.width)
	}
	if opts.spp > 0 {
		selected.Params.SamplesPerPixel = opts.spp
	}
	if opts.depth > 0 {
		selected.Params.MaxDepth = opts.depth
	}

	logger.Debugf("scene %s: %d primitives", selected.Name, selected.PrimitiveCount())
	job, err := selected.Job()
	if err != nil {
		return err
	}
	job.ID = uuid.New()

	config := renderer.Config{Workers: opts.workers, TileSize: opts.tileSize, Seed: opts.seed}
	framebuffer, _, err := renderer.NewRenderer(config, logger).Render(job)
	if err != nil {
		return err
	}

	img := framebuffer.Image()
	if err := output.Save(outPath, img); err != nil {
		return err
	}

	logger.Infof("render saved as %s (average luminance %.3f)", outPath, renderer.CalculateAverageLuminance(img))
	return nil
}
