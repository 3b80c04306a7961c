package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/df07/go-whitted-raytracer/pkg/canvas"
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// options holds the parsed command line
type options struct {
	sceneType string
	width     int
	height    int
	threads   int
	outputDir string
	formats   []string
	list      bool
	help      bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, output io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&opts.sceneType, "scene", "default", "Scene ID, scene file name in scenes/, or path to a .ini file")
	fs.IntVar(&opts.width, "width", 0, "Image width (0 uses the scene default)")
	fs.IntVar(&opts.height, "height", 0, "Image height (0 uses the scene default)")
	fs.IntVar(&opts.threads, "threads", 0, "Render threads (0 uses the scene setting, negative leaves CPUs free)")
	fs.StringVar(&opts.outputDir, "output", "output", "Output directory")
	format := fs.String("format", "png", "Comma-separated output formats: png, ppm")
	fs.BoolVar(&opts.list, "list", false, "List available scenes and exit")
	fs.BoolVar(&opts.help, "help", false, "Show help information")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	for _, f := range strings.Split(*format, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		switch f {
		case "":
		case "png", "ppm":
			opts.formats = append(opts.formats, f)
		default:
			return opts, fmt.Errorf("unknown output format %q", f)
		}
	}
	if len(opts.formats) == 0 {
		return opts, errors.New("at least one output format is required")
	}
	if opts.width < 0 || opts.height < 0 {
		return opts, fmt.Errorf("invalid size %dx%d", opts.width, opts.height)
	}
	return opts, nil
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	opts, err := parseFlags(args, stdout)
	if err != nil {
		return err
	}

	if opts.help {
		printHelp(stdout)
		return nil
	}
	if opts.list {
		return listScenes(stdout)
	}

	fmt.Fprintln(stdout, "Starting Whitted Raytracer...")

	selectedScene, err := createScene(opts.sceneType, scene.CameraConfig{Width: opts.width, Height: opts.height})
	if err != nil {
		return err
	}
	if err := selectedScene.Validate(); err != nil {
		return err
	}
	if opts.threads != 0 {
		selectedScene.Threads = opts.threads
	}

	logger := &writerLogger{w: stdout}
	selectedScene.Camera.SetLogger(logger)

	img := selectedScene.NewCanvas()
	stats, err := selectedScene.Render(ctx, img)
	switch {
	case errors.Is(err, renderer.ErrRenderStopped):
		logger.Printf("Saving partial image (%d of %d pixels)\n", stats.PixelsWritten, stats.TotalPixels)
	case err != nil:
		return fmt.Errorf("render failed: %w", err)
	}

	paths, err := saveImage(img, opts.outputDir, selectedScene.Name, opts.formats, time.Now())
	if err != nil {
		return err
	}
	for _, path := range paths {
		fmt.Fprintf(stdout, "Render saved as %s\n", path)
	}
	return nil
}

// createScene resolves a scene by built-in ID, "file:" ID, scene file name
// or .ini path
func createScene(sceneType string, cameraOverrides ...scene.CameraConfig) (*scene.Scene, error) {
	if sceneType == "" {
		return nil, errors.New("scene name is required")
	}

	s, err := scene.New(sceneType, cameraOverrides...)
	if err == nil {
		return s, nil
	}
	if !errors.Is(err, scene.ErrUnknownScene) {
		return nil, err
	}

	if s, ok := tryLoadSceneFile(sceneType, cameraOverrides...); ok {
		return s, nil
	}
	return nil, fmt.Errorf("unknown scene type: %s (use -list to see available scenes)", sceneType)
}

// tryLoadSceneFile looks for scenes/<name>.ini
func tryLoadSceneFile(name string, cameraOverrides ...scene.CameraConfig) (*scene.Scene, bool) {
	path := filepath.Join("scenes", name+".ini")
	if _, err := os.Stat(path); err != nil {
		return nil, false
	}
	s, err := scene.NewFileScene(path, cameraOverrides...)
	if err != nil {
		return nil, false
	}
	return s, true
}

// saveImage writes one file per format under outputDir/<sceneName>/ and
// returns the paths written
func saveImage(img *canvas.Canvas, outputDir, sceneName string, formats []string, now time.Time) ([]string, error) {
	dir := filepath.Join(outputDir, sceneName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("error creating output directory: %w", err)
	}

	timestamp := now.Format("20060102_150405")
	paths := make([]string, len(formats))
	var g errgroup.Group
	for i, format := range formats {
		paths[i] = filepath.Join(dir, fmt.Sprintf("render_%s.%s", timestamp, format))
		g.Go(func() error {
			return img.SaveFile(paths[i])
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}

func listScenes(w io.Writer) error {
	response, err := scene.ListAllScenes()
	if err != nil {
		return err
	}
	for _, group := range response.Groups {
		fmt.Fprintf(w, "%s:\n", group.Name)
		for _, s := range group.Scenes {
			fmt.Fprintf(w, "  %-20s %s\n", s.ID, s.Description)
		}
	}
	return nil
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, "Whitted Raytracer")
	fmt.Fprintln(w, "Usage: raytracer [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "  -scene string    scene ID, scene file name in scenes/, or .ini path (default \"default\")")
	fmt.Fprintln(w, "  -width int       image width, 0 uses the scene default")
	fmt.Fprintln(w, "  -height int      image height, 0 uses the scene default")
	fmt.Fprintln(w, "  -threads int     render threads, 0 uses the scene setting")
	fmt.Fprintln(w, "  -output string   output directory (default \"output\")")
	fmt.Fprintln(w, "  -format string   comma-separated formats: png, ppm (default \"png\")")
	fmt.Fprintln(w, "  -list            list available scenes")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output will be saved to <output>/<scene>/render_<timestamp>.<format>")
}

// writerLogger is a core.Logger writing to an io.Writer
type writerLogger struct {
	w io.Writer
}

var _ core.Logger = (*writerLogger)(nil)

func (l *writerLogger) Printf(format string, args ...interface{}) {
	fmt.Fprintf(l.w, format, args...)
}
