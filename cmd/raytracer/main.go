package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/mvega/pathtracer/pkg/config"
	"github.com/mvega/pathtracer/pkg/core"
	"github.com/mvega/pathtracer/pkg/renderer"
	"github.com/mvega/pathtracer/pkg/scene"
)

// Config holds all the command-line configuration for the raytracer.
type Config struct {
	SceneType  string
	ConfigPath string
	Output     string
	TilesX     int
	TilesY     int
	TMax       int
	Seed       int64
	Help       bool
}

func main() {
	cfg := parseFlags()
	if cfg.Help {
		showHelp()
		return
	}

	fmt.Println("Starting renderer...")
	startTime := time.Now()

	built, err := createScene(cfg)
	if err != nil {
		fmt.Printf("Error creating scene: %v\n", err)
		os.Exit(1)
	}

	cam, err := renderer.NewCamera(built.CameraConfig)
	if err != nil {
		fmt.Printf("Error configuring camera: %v\n", err)
		os.Exit(1)
	}

	r := renderer.NewRenderer(cam, built.World, built.Lights, renderer.RenderConfig{
		TilesX: cfg.TilesX,
		TilesY: cfg.TilesY,
		TMax:   cfg.TMax,
		Seed:   cfg.Seed,
		Logger: renderer.NewDefaultLogger(),
		Progress: func(completed, total int) {
			fmt.Printf("\rRendering: %d/%d tiles", completed, total)
		},
	})

	fb, err := r.Render()
	fmt.Println()
	if err != nil {
		fmt.Printf("Error during render: %v\n", err)
		os.Exit(1)
	}

	if err := saveImageToFile(fb, cfg.Output); err != nil {
		fmt.Printf("Error saving image: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render completed in %v\n", time.Since(startTime))
	fmt.Printf("Saved to %s\n", cfg.Output)
}

// parseFlags parses command line flags and returns configuration.
func parseFlags() Config {
	cfg := Config{}
	flag.StringVar(&cfg.SceneType, "scene", "cornell", "Scene to render: cornell, spheres, or textured-ground")
	flag.StringVar(&cfg.ConfigPath, "config", "", "Path to a YAML camera config overriding the scene's default camera")
	flag.StringVar(&cfg.Output, "out", "render.png", "Output PNG path")
	flag.IntVar(&cfg.TilesX, "tiles-x", 20, "Number of tile columns")
	flag.IntVar(&cfg.TilesY, "tiles-y", 20, "Number of tile rows")
	flag.IntVar(&cfg.TMax, "tmax", 0, "Maximum concurrently in-flight tiles (0 = one per CPU)")
	flag.Int64Var(&cfg.Seed, "seed", 1, "Base RNG seed")
	flag.BoolVar(&cfg.Help, "help", false, "Show help information")
	flag.Parse()

	if cfg.TMax <= 0 {
		cfg.TMax = runtime.NumCPU()
	}
	return cfg
}

func showHelp() {
	fmt.Println("Monte Carlo path tracer")
	fmt.Println("Usage: raytracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Built-in scenes:")
	fmt.Println("  cornell          - Cornell box with a ceiling light and two boxes")
	fmt.Println("  spheres          - A field of randomized diffuse/metal/glass spheres")
	fmt.Println("  textured-ground  - Perlin marble spheres plus a checkerboard bitmap sphere")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  raytracer --scene=cornell --out=cornell.png")
	fmt.Println("  raytracer --scene=spheres --config=camera.yaml")
}

// createScene builds the requested scene, optionally overriding its
// camera configuration from a YAML file on disk.
func createScene(cfg Config) (scene.Built, error) {
	var built scene.Built

	switch cfg.SceneType {
	case "cornell":
		built = scene.NewCornellBox()
	case "spheres":
		built = scene.NewSphereField(core.NewStdRNG(cfg.Seed))
	case "textured-ground":
		built = scene.NewTexturedGround(core.NewStdRNG(cfg.Seed))
	default:
		return scene.Built{}, fmt.Errorf("unknown scene: %s", cfg.SceneType)
	}

	if cfg.ConfigPath != "" {
		f, err := os.Open(cfg.ConfigPath)
		if err != nil {
			return scene.Built{}, fmt.Errorf("opening camera config: %w", err)
		}
		defer f.Close()

		camCfg, err := config.LoadCameraConfig(f)
		if err != nil {
			return scene.Built{}, fmt.Errorf("loading camera config: %w", err)
		}
		built.CameraConfig = camCfg
	}

	return built, nil
}

// saveImageToFile encodes a framebuffer as PNG, creating parent
// directories as needed.
func saveImageToFile(fb *renderer.Framebuffer, filename string) error {
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			px := fb.At(x, y)
			img.Set(x, y, color.RGBA{R: px.R, G: px.G, B: px.B, A: 255})
		}
	}

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}
