package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/tlecomte/go-raycaster/pkg/loaders"
	"github.com/tlecomte/go-raycaster/pkg/renderer"
	"github.com/tlecomte/go-raycaster/pkg/scene"
	"github.com/tlecomte/go-raycaster/pkg/visualizer"
)

// Config holds all the configuration for the ray caster
type Config struct {
	SceneType   string
	ConfigFile  string
	Output      string
	Accelerator string
	Wait        bool
	Help        bool
	CPUProfile  string

	Render loaders.RenderConfig
}

func main() {
	config, err := parseFlags()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	if config.Help {
		showHelp()
		return
	}

	if config.CPUProfile != "" {
		f, err := os.Create(config.CPUProfile)
		if err != nil {
			fmt.Printf("Could not create CPU profile: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Printf("Could not start CPU profile: %v\n", err)
			os.Exit(1)
		}
		defer pprof.StopCPUProfile()
	}

	visu := visualizer.New(config.Render.Width, config.Render.Height, config.Output)

	sceneObj, err := createScene(config, visu)
	if err != nil {
		fmt.Printf("Error creating scene: %v\n", err)
		os.Exit(1)
	}

	switch config.Accelerator {
	case "bvh":
		sceneObj.Accelerator = renderer.AccelBVH
	case "linear":
		sceneObj.Accelerator = renderer.AccelLinear
	default:
		fmt.Printf("Unknown accelerator %q, using BVH.\n", config.Accelerator)
	}
	sceneObj.SurfaceLighting = config.Render.SurfaceLighting
	sceneObj.IndirectLighting = config.Render.IndirectLighting
	sceneObj.SharedSeed = config.Render.SharedSeed
	sceneObj.Workers = config.Render.Workers
	sceneObj.SetDiffuseSamples(1)
	sceneObj.SetSpecularSamples(1)
	sceneObj.PrintStats()

	startTime := time.Now()
	sceneObj.Compute(config.Render.MaxDepth, config.Render.SubPixelDivision, config.Render.PassPerPixel)
	fmt.Printf("Render completed in %v\n", time.Since(startTime).Round(time.Millisecond))

	if err := visu.Flush(); err != nil {
		fmt.Printf("Error saving image: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Render saved as %s\n", config.Output)

	if config.Wait {
		visu.WaitKeyPressed()
	}
}

// parseFlags parses command line flags and returns configuration
func parseFlags() (Config, error) {
	config := Config{Render: loaders.DefaultRenderConfig()}

	flag.StringVar(&config.SceneType, "scene", "cornell", "Scene type or glTF file path")
	flag.StringVar(&config.ConfigFile, "config", "", "YAML render settings file")
	flag.StringVar(&config.Output, "output", "output/render.png", "Output image path (.png or .webp)")
	flag.StringVar(&config.Accelerator, "accel", "bvh", "Intersection accelerator: 'bvh' or 'linear'")
	flag.BoolVar(&config.Wait, "wait", false, "Wait for a key press before exiting")
	flag.BoolVar(&config.Help, "help", false, "Show help information")
	flag.StringVar(&config.CPUProfile, "cpuprofile", "", "Write CPU profile to file")

	flag.IntVar(&config.Render.Width, "width", config.Render.Width, "Image width in pixels")
	flag.IntVar(&config.Render.Height, "height", config.Render.Height, "Image height in pixels")
	flag.IntVar(&config.Render.MaxDepth, "max-depth", config.Render.MaxDepth, "Maximum recursion depth")
	flag.IntVar(&config.Render.SubPixelDivision, "subpixel", config.Render.SubPixelDivision, "Subpixel grid division for antialiasing")
	flag.IntVar(&config.Render.PassPerPixel, "passes", config.Render.PassPerPixel, "Passes per subpixel offset")
	flag.IntVar(&config.Render.Workers, "workers", 0, "Number of parallel workers (0 = default)")
	flag.BoolVar(&config.Render.SurfaceLighting, "surface-lighting", config.Render.SurfaceLighting, "Use stratified surface lights for direct lighting")
	flag.BoolVar(&config.Render.IndirectLighting, "indirect", config.Render.IndirectLighting, "Use Monte Carlo path tracing")
	flag.BoolVar(&config.Render.SharedSeed, "shared-seed", config.Render.SharedSeed, "Reseed workers from a common per-pass seed")
	flag.Parse()

	// A YAML settings file provides the base; explicit flags override it
	if config.ConfigFile != "" {
		fileConfig, err := loaders.LoadRenderConfig(config.ConfigFile)
		if err != nil {
			return config, err
		}
		base := fileConfig
		flag.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "width":
				base.Width = config.Render.Width
			case "height":
				base.Height = config.Render.Height
			case "max-depth":
				base.MaxDepth = config.Render.MaxDepth
			case "subpixel":
				base.SubPixelDivision = config.Render.SubPixelDivision
			case "passes":
				base.PassPerPixel = config.Render.PassPerPixel
			case "workers":
				base.Workers = config.Render.Workers
			case "surface-lighting":
				base.SurfaceLighting = config.Render.SurfaceLighting
			case "indirect":
				base.IndirectLighting = config.Render.IndirectLighting
			case "shared-seed":
				base.SharedSeed = config.Render.SharedSeed
			}
		})
		config.Render = base
	}

	return config, nil
}

// showHelp displays help information
func showHelp() {
	fmt.Println("Ray Caster")
	fmt.Println("Usage: raycaster [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Built-in scenes:")
	fmt.Println("  cornell          - Cornell box with diffuse walls, cubes and a rectangle light")
	fmt.Println("  cornell-specular - Cornell box with mirror walls and a sphere light")
	fmt.Println("  cornell-mixed    - Cornell box with mixed walls and emissive cubes")
	fmt.Println("  Or use a direct glTF file path: models/my-model.gltf")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  raycaster --scene=cornell --passes=62 --subpixel=4")
	fmt.Println("  raycaster --scene=models/guitar.glb --output=output/guitar.webp")
	fmt.Println("  raycaster --scene=cornell --indirect=false --max-depth=2")
}

// createScene creates the appropriate scene based on the scene type
func createScene(config Config, visu *visualizer.Visualizer) (*scene.Scene, error) {
	if strings.HasSuffix(config.SceneType, ".gltf") || strings.HasSuffix(config.SceneType, ".glb") {
		fmt.Printf("Loading model: %s...\n", config.SceneType)
		return scene.NewModelScene(visu, config.SceneType)
	}

	switch config.SceneType {
	case "cornell":
		fmt.Println("Using diffuse cornell scene...")
		return scene.NewDiffuseCornellScene(visu), nil
	case "cornell-specular":
		fmt.Println("Using specular cornell scene...")
		return scene.NewSpecularCornellScene(visu), nil
	case "cornell-mixed":
		fmt.Println("Using mixed cornell scene...")
		return scene.NewMixedCornellScene(visu), nil
	default:
		return nil, fmt.Errorf("unknown scene type: %s", config.SceneType)
	}
}
