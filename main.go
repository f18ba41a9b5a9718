package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/golang/glog"

	"github.com/tmay/go-whitted-raytracer/pkg/renderer"
	"github.com/tmay/go-whitted-raytracer/pkg/scene"
)

// createScene resolves a scene name from the command line to a built scene
func createScene(name string, width, height int) (*scene.Scene, error) {
	switch name {
	case "default":
		return scene.NewDefaultScene(width, height), nil
	case "glass":
		return scene.NewGlassScene(width, height), nil
	case "primitives":
		return scene.NewPrimitivesScene(width, height), nil
	default:
		return nil, fmt.Errorf("unknown scene type %q (want 'default', 'glass' or 'primitives')", name)
	}
}

func main() {
	sceneType := flag.String("scene", "default", "Scene type: 'default', 'glass' or 'primitives'")
	width := flag.Int("width", 800, "Output width in pixels")
	height := flag.Int("height", 400, "Output height in pixels")
	depth := flag.Int("depth", 5, "Maximum reflection/refraction recursion depth")
	workers := flag.Int("workers", 0, "Number of render goroutines (0 = one per CPU)")
	output := flag.String("output", "", "Output PNG path (default output/<scene>/render_<timestamp>.png)")
	flag.Parse()
	defer glog.Flush()

	selected, err := createScene(*sceneType, *width, *height)
	if err != nil {
		glog.Exit(err)
	}

	outPath := *output
	if outPath == "" {
		outDir := filepath.Join("output", *sceneType)
		if err := os.MkdirAll(outDir, 0755); err != nil {
			glog.Exitf("Creating output directory: %v", err)
		}
		outPath = filepath.Join(outDir,
			fmt.Sprintf("render_%s.png", time.Now().Format("20060102_150405")))
	}

	opts := renderer.DefaultOptions()
	opts.MaxDepth = *depth
	opts.NumWorkers = *workers

	start := time.Now()
	canvas, err := renderer.Render(context.Background(), selected.Camera, selected.World, opts)
	if err != nil {
		glog.Exitf("Render failed: %v", err)
	}
	fmt.Printf("Rendered %dx%d scene %q in %v\n", *width, *height, *sceneType, time.Since(start))

	f, err := os.Create(outPath)
	if err != nil {
		glog.Exitf("Creating output file: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, canvas.RGBA()); err != nil {
		glog.Exitf("Encoding PNG: %v", err)
	}
	fmt.Printf("Image saved to %s\n", outPath)
}
