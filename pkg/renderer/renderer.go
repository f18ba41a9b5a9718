package renderer

import (
	"context"
	"runtime"
	"time"

	"github.com/golang/glog"
	"golang.org/x/sync/errgroup"

	"github.com/tmay/go-whitted-raytracer/pkg/world"
)

// Options controls a render pass
type Options struct {
	// MaxDepth bounds reflection/refraction recursion. It is the only
	// guarantee of termination in scenes like parallel mirrors.
	MaxDepth int
	// NumWorkers is the number of rendering goroutines; <= 0 means one
	// per CPU
	NumWorkers int
}

// DefaultOptions returns the standard recursion depth and worker count
func DefaultOptions() Options {
	return Options{MaxDepth: 5}
}

// Render traces one ray through the center of every pixel and returns the
// finished canvas. Scanlines are fanned out to a pool of workers; each
// pixel is a pure function of the camera and world, which are shared
// read-only, so rows can be rendered in any order without synchronization.
// Canceling the context abandons unrendered rows and returns its error.
func Render(ctx context.Context, camera *Camera, w *world.World, opts Options) (*Canvas, error) {
	numWorkers := opts.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	canvas := NewCanvas(camera.HSize, camera.VSize)
	start := time.Now()
	glog.V(1).Infof("Rendering %dx%d with %d workers, depth %d",
		camera.HSize, camera.VSize, numWorkers, opts.MaxDepth)

	rows := make(chan int)
	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		defer close(rows)
		for y := 0; y < camera.VSize; y++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			select {
			case rows <- y:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for i := 0; i < numWorkers; i++ {
		eg.Go(func() error {
			for y := range rows {
				for x := 0; x < camera.HSize; x++ {
					ray := camera.RayForPixel(x, y)
					canvas.Set(x, y, w.ColorAt(ray, opts.MaxDepth))
				}
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	glog.V(1).Infof("Render finished in %v", time.Since(start))
	return canvas, nil
}
