package scene

import (
	"github.com/golang/glog"

	"github.com/tmay/go-whitted-raytracer/pkg/renderer"
	"github.com/tmay/go-whitted-raytracer/pkg/world"
)

// Scene bundles a fully constructed world with the camera that views it.
// Builders in this package return the scene ready to render; nothing in it
// is mutated afterward.
type Scene struct {
	World  *world.World
	Camera *renderer.Camera
}

// must aborts scene construction on a configuration error, per the rule
// that a bad transform should never silently become identity
func must(err error) {
	if err != nil {
		glog.Exitf("scene construction failed: %v", err)
	}
}
