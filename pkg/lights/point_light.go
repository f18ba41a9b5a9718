package lights

import "github.com/tmay/go-whitted-raytracer/pkg/core"

// PointLight is a light source with no size, existing at a single point in
// space. Shadows cast from it are hard-edged.
type PointLight struct {
	Position  core.Vec4
	Intensity core.Color
}

// NewPointLight creates a new point light
func NewPointLight(position core.Vec4, intensity core.Color) PointLight {
	return PointLight{Position: position, Intensity: intensity}
}
