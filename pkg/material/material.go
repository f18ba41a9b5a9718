package material

import (
	"math"

	"github.com/tmay/go-whitted-raytracer/pkg/core"
	"github.com/tmay/go-whitted-raytracer/pkg/lights"
)

// Material holds the Phong reflectance coefficients of a surface plus the
// secondary-ray properties (reflectivity, transparency, refractive index).
// It is a value type: assigning it to a shape copies it.
type Material struct {
	Color           core.Color
	Ambient         float64
	Diffuse         float64
	Specular        float64
	Shininess       float64
	Reflective      float64
	Transparency    float64
	RefractiveIndex float64
	Pattern         Pattern
}

// NewMaterial creates a material with the default coefficients: matte
// white, no reflection, fully opaque
func NewMaterial() Material {
	return Material{
		Color:           core.White,
		Ambient:         0.1,
		Diffuse:         0.9,
		Specular:        0.9,
		Shininess:       200.0,
		Reflective:      0.0,
		Transparency:    0.0,
		RefractiveIndex: 1.0,
	}
}

// NewGlassMaterial creates a transparent material with the refractive
// index of glass
func NewGlassMaterial() Material {
	m := NewMaterial()
	m.Transparency = 1.0
	m.RefractiveIndex = 1.5
	return m
}

// Lighting evaluates the Phong model for a single light. The object is
// needed only to map the point into pattern space when a pattern is set.
// The result is the unclamped sum of the ambient, diffuse and specular
// terms; in shadow only the ambient term contributes.
func (m Material) Lighting(object Object, light lights.PointLight, point, eyeV, normalV core.Vec4, inShadow bool) core.Color {
	baseColor := m.Color
	if m.Pattern != nil {
		baseColor = PatternAt(m.Pattern, object, point)
	}

	// surface color modulated by the light's intensity
	effectiveColor := baseColor.Hadamard(light.Intensity)

	ambient := effectiveColor.Scale(m.Ambient)
	if inShadow {
		return ambient
	}

	lightV := light.Position.Sub(point).Normalize()
	lightDotNormal := lightV.Dot(normalV)
	if lightDotNormal < 0 {
		// light is behind the surface
		return ambient
	}

	diffuse := effectiveColor.Scale(m.Diffuse * lightDotNormal)

	specular := core.Black
	reflectV := lightV.Negate().Reflect(normalV)
	reflectDotEye := reflectV.Dot(eyeV)
	if reflectDotEye > 0 {
		factor := math.Pow(reflectDotEye, m.Shininess)
		specular = light.Intensity.Scale(m.Specular * factor)
	}

	return ambient.Add(diffuse).Add(specular)
}
