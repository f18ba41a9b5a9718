package world

import (
	"math"

	"github.com/tmay/go-whitted-raytracer/pkg/core"
	"github.com/tmay/go-whitted-raytracer/pkg/geometry"
	"github.com/tmay/go-whitted-raytracer/pkg/lights"
	"github.com/tmay/go-whitted-raytracer/pkg/material"
)

// World is the collection of shapes and lights a ray is traced against.
// It is built once by scene construction and must be treated as read-only
// while a render is in flight; the renderer shares one World across all
// workers without synchronization.
type World struct {
	Objects []geometry.Shape
	Lights  []lights.PointLight
}

// New creates an empty world
func New() *World {
	return &World{}
}

// NewDefault creates the two-sphere reference world: one white point light
// and two concentric spheres, the outer green-tinted and the inner scaled
// by half
func NewDefault() *World {
	w := New()
	w.Lights = append(w.Lights, lights.NewPointLight(
		core.NewPoint(-10, 10, -10), core.White))

	outer := geometry.NewSphere()
	m := material.NewMaterial()
	m.Color = core.NewColor(0.8, 1.0, 0.6)
	m.Diffuse = 0.7
	m.Specular = 0.2
	outer.SetMaterial(m)
	w.AddObject(outer)

	inner := geometry.NewSphere()
	if err := inner.SetTransform(core.Scaling(0.5, 0.5, 0.5)); err != nil {
		panic(err) // identity-derived scaling is always invertible
	}
	w.AddObject(inner)
	return w
}

// AddObject appends a shape to the world
func (w *World) AddObject(s geometry.Shape) {
	w.Objects = append(w.Objects, s)
}

// AddLight appends a point light to the world
func (w *World) AddLight(l lights.PointLight) {
	w.Lights = append(w.Lights, l)
}

// Intersect tests the ray against every shape and returns all hits sorted
// by t. Equal t values keep insertion order.
func (w *World) Intersect(ray core.Ray) geometry.Intersections {
	var xs geometry.Intersections
	for _, obj := range w.Objects {
		xs = append(xs, geometry.Intersect(obj, ray)...)
	}
	xs.Sort()
	return xs
}

// ColorAt returns the color seen along the ray, recursing into reflection
// and refraction up to the given remaining depth. A ray that hits nothing
// is black.
func (w *World) ColorAt(ray core.Ray, remaining int) core.Color {
	xs := w.Intersect(ray)
	hit, ok := xs.Hit()
	if !ok {
		return core.Black
	}
	comps := geometry.PrepareComputations(hit, ray, xs)
	return w.ShadeHit(comps, remaining)
}

// ShadeHit combines direct illumination from every light with the
// reflected and refracted contributions. When the surface is both
// reflective and transparent the two secondary contributions are blended
// by the Schlick reflectance; otherwise they are simply summed.
func (w *World) ShadeHit(comps geometry.Computations, remaining int) core.Color {
	mat := comps.Object.Material()

	surface := core.Black
	for _, light := range w.Lights {
		shadowed := w.IsShadowed(comps.OverPoint, light)
		surface = surface.Add(mat.Lighting(
			comps.Object, light, comps.OverPoint, comps.EyeV, comps.NormalV, shadowed))
	}

	reflected := w.ReflectedColor(comps, remaining)
	refracted := w.RefractedColor(comps, remaining)

	if mat.Reflective > 0 && mat.Transparency > 0 {
		reflectance := geometry.Schlick(comps)
		return surface.
			Add(reflected.Scale(reflectance)).
			Add(refracted.Scale(1 - reflectance))
	}
	return surface.Add(reflected).Add(refracted)
}

// ReflectedColor traces the mirror bounce off the surface, scaled by the
// material's reflectivity. Depth exhaustion terminates parallel-mirror
// recursion.
func (w *World) ReflectedColor(comps geometry.Computations, remaining int) core.Color {
	if remaining <= 0 {
		return core.Black
	}
	reflective := comps.Object.Material().Reflective
	if reflective <= 0 {
		return core.Black
	}
	reflectRay := core.NewRay(comps.OverPoint, comps.ReflectV)
	return w.ColorAt(reflectRay, remaining-1).Scale(reflective)
}

// RefractedColor traces the ray transmitted through a transparent surface
// per Snell's law, scaled by the material's transparency. Total internal
// reflection contributes black.
func (w *World) RefractedColor(comps geometry.Computations, remaining int) core.Color {
	if remaining <= 0 {
		return core.Black
	}
	transparency := comps.Object.Material().Transparency
	if transparency <= 0 {
		return core.Black
	}

	nRatio := comps.N1 / comps.N2
	cosI := comps.EyeV.Dot(comps.NormalV)
	sin2t := nRatio * nRatio * (1 - cosI*cosI)
	if sin2t >= 1 {
		// total internal reflection
		return core.Black
	}

	cosT := math.Sqrt(1 - sin2t)
	direction := comps.NormalV.Scale(nRatio*cosI - cosT).
		Sub(comps.EyeV.Scale(nRatio))
	refractRay := core.NewRay(comps.UnderPoint, direction)
	return w.ColorAt(refractRay, remaining-1).Scale(transparency)
}

// IsShadowed reports whether any object blocks the segment between the
// point and the light. Only hits strictly closer than the light count.
func (w *World) IsShadowed(point core.Vec4, light lights.PointLight) bool {
	toLight := light.Position.Sub(point)
	distance := toLight.Magnitude()
	ray := core.NewRay(point, toLight.Normalize())

	xs := w.Intersect(ray)
	if hit, ok := xs.Hit(); ok && hit.T < distance {
		return true
	}
	return false
}
