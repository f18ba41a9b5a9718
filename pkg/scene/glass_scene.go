package scene

import (
	"math"

	"github.com/tmay/go-whitted-raytracer/pkg/core"
	"github.com/tmay/go-whitted-raytracer/pkg/geometry"
	"github.com/tmay/go-whitted-raytracer/pkg/lights"
	"github.com/tmay/go-whitted-raytracer/pkg/material"
	"github.com/tmay/go-whitted-raytracer/pkg/renderer"
	"github.com/tmay/go-whitted-raytracer/pkg/world"
)

// NewGlassScene builds a scene that exercises the full secondary-ray
// pipeline: a hollow glass sphere in front of a mirror wall over a ring
// pattern floor. Reflection, refraction and the Fresnel blend all
// contribute to the image.
func NewGlassScene(width, height int) *Scene {
	w := world.New()
	w.AddLight(lights.NewPointLight(core.NewPoint(2, 10, -5), core.NewColor(0.9, 0.9, 0.9)))

	floor := geometry.NewPlane()
	floorMat := material.NewMaterial()
	floorMat.Pattern = material.NewRingPattern(
		core.NewColor(0.9, 0.9, 0.9), core.NewColor(0.15, 0.15, 0.15))
	floorMat.Ambient = 0.2
	floorMat.Specular = 0.0
	floor.SetMaterial(floorMat)
	w.AddObject(floor)

	mirror := geometry.NewPlane()
	must(mirror.SetTransform(
		core.Translation(0, 0, 6).Mul(core.RotationX(math.Pi / 2))))
	mirrorMat := material.NewMaterial()
	mirrorMat.Color = core.NewColor(0.05, 0.05, 0.05)
	mirrorMat.Diffuse = 0.1
	mirrorMat.Specular = 1.0
	mirrorMat.Shininess = 300
	mirrorMat.Reflective = 0.9
	mirror.SetMaterial(mirrorMat)
	w.AddObject(mirror)

	// outer glass shell
	outer := geometry.NewGlassSphere()
	must(outer.SetTransform(core.Translation(0, 1, 0)))
	outerMat := outer.Material()
	outerMat.Color = core.NewColor(0.05, 0.05, 0.08)
	outerMat.Diffuse = 0.05
	outerMat.Ambient = 0.05
	outerMat.Specular = 0.9
	outerMat.Shininess = 300
	outerMat.Reflective = 0.9
	w.AddObject(outer)

	// air pocket inside the shell; refractive index 1 makes it hollow
	inner := geometry.NewSphere()
	must(inner.SetTransform(
		core.Translation(0, 1, 0).Mul(core.Scaling(0.5, 0.5, 0.5))))
	innerMat := material.NewMaterial()
	innerMat.Color = core.White
	innerMat.Diffuse = 0.0
	innerMat.Ambient = 0.0
	innerMat.Specular = 0.9
	innerMat.Shininess = 300
	innerMat.Transparency = 0.9
	innerMat.Reflective = 0.9
	innerMat.RefractiveIndex = 1.0000034
	inner.SetMaterial(innerMat)
	w.AddObject(inner)

	camera := renderer.NewCamera(width, height, math.Pi/3)
	must(camera.SetTransform(core.ViewTransform(
		core.NewPoint(-2.6, 1.5, -3.9),
		core.NewPoint(-0.6, 1, -0.8),
		core.NewVector(0, 1, 0))))

	return &Scene{World: w, Camera: camera}
}
