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

// NewPrimitivesScene lines up every shape variant on a checkered floor: a
// cube, a capped cylinder, a cone and a sphere, each with a different
// pattern.
func NewPrimitivesScene(width, height int) *Scene {
	w := world.New()
	w.AddLight(lights.NewPointLight(core.NewPoint(-8, 10, -10), core.White))

	floor := geometry.NewPlane()
	floorMat := material.NewMaterial()
	floorMat.Pattern = material.NewCheckersPattern(
		core.NewColor(0.9, 0.9, 0.9), core.NewColor(0.3, 0.3, 0.35))
	floorMat.Specular = 0.0
	floor.SetMaterial(floorMat)
	w.AddObject(floor)

	cube := geometry.NewCube()
	must(cube.SetTransform(
		core.Translation(-3, 1, 1).Mul(core.RotationY(math.Pi / 5))))
	cubeMat := material.NewMaterial()
	cubeMat.Color = core.NewColor(0.8, 0.3, 0.3)
	cubeMat.Specular = 0.4
	cube.SetMaterial(cubeMat)
	w.AddObject(cube)

	cylinder := geometry.NewCylinder()
	cylinder.Minimum = 0
	cylinder.Maximum = 2
	cylinder.Closed = true
	must(cylinder.SetTransform(
		core.Translation(-0.5, 0, 1).Mul(core.Scaling(0.6, 1, 0.6))))
	cylMat := material.NewMaterial()
	cylMat.Pattern = material.NewStripePattern(
		core.NewColor(0.2, 0.5, 0.8), core.NewColor(0.1, 0.2, 0.4))
	must(cylMat.Pattern.SetTransform(core.Scaling(0.3, 0.3, 0.3)))
	cylinder.SetMaterial(cylMat)
	w.AddObject(cylinder)

	cone := geometry.NewCone()
	cone.Minimum = -1
	cone.Maximum = 0
	cone.Closed = true
	must(cone.SetTransform(
		core.Translation(1.5, 1, 0).Mul(core.Scaling(0.8, 1, 0.8))))
	coneMat := material.NewMaterial()
	coneMat.Color = core.NewColor(0.9, 0.7, 0.2)
	coneMat.Specular = 0.6
	cone.SetMaterial(coneMat)
	w.AddObject(cone)

	sphere := geometry.NewSphere()
	must(sphere.SetTransform(
		core.Translation(3.2, 0.75, 0.5).Mul(core.Scaling(0.75, 0.75, 0.75))))
	sphereMat := material.NewMaterial()
	sphereMat.Pattern = material.NewGradientPattern(
		core.NewColor(0.3, 0.9, 0.4), core.NewColor(0.1, 0.3, 0.6))
	must(sphereMat.Pattern.SetTransform(
		core.Translation(1, 0, 0).Mul(core.Scaling(2, 1, 1))))
	sphereMat.Reflective = 0.15
	sphere.SetMaterial(sphereMat)
	w.AddObject(sphere)

	camera := renderer.NewCamera(width, height, math.Pi/3)
	must(camera.SetTransform(core.ViewTransform(
		core.NewPoint(0, 2.5, -7),
		core.NewPoint(0, 1, 0),
		core.NewVector(0, 1, 0))))

	return &Scene{World: w, Camera: camera}
}
