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

// NewDefaultScene builds the classic three-spheres-on-a-floor scene: a
// checkered floor plane, one large reflective sphere flanked by two
// smaller ones, lit by a single point light.
func NewDefaultScene(width, height int) *Scene {
	w := world.New()
	w.AddLight(lights.NewPointLight(core.NewPoint(-10, 10, -10), core.White))

	floor := geometry.NewPlane()
	floorMat := material.NewMaterial()
	floorMat.Pattern = material.NewCheckersPattern(
		core.NewColor(0.85, 0.85, 0.85), core.NewColor(0.25, 0.25, 0.25))
	floorMat.Specular = 0.1
	floorMat.Reflective = 0.1
	floor.SetMaterial(floorMat)
	w.AddObject(floor)

	middle := geometry.NewSphere()
	must(middle.SetTransform(core.Translation(-0.5, 1, 0.5)))
	midMat := material.NewMaterial()
	midMat.Color = core.NewColor(0.1, 1, 0.5)
	midMat.Diffuse = 0.7
	midMat.Specular = 0.3
	midMat.Reflective = 0.2
	middle.SetMaterial(midMat)
	w.AddObject(middle)

	right := geometry.NewSphere()
	must(right.SetTransform(
		core.Translation(1.5, 0.5, -0.5).Mul(core.Scaling(0.5, 0.5, 0.5))))
	rightMat := material.NewMaterial()
	rightMat.Pattern = material.NewStripePattern(
		core.NewColor(0.5, 1, 0.1), core.NewColor(0.1, 0.4, 0.1))
	stripeScale := core.Scaling(0.25, 0.25, 0.25).Mul(core.RotationZ(math.Pi / 4))
	must(rightMat.Pattern.SetTransform(stripeScale))
	rightMat.Diffuse = 0.7
	rightMat.Specular = 0.3
	right.SetMaterial(rightMat)
	w.AddObject(right)

	left := geometry.NewSphere()
	must(left.SetTransform(
		core.Translation(-1.5, 0.33, -0.75).Mul(core.Scaling(0.33, 0.33, 0.33))))
	leftMat := material.NewMaterial()
	leftMat.Pattern = material.NewGradientPattern(
		core.NewColor(1, 0.8, 0.1), core.NewColor(0.9, 0.2, 0.1))
	leftMat.Diffuse = 0.7
	leftMat.Specular = 0.3
	left.SetMaterial(leftMat)
	w.AddObject(left)

	camera := renderer.NewCamera(width, height, math.Pi/3)
	must(camera.SetTransform(core.ViewTransform(
		core.NewPoint(0, 1.5, -5),
		core.NewPoint(0, 1, 0),
		core.NewVector(0, 1, 0))))

	return &Scene{World: w, Camera: camera}
}
