package geometry

import (
	"fmt"

	"github.com/tmay/go-whitted-raytracer/pkg/core"
	"github.com/tmay/go-whitted-raytracer/pkg/material"
)

// Shape is a surface that can be intersected in its own object space. The
// world-space transform pair is shared by every variant; Intersect and
// NormalAt apply it before and after the local computation. Shape identity
// is pointer identity: two default spheres are distinct objects, which is
// what the refractive containment walk relies on.
type Shape interface {
	// LocalIntersect returns every intersection of a ray already in
	// object space, including negative and duplicate t values
	LocalIntersect(ray core.Ray) []Intersection
	// LocalNormalAt returns the surface normal at a point in object space
	LocalNormalAt(p core.Vec4) core.Vec4

	// SetTransform replaces the object-to-world transform, recomputing
	// the cached inverses. A non-invertible transform is a configuration
	// error and leaves the shape unchanged.
	SetTransform(m core.Mat4) error
	// Transform returns the object-to-world transform
	Transform() core.Mat4
	// InverseTransform returns the cached world-to-object transform
	InverseTransform() core.Mat4
	// InverseTransposeTransform returns the cached matrix that maps
	// object-space normals into world space
	InverseTransposeTransform() core.Mat4

	// Material returns a pointer to the shape's material so scene
	// construction can adjust it in place
	Material() *material.Material
	// SetMaterial replaces the shape's material
	SetMaterial(m material.Material)

	// WorldToObject maps a world-space point into object space. It also
	// satisfies material.Object for pattern evaluation.
	WorldToObject(p core.Vec4) core.Vec4
}

// baseShape carries the transform pair and material shared by every shape
// variant. Variants embed it and implement only the local-space contract.
type baseShape struct {
	transform        core.Mat4
	inverse          core.Mat4
	inverseTranspose core.Mat4
	material         material.Material
}

func newBaseShape() baseShape {
	return baseShape{
		transform:        core.Identity(),
		inverse:          core.Identity(),
		inverseTranspose: core.Identity(),
		material:         material.NewMaterial(),
	}
}

func (b *baseShape) SetTransform(m core.Mat4) error {
	inv, err := m.Inverse()
	if err != nil {
		return fmt.Errorf("setting shape transform: %w", err)
	}
	b.transform = m
	b.inverse = inv
	b.inverseTranspose = inv.Transpose()
	return nil
}

func (b *baseShape) Transform() core.Mat4 {
	return b.transform
}

func (b *baseShape) InverseTransform() core.Mat4 {
	return b.inverse
}

func (b *baseShape) InverseTransposeTransform() core.Mat4 {
	return b.inverseTranspose
}

func (b *baseShape) Material() *material.Material {
	return &b.material
}

func (b *baseShape) SetMaterial(m material.Material) {
	b.material = m
}

func (b *baseShape) WorldToObject(p core.Vec4) core.Vec4 {
	return b.inverse.MulVec(p)
}

// Intersect transforms a world-space ray into the shape's object space and
// delegates to the shape's local intersection routine
func Intersect(s Shape, worldRay core.Ray) []Intersection {
	localRay := worldRay.Transform(s.InverseTransform())
	return s.LocalIntersect(localRay)
}

// NormalAt computes the world-space surface normal at a world-space point.
// The local normal is mapped back through the inverse-transpose so that
// non-uniform scaling keeps normals perpendicular to the surface; the W
// component is zeroed before renormalizing because the transpose of a
// translation pollutes it.
func NormalAt(s Shape, worldPoint core.Vec4) core.Vec4 {
	localPoint := s.WorldToObject(worldPoint)
	localNormal := s.LocalNormalAt(localPoint)
	worldNormal := s.InverseTransposeTransform().MulVec(localNormal)
	worldNormal.W = 0
	return worldNormal.Normalize()
}
