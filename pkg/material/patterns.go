package material

import (
	"math"

	"github.com/tmay/go-whitted-raytracer/pkg/core"
)

// Object is the view of a shape that patterns need: the mapping from world
// space into the shape's object space. Shapes in pkg/geometry satisfy it.
type Object interface {
	WorldToObject(p core.Vec4) core.Vec4
}

// Pattern is a procedural coloring evaluated in pattern-local space. Each
// pattern owns a transform independent of the shape it is applied to.
type Pattern interface {
	// At returns the color at a point already in pattern space
	At(p core.Vec4) core.Color
	// SetTransform replaces the pattern transform, recomputing the cached
	// inverse. A non-invertible transform is a configuration error.
	SetTransform(m core.Mat4) error
	// Transform returns the pattern-to-object transform
	Transform() core.Mat4
	// InverseTransform returns the cached object-to-pattern transform
	InverseTransform() core.Mat4
}

// PatternAt evaluates a pattern at a world-space point on a shape,
// composing world->object (shape inverse) then object->pattern (pattern
// inverse) before delegating to the pattern function.
func PatternAt(pattern Pattern, object Object, worldPoint core.Vec4) core.Color {
	objectPoint := object.WorldToObject(worldPoint)
	patternPoint := pattern.InverseTransform().MulVec(objectPoint)
	return pattern.At(patternPoint)
}

// basePattern carries the transform pair shared by every pattern variant
type basePattern struct {
	transform core.Mat4
	inverse   core.Mat4
}

func newBasePattern() basePattern {
	return basePattern{transform: core.Identity(), inverse: core.Identity()}
}

func (b *basePattern) SetTransform(m core.Mat4) error {
	inv, err := m.Inverse()
	if err != nil {
		return err
	}
	b.transform = m
	b.inverse = inv
	return nil
}

func (b *basePattern) Transform() core.Mat4 {
	return b.transform
}

func (b *basePattern) InverseTransform() core.Mat4 {
	return b.inverse
}

// StripePattern alternates two colors in unit-wide bands along x
type StripePattern struct {
	basePattern
	A, B core.Color
}

// NewStripePattern creates a stripe pattern alternating a and b
func NewStripePattern(a, b core.Color) *StripePattern {
	return &StripePattern{basePattern: newBasePattern(), A: a, B: b}
}

// At returns color a when floor(x) is even, b otherwise
func (s *StripePattern) At(p core.Vec4) core.Color {
	if int(math.Floor(p.X))%2 == 0 {
		return s.A
	}
	return s.B
}

// GradientPattern blends linearly from a to b over the fractional part of x
type GradientPattern struct {
	basePattern
	A, B core.Color
}

// NewGradientPattern creates a gradient pattern from a to b
func NewGradientPattern(a, b core.Color) *GradientPattern {
	return &GradientPattern{basePattern: newBasePattern(), A: a, B: b}
}

// At linearly interpolates between the two colors by the fraction of x
func (g *GradientPattern) At(p core.Vec4) core.Color {
	distance := g.B.Sub(g.A)
	fraction := p.X - math.Floor(p.X)
	return g.A.Add(distance.Scale(fraction))
}

// RingPattern alternates two colors in concentric rings around the y axis
type RingPattern struct {
	basePattern
	A, B core.Color
}

// NewRingPattern creates a ring pattern alternating a and b
func NewRingPattern(a, b core.Color) *RingPattern {
	return &RingPattern{basePattern: newBasePattern(), A: a, B: b}
}

// At keys off the radial distance from the y axis in the xz plane
func (r *RingPattern) At(p core.Vec4) core.Color {
	if int(math.Floor(math.Sqrt(p.X*p.X+p.Z*p.Z)))%2 == 0 {
		return r.A
	}
	return r.B
}

// CheckersPattern tiles space with unit cubes of alternating color
type CheckersPattern struct {
	basePattern
	A, B core.Color
}

// NewCheckersPattern creates a 3D checker pattern alternating a and b
func NewCheckersPattern(a, b core.Color) *CheckersPattern {
	return &CheckersPattern{basePattern: newBasePattern(), A: a, B: b}
}

// At sums the floors of all three coordinates and keys off parity
func (c *CheckersPattern) At(p core.Vec4) core.Color {
	sum := math.Floor(p.X) + math.Floor(p.Y) + math.Floor(p.Z)
	if int(sum)%2 == 0 {
		return c.A
	}
	return c.B
}

// SolidPattern returns a single color everywhere. Useful as a building
// block in tests and scene construction.
type SolidPattern struct {
	basePattern
	C core.Color
}

// NewSolidPattern creates a solid-color pattern
func NewSolidPattern(c core.Color) *SolidPattern {
	return &SolidPattern{basePattern: newBasePattern(), C: c}
}

// At returns the color regardless of position
func (s *SolidPattern) At(core.Vec4) core.Color {
	return s.C
}
