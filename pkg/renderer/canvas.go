package renderer

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/tmay/go-whitted-raytracer/pkg/core"
)

// Canvas is a row-major buffer of colors, one per pixel. Shading writes
// unclamped colors; clamping happens in the output conversions.
type Canvas struct {
	Width  int
	Height int
	pixels []core.Color
}

// NewCanvas creates a black canvas of the given dimensions
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		Width:  width,
		Height: height,
		pixels: make([]core.Color, width*height),
	}
}

// At returns the color at (x, y)
func (c *Canvas) At(x, y int) core.Color {
	return c.pixels[y*c.Width+x]
}

// Set writes the color at (x, y)
func (c *Canvas) Set(x, y int, col core.Color) {
	c.pixels[y*c.Width+x] = col
}

// RGBA converts the canvas to an image, clamping components to [0,1]
func (c *Canvas) RGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			p := c.At(x, y)
			img.Set(x, y, color.RGBA{
				R: channelByte(p.R),
				G: channelByte(p.G),
				B: channelByte(p.B),
				A: 255,
			})
		}
	}
	return img
}

// PPM serializes the canvas as a plain-text PPM image with a 255 channel
// range. Lines are wrapped at 70 columns as the format requires.
func (c *Canvas) PPM() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "P3\n%d %d\n255\n", c.Width, c.Height)

	for y := 0; y < c.Height; y++ {
		lineLen := 0
		for x := 0; x < c.Width; x++ {
			p := c.At(x, y)
			for _, ch := range [3]float64{p.R, p.G, p.B} {
				token := fmt.Sprintf("%d", channelByte(ch))
				switch {
				case lineLen == 0:
					sb.WriteString(token)
					lineLen = len(token)
				case lineLen+1+len(token) > 70:
					sb.WriteByte('\n')
					sb.WriteString(token)
					lineLen = len(token)
				default:
					sb.WriteByte(' ')
					sb.WriteString(token)
					lineLen += 1 + len(token)
				}
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// channelByte clamps a color component to [0,1] and scales to 0..255
func channelByte(v float64) uint8 {
	return uint8(math.Round(math.Min(1, math.Max(0, v)) * 255))
}
