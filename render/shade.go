package render

import (
	"math"

	"github.com/lixenwraith/star-hauler/vmath"
)

// shadeRamp orders glyphs by visual density
var shadeRamp = []rune(".:-=+*#%@")

// Intensity is the Lambert term of a face normal against the light travel
// direction, floored at ambient; zero light yields full intensity
func Intensity(normal, light vmath.Vec3, ambient float64) float64 {
	if vmath.V3IsZero(light) {
		return 1
	}
	lambert := math.Max(0, -vmath.V3Dot(vmath.V3Normalize(normal), vmath.V3Normalize(light)))
	return ambient + (1-ambient)*lambert
}

// ShadeGlyph maps intensity in [0,1] to a density glyph
func ShadeGlyph(intensity float64) rune {
	if math.IsNaN(intensity) || intensity <= 0 {
		return shadeRamp[0]
	}
	if intensity >= 1 {
		return shadeRamp[len(shadeRamp)-1]
	}
	return shadeRamp[int(intensity*float64(len(shadeRamp)))]
}

// LineGlyph picks a line character for a screen-space direction
// dy grows downward; cellAspect stretches rows so the visual angle is used
func LineGlyph(dx, dy, cellAspect float64) rune {
	if cellAspect <= 0 {
		cellAspect = 1
	}
	angle := math.Atan2(-dy*cellAspect, dx)
	if angle < 0 {
		angle += math.Pi
	}
	// Four buckets of π/4 centred on 0, π/4, π/2, 3π/4
	switch int((angle + math.Pi/8) / (math.Pi / 4)) {
	case 1:
		return '/'
	case 2:
		return '|'
	case 3:
		return '\\'
	default:
		return '-'
	}
}
