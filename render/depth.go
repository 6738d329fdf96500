package render

import (
	"math"

	"github.com/lixenwraith/star-hauler/core"
)

// NullGlyph marks an unwritten cell
const NullGlyph rune = 0

// DepthBuffer is the per-frame z-buffer with glyph and color planes
// Single owner; reset at the start of every frame
type DepthBuffer struct {
	width  int
	height int
	depth  []float64
	glyph  []rune
	color  []core.RGB
}

// NewDepthBuffer allocates a cleared buffer
func NewDepthBuffer(width, height int) *DepthBuffer {
	b := &DepthBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts dimensions, reallocating only if capacity is insufficient
func (b *DepthBuffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(b.depth) < size {
		b.depth = make([]float64, size)
		b.glyph = make([]rune, size)
		b.color = make([]core.RGB, size)
	} else {
		b.depth = b.depth[:size]
		b.glyph = b.glyph[:size]
		b.color = b.color[:size]
	}
	b.width = width
	b.height = height
	b.Reset()
}

// Reset clears every cell to +Inf depth and null glyph using exponential copy
func (b *DepthBuffer) Reset() {
	if len(b.depth) == 0 {
		return
	}
	b.depth[0] = math.Inf(1)
	b.glyph[0] = NullGlyph
	b.color[0] = core.RGBBlack
	for filled := 1; filled < len(b.depth); filled *= 2 {
		copy(b.depth[filled:], b.depth[:filled])
		copy(b.glyph[filled:], b.glyph[:filled])
		copy(b.color[filled:], b.color[:filled])
	}
}

func (b *DepthBuffer) Width() int  { return b.width }
func (b *DepthBuffer) Height() int { return b.height }

// inBounds returns true if in grid bounds
func (b *DepthBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Set writes glyph and color when z is strictly nearer than the stored depth
// Out-of-bounds and NaN depths are dropped; returns whether the cell changed
func (b *DepthBuffer) Set(x, y int, z float64, g rune, c core.RGB) bool {
	if !b.inBounds(x, y) {
		return false
	}
	idx := y*b.width + x
	if !(z < b.depth[idx]) {
		return false
	}
	b.depth[idx] = z
	b.glyph[idx] = g
	b.color[idx] = c
	return true
}

// At reads a cell; ok is false out of bounds
func (b *DepthBuffer) At(x, y int) (z float64, g rune, c core.RGB, ok bool) {
	if !b.inBounds(x, y) {
		return math.Inf(1), NullGlyph, core.RGBBlack, false
	}
	idx := y*b.width + x
	return b.depth[idx], b.glyph[idx], b.color[idx], true
}

// Depth returns the stored depth, +Inf out of bounds
func (b *DepthBuffer) Depth(x, y int) float64 {
	z, _, _, _ := b.At(x, y)
	return z
}

// Glyph returns the stored glyph, NullGlyph out of bounds
func (b *DepthBuffer) Glyph(x, y int) rune {
	_, g, _, _ := b.At(x, y)
	return g
}

// Color returns the stored color, black out of bounds
func (b *DepthBuffer) Color(x, y int) core.RGB {
	_, _, c, _ := b.At(x, y)
	return c
}

// Overlay is a full-frame tint layered over the rasterized scene
type Overlay struct {
	Color core.RGB
	Alpha float64
}

// Flush writes every non-null cell to the surface, tinted by overlays in
// order; null cells are left as background
func (b *DepthBuffer) Flush(s Surface, overlays ...Overlay) {
	if bd, ok := s.(Backdrop); ok {
		bg := core.RGBBlack
		for _, o := range overlays {
			bg = bg.Blend(o.Color, o.Alpha)
		}
		bd.SetBackdrop(bg)
	}

	for y := 0; y < b.height; y++ {
		row := y * b.width
		for x := 0; x < b.width; x++ {
			g := b.glyph[row+x]
			if g == NullGlyph {
				continue
			}
			c := b.color[row+x]
			for _, o := range overlays {
				c = c.Blend(o.Color, o.Alpha)
			}
			s.SetCell(x, y, g, c)
		}
	}
}
