package render

import (
	"strings"

	"github.com/lixenwraith/star-hauler/core"
)

// Surface is the display collaborator receiving one frame of cell writes
type Surface interface {
	Size() (width, height int)
	SetCell(x, y int, glyph rune, fg core.RGB)
}

// Backdrop is optionally implemented by surfaces that can tint the
// background; called once per flush before any cell write
type Backdrop interface {
	SetBackdrop(bg core.RGB)
}

// Grid is an in-memory surface for headless runs and tests
type Grid struct {
	width, height int
	glyphs        []rune
	colors        []core.RGB
	Background    core.RGB
}

// NewGrid creates a blank grid of spaces
func NewGrid(width, height int) *Grid {
	g := &Grid{
		width:  width,
		height: height,
		glyphs: make([]rune, width*height),
		colors: make([]core.RGB, width*height),
	}
	g.Clear()
	return g
}

func (g *Grid) Size() (int, int) { return g.width, g.height }

func (g *Grid) SetCell(x, y int, glyph rune, fg core.RGB) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return
	}
	g.glyphs[y*g.width+x] = glyph
	g.colors[y*g.width+x] = fg
}

func (g *Grid) SetBackdrop(bg core.RGB) {
	g.Background = bg
}

// Clear resets every cell to a blank space
func (g *Grid) Clear() {
	for i := range g.glyphs {
		g.glyphs[i] = ' '
		g.colors[i] = core.RGBBlack
	}
}

// Cell returns the glyph and color at (x, y), space out of bounds
func (g *Grid) Cell(x, y int) (rune, core.RGB) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return ' ', core.RGBBlack
	}
	return g.glyphs[y*g.width+x], g.colors[y*g.width+x]
}

// Count returns the number of cells holding glyph
func (g *Grid) Count(glyph rune) int {
	n := 0
	for _, r := range g.glyphs {
		if r == glyph {
			n++
		}
	}
	return n
}

// String renders rows separated by newlines
func (g *Grid) String() string {
	var sb strings.Builder
	for y := 0; y < g.height; y++ {
		sb.WriteString(string(g.glyphs[y*g.width : (y+1)*g.width]))
		sb.WriteByte('\n')
	}
	return sb.String()
}
