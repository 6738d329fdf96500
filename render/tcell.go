package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/star-hauler/core"
)

// RGBToTcell converts RGB to tcell.Color
func RGBToTcell(rgb core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(rgb.R), int32(rgb.G), int32(rgb.B))
}

// TcellSurface adapts a tcell screen as a frame surface
// Show is left to the host so status lines can be drawn after flush
type TcellSurface struct {
	screen tcell.Screen
	bg     tcell.Color
}

// NewTcellSurface wraps an initialized screen
func NewTcellSurface(screen tcell.Screen) *TcellSurface {
	return &TcellSurface{screen: screen, bg: tcell.ColorBlack}
}

func (s *TcellSurface) Size() (int, int) {
	return s.screen.Size()
}

// SetBackdrop clears the screen to the tinted background
func (s *TcellSurface) SetBackdrop(bg core.RGB) {
	s.bg = RGBToTcell(bg)
	s.screen.Fill(' ', tcell.StyleDefault.Background(s.bg))
}

func (s *TcellSurface) SetCell(x, y int, glyph rune, fg core.RGB) {
	style := tcell.StyleDefault.Foreground(RGBToTcell(fg)).Background(s.bg)
	s.screen.SetContent(x, y, glyph, nil, style)
}

// DrawText writes a string starting at (x, y) over the current backdrop
func (s *TcellSurface) DrawText(x, y int, text string, fg core.RGB) {
	style := tcell.StyleDefault.Foreground(RGBToTcell(fg)).Background(s.bg)
	for _, r := range text {
		s.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
