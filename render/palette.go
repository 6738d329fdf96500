package render

import (
	"strings"

	"golang.org/x/image/colornames"

	"github.com/lixenwraith/star-hauler/component"
	"github.com/lixenwraith/star-hauler/core"
)

// Scene colors
var (
	ColorStarfield = core.FromColor(colornames.Lightgray)
	ColorDust      = core.FromColor(colornames.Slategray)
	ColorShip      = core.FromColor(colornames.Gainsboro)
	ColorStation   = core.FromColor(colornames.Lightsteelblue)
	ColorBoost     = core.FromColor(colornames.Deepskyblue)
	ColorDamage    = core.FromColor(colornames.Red)
	ColorDeathRed  = core.FromColor(colornames.Darkred)
)

// starColors keys spectral class letters
var starColors = map[byte]core.RGB{
	'O': core.FromColor(colornames.Lightskyblue),
	'B': core.FromColor(colornames.Lightsteelblue),
	'A': core.FromColor(colornames.White),
	'F': core.FromColor(colornames.Lightyellow),
	'G': core.FromColor(colornames.Gold),
	'K': core.FromColor(colornames.Orange),
	'M': core.FromColor(colornames.Orangered),
}

var planetColors = map[string]core.RGB{
	"rocky":  core.FromColor(colornames.Peru),
	"desert": core.FromColor(colornames.Burlywood),
	"gas":    core.FromColor(colornames.Sandybrown),
	"ice":    core.FromColor(colornames.Paleturquoise),
	"ocean":  core.FromColor(colornames.Steelblue),
	"lava":   core.FromColor(colornames.Orangered),
	"jungle": core.FromColor(colornames.Olivedrab),
}

var (
	defaultStar   = core.FromColor(colornames.Yellow)
	defaultPlanet = core.FromColor(colornames.Slategray)
	moonColor     = core.FromColor(colornames.Silver)
	beltColor     = core.FromColor(colornames.Darkkhaki)
)

// BodyColor resolves a display color from body kind and type
func BodyColor(b *component.CelestialBody) core.RGB {
	switch b.Kind {
	case component.KindStar:
		if b.Type != "" {
			if c, ok := starColors[strings.ToUpper(b.Type)[0]]; ok {
				return c
			}
		}
		return defaultStar
	case component.KindPlanet:
		if c, ok := planetColors[strings.ToLower(b.Type)]; ok {
			return c
		}
		return defaultPlanet
	case component.KindMoon:
		return moonColor
	case component.KindBelt:
		return beltColor
	case component.KindStation:
		return ColorStation
	}
	return defaultPlanet
}

// BodyGlyph returns the fill glyph for a body kind
func BodyGlyph(kind component.BodyKind) rune {
	switch kind {
	case component.KindStar:
		return '@'
	case component.KindBelt:
		return ':'
	case component.KindStation:
		return '#'
	}
	return GlyphBody
}
