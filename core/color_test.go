package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/colornames"
)

func TestBlend(t *testing.T) {
	tests := []struct {
		name  string
		alpha float64
		want  RGB
	}{
		{"transparent", 0, RGB{100, 100, 100}},
		{"negative clamps", -1, RGB{100, 100, 100}},
		{"opaque", 1, RGB{200, 0, 50}},
		{"half", 0.5, RGB{150, 50, 75}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RGB{100, 100, 100}.Blend(RGB{200, 0, 50}, tt.alpha)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScale(t *testing.T) {
	assert.Equal(t, RGBBlack, RGB{10, 20, 30}.Scale(0))
	assert.Equal(t, RGB{10, 20, 30}, RGB{10, 20, 30}.Scale(2))
	assert.Equal(t, RGB{5, 10, 15}, RGB{10, 20, 30}.Scale(0.5))
}

func TestFromColor(t *testing.T) {
	assert.Equal(t, RGB{255, 165, 0}, FromColor(colornames.Orange))
}
