package config

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRGB(t *testing.T) {
	assert.Equal(t, color.RGBA{R: 0xA2, G: 0x2C, B: 0x29, A: 0xFF}, RGB(Red))
	assert.Equal(t, color.RGBA{R: 0xFF, G: 0x00, B: 0xFF, A: 0xFF}, RGB(Magenta))
	assert.Equal(t, color.RGBA{A: 0xFF}, RGB(Void))
}

func TestRenderTPS(t *testing.T) {
	assert.Equal(t, 62, Render.TPS())
	assert.Equal(t, 60, RenderConfig{}.TPS())
}

func TestEveryActionIsBound(t *testing.T) {
	for id := ActionNone + 1; id < ActionCount; id++ {
		binding, ok := Input.Bindings[id]
		if assert.True(t, ok, "action %d has no binding", id) {
			assert.NotEmpty(t, binding.Keys)
		}
	}
}
