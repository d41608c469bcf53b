package camera

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCamera_Target(t *testing.T) {
	c := New(100, 80, 400, 200, 2)
	inf := math.Inf(1)

	tests := []struct {
		name        string
		x, y        float64
		left, right float64
		wantX       float64
		wantY       float64
	}{
		{"centered", 200, 100, math.Inf(-1), inf, 150, 60},
		{"level left edge", 10, 10, math.Inf(-1), inf, 0, 0},
		{"level right edge", 390, 190, math.Inf(-1), inf, 300, 120},
		{"room left edge", 170, 100, 160, 320, 160, 60},
		{"room right edge", 300, 100, 160, 320, 220, 60},
		{"room narrower than view", 180, 100, 160, 200, 160, 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := c.Target(tt.x, tt.y, tt.left, tt.right)
			assert.Equal(t, tt.wantX, x)
			assert.Equal(t, tt.wantY, y)
		})
	}
}

func TestCamera_Pan(t *testing.T) {
	c := New(100, 80, 400, 80, 1)
	c.Update(0.1, 50, 40, math.Inf(-1), 160)
	assert.Equal(t, 0.0, c.X)

	c.PanTo(160)
	assert.True(t, c.Panning())

	c.Update(0.5, 200, 40, 160, 320)
	assert.Greater(t, c.X, 0.0)
	assert.Less(t, c.X, 160.0)

	c.Update(0.5, 200, 40, 160, 320)
	assert.False(t, c.Panning())
	assert.InDelta(t, 160.0, c.X, 1e-3)

	// Following again inside the new room
	c.Update(0.1, 260, 40, 160, 320)
	assert.Equal(t, 210.0, c.X)
}

func TestCamera_PanWithoutDuration(t *testing.T) {
	c := New(100, 80, 400, 80, 0)
	c.PanTo(160)
	assert.False(t, c.Panning())
	assert.Equal(t, 160.0, c.X)
}
