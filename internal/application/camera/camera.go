// Package camera keeps the view inside the current room and pans between
// rooms with a tween.
package camera

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

type Camera struct {
	X, Y float64

	viewW, viewH   float64
	levelW, levelH float64
	duration       float32

	pan *gween.Tween
}

// New creates a camera for a view of viewW×viewH over a level of
// levelW×levelH world units. Room pans take duration seconds.
func New(viewW, viewH, levelW, levelH, duration float64) *Camera {
	return &Camera{
		viewW:    viewW,
		viewH:    viewH,
		levelW:   levelW,
		levelH:   levelH,
		duration: float32(duration),
	}
}

// Target returns the camera position that keeps (x, y) centered while the
// view stays inside [left, right] and the level
func (c *Camera) Target(x, y, left, right float64) (float64, float64) {
	minX := math.Max(left, 0)
	maxX := math.Min(right, c.levelW) - c.viewW
	tx := clamp(x-c.viewW/2, minX, maxX)
	ty := clamp(y-c.viewH/2, 0, c.levelH-c.viewH)
	return tx, ty
}

// PanTo starts a horizontal pan from the current position to x.
// A zero duration jumps straight there.
func (c *Camera) PanTo(x float64) {
	if c.duration <= 0 {
		c.X = x
		c.pan = nil
		return
	}
	c.pan = gween.New(float32(c.X), float32(x), c.duration, ease.InOutQuad)
}

// Panning reports whether a room pan is in progress
func (c *Camera) Panning() bool { return c.pan != nil }

// Update advances a pan by dt seconds, or follows (x, y) inside the room
// when no pan is running
func (c *Camera) Update(dt, x, y, left, right float64) {
	tx, ty := c.Target(x, y, left, right)
	c.Y = ty

	if c.pan == nil {
		c.X = tx
		return
	}
	cur, done := c.pan.Update(float32(dt))
	c.X = float64(cur)
	if done {
		c.pan = nil
	}
}

// clamp keeps v in [lo, hi]; when the range is empty lo wins
func clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
