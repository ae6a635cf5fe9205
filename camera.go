package onscreen

import "math"

// Camera maps between world space and a screen-space viewport.
type Camera struct {
	// X and Y are the world-space position the camera centers on.
	X, Y float64
	// Zoom is the scale factor (1.0 = no zoom, >1 = zoom in, <1 = zoom out).
	Zoom float64
	// Rotation is the camera rotation in radians (clockwise).
	Rotation float64
	// Viewport is the screen-space rectangle this camera renders into.
	Viewport Rect

	view    affine
	invView affine
	dirty   bool
}

// NewCamera creates a camera centered on the middle of viewport, so that
// screen and world coordinates coincide until the camera is moved or zoomed.
func NewCamera(viewport Rect) *Camera {
	return &Camera{
		X:        viewport.X + viewport.Width/2,
		Y:        viewport.Y + viewport.Height/2,
		Zoom:     1.0,
		Viewport: viewport,
		dirty:    true,
	}
}

// MarkDirty forces a recomputation of the view matrix. Call it after writing
// X, Y, Zoom, Rotation, or Viewport directly.
func (c *Camera) MarkDirty() {
	c.dirty = true
}

// viewMatrix = Translate(viewport center) * Scale(zoom) * Rotate(-rotation) * Translate(-X, -Y)
func (c *Camera) viewMatrix() affine {
	if !c.dirty {
		return c.view
	}
	c.dirty = false

	cx := c.Viewport.X + c.Viewport.Width/2
	cy := c.Viewport.Y + c.Viewport.Height/2
	sin, cos := math.Sincos(-c.Rotation)
	z := c.Zoom

	c.view = affine{
		z * cos, z * sin,
		-z * sin, z * cos,
		cx + z*(-cos*c.X+sin*c.Y),
		cy + z*(-sin*c.X-cos*c.Y),
	}
	c.invView, _ = c.view.invert()
	return c.view
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(world Vec2) Vec2 {
	return c.viewMatrix().apply(world)
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(screen Vec2) Vec2 {
	c.viewMatrix()
	return c.invView.apply(screen)
}
