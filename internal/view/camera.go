package view

import "gioui.org/io/pointer"

// Camera manages the board view transform (pan and zoom).
type Camera struct {
	OffsetX float32 // Pan offset in screen pixels
	OffsetY float32
	Zoom    float32 // Zoom level (1.0 = 100%)

	dragging bool
	lastX    float32
	lastY    float32
}

const defaultOffset = 40

// NewCamera creates a new camera with default settings.
func NewCamera() *Camera {
	return &Camera{OffsetX: defaultOffset, OffsetY: defaultOffset, Zoom: 1.0}
}

// Reset resets camera to the default view.
func (c *Camera) Reset() {
	c.OffsetX = defaultOffset
	c.OffsetY = defaultOffset
	c.Zoom = 1.0
}

// WorldToScreen converts board-pixel coordinates to screen coordinates.
func (c *Camera) WorldToScreen(worldX, worldY float32) (screenX, screenY float32) {
	screenX = worldX*c.Zoom + c.OffsetX
	screenY = worldY*c.Zoom + c.OffsetY
	return
}

// ScreenToWorld converts screen coordinates to board-pixel coordinates.
func (c *Camera) ScreenToWorld(screenX, screenY float32) (worldX, worldY float32) {
	worldX = (screenX - c.OffsetX) / c.Zoom
	worldY = (screenY - c.OffsetY) / c.Zoom
	return
}

// HandleEvent processes pointer events: dragging with the secondary or
// tertiary button pans, scrolling zooms centered on the pointer.
func (c *Camera) HandleEvent(ev pointer.Event) {
	switch ev.Kind {
	case pointer.Press:
		if ev.Buttons.Contain(pointer.ButtonSecondary) || ev.Buttons.Contain(pointer.ButtonTertiary) {
			c.dragging = true
		}
		c.lastX = ev.Position.X
		c.lastY = ev.Position.Y

	case pointer.Drag:
		if c.dragging {
			c.OffsetX += ev.Position.X - c.lastX
			c.OffsetY += ev.Position.Y - c.lastY
		}
		c.lastX = ev.Position.X
		c.lastY = ev.Position.Y

	case pointer.Release:
		c.dragging = false

	case pointer.Scroll:
		if ev.Scroll.Y == 0 {
			return
		}
		worldX, worldY := c.ScreenToWorld(ev.Position.X, ev.Position.Y)

		zoomFactor := float32(1.1)
		if ev.Scroll.Y > 0 {
			c.Zoom /= zoomFactor
		} else {
			c.Zoom *= zoomFactor
		}
		if c.Zoom < 0.1 {
			c.Zoom = 0.1
		}
		if c.Zoom > 10 {
			c.Zoom = 10
		}

		// Keep the board point under the pointer fixed while zooming.
		newScreenX, newScreenY := c.WorldToScreen(worldX, worldY)
		c.OffsetX += ev.Position.X - newScreenX
		c.OffsetY += ev.Position.Y - newScreenY
	}
}
