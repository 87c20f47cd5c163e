// Package viewport maintains the pan/zoom state of a graph view.
//
// Scale and translation are clamped after every operation, so the controller
// can never be observed in an out-of-bounds state. The controller is handed
// an explicit container size by its owner; it performs no global lookups.
package viewport

import "docmap/internal/domain"

const (
	// MinScale and MaxScale bound the zoom level
	MinScale = 0.5
	MaxScale = 2.0

	// zoomStep is the per-step zoom factor
	zoomStep = 1.2

	// PanLimit bounds the translation on each axis, in layout units. The
	// effective range is PanLimit x scale so panning room grows with zoom.
	PanLimit = 200.0
)

// Controller holds the transform applied on top of layout coordinates
type Controller struct {
	scale      float64
	translateX float64
	translateY float64

	dragging   bool
	dragStartX float64
	dragStartY float64
	originX    float64
	originY    float64
}

// New creates a controller at identity transform
func New() *Controller {
	return &Controller{scale: 1}
}

// Transform returns the current render transform
func (c *Controller) Transform() domain.ViewportTransform {
	return domain.ViewportTransform{
		Scale:      c.scale,
		TranslateX: c.translateX,
		TranslateY: c.translateY,
	}
}

// Scale returns the current zoom level
func (c *Controller) Scale() float64 {
	return c.scale
}

// ZoomIn zooms one step in
func (c *Controller) ZoomIn() {
	c.setScale(c.scale * zoomStep)
}

// ZoomOut zooms one step out
func (c *Controller) ZoomOut() {
	c.setScale(c.scale / zoomStep)
}

// Wheel maps a wheel delta to a zoom step: a positive delta (scrolling down)
// zooms out. The host only forwards wheel events that happened over the graph
// container, so page scrolling elsewhere is untouched.
func (c *Controller) Wheel(deltaY float64) {
	if deltaY > 0 {
		c.ZoomOut()
		return
	}
	c.ZoomIn()
}

// Reset restores the identity transform and cancels any drag
func (c *Controller) Reset() {
	c.scale = 1
	c.translateX = 0
	c.translateY = 0
	c.dragging = false
}

// DragStart begins a pan gesture at the given pointer position
func (c *Controller) DragStart(x, y float64) {
	c.dragging = true
	c.dragStartX = x
	c.dragStartY = y
	c.originX = c.translateX
	c.originY = c.translateY
}

// DragMove pans by the pointer delta since DragStart, clamped each call.
// Ignored when no drag is active.
func (c *Controller) DragMove(x, y float64) {
	if !c.dragging {
		return
	}
	c.translateX = c.clampPan(c.originX + x - c.dragStartX)
	c.translateY = c.clampPan(c.originY + y - c.dragStartY)
}

// DragEnd finishes the pan gesture
func (c *Controller) DragEnd() {
	c.dragging = false
}

// Dragging reports whether a pan gesture is in progress
func (c *Controller) Dragging() bool {
	return c.dragging
}

func (c *Controller) setScale(scale float64) {
	if scale < MinScale {
		scale = MinScale
	}
	if scale > MaxScale {
		scale = MaxScale
	}
	c.scale = scale

	// A zoom-out shrinks the pan range; re-clamp so the invariant holds
	// immediately, not on the next drag.
	c.translateX = c.clampPan(c.translateX)
	c.translateY = c.clampPan(c.translateY)
}

func (c *Controller) clampPan(v float64) float64 {
	limit := PanLimit * c.scale
	if v > limit {
		return limit
	}
	if v < -limit {
		return -limit
	}
	return v
}
