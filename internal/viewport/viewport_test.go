package viewport

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZoomClamping(t *testing.T) {
	c := New()

	for i := 0; i < 50; i++ {
		c.ZoomIn()
	}
	assert.Equal(t, MaxScale, c.Scale())

	for i := 0; i < 50; i++ {
		c.ZoomOut()
	}
	assert.Equal(t, MinScale, c.Scale())
}

func TestZoomSteps(t *testing.T) {
	c := New()
	c.ZoomIn()
	assert.InDelta(t, 1.2, c.Scale(), 1e-9)
	c.ZoomOut()
	assert.InDelta(t, 1.0, c.Scale(), 1e-9)
}

func TestZoomSequenceStaysBounded(t *testing.T) {
	c := New()
	steps := []func(){c.ZoomIn, c.ZoomIn, c.ZoomOut, c.ZoomIn, c.ZoomIn, c.ZoomIn, c.ZoomOut, c.ZoomIn, c.ZoomIn}
	for _, step := range steps {
		step()
		require.GreaterOrEqual(t, c.Scale(), MinScale)
		require.LessOrEqual(t, c.Scale(), MaxScale)
	}
}

func TestWheel(t *testing.T) {
	c := New()
	c.Wheel(-53)
	assert.InDelta(t, 1.2, c.Scale(), 1e-9, "negative delta zooms in")
	c.Wheel(120)
	assert.InDelta(t, 1.0, c.Scale(), 1e-9, "positive delta zooms out")
}

func TestDragPan(t *testing.T) {
	c := New()
	c.DragStart(100, 100)
	c.DragMove(130, 80)
	c.DragEnd()

	tf := c.Transform()
	assert.Equal(t, 30.0, tf.TranslateX)
	assert.Equal(t, -20.0, tf.TranslateY)
}

func TestDragClamped(t *testing.T) {
	c := New()
	c.DragStart(0, 0)
	c.DragMove(10000, -10000)

	tf := c.Transform()
	assert.Equal(t, PanLimit*c.Scale(), tf.TranslateX)
	assert.Equal(t, -PanLimit*c.Scale(), tf.TranslateY)
}

func TestPanRangeGrowsWithZoom(t *testing.T) {
	c := New()
	c.ZoomIn() // 1.2
	c.DragStart(0, 0)
	c.DragMove(10000, 0)

	assert.InDelta(t, PanLimit*1.2, c.Transform().TranslateX, 1e-9)
}

func TestZoomOutReclampsTranslation(t *testing.T) {
	c := New()
	c.ZoomIn()
	c.ZoomIn() // 1.44
	c.DragStart(0, 0)
	c.DragMove(10000, 10000)
	c.DragEnd()

	c.ZoomOut()
	c.ZoomOut()
	c.ZoomOut()
	c.ZoomOut() // clamped at MinScale

	tf := c.Transform()
	assert.LessOrEqual(t, math.Abs(tf.TranslateX), PanLimit*c.Scale())
	assert.LessOrEqual(t, math.Abs(tf.TranslateY), PanLimit*c.Scale())
}

func TestMoveWithoutDragIsIgnored(t *testing.T) {
	c := New()
	c.DragMove(500, 500)
	assert.Equal(t, 0.0, c.Transform().TranslateX)
	assert.False(t, c.Dragging())
}

func TestReset(t *testing.T) {
	c := New()
	c.ZoomIn()
	c.DragStart(0, 0)
	c.DragMove(50, 50)

	c.Reset()

	tf := c.Transform()
	assert.Equal(t, 1.0, tf.Scale)
	assert.Equal(t, 0.0, tf.TranslateX)
	assert.Equal(t, 0.0, tf.TranslateY)
	assert.False(t, c.Dragging())
}
