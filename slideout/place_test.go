package slideout

import (
	"testing"

	"github.com/framegrace/texelslide/texelui/core"
	"github.com/stretchr/testify/assert"
)

func TestPlaceRelativeDocks(t *testing.T) {
	bounds := core.Rect{W: 100, H: 20}
	tests := []struct {
		dock    Side
		content core.Rect
		handle  core.Rect
	}{
		{SideRight, core.Rect{X: 70, W: 30, H: 20}, core.Rect{X: 70, W: 1, H: 20}},
		{SideLeft, core.Rect{W: 30, H: 20}, core.Rect{X: 29, W: 1, H: 20}},
		{SideTop, core.Rect{W: 100, H: 6}, core.Rect{Y: 5, W: 100, H: 1}},
		{SideBottom, core.Rect{Y: 14, W: 100, H: 6}, core.Rect{Y: 14, W: 100, H: 1}},
	}
	for _, tt := range tests {
		t.Run(string(tt.dock), func(t *testing.T) {
			st := ComputeStyles(Geometry{Dock: tt.dock, Size: DefaultSize}, State{Visible: true})
			f := Place(st, bounds)
			assert.Equal(t, bounds, f.Container)
			assert.Equal(t, tt.content, f.Content)
			assert.Equal(t, tt.handle, f.Handle)
		})
	}
}

func TestPlaceHiddenIsOffscreen(t *testing.T) {
	bounds := core.Rect{W: 100, H: 20}
	st := ComputeStyles(Geometry{Dock: SideRight, Size: DefaultSize}, State{})
	f := Place(st, bounds)

	assert.Equal(t, 100, f.Container.X)
	assert.True(t, f.Container.Intersect(bounds).Empty())
	assert.GreaterOrEqual(t, f.Content.X, 100)
}

func TestPlaceFixedCrossOffset(t *testing.T) {
	st := ComputeStyles(Geometry{
		Dock:   SideRight,
		Size:   FixedSize(Cells(40), Cells(10)),
		Offset: Cells(3),
	}, State{Visible: true})
	f := Place(st, core.Rect{W: 100, H: 20})

	assert.Equal(t, core.Rect{X: 60, Y: 3, W: 40, H: 10}, f.Content)
}

func TestPlaceClampsToContainer(t *testing.T) {
	st := ComputeStyles(Geometry{Dock: SideLeft, Size: RelativeSize(Cells(300))}, State{Visible: true})
	f := Place(st, core.Rect{X: 5, Y: 2, W: 50, H: 10})

	assert.Equal(t, core.Rect{X: 5, Y: 2, W: 50, H: 10}, f.Content)
}
