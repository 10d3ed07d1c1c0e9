package slideout

import (
	"testing"

	"github.com/framegrace/texelslide/texelui/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMetrics struct {
	content, parent, viewport core.Size
}

func (f fakeMetrics) ContentSize() core.Size  { return f.content }
func (f fakeMetrics) ParentSize() core.Size   { return f.parent }
func (f fakeMetrics) ViewportSize() core.Size { return f.viewport }

func newTestResizer(dock Side, limits Limits, sched Scheduler) (*Resizer, *recorder, *bool) {
	allowed := true
	d := NewDispatcher()
	rec := listen(d)
	m := fakeMetrics{
		content:  core.Size{W: 300, H: 40},
		parent:   core.Size{W: 1000, H: 200},
		viewport: core.Size{W: 800, H: 100},
	}
	r := NewResizer(dock, limits, func() bool { return allowed }, m, d, sched)
	return r, rec, &allowed
}

func TestResizerDeltaPerDock(t *testing.T) {
	tests := []struct {
		dock Side
		move core.Point
		want int
	}{
		{SideRight, core.Point{X: 450, Y: 10}, 350},
		{SideLeft, core.Point{X: 550, Y: 10}, 350},
		{SideTop, core.Point{X: 500, Y: 20}, 50},
		{SideBottom, core.Point{X: 500, Y: 0}, 50},
	}
	for _, tt := range tests {
		t.Run(string(tt.dock), func(t *testing.T) {
			r, _, _ := newTestResizer(tt.dock, Limits{}, nil)
			require.True(t, r.PointerDown(core.Point{X: 500, Y: 10}))
			require.True(t, r.PointerMove(tt.move))
			assert.Equal(t, tt.want, r.Override())
		})
	}
}

func TestResizerClampsToMax(t *testing.T) {
	r, _, _ := newTestResizer(SideRight, Limits{Min: 100, Max: 500}, nil)
	r.PointerDown(core.Point{X: 500})
	r.PointerMove(core.Point{X: 100})
	assert.Equal(t, 500, r.Override(), "max bound")

	r.PointerMove(core.Point{X: 790})
	assert.Equal(t, 100, r.Override(), "min floor")
}

func TestResizerClampsToViewport(t *testing.T) {
	r, _, _ := newTestResizer(SideRight, Limits{}, nil)
	r.PointerDown(core.Point{X: 500})
	r.PointerMove(core.Point{X: -2000})
	assert.Equal(t, 800, r.Override(), "min(parent, viewport)")

	r.PointerMove(core.Point{X: 2000})
	assert.Equal(t, 0, r.Override())
}

func TestResizerMinWinsOverMax(t *testing.T) {
	r, _, _ := newTestResizer(SideRight, Limits{Min: 400, Max: 200}, nil)
	r.PointerDown(core.Point{X: 500})
	r.PointerMove(core.Point{X: 400})
	assert.Equal(t, 400, r.Override())
}

func TestResizerIgnoredWhenNotAllowed(t *testing.T) {
	r, rec, allowed := newTestResizer(SideRight, Limits{}, nil)
	*allowed = false

	assert.False(t, r.PointerDown(core.Point{X: 500}))
	assert.False(t, r.Active())
	assert.False(t, r.PointerMove(core.Point{X: 400}))
	assert.Zero(t, r.Override())
	assert.Empty(t, rec.events)

	*allowed = true
	r.PointerDown(core.Point{X: 500})
	*allowed = false
	assert.False(t, r.PointerMove(core.Point{X: 400}), "fullscreen mid-drag")
	assert.Zero(t, r.Override())
}

func TestResizerSessionLifecycle(t *testing.T) {
	r, _, _ := newTestResizer(SideRight, Limits{}, nil)
	assert.False(t, r.PointerMove(core.Point{X: 1}), "move without a session")
	assert.False(t, r.PointerUp())

	r.PointerDown(core.Point{X: 500, Y: 3})
	s := r.Session()
	assert.True(t, s.Active)
	assert.Equal(t, core.Point{X: 500, Y: 3}, s.Anchor)
	assert.Equal(t, core.Size{W: 300, H: 40}, s.AnchorSize)

	r.PointerMove(core.Point{X: 480})
	assert.True(t, r.PointerUp())
	assert.False(t, r.Active())
	assert.Equal(t, 320, r.Override(), "override persists after release")

	r.Reset()
	assert.Zero(t, r.Override())
}

func TestResizerCoalescesEvents(t *testing.T) {
	sched := NewManualScheduler()
	r, rec, _ := newTestResizer(SideRight, Limits{}, sched)
	r.PointerDown(core.Point{X: 500})
	for x := 499; x >= 490; x-- {
		r.PointerMove(core.Point{X: x})
	}
	assert.Empty(t, rec.events, "emission waits for the next turn")

	sched.Flush()
	require.Len(t, rec.events, 1)
	assert.Equal(t, EventResize, rec.events[0].Type)
	assert.Equal(t, ResizeEvent{Size: 310}, rec.events[0].Payload)

	r.PointerMove(core.Point{X: 480})
	sched.Flush()
	require.Len(t, rec.events, 2)
	assert.Equal(t, ResizeEvent{Size: 320}, rec.events[1].Payload)
}
