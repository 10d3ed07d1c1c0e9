package slideout

import (
	"errors"
	"testing"
	"time"

	"github.com/framegrace/texelslide/texelui/core"
	"github.com/framegrace/texelslide/texelui/widgets"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type host struct {
	ui    *core.UIManager
	hub   *Hub
	sched *ManualScheduler
	root  Classes
	deps  Deps
}

func newHost(t *testing.T) *host {
	t.Helper()
	h := &host{
		ui:    core.NewUIManager(),
		hub:   NewHub(),
		sched: NewManualScheduler(),
		root:  NewClasses(),
	}
	h.ui.Resize(100, 20)
	base := time.Unix(0, 0)
	h.deps = Deps{
		Scheduler: h.sched,
		Events:    h.hub,
		Parent:    h.ui,
		Viewport:  func() core.Size { return core.Size{W: 100, H: 20} },
		Root:      h.root,
		Logger:    zaptest.NewLogger(t),
		Clock:     func() time.Time { return base.Add(h.sched.Now()) },
	}
	return h
}

func (h *host) mount(t *testing.T, opts Options) (*Panel, *recorder) {
	t.Helper()
	p, err := New(opts, h.deps)
	require.NoError(t, err)
	rec := listen(p.Events())
	require.NoError(t, p.Mount())
	t.Cleanup(p.Destroy)
	return p, rec
}

func (h *host) click(x, y int) bool {
	down := h.hub.DispatchMouse(tcell.NewEventMouse(x, y, tcell.Button1, 0))
	h.hub.DispatchMouse(tcell.NewEventMouse(x, y, tcell.ButtonNone, 0))
	return down
}

func (h *host) key(k tcell.Key, editable bool) bool {
	return h.hub.DispatchKey(tcell.NewEventKey(k, 0, 0), editable)
}

type staticTarget struct {
	bounds   core.Rect
	attached []core.Widget
}

func (s *staticTarget) Bounds() core.Rect { return s.bounds }

func (s *staticTarget) Attach(w core.Widget) func() error {
	s.attached = append(s.attached, w)
	return func() error {
		for i, cur := range s.attached {
			if cur == w {
				s.attached = append(s.attached[:i], s.attached[i+1:]...)
				return nil
			}
		}
		return core.ErrNotAttached
	}
}

func TestNewRejectsInvalidDock(t *testing.T) {
	_, err := New(Options{Dock: "middle"}, Deps{})
	require.ErrorIs(t, err, ErrInvalidDock)
	assert.Contains(t, err.Error(), "top,right,bottom,left")
}

func TestNewNormalizesDock(t *testing.T) {
	p, err := New(Options{Dock: "Left"}, Deps{})
	require.NoError(t, err)
	assert.Equal(t, SideLeft, p.Options().Dock)
	assert.Equal(t, DefaultSize, p.Options().Size)
}

func TestMountTargetErrors(t *testing.T) {
	h := newHost(t)

	p, err := New(Options{AppendTo: "#missing"}, h.deps)
	require.NoError(t, err)
	err = p.Mount()
	require.ErrorIs(t, err, ErrTargetNotFound)
	assert.Contains(t, err.Error(), "#missing")

	deps := h.deps
	deps.Parent = nil
	p, err = New(Options{}, deps)
	require.NoError(t, err)
	require.ErrorIs(t, p.Mount(), ErrNoTarget)
}

func TestMountVisibleOpens(t *testing.T) {
	h := newHost(t)
	p, rec := h.mount(t, Options{Visible: true, DisableAnimation: true})

	assert.True(t, p.Visible())
	assert.Equal(t, []string{"before-open", "update:visible", "update:fullscreen", "open"}, rec.types())
	region, ok := rec.events[3].Payload.(ContentRegion)
	require.True(t, ok)
	assert.Equal(t, core.Rect{X: 70, W: 30, H: 20}, region.Bounds)
	assert.True(t, h.root.Has(LockScrollClass))

	classes := p.Classes()
	assert.True(t, classes.Has("slideout-visible"))
	assert.True(t, classes.Has("slideout-fixed"))
	assert.True(t, classes.Has("slideout-dock-right"))
	assert.False(t, classes.Has("slideout-enable-animation"))
}

func TestPanelRendersIntoParent(t *testing.T) {
	h := newHost(t)
	p, _ := h.mount(t, Options{DisableAnimation: true, Title: "Log", MaskColor: "navy"})

	buf := h.ui.Render()
	assert.Equal(t, ' ', buf[0][70].Ch, "hidden panel draws nothing")

	p.Open()
	buf = h.ui.Render()
	assert.Equal(t, '┌', buf[0][70].Ch)
	assert.Equal(t, '┐', buf[0][99].Ch)
	_, bg, _ := buf[5][10].Style.Decompose()
	assert.Equal(t, tcell.GetColor("navy"), bg, "mask covers the container")
}

func TestEscapeCloses(t *testing.T) {
	h := newHost(t)
	p, _ := h.mount(t, Options{Visible: true, DisableAnimation: true})

	assert.False(t, h.key(tcell.KeyEscape, true), "editors keep Escape")
	assert.True(t, p.Visible())

	assert.False(t, h.key(tcell.KeyEnter, false))
	assert.True(t, h.key(tcell.KeyEscape, false))
	assert.False(t, p.Visible())

	assert.False(t, h.key(tcell.KeyEscape, false), "hidden panels ignore Escape")
}

func TestIgnoreEscape(t *testing.T) {
	h := newHost(t)
	p, _ := h.mount(t, Options{Visible: true, IgnoreEscape: true})

	_, keys := h.hub.Listeners()
	assert.Zero(t, keys)
	h.key(tcell.KeyEscape, false)
	assert.True(t, p.Visible())
}

func TestMaskClick(t *testing.T) {
	h := newHost(t)
	p, _ := h.mount(t, Options{Visible: true, DisableAnimation: true})

	assert.True(t, h.click(10, 5), "mask consumes the press")
	assert.True(t, p.Visible(), "mask close disabled")

	h2 := newHost(t)
	p2, rec := h2.mount(t, Options{Visible: true, DisableAnimation: true, CloseOnMaskClick: true})
	rec.reset()

	assert.False(t, h2.click(80, 5), "content presses pass through")
	assert.True(t, p2.Visible())

	assert.True(t, h2.click(10, 5))
	assert.False(t, p2.Visible())
	assert.Equal(t, "close", rec.types()[0])
}

func TestDragResize(t *testing.T) {
	h := newHost(t)
	p, rec := h.mount(t, Options{Visible: true, DisableAnimation: true, AllowResize: true, MaxSize: 45})
	rec.reset()

	h.hub.DispatchMouse(tcell.NewEventMouse(70, 5, tcell.Button1, 0))
	assert.True(t, p.Resizer().Active())
	assert.True(t, p.Styles().NoSelect)

	h.hub.DispatchMouse(tcell.NewEventMouse(60, 5, tcell.Button1, 0))
	assert.Equal(t, 40, p.Override())
	h.hub.DispatchMouse(tcell.NewEventMouse(50, 5, tcell.Button1, 0))
	assert.Equal(t, 45, p.Override(), "max bound")
	h.hub.DispatchMouse(tcell.NewEventMouse(50, 5, tcell.ButtonNone, 0))
	assert.False(t, p.Resizer().Active())

	h.sched.Flush()
	require.Equal(t, []string{"resize"}, rec.types())
	assert.Equal(t, ResizeEvent{Size: 45}, rec.events[0].Payload)

	f, ok := p.Frame()
	require.True(t, ok)
	assert.Equal(t, core.Rect{X: 55, W: 45, H: 20}, f.Content)

	p.Close()
	p.Open()
	assert.Zero(t, p.Override(), "reopen resets the override")
}

func TestResizeDisabled(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"flag off", Options{}},
		{"fixed size", Options{AllowResize: true, Size: FixedSize(Cells(30), Cells(20))}},
		{"fullscreen", Options{AllowResize: true, Fullscreen: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHost(t)
			tt.opts.Visible = true
			tt.opts.DisableAnimation = true
			p, _ := h.mount(t, tt.opts)

			f, ok := p.Frame()
			require.True(t, ok)
			h.hub.DispatchMouse(tcell.NewEventMouse(f.Handle.X, f.Handle.Y, tcell.Button1, 0))
			h.hub.DispatchMouse(tcell.NewEventMouse(f.Handle.X-10, f.Handle.Y, tcell.Button1, 0))
			assert.False(t, p.Resizer().Active())
			assert.Zero(t, p.Override())
		})
	}
}

func TestFullscreen(t *testing.T) {
	h := newHost(t)
	p, _ := h.mount(t, Options{Visible: true, DisableAnimation: true, ZIndex: 3})
	assert.Equal(t, 3, p.ZIndex())

	p.SetFullscreen(true)
	assert.Equal(t, FullscreenZIndex, p.ZIndex())
	assert.True(t, p.Classes().Has("slideout-fullscreen"))
	f, _ := p.Frame()
	assert.Equal(t, core.Rect{W: 100, H: 20}, f.Content)

	p.SetFullscreen(false)
	assert.Equal(t, 3, p.ZIndex())
}

func TestSlideAnimation(t *testing.T) {
	h := newHost(t)
	p, rec := h.mount(t, Options{})

	p.Open()
	f, ok := p.Frame()
	require.True(t, ok)
	assert.Equal(t, 100, f.Content.X, "starts fully retracted")
	assert.NotContains(t, rec.types(), "open")

	h.sched.Advance(SettleDelay / 2)
	f, _ = p.Frame()
	assert.Greater(t, f.Content.X, 70)
	assert.Less(t, f.Content.X, 100)

	h.sched.Advance(SettleDelay / 2)
	f, _ = p.Frame()
	assert.Equal(t, 70, f.Content.X)
	assert.Contains(t, rec.types(), "open")

	p.Close()
	_, ok = p.Frame()
	assert.True(t, ok, "still sliding out")
	h.sched.Advance(SettleDelay)
	_, ok = p.Frame()
	assert.False(t, ok)
	assert.Equal(t, "closed", rec.types()[len(rec.events)-1])
}

func TestAppendToTarget(t *testing.T) {
	h := newHost(t)
	target := &staticTarget{bounds: core.Rect{X: 10, Y: 2, W: 40, H: 10}}
	h.deps.Targets = Targets{"#sidebar": target}

	p, _ := h.mount(t, Options{AppendTo: "#sidebar", Dock: SideLeft, Size: RelativeSize(Percent(50)), Visible: true, DisableAnimation: true})
	require.Len(t, target.attached, 1)
	assert.False(t, p.Classes().Has("slideout-fixed"))
	assert.False(t, h.root.Has(LockScrollClass), "only fixed panels lock the root")

	f, _ := p.Frame()
	assert.Equal(t, core.Rect{X: 10, Y: 2, W: 20, H: 10}, f.Content)
	assert.Equal(t, core.Size{W: 40, H: 10}, p.ParentSize())

	p.Destroy()
	assert.Empty(t, target.attached)
}

func TestDestroyReleasesEverything(t *testing.T) {
	h := newHost(t)
	p, rec := h.mount(t, Options{Visible: true, DisableAnimation: true, AllowResize: true})
	pointers, keys := h.hub.Listeners()
	assert.Equal(t, 2, pointers)
	assert.Equal(t, 1, keys)
	rec.reset()

	p.Destroy()
	pointers, keys = h.hub.Listeners()
	assert.Zero(t, pointers)
	assert.Zero(t, keys)
	assert.False(t, p.Visible())
	assert.NotContains(t, rec.types(), "close", "teardown is not a close intent")
	assert.False(t, h.root.Has(LockScrollClass))
	assert.True(t, errors.Is(h.ui.RemoveWidget(p), core.ErrNotAttached))

	p.Destroy()
	assert.ErrorIs(t, p.Mount(), ErrDestroyed)
}

func TestDestroyDetachFailureIgnored(t *testing.T) {
	h := newHost(t)
	p, _ := h.mount(t, Options{})
	require.NoError(t, h.ui.RemoveWidget(p))

	assert.NotPanics(t, p.Destroy)
}

func TestDestroyMidAnimation(t *testing.T) {
	h := newHost(t)
	p, rec := h.mount(t, Options{Visible: true})
	p.Destroy()
	rec.reset()

	h.sched.Advance(time.Second)
	assert.Empty(t, rec.events, "settle events after teardown are dropped")
}

func TestSetBody(t *testing.T) {
	h := newHost(t)
	p, _ := h.mount(t, Options{Visible: true, DisableAnimation: true})
	tv := widgets.NewTextView(0, 0, 0, 0)
	tv.SetText("hello")
	p.SetBody(tv)
	assert.Same(t, tv, p.Body())

	buf := h.ui.Render()
	assert.Equal(t, 'h', buf[1][71].Ch)

	var children []core.Widget
	p.VisitChildren(func(w core.Widget) { children = append(children, w) })
	assert.Len(t, children, 1)
}

func TestSetFooter(t *testing.T) {
	h := newHost(t)
	p, _ := h.mount(t, Options{Visible: true, DisableAnimation: true})
	body := widgets.NewTextView(0, 0, 0, 0)
	body.SetText("hello")
	p.SetBody(body)
	footer := widgets.NewTextView(0, 0, 0, 0)
	footer.SetText("ok")
	p.SetFooter(footer, 1)

	assert.Same(t, footer, p.Footer())
	assert.True(t, p.Classes().Has("slideout-show-footer"))

	buf := h.ui.Render()
	assert.Equal(t, 'h', buf[1][71].Ch)
	assert.Equal(t, 'o', buf[18][71].Ch, "footer sits on the last client row")

	var children []core.Widget
	p.VisitChildren(func(w core.Widget) { children = append(children, w) })
	assert.Len(t, children, 2)

	p.SetFooter(nil, 0)
	assert.False(t, p.Classes().Has("slideout-show-footer"))
}
