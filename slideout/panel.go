// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: slideout/panel.go
// Summary: Slide-out panel component tying state, resize and styles together.
// Usage: New → Mount → (Open/Close/SetFullscreen…) → Destroy.
// Notes: All methods expect to run on the event-loop goroutine.

package slideout

import (
	"time"

	"github.com/framegrace/texelslide/internal/effects"
	"github.com/framegrace/texelslide/texelui/core"
	"github.com/framegrace/texelslide/texelui/widgets"
	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	frameInterval = 16 * time.Millisecond
	revealKey     = "reveal"
)

// Panel is a widget that slides in from one edge of its container.
type Panel struct {
	core.BaseWidget

	id     string
	opts   Options
	deps   Deps
	logger *zap.Logger

	events   *Dispatcher
	machine  *Machine
	resizer  *Resizer
	timeline *effects.Timeline
	easing   effects.EasingFunc

	bounds  core.Rect
	frame   *widgets.Border
	content *widgets.FooterLayout
	body    core.Widget
	footer  core.Widget

	maskStyle   tcell.Style
	hasMask     bool
	handleStyle tcell.Style
	invalidator func(core.Rect)

	attach    *attachment
	releases  []func()
	ticking   bool
	mounted   bool
	destroyed bool
}

// New validates opts and builds an unmounted panel.
func New(opts Options, deps Deps) (*Panel, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()

	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	id := uuid.NewString()
	p := &Panel{
		id:   id,
		opts: opts,
		deps: deps,
		logger: logger.Named("slideout").With(
			zap.String("panel", id),
			zap.String("dock", string(opts.Dock)),
		),
		events:      NewDispatcher(),
		timeline:    effects.NewTimeline(0),
		easing:      effects.EasingByName(opts.Easing),
		handleStyle: tcell.StyleDefault.Foreground(tcell.ColorGray),
	}
	if deps.Clock != nil {
		p.timeline.SetClock(deps.Clock)
	}

	if opts.MaskColor != "" {
		color := tcell.GetColor(opts.MaskColor)
		if color == tcell.ColorDefault {
			p.logger.Warn("unknown mask color, mask stays transparent", zap.String("mask", opts.MaskColor))
		} else {
			p.maskStyle = tcell.StyleDefault.Background(color)
			p.hasMask = true
		}
	}

	p.frame = widgets.NewBorder(0, 0, 0, 0, tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack))
	p.frame.Title = opts.Title
	p.content = widgets.NewFooterLayout(nil)
	p.frame.SetChild(p.content)

	p.resizer = NewResizer(opts.Dock, Limits{Min: opts.MinSize, Max: opts.MaxSize}, p.resizable, p, p.events, deps.Scheduler)
	p.machine = NewMachine(p.events, deps.Scheduler, MachineHooks{
		Opening: p.resizer.Reset,
		Changed: p.visibilityChanged,
		Settle:  p.settleDelay,
		Content: p.contentRegion,
	})
	return p, nil
}

// ID returns the panel instance id used in logs.
func (p *Panel) ID() string { return p.id }

// Options returns the current configuration.
func (p *Panel) Options() Options { return p.opts }

// Events returns the dispatcher observers subscribe to.
func (p *Panel) Events() *Dispatcher { return p.events }

// Subscribe is shorthand for Events().Subscribe.
func (p *Panel) Subscribe(l Listener) (unsubscribe func()) { return p.events.Subscribe(l) }

// Mount resolves the attachment target, attaches the panel and acquires its
// input listeners. Opens immediately when Options.Visible is set.
func (p *Panel) Mount() error {
	if p.mounted {
		return nil
	}
	if p.destroyed {
		return ErrDestroyed
	}
	target, err := resolveTarget(p.opts.AppendTo, p.deps.Targets, p.deps.Parent)
	if err != nil {
		return err
	}
	p.attach = &attachment{target: target}
	p.Layout()
	p.attach.detach = target.Attach(p)

	if src := p.deps.Events; src != nil {
		p.releases = append(p.releases, src.OnPointer(p.onElementPointer))
		if p.opts.AllowResize {
			p.releases = append(p.releases, src.OnPointer(p.onRootPointer))
		}
		if !p.opts.IgnoreEscape {
			p.releases = append(p.releases, src.OnKey(p.handleKey))
		}
	}
	p.mounted = true
	p.logger.Info("mounted",
		zap.Bool("fixed", p.opts.IsFixed()),
		zap.String("append_to", p.opts.AppendTo),
		zap.Stringer("size", p.opts.Size),
	)
	if p.opts.Visible {
		p.machine.Open()
	}
	return nil
}

// Destroy releases listeners, hides the panel without a close intent and
// detaches it. Detach failures are logged and ignored.
func (p *Panel) Destroy() {
	if p.destroyed {
		return
	}
	for _, release := range p.releases {
		release()
	}
	p.releases = nil
	if p.machine.Visible() {
		p.machine.ForceHide()
	}
	if p.attach != nil && p.attach.detach != nil {
		if err := p.attach.detach(); err != nil {
			p.logger.Debug("detach failed", zap.Error(err))
		}
	}
	p.attach = nil
	p.events.Close()
	p.destroyed = true
	p.mounted = false
	p.logger.Info("destroyed")
}

// Visible reports the visibility state.
func (p *Panel) Visible() bool { return p.machine.Visible() }

// Open shows the panel. See Machine.Open.
func (p *Panel) Open() bool { return p.machine.Open() }

// Close requests the panel to hide. See Machine.Close.
func (p *Panel) Close() bool { return p.machine.Close() }

// Toggle flips visibility.
func (p *Panel) Toggle() bool { return p.machine.Toggle() }

// SetVisible is the externally settable visibility signal.
func (p *Panel) SetVisible(v bool) bool { return p.machine.SetVisible(v) }

// Fullscreen reports the full-screen flag.
func (p *Panel) Fullscreen() bool { return p.opts.Fullscreen }

// SetFullscreen changes the full-screen flag.
func (p *Panel) SetFullscreen(v bool) {
	if p.opts.Fullscreen == v {
		return
	}
	p.opts.Fullscreen = v
	if v {
		p.resizer.PointerUp()
	}
	p.refresh()
}

// SetSize replaces the size specification.
func (p *Panel) SetSize(s SizeSpec) {
	if s.IsZero() {
		s = DefaultSize
	}
	p.opts.Size = s
	p.refresh()
}

// SetLimits replaces the resize bounds.
func (p *Panel) SetLimits(min, max int) {
	p.opts.MinSize, p.opts.MaxSize = min, max
	p.resizer.SetLimits(Limits{Min: min, Max: max})
}

// SetZIndex changes the stacking order outside full screen.
func (p *Panel) SetZIndex(z int) {
	p.opts.ZIndex = z
	p.refresh()
}

// SetBody places w inside the content frame.
func (p *Panel) SetBody(w core.Widget) {
	p.body = w
	p.content.SetBody(w)
	p.installInvalidator(w)
	p.refresh()
}

// Body returns the content widget.
func (p *Panel) Body() core.Widget { return p.body }

// SetFooter pins w to the bottom height rows of the content frame; nil
// removes the footer.
func (p *Panel) SetFooter(w core.Widget, height int) {
	p.footer = w
	p.content.SetFooter(w, height)
	p.installInvalidator(w)
	p.refresh()
}

// Footer returns the footer widget, if any.
func (p *Panel) Footer() core.Widget { return p.footer }

func (p *Panel) installInvalidator(w core.Widget) {
	if ia, ok := w.(core.InvalidationAware); ok && p.invalidator != nil {
		ia.SetInvalidator(p.invalidator)
	}
}

// Override returns the resize override in cells (0 = none).
func (p *Panel) Override() int { return p.resizer.Override() }

// Resizer exposes the resize controller.
func (p *Panel) Resizer() *Resizer { return p.resizer }

// Styles returns the styles computed for the current state.
func (p *Panel) Styles() Styles { return ComputeStyles(p.Geometry(), p.State()) }

// Geometry returns the static input of ComputeStyles.
func (p *Panel) Geometry() Geometry {
	return Geometry{
		Dock:             p.opts.Dock,
		Size:             p.opts.Size,
		Offset:           p.opts.Offset,
		ZIndex:           p.opts.ZIndex,
		DisableAnimation: p.opts.DisableAnimation,
	}
}

// State returns the live input of ComputeStyles.
func (p *Panel) State() State {
	return State{
		Visible:    p.machine.Visible(),
		Fullscreen: p.opts.Fullscreen,
		Dragging:   p.resizer.Active(),
		Override:   p.resizer.Override(),
	}
}

// Classes returns the container class set.
func (p *Panel) Classes() Classes {
	c := NewClasses(p.opts.CustomClass, "slideout-dock-"+string(p.opts.Dock))
	if p.machine.Visible() {
		c.Add("slideout-visible")
	}
	if !p.opts.DisableAnimation {
		c.Add("slideout-enable-animation")
	}
	if p.opts.Title != "" {
		c.Add("slideout-show-header")
	}
	if p.footer != nil {
		c.Add("slideout-show-footer")
	}
	if p.opts.IsFixed() {
		c.Add("slideout-fixed")
	}
	if p.opts.Fullscreen {
		c.Add("slideout-fullscreen")
	}
	return c
}

// Layout re-reads the container bounds. Hosts call it after the screen or
// the target changes size.
func (p *Panel) Layout() {
	switch {
	case p.opts.IsFixed():
		p.bounds = core.Rect{}
		if p.deps.Viewport != nil {
			vs := p.deps.Viewport()
			p.bounds = core.Rect{W: vs.W, H: vs.H}
		}
	case p.attach != nil:
		p.bounds = p.attach.target.Bounds()
	}
	p.SetPosition(p.bounds.X, p.bounds.Y)
	p.Resize(p.bounds.W, p.bounds.H)
	p.refresh()
}

// Frame returns the geometry currently on screen, including an in-flight
// slide. ok is false when nothing is drawn.
func (p *Panel) Frame() (f Frame, ok bool) {
	progress := p.timeline.Get(revealKey)
	visible := p.machine.Visible()
	if !visible && progress <= 0 {
		return Frame{}, false
	}
	s := p.State()
	s.Visible = true
	st := ComputeStyles(p.Geometry(), s)
	if !p.opts.DisableAnimation && progress < 1 {
		s.Visible = false
		hidden := ComputeStyles(p.Geometry(), s).Content.Edge.Offset
		st.Content.Edge.Offset = hidden.Scale(float64(1 - progress))
	}
	return Place(st, p.bounds), true
}

// ContentSize implements Metrics.
func (p *Panel) ContentSize() core.Size {
	f, _ := p.Frame()
	return f.Content.Size()
}

// ParentSize implements Metrics.
func (p *Panel) ParentSize() core.Size {
	if p.attach != nil && !p.opts.IsFixed() {
		return p.attach.target.Bounds().Size()
	}
	return p.bounds.Size()
}

// ViewportSize implements Metrics.
func (p *Panel) ViewportSize() core.Size {
	if p.deps.Viewport != nil {
		return p.deps.Viewport()
	}
	return p.bounds.Size()
}

// ZIndex implements core.ZIndexer.
func (p *Panel) ZIndex() int { return p.Styles().ZIndex }

// VisitChildren implements core.ChildContainer.
func (p *Panel) VisitChildren(f func(core.Widget)) {
	p.content.VisitChildren(f)
}

// SetInvalidator forwards the invalidator to the content frame as well.
func (p *Panel) SetInvalidator(fn func(core.Rect)) {
	p.invalidator = fn
	p.BaseWidget.SetInvalidator(fn)
	p.frame.SetInvalidator(fn)
}

// HitTest reports hits on the on-screen container.
func (p *Panel) HitTest(x, y int) bool {
	f, ok := p.Frame()
	return ok && f.Container.Contains(x, y)
}

func (p *Panel) Draw(painter *core.Painter) {
	f, ok := p.Frame()
	if !ok {
		return
	}
	if p.hasMask {
		painter.Fill(f.Container, ' ', p.maskStyle)
	}
	p.frame.SetPosition(f.Content.X, f.Content.Y)
	p.frame.Resize(f.Content.W, f.Content.H)
	p.frame.Draw(painter.WithClip(f.Container))

	if !p.resizable() || f.Handle.Empty() {
		return
	}
	style := p.handleStyle
	glyph := '│'
	if !p.opts.Dock.Horizontal() {
		glyph = '─'
	}
	if p.resizer.Active() {
		style = style.Foreground(tcell.ColorYellow).Bold(true)
		glyph = '┃'
		if !p.opts.Dock.Horizontal() {
			glyph = '━'
		}
	}
	painter.WithClip(f.Container).Fill(f.Handle, glyph, style)
}

func (p *Panel) resizable() bool {
	return p.opts.AllowResize && !p.opts.Size.IsFixed() && !p.opts.Fullscreen
}

func (p *Panel) settleDelay() time.Duration {
	if p.opts.DisableAnimation {
		return 0
	}
	return SettleDelay
}

func (p *Panel) contentRegion() ContentRegion {
	st := ComputeStyles(p.Geometry(), p.State())
	return ContentRegion{Bounds: Place(st, p.bounds).Content, Body: p.body}
}

func (p *Panel) visibilityChanged(visible bool) {
	target := float32(0)
	if visible {
		target = 1
	}
	p.timeline.AnimateToWithOptions(revealKey, target, effects.AnimateOptions{
		Duration: p.settleDelay(),
		Easing:   p.easing,
	})
	if p.opts.IsFixed() && p.deps.Root != nil {
		if visible {
			p.deps.Root.Add(LockScrollClass)
		} else {
			p.deps.Root.Remove(LockScrollClass)
		}
	}
	p.logger.Debug("visibility changed", zap.Bool("visible", visible))
	p.refresh()
	p.startTicking()
}

// refresh requests a redraw after any style input changed.
func (p *Panel) refresh() {
	p.Invalidate(p.bounds)
}

// startTicking redraws every frame while the slide animates.
func (p *Panel) startTicking() {
	if p.ticking || p.deps.Scheduler == nil || !p.timeline.IsAnimating(revealKey) {
		return
	}
	p.ticking = true
	var tick func()
	tick = func() {
		if p.destroyed {
			p.ticking = false
			return
		}
		p.Invalidate(p.bounds)
		if !p.timeline.IsAnimating(revealKey) {
			p.ticking = false
			return
		}
		p.deps.Scheduler.After(frameInterval, tick)
	}
	p.deps.Scheduler.After(frameInterval, tick)
}
