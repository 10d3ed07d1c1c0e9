// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/widgets/footer.go
// Summary: Body with an optional fixed-height footer strip below it.

package widgets

import "github.com/framegrace/texelslide/texelui/core"

// FooterLayout gives Footer the bottom FooterHeight rows of its Rect and
// Body the rest. Without a footer the body fills everything.
type FooterLayout struct {
	core.BaseWidget
	Body         core.Widget
	Footer       core.Widget
	FooterHeight int
}

func NewFooterLayout(body core.Widget) *FooterLayout {
	l := &FooterLayout{Body: body, FooterHeight: 1}
	l.layout()
	return l
}

// SetBody replaces the upper widget.
func (l *FooterLayout) SetBody(w core.Widget) {
	l.Body = w
	l.layout()
}

// SetFooter replaces the footer; nil removes it. Heights below 1 become 1.
func (l *FooterLayout) SetFooter(w core.Widget, height int) {
	if height < 1 {
		height = 1
	}
	l.Footer, l.FooterHeight = w, height
	l.layout()
}

func (l *FooterLayout) SetPosition(x, y int) {
	l.BaseWidget.SetPosition(x, y)
	l.layout()
}

func (l *FooterLayout) Resize(w, h int) {
	l.BaseWidget.Resize(w, h)
	l.layout()
}

// footerRows is the footer height clamped to the available rows.
func (l *FooterLayout) footerRows() int {
	if l.Footer == nil {
		return 0
	}
	return min(l.FooterHeight, l.Rect.H)
}

func (l *FooterLayout) bodyRect() core.Rect {
	r := l.Rect
	r.H -= l.footerRows()
	return r
}

func (l *FooterLayout) footerRect() core.Rect {
	n := l.footerRows()
	return core.Rect{X: l.Rect.X, Y: l.Rect.Y + l.Rect.H - n, W: l.Rect.W, H: n}
}

func (l *FooterLayout) layout() {
	if l.Body != nil {
		r := l.bodyRect()
		l.Body.SetPosition(r.X, r.Y)
		l.Body.Resize(r.W, r.H)
	}
	if l.Footer != nil {
		r := l.footerRect()
		l.Footer.SetPosition(r.X, r.Y)
		l.Footer.Resize(r.W, r.H)
	}
}

func (l *FooterLayout) VisitChildren(f func(core.Widget)) {
	if l.Body != nil {
		f(l.Body)
	}
	if l.Footer != nil {
		f(l.Footer)
	}
}

func (l *FooterLayout) Draw(p *core.Painter) {
	if l.Body != nil {
		l.Body.Draw(p.WithClip(l.bodyRect()))
	}
	if l.Footer != nil && l.footerRows() > 0 {
		l.Footer.Draw(p.WithClip(l.footerRect()))
	}
}
