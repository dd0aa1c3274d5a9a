package main

import (
	"fmt"

	"github.com/grindlemire/termkit"
)

type demo struct {
	app    *tui.App
	main   *tui.Toplevel
	dialog *tui.Toplevel
	status string
	clicks int
	dimmed bool
}

func newDemo(app *tui.App) *demo {
	d := &demo{app: app, status: "Tab moves focus, Enter activates, Ctrl+Q quits"}

	d.main = app.NewToplevel(tui.WithName("main"))
	d.main.SetOnMouse(func(_ *tui.View, me tui.MouseEvent) bool {
		d.setStatus(fmt.Sprintf("mouse %s %v at %d,%d", me.Action, me.Button, me.AbsX, me.AbsY))
		return true
	})

	title := label(app, "termkit demo", tui.WithName("title"),
		tui.WithX(tui.Center()), tui.WithY(tui.At(0)),
		tui.WithWidth(tui.Sized(tui.StringWidth("termkit demo"))), tui.WithHeight(tui.Sized(1)))

	panel := app.NewView(tui.WithName("panel"),
		tui.WithX(tui.Center()), tui.WithY(tui.BottomOf(title).Plus(1)),
		tui.WithWidth(tui.Percent(60)), tui.WithHeight(tui.Sized(9)),
		tui.WithOnDraw(func(v *tui.View, p *tui.Painter) {
			p.DrawBox(v.Bounds(), tui.BorderRounded, p.Scheme().Normal)
		}))

	open := button(app, "Open dialog", func() { app.Present(d.dialog) },
		tui.WithX(tui.At(2)), tui.WithY(tui.At(1)))
	count := button(app, "Count", func() {
		d.clicks++
		d.setStatus(fmt.Sprintf("clicked %d times", d.clicks))
	}, tui.WithX(tui.At(2)), tui.WithY(tui.BottomOf(open).Plus(1)))
	scheme := button(app, "Dim colors", func() { d.toggleScheme() },
		tui.WithX(tui.At(2)), tui.WithY(tui.BottomOf(count).Plus(1)))
	panel.AddSubview(open, count, scheme)

	status := app.NewView(tui.WithName("status"),
		tui.WithX(tui.At(0)), tui.WithY(tui.AnchorEnd(1)),
		tui.WithWidth(tui.Fill(0)), tui.WithHeight(tui.Sized(1)),
		tui.WithOnDraw(func(v *tui.View, p *tui.Painter) {
			p.Fill(v.Bounds(), ' ', p.Scheme().HotNormal)
			p.DrawString(1, 0, d.status, p.Scheme().HotNormal)
		}))

	d.main.AddSubview(title, panel, status)
	d.dialog = d.newDialog()
	return d
}

func (d *demo) newDialog() *tui.Toplevel {
	dlg := d.app.NewToplevel(tui.WithName("dialog"),
		tui.WithX(tui.Center()), tui.WithY(tui.Center()),
		tui.WithWidth(tui.Sized(34)), tui.WithHeight(tui.Sized(7)),
		tui.WithOnDraw(func(v *tui.View, p *tui.Painter) {
			p.DrawBox(v.Bounds(), tui.BorderDouble, p.Scheme().Normal)
			p.DrawString(2, 2, "Input below is blocked.", p.Scheme().Normal)
		}),
		tui.WithOnKey(func(_ *tui.View, ke tui.KeyEvent) bool {
			if ke.Key == tui.KeyEscape {
				d.app.RequestStop(d.dialog)
				return true
			}
			return false
		}))
	dlg.Modal = true

	ok := button(d.app, "OK", func() { d.app.RequestStop(dlg) },
		tui.WithX(tui.Center()), tui.WithY(tui.AnchorEnd(2)))
	dlg.AddSubview(ok)
	dlg.SetOnStop(func(*tui.Toplevel) { d.setStatus("dialog closed") })
	return dlg
}

func (d *demo) setStatus(s string) {
	d.status = s
	if v := d.main.Subviews(); len(v) > 0 {
		v[len(v)-1].SetNeedsDisplay()
	}
}

func (d *demo) toggleScheme() {
	d.dimmed = !d.dimmed
	if d.dimmed {
		cs := tui.DefaultColorScheme.Dimmed()
		cs.Normal = cs.Disabled
		d.main.SetColorScheme(&cs)
	} else {
		d.main.SetColorScheme(nil)
	}
	d.app.Refresh()
}

func label(app *tui.App, text string, opts ...tui.Option) *tui.View {
	opts = append(opts, tui.WithOnDraw(func(_ *tui.View, p *tui.Painter) {
		p.DrawString(0, 0, text, p.Scheme().Normal)
	}))
	return app.NewView(opts...)
}

// button is a focusable one-line view that runs action on Enter, Space
// or a left click.
func button(app *tui.App, text string, action func(), opts ...tui.Option) *tui.View {
	caption := "[ " + text + " ]"
	opts = append(opts,
		tui.WithName(text),
		tui.WithCanFocus(true),
		tui.WithWidth(tui.Sized(tui.StringWidth(caption))),
		tui.WithHeight(tui.Sized(1)),
		tui.WithOnDraw(func(v *tui.View, p *tui.Painter) {
			p.DrawString(0, 0, caption, p.Scheme().Style(v.HasFocus(), false))
		}),
		tui.WithOnKey(func(_ *tui.View, ke tui.KeyEvent) bool {
			if ke.Key == tui.KeyEnter || (ke.IsRune() && ke.Rune == ' ') {
				action()
				return true
			}
			return false
		}),
		tui.WithOnMouse(func(v *tui.View, me tui.MouseEvent) bool {
			if me.Action != tui.MousePress || me.Button != tui.MouseLeft {
				return false
			}
			v.Root().SetFocus(v)
			action()
			return true
		}),
	)
	return app.NewView(opts...)
}
