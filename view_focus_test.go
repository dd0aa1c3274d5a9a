package tui

import (
	"slices"
	"testing"
)

// focusFixture is top > [panel > [a, b], label, c].
type focusFixture struct {
	app   *App
	top   *Toplevel
	panel *View
	a     *View
	b     *View
	label *View
	c     *View
	rec   *recorder
}

func newFocusFixture(t *testing.T) *focusFixture {
	t.Helper()
	app, _ := newTestApp(t, 40, 10)
	rec := &recorder{}
	hooks := func(name string) []Option {
		return []Option{
			WithName(name),
			WithOnFocus(func(v *View) { rec.add("focus:" + v.Name()) }),
			WithOnBlur(func(v *View) { rec.add("blur:" + v.Name()) }),
		}
	}
	f := &focusFixture{app: app, rec: rec}
	f.panel = app.NewView(hooks("panel")...)
	f.a = app.NewView(append(hooks("a"), WithCanFocus(true))...)
	f.b = app.NewView(append(hooks("b"), WithCanFocus(true))...)
	f.label = app.NewView(hooks("label")...)
	f.c = app.NewView(append(hooks("c"), WithCanFocus(true))...)
	f.panel.AddSubview(f.a, f.b)
	f.top = newTestTop(t, app, f.panel, f.label, f.c)
	rec.reset()
	return f
}

// focusedNames lists the views of the tree that hold focus, top-down.
func focusedNames(v *View) []string {
	var names []string
	v.walk(func(c *View) bool {
		if c.HasFocus() {
			names = append(names, c.Name())
		}
		return false
	})
	return names
}

func TestFocus_PresentFocusesFirst(t *testing.T) {
	f := newFocusFixture(t)
	if got := f.top.MostFocused(); got != f.a {
		t.Fatalf("MostFocused() = %v, want a", got)
	}
	if got := focusedNames(f.top.View); !slices.Equal(got, []string{"top", "panel", "a"}) {
		t.Errorf("focused views = %v, want the single chain top, panel, a", got)
	}
	if !f.panel.CanFocus() {
		t.Error("panel should become focusable when a focusable subview is added")
	}
}

func TestFocus_SetFocusHookOrder(t *testing.T) {
	f := newFocusFixture(t)

	if !f.top.SetFocus(f.c) {
		t.Fatal("SetFocus(c) = false")
	}
	want := []string{"blur:a", "blur:panel", "focus:c"}
	if !slices.Equal(f.rec.events, want) {
		t.Errorf("events = %v, want %v", f.rec.events, want)
	}
	if got := focusedNames(f.top.View); !slices.Equal(got, []string{"top", "c"}) {
		t.Errorf("focused views = %v", got)
	}

	f.rec.reset()
	if !f.top.SetFocus(f.c) {
		t.Fatal("SetFocus on the focused view = false")
	}
	if len(f.rec.events) != 0 {
		t.Errorf("refocusing fired %v", f.rec.events)
	}
}

func TestFocus_SetFocusRejects(t *testing.T) {
	type tc struct {
		target func(f *focusFixture) *View
	}

	tests := map[string]tc{
		"nil":             {target: func(*focusFixture) *View { return nil }},
		"not focusable":   {target: func(f *focusFixture) *View { return f.label }},
		"self":            {target: func(f *focusFixture) *View { return f.top.View }},
		"other tree":      {target: func(f *focusFixture) *View { return f.app.NewView(WithCanFocus(true)) }},
		"ancestor closed": {target: func(f *focusFixture) *View { f.panel.canFocus = false; return f.b }},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f := newFocusFixture(t)
			target := tt.target(f)
			if f.top.SetFocus(target) {
				t.Errorf("SetFocus(%v) = true, want false", target)
			}
			if len(f.rec.events) != 0 {
				t.Errorf("rejected SetFocus fired %v", f.rec.events)
			}
			if got := f.top.MostFocused(); got != f.a {
				t.Errorf("MostFocused() = %v, want a", got)
			}
		})
	}
}

func TestFocus_TabNavigation(t *testing.T) {
	type tc struct {
		key  KeyEvent
		want []string
	}

	tests := map[string]tc{
		"tab wraps forward":      {key: KeyEvent{Key: KeyTab}, want: []string{"b", "c", "a", "b"}},
		"down moves forward":     {key: KeyEvent{Key: KeyDown}, want: []string{"b", "c", "a"}},
		"backtab wraps backward": {key: KeyEvent{Key: KeyBacktab}, want: []string{"c", "b", "a", "c"}},
		"shift tab is backtab":   {key: KeyEvent{Key: KeyTab, Mod: ModShift}, want: []string{"c", "b"}},
		"left moves backward":    {key: KeyEvent{Key: KeyLeft}, want: []string{"c", "b"}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f := newFocusFixture(t)
			var got []string
			for range tt.want {
				if !f.app.ProcessKeyEvent(tt.key) {
					t.Fatalf("%s not handled", tt.key)
				}
				got = append(got, f.top.MostFocused().Name())
				if n := len(focusedNames(f.top.View)); n < 2 {
					t.Fatalf("focus chain broken: %v", focusedNames(f.top.View))
				}
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("focus sequence = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFocus_TabSkipsNonTabStops(t *testing.T) {
	f := newFocusFixture(t)
	f.b.SetTabStop(false)

	f.app.ProcessKeyEvent(KeyEvent{Key: KeyTab})
	if got := f.top.MostFocused(); got != f.c {
		t.Errorf("MostFocused() = %v, want c", got)
	}
	// Still focusable directly.
	if !f.top.SetFocus(f.b) {
		t.Error("SetFocus(b) = false for a focusable non-tab-stop")
	}
}

func TestFocus_SetCanFocusFalseMovesFocus(t *testing.T) {
	f := newFocusFixture(t)
	f.a.SetCanFocus(false)

	if got := f.top.MostFocused(); got != f.b {
		t.Errorf("MostFocused() = %v, want b", got)
	}
	want := []string{"blur:a", "focus:b"}
	if !slices.Equal(f.rec.events, want) {
		t.Errorf("events = %v, want %v", f.rec.events, want)
	}
}

func TestFocus_RemoveFocusedSubview(t *testing.T) {
	f := newFocusFixture(t)
	f.panel.RemoveSubview(f.a)

	if f.a.HasFocus() {
		t.Error("removed view kept focus")
	}
	if got := f.top.MostFocused(); got != f.b {
		t.Errorf("MostFocused() = %v, want b", got)
	}
}

func TestFocus_RememberedAcrossModal(t *testing.T) {
	f := newFocusFixture(t)
	f.top.SetFocus(f.b)

	ok := f.app.NewView(WithName("ok"), WithCanFocus(true))
	dialog := f.app.NewToplevel(WithName("dialog"), WithFrame(NewRect(5, 2, 20, 5)))
	dialog.Modal = true
	dialog.AddSubview(ok)
	f.app.Present(dialog)

	if f.b.HasFocus() || f.top.HasFocus() {
		t.Error("covered toplevel kept focus")
	}
	if f.top.MostFocused() != f.b {
		t.Error("covered toplevel forgot its focused view")
	}
	if !ok.HasFocus() {
		t.Error("dialog did not focus its first view")
	}

	// Tab inside the dialog cannot reach the covered toplevel.
	f.app.ProcessKeyEvent(KeyEvent{Key: KeyTab})
	if !ok.HasFocus() {
		t.Error("Tab left the dialog")
	}

	f.app.RequestStop(dialog)
	f.app.applyStops()
	if !f.b.HasFocus() || !f.top.HasFocus() {
		t.Errorf("focus not restored: %v", focusedNames(f.top.View))
	}
	if ok.HasFocus() {
		t.Error("stopped dialog kept focus")
	}
}

func TestFocus_InactiveToplevelRemembersOnly(t *testing.T) {
	f := newFocusFixture(t)
	cover := f.app.NewToplevel(WithName("cover"))
	f.app.Present(cover)
	f.rec.reset()

	if !f.top.SetFocus(f.c) {
		t.Fatal("SetFocus(c) = false")
	}
	if f.c.HasFocus() {
		t.Error("view in a covered toplevel gained focus")
	}
	if f.top.MostFocused() != f.c {
		t.Error("focus pointer not updated")
	}
	for _, e := range f.rec.events {
		if e == "focus:c" {
			t.Errorf("focus hook fired on covered toplevel: %v", f.rec.events)
		}
	}
}
