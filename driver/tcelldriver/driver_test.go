package tcelldriver

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/grindlemire/termkit"
)

func newSimDriver(t *testing.T, w, h int) (*Driver, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	d, err := NewWithScreen(sim)
	if err != nil {
		t.Fatalf("NewWithScreen: %v", err)
	}
	sim.SetSize(w, h)
	t.Cleanup(func() { d.Close() })
	return d, sim
}

func TestDriver_Size(t *testing.T) {
	d, _ := newSimDriver(t, 20, 5)
	if got := d.Size(); got != (tui.Size{Width: 20, Height: 5}) {
		t.Errorf("Size() = %v, want 20x5", got)
	}
}

func TestDriver_FlushWritesComposedScreen(t *testing.T) {
	d, sim := newSimDriver(t, 20, 5)
	app, err := tui.NewApp(d, d, tui.WithoutMouse())
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	top := app.NewToplevel(tui.WithOnDraw(func(_ *tui.View, p *tui.Painter) {
		p.DrawString(1, 2, "hello", tui.NewStyle().Bold())
	}))
	app.Present(top)
	if err := app.Settle(); err != nil {
		t.Fatalf("Settle: %v", err)
	}

	for i, want := range "hello" {
		r, _, style, _ := sim.GetContent(1+i, 2)
		if r != want {
			t.Errorf("cell (%d,2) = %q, want %q", 1+i, r, want)
		}
		if style != Style(tui.NewStyle().Bold()) {
			t.Errorf("cell (%d,2) style mismatch", 1+i)
		}
	}
	if got := len(app.Screen().DirtyRows()); got != 0 {
		t.Errorf("dirty rows after flush = %d, want 0", got)
	}
}

func TestDriver_PollEvent(t *testing.T) {
	type tc struct {
		inject func(tcell.SimulationScreen)
		want   tui.Event
	}

	tests := map[string]tc{
		"rune": {
			inject: func(s tcell.SimulationScreen) { s.InjectKey(tcell.KeyRune, 'q', tcell.ModNone) },
			want:   tui.KeyEvent{Key: tui.KeyRune, Rune: 'q'},
		},
		"enter": {
			inject: func(s tcell.SimulationScreen) { s.InjectKey(tcell.KeyEnter, 0, tcell.ModNone) },
			want:   tui.KeyEvent{Key: tui.KeyEnter},
		},
		"mouse press": {
			inject: func(s tcell.SimulationScreen) { s.InjectMouse(3, 4, tcell.Button1, tcell.ModNone) },
			want:   tui.MouseEvent{X: 3, Y: 4, Button: tui.MouseLeft, Action: tui.MousePress},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			d, sim := newSimDriver(t, 20, 5)
			drain(d)
			tt.inject(sim)
			got, ok := d.PollEvent(time.Second)
			if !ok {
				t.Fatal("PollEvent returned no event")
			}
			if got != tt.want {
				t.Errorf("PollEvent() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestDriver_PollEventTimeout(t *testing.T) {
	d, _ := newSimDriver(t, 10, 2)
	drain(d)
	if ev, ok := d.PollEvent(10 * time.Millisecond); ok {
		t.Errorf("PollEvent() = %v, want timeout", ev)
	}
	if ev, ok := d.PollEvent(0); ok {
		t.Errorf("PollEvent(0) = %v, want nothing", ev)
	}
}

func TestDriver_Interrupt(t *testing.T) {
	d, _ := newSimDriver(t, 10, 2)
	drain(d)
	done := make(chan bool)
	go func() {
		_, ok := d.PollEvent(-1)
		done <- ok
	}()
	time.Sleep(10 * time.Millisecond)
	if err := d.Interrupt(); err != nil {
		t.Fatalf("Interrupt: %v", err)
	}
	select {
	case ok := <-done:
		if ok {
			t.Error("interrupted PollEvent reported an event")
		}
	case <-time.After(time.Second):
		t.Fatal("PollEvent did not return after Interrupt")
	}
}

// drain discards the resize event a simulation screen posts on SetSize.
func drain(d *Driver) {
	for {
		if _, ok := d.PollEvent(20 * time.Millisecond); !ok {
			return
		}
	}
}
