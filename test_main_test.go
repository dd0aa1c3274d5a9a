package tui

import (
	"os"
	"testing"

	"github.com/grindlemire/termkit/internal/debug"
)

func TestMain(m *testing.M) {
	os.Unsetenv(debug.EnvVar)
	os.Exit(m.Run())
}

// newTestApp returns an App drawing to a width x height mock terminal.
func newTestApp(t *testing.T, width, height int, opts ...AppOption) (*App, *MockTerminal) {
	t.Helper()
	term := NewMockTerminal(width, height)
	app, err := NewApp(term, nil, opts...)
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	return app, term
}

// newTestTop presents a full-screen toplevel holding views.
func newTestTop(t *testing.T, app *App, views ...*View) *Toplevel {
	t.Helper()
	top := app.NewToplevel(WithName("top"))
	top.AddSubview(views...)
	app.Present(top)
	return top
}

// fillDraw paints the whole view with r.
func fillDraw(r rune) Option {
	return WithOnDraw(func(v *View, p *Painter) {
		p.Fill(v.Bounds(), r, NewStyle())
	})
}

// recorder collects named events in order.
type recorder struct {
	events []string
}

func (r *recorder) add(s string) {
	r.events = append(r.events, s)
}

func (r *recorder) reset() {
	r.events = nil
}
