package tcelldriver

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/grindlemire/termkit"
)

func TestConvertKey(t *testing.T) {
	type tc struct {
		key  tcell.Key
		r    rune
		mod  tcell.ModMask
		want tui.KeyEvent
	}

	tests := map[string]tc{
		"rune":       {key: tcell.KeyRune, r: 'x', want: tui.KeyEvent{Key: tui.KeyRune, Rune: 'x'}},
		"alt rune":   {key: tcell.KeyRune, r: 'x', mod: tcell.ModAlt, want: tui.KeyEvent{Key: tui.KeyRune, Rune: 'x', Mod: tui.ModAlt}},
		"tab":        {key: tcell.KeyTab, want: tui.KeyEvent{Key: tui.KeyTab}},
		"backtab":    {key: tcell.KeyBacktab, want: tui.KeyEvent{Key: tui.KeyBacktab}},
		"escape":     {key: tcell.KeyEscape, want: tui.KeyEvent{Key: tui.KeyEscape}},
		"backspace2": {key: tcell.KeyBackspace2, want: tui.KeyEvent{Key: tui.KeyBackspace}},
		"page down":  {key: tcell.KeyPgDn, want: tui.KeyEvent{Key: tui.KeyPageDown}},
		"f5":         {key: tcell.KeyF5, want: tui.KeyEvent{Key: tui.KeyF1 + 4}},
		"ctrl q":     {key: tcell.KeyCtrlQ, mod: tcell.ModCtrl, want: tui.KeyEvent{Key: tui.KeyCtrlQ}},
		"shift up":   {key: tcell.KeyUp, mod: tcell.ModShift, want: tui.KeyEvent{Key: tui.KeyUp, Mod: tui.ModShift}},
		"ctrl space": {key: tcell.KeyCtrlSpace, want: tui.KeyEvent{Key: tui.KeyCtrlSpace}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := convertKey(tcell.NewEventKey(tt.key, tt.r, tt.mod))
			if got != tt.want {
				t.Errorf("convertKey() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestMouseState_Transitions(t *testing.T) {
	var m mouseState
	steps := []struct {
		buttons tcell.ButtonMask
		button  tui.MouseButton
		action  tui.MouseAction
	}{
		{tcell.ButtonNone, tui.MouseNone, tui.MouseMotion},
		{tcell.Button1, tui.MouseLeft, tui.MousePress},
		{tcell.Button1, tui.MouseLeft, tui.MouseMotion},
		{tcell.ButtonNone, tui.MouseLeft, tui.MouseRelease},
		{tcell.Button2, tui.MouseRight, tui.MousePress},
		{tcell.ButtonNone, tui.MouseRight, tui.MouseRelease},
		{tcell.WheelUp, tui.MouseWheelUp, tui.MousePress},
	}
	for i, s := range steps {
		got := m.convert(tcell.NewEventMouse(2, 3, s.buttons, tcell.ModNone))
		if got.Button != s.button || got.Action != s.action {
			t.Errorf("step %d: got %v %v, want %v %v", i, got.Button, got.Action, s.button, s.action)
		}
		if got.X != 2 || got.Y != 3 {
			t.Errorf("step %d: position = (%d,%d), want (2,3)", i, got.X, got.Y)
		}
	}
}

func TestColor(t *testing.T) {
	type tc struct {
		in   tui.Color
		want tcell.Color
	}

	tests := map[string]tc{
		"default": {in: tui.DefaultColor(), want: tcell.ColorDefault},
		"ansi":    {in: tui.ANSIColor(9), want: tcell.PaletteColor(9)},
		"rgb":     {in: tui.RGBColor(10, 20, 30), want: tcell.NewRGBColor(10, 20, 30)},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := Color(tt.in); got != tt.want {
				t.Errorf("Color() = %v, want %v", got, tt.want)
			}
		})
	}
}
