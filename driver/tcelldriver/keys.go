package tcelldriver

import (
	"github.com/gdamore/tcell/v2"
	"github.com/grindlemire/termkit"
)

var namedKeys = map[tcell.Key]tui.Key{
	tcell.KeyEnter:      tui.KeyEnter,
	tcell.KeyTab:        tui.KeyTab,
	tcell.KeyBacktab:    tui.KeyBacktab,
	tcell.KeyEscape:     tui.KeyEscape,
	tcell.KeyBackspace:  tui.KeyBackspace,
	tcell.KeyBackspace2: tui.KeyBackspace,
	tcell.KeyDelete:     tui.KeyDelete,
	tcell.KeyInsert:     tui.KeyInsert,
	tcell.KeyUp:         tui.KeyUp,
	tcell.KeyDown:       tui.KeyDown,
	tcell.KeyLeft:       tui.KeyLeft,
	tcell.KeyRight:      tui.KeyRight,
	tcell.KeyHome:       tui.KeyHome,
	tcell.KeyEnd:        tui.KeyEnd,
	tcell.KeyPgUp:       tui.KeyPageUp,
	tcell.KeyPgDn:       tui.KeyPageDown,
	tcell.KeyCtrlSpace:  tui.KeyCtrlSpace,
}

func convertMods(m tcell.ModMask) tui.Modifier {
	var mod tui.Modifier
	if m&tcell.ModCtrl != 0 {
		mod |= tui.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		mod |= tui.ModAlt
	}
	if m&tcell.ModShift != 0 {
		mod |= tui.ModShift
	}
	return mod
}

func convertKey(ev *tcell.EventKey) tui.KeyEvent {
	ke := tui.KeyEvent{Mod: convertMods(ev.Modifiers())}
	k := ev.Key()
	if k == tcell.KeyRune {
		ke.Key = tui.KeyRune
		ke.Rune = ev.Rune()
		return ke
	}
	if named, ok := namedKeys[k]; ok {
		ke.Key = named
		return ke
	}
	switch {
	case k >= tcell.KeyF1 && k <= tcell.KeyF12:
		ke.Key = tui.KeyF1 + tui.Key(k-tcell.KeyF1)
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		ke.Key = tui.KeyCtrlA + tui.Key(k-tcell.KeyCtrlA)
		// Ctrl is implied by the key itself.
		ke.Mod &^= tui.ModCtrl
	}
	return ke
}

// mouseState turns tcell's button-state reports into press, release and
// motion transitions.
type mouseState struct {
	held tcell.ButtonMask
}

func (m *mouseState) convert(ev *tcell.EventMouse) tui.MouseEvent {
	x, y := ev.Position()
	me := tui.MouseEvent{X: x, Y: y, Mod: convertMods(ev.Modifiers())}
	buttons := ev.Buttons()

	switch {
	case buttons&tcell.WheelUp != 0:
		me.Button, me.Action = tui.MouseWheelUp, tui.MousePress
		return me
	case buttons&tcell.WheelDown != 0:
		me.Button, me.Action = tui.MouseWheelDown, tui.MousePress
		return me
	}

	pressed := buttons & (tcell.Button1 | tcell.Button2 | tcell.Button3)
	switch {
	case pressed != 0 && pressed != m.held:
		me.Button, me.Action = button(pressed), tui.MousePress
	case pressed == 0 && m.held != 0:
		me.Button, me.Action = button(m.held), tui.MouseRelease
	case pressed != 0:
		me.Button, me.Action = button(pressed), tui.MouseMotion
	default:
		me.Button, me.Action = tui.MouseNone, tui.MouseMotion
	}
	m.held = pressed
	return me
}

func button(mask tcell.ButtonMask) tui.MouseButton {
	switch {
	case mask&tcell.Button1 != 0:
		return tui.MouseLeft
	case mask&tcell.Button3 != 0:
		return tui.MouseMiddle
	case mask&tcell.Button2 != 0:
		return tui.MouseRight
	}
	return tui.MouseNone
}
