package tui

import "fmt"

// Event is implemented by every input event.
type Event interface {
	isEvent()
}

// KeyEvent is a keyboard input event.
type KeyEvent struct {
	// Key is KeyRune for printable characters.
	Key  Key
	Rune rune
	Mod  Modifier
}

func (KeyEvent) isEvent() {}

// IsRune reports whether the event is a printable character.
func (e KeyEvent) IsRune() bool {
	return e.Key == KeyRune
}

// Is reports whether the event is key with exactly the combined mods.
// Without mods only the key is compared.
func (e KeyEvent) Is(key Key, mods ...Modifier) bool {
	if e.Key != key {
		return false
	}
	if len(mods) == 0 {
		return true
	}
	var combined Modifier
	for _, m := range mods {
		combined |= m
	}
	return e.Mod == combined
}

func (e KeyEvent) String() string {
	name := e.Key.String()
	if e.Key == KeyRune {
		name = fmt.Sprintf("%q", e.Rune)
	}
	if e.Mod != ModNone {
		return e.Mod.String() + "+" + name
	}
	return name
}

// ResizeEvent reports a new terminal size.
type ResizeEvent struct {
	Width  int
	Height int
}

func (ResizeEvent) isEvent() {}

// MouseButton identifies the button involved in a mouse event.
type MouseButton int

const (
	// MouseNone is used for motion, enter and leave events.
	MouseNone MouseButton = iota
	MouseLeft
	MouseMiddle
	MouseRight
	MouseWheelUp
	MouseWheelDown
)

var mouseButtonNames = [...]string{"None", "Left", "Middle", "Right", "WheelUp", "WheelDown"}

func (b MouseButton) String() string {
	if b >= 0 && int(b) < len(mouseButtonNames) {
		return mouseButtonNames[b]
	}
	return "MouseButton(" + fmt.Sprint(int(b)) + ")"
}

// MouseAction is the kind of mouse event.
type MouseAction int

const (
	MousePress MouseAction = iota
	MouseRelease
	// MouseMotion is movement; with a button held it is a drag.
	MouseMotion
	MouseEnter
	MouseLeave
)

func (a MouseAction) String() string {
	switch a {
	case MousePress:
		return "Press"
	case MouseRelease:
		return "Release"
	case MouseMotion:
		return "Motion"
	case MouseEnter:
		return "Enter"
	case MouseLeave:
		return "Leave"
	}
	return "MouseAction(" + fmt.Sprint(int(a)) + ")"
}

// MouseEvent is a mouse input event. Readers report X and Y in screen
// coordinates; the router rewrites them to the receiving view's local
// coordinates and keeps the screen position in AbsX and AbsY.
type MouseEvent struct {
	X, Y       int
	AbsX, AbsY int
	Button     MouseButton
	Action     MouseAction
	Mod        Modifier

	// OutsideFrame is set for events delivered to a grab view while the
	// pointer is outside its bounds.
	OutsideFrame bool

	// Target is the view the event is being delivered to.
	Target ViewID
}

func (MouseEvent) isEvent() {}

// IsMotionOnly reports whether the event is movement without a button.
func (e MouseEvent) IsMotionOnly() bool {
	return e.Action == MouseMotion && e.Button == MouseNone
}
