package tui

import "fmt"

// KeyMap is a list of key bindings.
type KeyMap []KeyBinding

// KeyBinding associates a key pattern with a handler.
type KeyBinding struct {
	Pattern KeyPattern
	Handler func(KeyEvent)
	Stop    bool // If true, later bindings for the same event do not fire
}

// KeyPattern identifies which key events match a binding.
type KeyPattern struct {
	Key           Key      // Specific key, or 0
	Rune          rune     // Specific rune, or 0
	AnyRune       bool     // Match any printable character
	Mod           Modifier // When non-zero, the event must have exactly these mods
	RequireNoMods bool     // When true, the event must have no modifiers
}

// Matches reports whether ke satisfies the pattern.
func (p KeyPattern) Matches(ke KeyEvent) bool {
	if p.RequireNoMods && ke.Mod != ModNone {
		return false
	}
	if p.Mod != ModNone && ke.Mod != p.Mod {
		return false
	}
	switch {
	case p.AnyRune:
		return ke.Key == KeyRune
	case p.Rune != 0:
		return ke.Key == KeyRune && ke.Rune == p.Rune
	case p.Key != KeyNone:
		return ke.Key == p.Key
	}
	return false
}

func (p KeyPattern) String() string {
	var s string
	switch {
	case p.AnyRune:
		s = "any rune"
	case p.Rune != 0:
		s = fmt.Sprintf("%q", p.Rune)
	default:
		s = p.Key.String()
	}
	if p.Mod != ModNone {
		s = p.Mod.String() + "+" + s
	}
	return s
}

// OnKey creates a broadcast binding for a specific key.
func OnKey(key Key, handler func(KeyEvent)) KeyBinding {
	return KeyBinding{Pattern: KeyPattern{Key: key}, Handler: handler}
}

// OnKeyStop creates a stop-propagation binding for a specific key.
func OnKeyStop(key Key, handler func(KeyEvent)) KeyBinding {
	return KeyBinding{Pattern: KeyPattern{Key: key}, Handler: handler, Stop: true}
}

// OnRune creates a broadcast binding for a printable character.
func OnRune(r rune, handler func(KeyEvent)) KeyBinding {
	return KeyBinding{Pattern: KeyPattern{Rune: r}, Handler: handler}
}

// OnRuneStop creates a stop-propagation binding for a printable character.
func OnRuneStop(r rune, handler func(KeyEvent)) KeyBinding {
	return KeyBinding{Pattern: KeyPattern{Rune: r}, Handler: handler, Stop: true}
}

// OnRunes creates a broadcast binding for every printable character.
func OnRunes(handler func(KeyEvent)) KeyBinding {
	return KeyBinding{Pattern: KeyPattern{AnyRune: true}, Handler: handler}
}
