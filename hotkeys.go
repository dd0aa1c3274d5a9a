package tui

import "fmt"

// HotKeyID identifies a registered global hot key.
type HotKeyID int

// hotKeyEntry is a binding with its registration id.
type hotKeyEntry struct {
	id      HotKeyID
	binding KeyBinding
}

// hotKeyTable holds the App's global hot keys in registration order.
// They run before any toplevel sees the event.
type hotKeyTable struct {
	entries []hotKeyEntry
	nextID  HotKeyID
}

// add registers b, rejecting a second stop binding for the same pattern:
// it would be ambiguous which should win.
func (t *hotKeyTable) add(b KeyBinding) (HotKeyID, error) {
	if b.Handler == nil {
		return 0, fmt.Errorf("hot key %s has no handler", b.Pattern)
	}
	if b.Stop {
		for _, e := range t.entries {
			if e.binding.Stop && e.binding.Pattern == b.Pattern {
				return 0, fmt.Errorf("conflicting stop handlers for hot key %s (ids %d and %d)",
					b.Pattern, e.id, t.nextID+1)
			}
		}
	}
	t.nextID++
	t.entries = append(t.entries, hotKeyEntry{id: t.nextID, binding: b})
	return t.nextID, nil
}

func (t *hotKeyTable) remove(id HotKeyID) bool {
	for i, e := range t.entries {
		if e.id == id {
			t.entries = append(t.entries[:i], t.entries[i+1:]...)
			return true
		}
	}
	return false
}

// dispatch runs every matching handler in registration order, stopping
// after a stop binding. It reports whether anything matched.
func (t *hotKeyTable) dispatch(ke KeyEvent) bool {
	matched := false
	// Handlers may register or remove hot keys.
	entries := append([]hotKeyEntry(nil), t.entries...)
	for _, e := range entries {
		if !e.binding.Pattern.Matches(ke) {
			continue
		}
		matched = true
		e.binding.Handler(ke)
		if e.binding.Stop {
			break
		}
	}
	return matched
}
