package tui

import "github.com/grindlemire/termkit/internal/debug"

// Arena owns every View of an App. Views refer to each other through
// ViewID handles; a handle whose generation no longer matches its slot is
// stale and resolves to nil.
type Arena struct {
	slots []arenaSlot
	free  []uint32
	live  int
	blank Cell
	app   *App
}

type arenaSlot struct {
	gen  uint32
	view *View
}

// NewArena creates an empty arena not attached to any App. Views created
// from it can be laid out, displayed, and focused on their own.
func NewArena() *Arena {
	return &Arena{
		// Slot 0 is reserved so the zero ViewID never resolves.
		slots: make([]arenaSlot, 1, 64),
		blank: BlankCell,
	}
}

// NewView allocates a view and applies opts.
func (a *Arena) NewView(opts ...Option) *View {
	var idx uint32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		a.slots = append(a.slots, arenaSlot{})
		idx = uint32(len(a.slots) - 1)
	}
	slot := &a.slots[idx]
	slot.gen++

	v := &View{
		arena:   a,
		id:      ViewID{Index: idx, Gen: slot.gen},
		tabStop: true,
		layer:   NewLayer(0, 0, a.blank),
	}
	slot.view = v
	a.live++

	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Lookup resolves id, returning nil for NoView and stale handles.
func (a *Arena) Lookup(id ViewID) *View {
	if id.IsZero() || int(id.Index) >= len(a.slots) {
		return nil
	}
	slot := a.slots[id.Index]
	if slot.gen != id.Gen {
		return nil
	}
	return slot.view
}

// FrameOf implements layout.FrameSource over the whole arena.
func (a *Arena) FrameOf(id ViewID) (Rect, bool) {
	v := a.Lookup(id)
	if v == nil {
		return Rect{}, false
	}
	return v.frame, true
}

// Release detaches v from its superview and frees v and every descendant.
// Handles to released views become stale.
func (a *Arena) Release(v *View) {
	if v == nil || v.arena != a || a.Lookup(v.id) != v {
		return
	}
	if p := v.Superview(); p != nil {
		p.RemoveSubview(v)
	}
	a.release(v)
}

func (a *Arena) release(v *View) {
	for _, id := range v.children {
		if c := a.Lookup(id); c != nil {
			a.release(c)
		}
	}
	debug.Log("Arena.Release: %s", v)
	if a.app != nil {
		a.app.forgetView(v.id)
	}
	idx := v.id.Index
	a.slots[idx].view = nil
	a.free = append(a.free, idx)
	a.live--
	v.children = nil
	v.parent = NoView
	v.focused = NoView
	v.released = true
}

// Len returns the number of live views.
func (a *Arena) Len() int {
	return a.live
}
