// Package tui is the core of a layered terminal UI toolkit.
//
// An App owns a stack of Toplevels. Each Toplevel is the root of a tree of
// Views stored in an Arena and addressed by generational ViewID handles.
// Views are positioned either absolutely or with Pos/Dim constraint
// expressions that may reference sibling frames; LayoutSubviews orders them
// by dependency and reports cycles as *RecursiveLayoutError.
//
// Every View paints into its own Layer. Dirty regions propagate up and down
// the tree, and the Compositor copies only the dirty rows of the visible
// Toplevels into a single ScreenBuffer that a Driver flushes to the terminal.
//
// Keyboard input is routed in three phases (hot, focused, cold) across the
// toplevel stack, stopping at modal toplevels. Mouse input supports grabs,
// enter/leave tracking, bubbling, and continuous press.
package tui
