// Package layout holds the pure parts of the view layout engine: integer
// geometry, the Pos and Dim constraint expressions, and the dependency sort
// that orders sibling views whose constraints reference one another.
//
// Nothing here knows about views. A view is identified by an opaque [Ref]
// and its resolved frame is read through a [FrameSource]. Types are
// re-exported through the root tui package for public consumption.
package layout
