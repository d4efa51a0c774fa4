// Package selection provides rectangular selection management for the grid
// editing engine.
//
// Selection Model:
//
// Selections use an anchor/active model where:
//   - Anchor: the corner where the selection started, fixed during extends
//   - Active: the cell that follows the cursor (where editing would occur)
//
// The selection range is stored un-normalized: Start is the anchor corner and
// End is the active corner, in whichever order the user made them. Consumers
// that need the min/max rectangle call Extent.
//
// The anchor is kept as its own field for the lifetime of an extend sequence.
// Re-deriving it from min(Start, End) after each step silently collapses a
// multi-step Shift+move sequence to its last two points, so State never does
// that.
//
// Bounds:
//
// Position-taking operations receive a Bounds value describing the grid size
// and silently ignore out-of-range input. Move is the exception: it clamps
// one-step movement to the edges instead of rejecting it.
//
// Thread Safety:
//
// State is not thread-safe and is protected by the owning engine.
package selection
