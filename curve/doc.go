// Package curve turns hand-authored control points into dense, steppable paths
//
// A generated Path is a sequence of Entry values: Move entries carry an absolute
// position, signal entries (Fire) carry none and are consumed by the driver on the
// tick they are reached. Generators build origin-relative templates; Translate and
// Mirror relocate a template for one actor without touching the shared original.
package curve
