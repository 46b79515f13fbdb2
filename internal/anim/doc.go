// Package anim drives animated transitions between Bloch-sphere states.
//
// A [Driver] is a single-owner state machine: it is either idle at a state
// or animating from a captured start point toward a target along the
// great-circle arc. The owner feeds it targets with [Driver.SetTarget] and
// clock ticks with [Driver.Step]; the driver never schedules itself, so any
// frame source works — the TUI uses bubbletea's Tick, tests use synthetic
// instants.
//
// A target that arrives mid-flight supersedes the running animation: the
// current interpolated point becomes the new start, the old animation never
// completes and never fires its end callback.
//
// # Thread Safety
//
// Driver instances are NOT thread-safe. Each belongs to exactly one
// owner (one TUI model, one test), which is the only caller of its methods.
package anim
