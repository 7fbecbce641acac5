// Package history keeps rolling, fixed-capacity series of sensor readings.
//
// A Buffer is a ring of at most Cap() values that evicts the oldest value on
// overflow. A Store maps display labels to Buffers, creating each one on the
// first Record for its label. Entries are never removed, so the set of labels
// only grows for the lifetime of a Store.
package history
