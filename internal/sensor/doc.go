// Package sensor describes hardware sensor chips and the backends that
// enumerate them.
//
// A Chip is a point-in-time snapshot. Callers never hold onto a snapshot
// across ticks; they keep its ChipID and resolve a fresh snapshot through a
// Registry whenever they need current readings.
package sensor
