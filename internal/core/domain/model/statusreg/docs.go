// Package statusreg models the state/status registry: which statuses are registered
// for which lifecycle states, and which status is a state's default.
//
// The registry is owned and administered outside the save pipeline; the integrity hook
// only reads it.
package statusreg
