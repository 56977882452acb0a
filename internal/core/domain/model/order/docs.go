// Package order provides the Order aggregate as seen by the state/status integrity hook.
//
// An order carries two coupled lifecycle attributes:
//   - State: the coarse lifecycle phase (new, processing, complete, closed, ...), a fixed set
//   - Status: a merchant-defined label that is only valid while registered for the current state
//
// Besides the pair itself the aggregate exposes the financial totals and the capability
// flags (can invoice, can ship, ...) that decide which state the order must move to next,
// and a pending state/status slot that the pre-save hook fills and the save pipeline commits.
package order
