// Package kernel holds value objects shared by the order and status registry models:
// UUID identifiers and fixed-precision currency Amounts.
package kernel
