// Package contract defines the fatal violation type panicked when a cursor
// operation is called outside its contract.
//
// Violations are programming errors, not runtime conditions: they are never
// returned as ordinary error values and callers are not expected to recover
// from them. The two codes distinguish an operation requested on a cursor
// tier that cannot support it from an operation whose preconditions did not
// hold.
package contract
