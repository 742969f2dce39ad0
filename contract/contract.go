package contract

import "fmt"

// Code is a machine-readable violation code.
type Code string

const (
	// CodeCapability marks an operation requested on a cursor tier that
	// does not support it, such as stepping a single-pass cursor backward.
	CodeCapability Code = "CAPABILITY_VIOLATION"
	// CodePrecondition marks an operation invoked outside its contract,
	// such as incrementing a cursor already at end or comparing cursors
	// from unrelated sequences.
	CodePrecondition Code = "PRECONDITION_VIOLATION"
)

// Violation is a fatal contract failure. Violation values are panicked at
// the violation site, never returned.
type Violation struct {
	// Code classifies the violation.
	Code Code `json:"code"`
	// Operation is the cursor operation that was violated.
	Operation string `json:"operation"`
	// Message describes what the caller did wrong.
	Message string `json:"message"`
}

// Error returns the string representation of the violation.
func (v *Violation) Error() string {
	return fmt.Sprintf("%s: %s: %s", v.Code, v.Operation, v.Message)
}

// Capability creates a violation for an operation unsupported by the
// cursor's capability tier.
func Capability(operation, message string) *Violation {
	return &Violation{Code: CodeCapability, Operation: operation, Message: message}
}

// Precondition creates a violation for an operation whose preconditions did
// not hold.
func Precondition(operation, message string) *Violation {
	return &Violation{Code: CodePrecondition, Operation: operation, Message: message}
}

// AsViolation extracts a Violation from a recovered panic value.
func AsViolation(recovered any) (*Violation, bool) {
	v, ok := recovered.(*Violation)
	return v, ok
}
