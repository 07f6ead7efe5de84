// Package errs provides Error, an immutable error value that records the
// source location (file, line) where it was reported together with either a
// plain message or a wrapped underlying error.
//
// Wrapping an Error in another Error forms a causal chain from the most recent
// call site down to the original failure. The chain renders as nested markup:
//
//	<error><file>main.go</file><line>20</line><reason><error>...</error></reason></error>
//
// Call-site helpers capture the caller's location automatically:
//   - Wrap/Try/TryResult: propagate a failure, stamping the current call site
//   - New: build a leaf Error from a message
//   - Fail/FailResult: return a failure built from a message
//   - Opt/OptRef: turn an absent value into a failure
//
// FromMessage and FromCause take the location explicitly.
package errs
