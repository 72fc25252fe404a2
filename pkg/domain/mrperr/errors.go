// Package mrperr defines the typed error kinds the engine can return (§7).
// The engine is fail-fast: any of these aborts the run, fires Failed, and
// releases transient storage. There is no mid-run retry.
package mrperr

import "fmt"

// CyclicBOMError reports that level assignment did not terminate within the
// bounded number of relaxation passes. Witness is the cycle path discovered
// by the level assigner, part identifiers in traversal order.
type CyclicBOMError struct {
	Witness []string
}

func (e *CyclicBOMError) Error() string {
	return fmt.Sprintf("cyclic BOM detected: %v", e.Witness)
}

// StorageError wraps a failure from the storage adapter.
type StorageError struct {
	Cause error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error: %v", e.Cause)
}

func (e *StorageError) Unwrap() error {
	return e.Cause
}

// AlreadyRunningError reports that a run was requested while another run is
// already in progress.
type AlreadyRunningError struct{}

func (e *AlreadyRunningError) Error() string {
	return "a run is already in progress"
}

// CancelledError reports that a run's cancellation token fired.
type CancelledError struct{}

func (e *CancelledError) Error() string {
	return "run cancelled"
}

// ConfigError reports an invalid configuration option.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid config field %q: %s", e.Field, e.Reason)
}

// InternalInvariantViolationError reports that one of the netter's §4.5.2
// invariants tripped. This always indicates a bug in the engine, never bad
// input data.
type InternalInvariantViolationError struct {
	What string
}

func (e *InternalInvariantViolationError) Error() string {
	return fmt.Sprintf("internal invariant violated: %s", e.What)
}

// NewStorageError wraps cause as a StorageError, or returns nil if cause is nil.
func NewStorageError(cause error) error {
	if cause == nil {
		return nil
	}
	return &StorageError{Cause: cause}
}
