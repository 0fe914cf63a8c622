package filter

import "fmt"

// CompilationError indicates an expression failed to compile
type CompilationError struct {
	Expression string
	Reason     string
}

// Error implements the error interface
func (e *CompilationError) Error() string {
	return fmt.Sprintf("failed to compile filter %q: %s", e.Expression, e.Reason)
}

// EvaluationError indicates a compiled expression failed at runtime
type EvaluationError struct {
	Expression string
	Err        error
}

// Error implements the error interface
func (e *EvaluationError) Error() string {
	return fmt.Sprintf("failed to evaluate filter %q: %v", e.Expression, e.Err)
}

// Unwrap returns the underlying evaluation error
func (e *EvaluationError) Unwrap() error {
	return e.Err
}
