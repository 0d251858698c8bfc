package errors

import (
	"fmt"
)

// InvalidArgumentsError occurs when a verb's required parameter combination is not satisfied
type InvalidArgumentsError struct {
	Verb   string
	Reason string
}

// Error returns a textual representation of this InvalidArgumentsError
func (e InvalidArgumentsError) Error() string {
	if e.Verb == "" {
		return fmt.Sprintf("Invalid arguments: %s", e.Reason)
	}
	return fmt.Sprintf("Invalid arguments to %s(): %s", e.Verb, e.Reason)
}

// NameCollisionError occurs when a requested output column name collides with an existing or reserved name
type NameCollisionError struct {
	Name   string
	Reason string
}

// Error returns a textual representation of this NameCollisionError
func (e NameCollisionError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("A column named '%s' already exists", e.Name)
	}
	return fmt.Sprintf("A column named '%s' already exists. %s", e.Name, e.Reason)
}

// KeyResolutionError occurs when a referenced column name, column position or grouping key does not exist
type KeyResolutionError struct {
	Key interface{}
}

// Error returns a textual representation of this KeyResolutionError
func (e KeyResolutionError) Error() string {
	if _, ok := e.Key.(string); ok {
		return fmt.Sprintf("Column %q does not exist", e.Key)
	}
	return fmt.Sprintf("Column %v does not exist", e.Key)
}

// IncompatibleColumnError occurs when a column's length or type does not fit the Table it is being added to
type IncompatibleColumnError struct {
	Name   string
	Reason string
}

// Error returns a textual representation of this IncompatibleColumnError
func (e IncompatibleColumnError) Error() string {
	return fmt.Sprintf("Column %s is not compatible with Table: %s", e.Name, e.Reason)
}
