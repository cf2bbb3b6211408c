package config

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidYAML indicates YAML parsing failed.
	ErrInvalidYAML = errors.New("invalid YAML syntax")

	// ErrValidationFailed indicates the assembled configuration is unusable.
	ErrValidationFailed = errors.New("configuration validation failed")

	// ErrMissingRequiredField indicates a required field is absent.
	ErrMissingRequiredField = errors.New("missing required field")

	// ErrInvalidValue indicates a field holds an out-of-range or malformed value.
	ErrInvalidValue = errors.New("invalid field value")
)

// ValidationError pins a validation failure to its component and field.
type ValidationError struct {
	Component string // priorities, viability, llm or defaults
	ID        string // item within the component, when applicable
	Field     string
	Err       error
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s '%s': field '%s': %v", e.Component, e.ID, e.Field, e.Err)
	}
	return fmt.Sprintf("%s '%s': %v", e.Component, e.ID, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// NewValidationError creates a validation error bound to a component.
func NewValidationError(component, id, field string, err error) *ValidationError {
	return &ValidationError{Component: component, ID: id, Field: field, Err: err}
}

// LoadError attributes a configuration loading failure to its file.
type LoadError struct {
	File string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load %s: %v", e.File, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// NewLoadError creates a load error bound to a file.
func NewLoadError(file string, err error) *LoadError {
	return &LoadError{File: file, Err: err}
}
