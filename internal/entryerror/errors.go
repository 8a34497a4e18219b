// Package entryerror defines the typed failures returned while creating budget entries.
// Callers match them with errors.As to build a message for the user.
package entryerror

import (
	"fmt"
	"strings"
)

// ConfigurationError reports a required setting that is not set.
type ConfigurationError struct {
	Setting string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("missing configuration: %s is not set", e.Setting)
}

// TemplateError reports a content template that could not be read.
type TemplateError struct {
	Path string
	Err  error
}

func (e *TemplateError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("could not read template %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("could not read template %s", e.Path)
}

func (e *TemplateError) Unwrap() error {
	return e.Err
}

// OptionSourceError reports an accounts or tags container that does not exist.
type OptionSourceError struct {
	Source string
	Path   string
	Err    error
}

func (e *OptionSourceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("could not load %s from %s: %v", e.Source, e.Path, e.Err)
	}
	return fmt.Sprintf("could not load %s from %s", e.Source, e.Path)
}

func (e *OptionSourceError) Unwrap() error {
	return e.Err
}

// InvalidPathError reports a document path without a parent container.
type InvalidPathError struct {
	Path string
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("could not extract folder from %q", e.Path)
}

// WriteExhaustedError reports that every candidate path was already taken.
type WriteExhaustedError struct {
	Path     string
	Attempts int
}

func (e *WriteExhaustedError) Error() string {
	return fmt.Sprintf("could not create file %s: attempted %d times", e.Path, e.Attempts)
}

// StoreError wraps a document store failure unrelated to name collisions.
type StoreError struct {
	Op   string
	Path string
	Err  error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// ValidationError reports a record that cannot be turned into an entry.
// Fields lists the offending record fields in record order.
type ValidationError struct {
	Fields []string
	Reason string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Reason, strings.Join(e.Fields, ", "))
}
