package models

import (
	"sort"
	"strings"
)

// ValidationError lists request fields that failed validation, keyed by
// their JSON name.
type ValidationError struct {
	Fields map[string]string `json:"errors"`
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+" "+e.Fields[name])
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// Add records a failure for field; the first reason per field wins.
func (e *ValidationError) Add(field, reason string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	if _, exists := e.Fields[field]; !exists {
		e.Fields[field] = reason
	}
}

// OrNil returns nil when no field failed, so callers can return it directly.
func (e *ValidationError) OrNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

func (e *ValidationError) requireNonBlank(field, value string) {
	if strings.TrimSpace(value) == "" {
		e.Add(field, "is required")
	}
}
