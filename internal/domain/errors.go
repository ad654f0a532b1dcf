package domain

import (
	"fmt"
	"sort"
	"strings"
)

// FieldErrors maps a property name to every rule it failed.
type FieldErrors map[string][]string

func (fe FieldErrors) String() string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, strings.Join(fe[k], ", ")))
	}
	return strings.Join(parts, "; ")
}

// NotFoundError is returned when a lookup by identifier finds nothing.
type NotFoundError struct {
	ID string
}

func NewNotFoundError(id string) *NotFoundError {
	return &NotFoundError{ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Entity not found using ID %s", e.ID)
}

// EntityValidationError carries the field errors of a rejected entity.
type EntityValidationError struct {
	Errors FieldErrors
}

func (e *EntityValidationError) Error() string {
	return "Entity Validation Error: " + e.Errors.String()
}

// LoadEntityError means stored data could not be turned back into a valid entity.
type LoadEntityError struct {
	Errors FieldErrors
}

func (e *LoadEntityError) Error() string {
	return "Entity not be loaded: " + e.Errors.String()
}

type InvalidUUIDError struct {
	Value string
}

func (e *InvalidUUIDError) Error() string {
	return fmt.Sprintf("ID must be a valid UUID: %q", e.Value)
}
