package models

import "fmt"

// ValidationError reports a field that failed a structural rule
// (required, max length, enum membership, wrong type).
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %q: %s", e.Field, e.Reason)
}

// UniquenessViolation reports a write that would duplicate a unique value,
// e.g. an already-registered barcode code.
type UniquenessViolation struct {
	Field string
	Value string
}

func (e *UniquenessViolation) Error() string {
	return fmt.Sprintf("%s %q already exists", e.Field, e.Value)
}

// ReferentialIntegrityError reports a barcode or scan row pointing at a
// food item id that does not exist. Writes carrying one are rejected
// before they reach the database.
type ReferentialIntegrityError struct {
	Entity     string
	FoodItemID uint
}

func (e *ReferentialIntegrityError) Error() string {
	return fmt.Sprintf("%s references unknown food item %d", e.Entity, e.FoodItemID)
}
