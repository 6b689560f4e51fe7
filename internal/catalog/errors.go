package catalog

import (
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
)

var (
	// ErrValidation matches every *ValidationError.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound matches every *NotFoundError.
	ErrNotFound = errors.New("book not found")
	// ErrStorage matches every *StorageError.
	ErrStorage = errors.New("storage failure")
)

// Rule names the input rule a ValidationError violated.
type Rule string

const (
	RuleFieldsRequired    Rule = "fields_required"
	RuleYearNotNumeric    Rule = "year_not_numeric"
	RuleColumnNotEditable Rule = "column_not_editable"
)

// ValidationError reports bad or missing input. Nothing is written when it is returned.
type ValidationError struct {
	Rule  Rule
	Field string
	Value string
}

func (e *ValidationError) Error() string {
	switch e.Rule {
	case RuleFieldsRequired:
		return fmt.Sprintf("%s is required", e.Field)
	case RuleYearNotNumeric:
		return fmt.Sprintf("year must be numeric, got %q", e.Value)
	case RuleColumnNotEditable:
		return fmt.Sprintf("column %q cannot be edited", e.Field)
	default:
		return fmt.Sprintf("invalid %s", e.Field)
	}
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NotFoundError reports an update that targeted a book which does not exist.
type NotFoundError struct {
	ID uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("book %d not found", e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// StorageError wraps a failure of the underlying database.
type StorageError struct {
	Op   string
	Code string // SQLite result code, empty when the driver did not report one
	Err  error
}

func (e *StorageError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %v (sqlite: %s)", e.Op, e.Err, e.Code)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}

func storageError(op string, err error) error {
	se := &StorageError{Op: op, Err: err}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		se.Code = sqliteErr.Code.Error()
	}
	return se
}
