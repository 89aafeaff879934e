package bai2

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned when the input holds no non-blank line.
var ErrEmptyInput = errors.New("bai2: empty input")

// ErrMissingField is wrapped by a FieldParseError when a record ends before a
// required field.
var ErrMissingField = errors.New("missing field")

// UnknownRecordTypeError reports a line whose record type code is not one of the
// eight BAI2 record types.
type UnknownRecordTypeError struct {
	Line int
	Code string
}

func (e *UnknownRecordTypeError) Error() string {
	return fmt.Sprintf("bai2: line %d: unknown record type %q", e.Line, e.Code)
}

// OrphanContinuationError reports a continuation record with nothing to continue.
// Previous is empty when the continuation is the first record of the input.
type OrphanContinuationError struct {
	Line     int
	Previous RecordType
}

func (e *OrphanContinuationError) Error() string {
	if e.Previous == "" {
		return fmt.Sprintf("bai2: line %d: continuation without a preceding record", e.Line)
	}
	return fmt.Sprintf("bai2: line %d: continuation follows %s, which cannot be continued", e.Line, e.Previous)
}

// UnexpectedRecordOrderError reports a record that breaks the File > Group > Account
// nesting. RecordType is empty when the input ends with contexts still open.
type UnexpectedRecordOrderError struct {
	Line       int
	RecordType RecordType
	Context    string
	Reason     string
}

func (e *UnexpectedRecordOrderError) Error() string {
	if e.RecordType == "" {
		return fmt.Sprintf("bai2: line %d: unexpected end of input in %s context: %s", e.Line, e.Context, e.Reason)
	}
	return fmt.Sprintf("bai2: line %d: unexpected %s in %s context: %s", e.Line, e.RecordType, e.Context, e.Reason)
}

// FieldParseError reports a field that does not have the shape its position requires.
type FieldParseError struct {
	Line       int
	RecordType RecordType
	Field      string
	Value      string
	Err        error
}

func (e *FieldParseError) Error() string {
	return fmt.Sprintf("bai2: line %d: %s field %s: cannot parse %q: %v", e.Line, e.RecordType, e.Field, e.Value, e.Err)
}

func (e *FieldParseError) Unwrap() error {
	return e.Err
}
