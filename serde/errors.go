package serde

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingField     = errors.New("missing field")
	ErrUnknownField     = errors.New("unknown field")
	ErrTypeMismatch     = errors.New("type mismatch")
	ErrUntypedContainer = errors.New("untyped container")
	ErrUnionExhausted   = errors.New("no union alternative matched")
	ErrValue            = errors.New("invalid value")
	ErrEncode           = errors.New("cannot encode value")
)

func at(path string) string {
	if path == "" {
		return "<root>"
	}
	return path
}

// MissingFieldError is returned when a required field is absent from the
// input mapping.
type MissingFieldError struct {
	Path      string // path of the record being decoded
	Field     string
	Available []string // keys present in the input
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing field at %s: %q not found in keys [%s]",
		at(e.Path), e.Field, strings.Join(e.Available, ", "))
}

func (e *MissingFieldError) Is(target error) bool { return target == ErrMissingField }

// UnknownFieldError is returned when DisallowUnknownFields is set and the
// input has a key the record does not declare.
type UnknownFieldError struct {
	Path  string
	Field string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown field at %s: %q", at(e.Path), e.Field)
}

func (e *UnknownFieldError) Is(target error) bool { return target == ErrUnknownField }

// TypeMismatchError is returned when the shape of a value disagrees with
// its declared type.
type TypeMismatchError struct {
	Path     string
	Expected string
	Actual   string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch at %s: expected %s, got %s", at(e.Path), e.Expected, e.Actual)
}

func (e *TypeMismatchError) Is(target error) bool { return target == ErrTypeMismatch }

// UntypedContainerError is returned when decoding into a list or map
// declared without element types.
type UntypedContainerError struct {
	Path string
	Type string
}

func (e *UntypedContainerError) Error() string {
	return fmt.Sprintf("untyped container at %s: cannot decode %s without element types", at(e.Path), e.Type)
}

func (e *UntypedContainerError) Is(target error) bool { return target == ErrUntypedContainer }

// UnionExhaustedError is returned when no alternative of a union could
// decode the value. Errs holds the failure of every alternative tried,
// in declared order.
type UnionExhaustedError struct {
	Path  string
	Union string
	Errs  []error
}

func (e *UnionExhaustedError) Error() string {
	msgs := make([]string, len(e.Errs))
	for i, err := range e.Errs {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("unable to decode %s at %s: [%s]", e.Union, at(e.Path), strings.Join(msgs, "; "))
}

func (e *UnionExhaustedError) Is(target error) bool { return target == ErrUnionExhausted }

func (e *UnionExhaustedError) Unwrap() []error { return e.Errs }

// ValueError is returned when a primitive or record constructor rejects
// a value.
type ValueError struct {
	Path string
	Type string
	Err  error
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("invalid %s at %s: %v", e.Type, at(e.Path), e.Err)
}

func (e *ValueError) Is(target error) bool { return target == ErrValue }

func (e *ValueError) Unwrap() error { return e.Err }

// EncodeError is returned when a value has no mapping representation.
type EncodeError struct {
	Path    string
	Message string
	Err     error
}

func (e *EncodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("encode error at %s: %s: %v", at(e.Path), e.Message, e.Err)
	}
	return fmt.Sprintf("encode error at %s: %s", at(e.Path), e.Message)
}

func (e *EncodeError) Is(target error) bool { return target == ErrEncode }

func (e *EncodeError) Unwrap() error { return e.Err }
