package serde

import (
	"encoding"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/signadot/serde/ir"
)

// Primitive returns a descriptor for an opaque type T, decoded by calling
// from with the raw node and encoded by calling to.
//
// from may return a *TypeMismatchError when the node has the wrong shape;
// any other error is reported as a *ValueError.
func Primitive[T any](name string, from func(*ir.Node) (T, error), to func(T) (*ir.Node, error)) Type[T] {
	return newPrimitive(name, from, to)
}

func newPrimitive[T any](name string, from func(*ir.Node) (T, error), to func(T) (*ir.Node, error)) *primitive[T] {
	return &primitive[T]{name: name, from: from, to: to}
}

type primitive[T any] struct {
	name string
	from func(*ir.Node) (T, error)
	to   func(T) (*ir.Node, error)
}

func (p *primitive[T]) Name() string        { return p.name }
func (p *primitive[T]) Kind() Kind          { return PrimitiveKind }
func (p *primitive[T]) Elems() []Descriptor { return nil }
func (p *primitive[T]) Optional() bool      { return false }

func (p *primitive[T]) noneAny() any {
	var zero T
	return zero
}

func (p *primitive[T]) decode(node *ir.Node, path string, _ *decodeConfig) (T, error) {
	v, err := p.from(node)
	if err == nil {
		return v, nil
	}
	var zero T
	var tm *TypeMismatchError
	if errors.As(err, &tm) {
		return zero, &TypeMismatchError{Path: path, Expected: tm.Expected, Actual: tm.Actual}
	}
	return zero, &ValueError{Path: path, Type: p.name, Err: err}
}

func (p *primitive[T]) decodeAny(node *ir.Node, path string, dc *decodeConfig) (any, error) {
	v, err := p.decode(node, path, dc)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (p *primitive[T]) encode(v T, path string, _ *encodeConfig) (*ir.Node, error) {
	node, err := p.to(v)
	if err != nil {
		var ee *EncodeError
		if errors.As(err, &ee) {
			return nil, err
		}
		return nil, &EncodeError{Path: path, Message: "cannot encode " + p.name, Err: err}
	}
	return node, nil
}

func (p *primitive[T]) omit(v T, ec *encodeConfig) bool {
	return ec.omitEmpty && falsy(v)
}

func mismatch(expected string, node *ir.Node) error {
	return &TypeMismatchError{Expected: expected, Actual: node.Type.String()}
}

// String accepts string nodes only.
func String() Type[string] {
	return stringType
}

var stringType = newPrimitive("string",
	func(node *ir.Node) (string, error) {
		if node.Type != ir.StringType {
			return "", mismatch("String", node)
		}
		return node.String, nil
	},
	func(v string) (*ir.Node, error) { return ir.FromString(v), nil })

// StringOf is String for a named string type.
func StringOf[T ~string](name string) Type[T] {
	return Primitive(name,
		func(node *ir.Node) (T, error) {
			s, err := stringType.from(node)
			return T(s), err
		},
		func(v T) (*ir.Node, error) { return ir.FromString(string(v)), nil })
}

// Bool accepts bool nodes only.
func Bool() Type[bool] {
	return boolType
}

var boolType = newPrimitive("bool",
	func(node *ir.Node) (bool, error) {
		if node.Type != ir.BoolType {
			return false, mismatch("Bool", node)
		}
		return node.Bool, nil
	},
	func(v bool) (*ir.Node, error) { return ir.FromBool(v), nil })

// Int64 accepts integral numbers and strings holding a base 10 integer.
func Int64() Type[int64] {
	return int64Type
}

var int64Type = newPrimitive("int64", nodeInt64,
	func(v int64) (*ir.Node, error) { return ir.FromInt(v), nil })

func nodeInt64(node *ir.Node) (int64, error) {
	switch node.Type {
	case ir.NumberType:
		switch {
		case node.Int64 != nil:
			return *node.Int64, nil
		case node.Number != "":
			return strconv.ParseInt(node.Number, 10, 64)
		case node.Float64 != nil:
			f := *node.Float64
			if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
				return 0, fmt.Errorf("%v is not an int64", f)
			}
			return int64(f), nil
		}
		return 0, fmt.Errorf("number node has no value")
	case ir.StringType:
		return strconv.ParseInt(node.String, 10, 64)
	default:
		return 0, mismatch("Number", node)
	}
}

// Int is Int64 limited to the range of int.
func Int() Type[int] {
	return IntOf[int]("int")
}

// IntOf is Int64 for a signed integer type, with a range check.
func IntOf[T ~int | ~int8 | ~int16 | ~int32 | ~int64](name string) Type[T] {
	return Primitive(name,
		func(node *ir.Node) (T, error) {
			i, err := nodeInt64(node)
			if err != nil {
				return 0, err
			}
			v := T(i)
			if int64(v) != i {
				return 0, fmt.Errorf("%d out of range", i)
			}
			return v, nil
		},
		func(v T) (*ir.Node, error) { return ir.FromInt(int64(v)), nil })
}

// Uint64 accepts non-negative integral numbers and strings holding a base
// 10 unsigned integer. Values beyond the int64 range keep their exact text.
func Uint64() Type[uint64] {
	return uint64Type
}

var uint64Type = newPrimitive("uint64",
	func(node *ir.Node) (uint64, error) {
		switch node.Type {
		case ir.NumberType:
			switch {
			case node.Int64 != nil:
				if *node.Int64 < 0 {
					return 0, fmt.Errorf("negative value %d", *node.Int64)
				}
				return uint64(*node.Int64), nil
			case node.Number != "":
				return strconv.ParseUint(node.Number, 10, 64)
			case node.Float64 != nil:
				f := *node.Float64
				if f != math.Trunc(f) || f < 0 || f >= math.MaxUint64 {
					return 0, fmt.Errorf("%v is not a uint64", f)
				}
				return uint64(f), nil
			}
			return 0, fmt.Errorf("number node has no value")
		case ir.StringType:
			return strconv.ParseUint(node.String, 10, 64)
		default:
			return 0, mismatch("Number", node)
		}
	},
	func(v uint64) (*ir.Node, error) {
		return ir.FromNumber(strconv.FormatUint(v, 10))
	})

// Float64 accepts numbers and strings holding a number. NaN and the
// infinities have no textual form and cannot be encoded.
func Float64() Type[float64] {
	return float64Type
}

var float64Type = newPrimitive("float64",
	func(node *ir.Node) (float64, error) {
		switch node.Type {
		case ir.NumberType:
			switch {
			case node.Float64 != nil:
				return *node.Float64, nil
			case node.Int64 != nil:
				return float64(*node.Int64), nil
			}
			return strconv.ParseFloat(node.Number, 64)
		case ir.StringType:
			return strconv.ParseFloat(node.String, 64)
		default:
			return 0, mismatch("Number", node)
		}
	},
	func(v float64) (*ir.Node, error) {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%v has no textual form", v)
		}
		return ir.FromFloat(v), nil
	})

// Text returns a descriptor for a type with a textual form, carried as a
// string node.
func Text[T encoding.TextMarshaler, PT interface {
	*T
	encoding.TextUnmarshaler
}](name string) Type[T] {
	return Primitive(name,
		func(node *ir.Node) (T, error) {
			var v T
			if node.Type != ir.StringType {
				return v, mismatch("String", node)
			}
			if err := PT(&v).UnmarshalText([]byte(node.String)); err != nil {
				return v, err
			}
			return v, nil
		},
		func(v T) (*ir.Node, error) {
			d, err := v.MarshalText()
			if err != nil {
				return nil, err
			}
			return ir.FromString(string(d)), nil
		})
}

// Any passes plain values through unchanged: objects decode to
// map[string]any, arrays to []any and leaves to string, bool, int64,
// float64 or nil. Encoding accepts the same kinds of values.
func Any() Type[any] {
	return anyType
}

var anyType = newPrimitive("any",
	func(node *ir.Node) (any, error) { return ir.ToAny(node), nil },
	ir.FromAny)

// Raw passes the mapping representation itself through.
func Raw() Type[*ir.Node] {
	return rawType
}

var rawType = newPrimitive("raw",
	func(node *ir.Node) (*ir.Node, error) { return node.Clone(), nil },
	func(v *ir.Node) (*ir.Node, error) {
		if v == nil {
			return ir.Null(), nil
		}
		return v.Clone(), nil
	})
