package serde

import (
	"fmt"
	"reflect"

	"github.com/signadot/serde/ir"
)

// Kind is the shape of a declared type.
type Kind int

const (
	PrimitiveKind Kind = iota
	OptionalKind
	ListKind
	MapKind
	RecordKind
	UnionKind
)

func (k Kind) String() string {
	switch k {
	case PrimitiveKind:
		return "primitive"
	case OptionalKind:
		return "optional"
	case ListKind:
		return "list"
	case MapKind:
		return "map"
	case RecordKind:
		return "record"
	case UnionKind:
		return "union"
	default:
		return fmt.Sprintf("<kind %d>", int(k))
	}
}

// Descriptor is the type metadata the codec is driven by.
//
// Descriptors are immutable once built and may be shared between
// goroutines.
type Descriptor interface {
	// Name is the declared name of the type, used in errors and as the
	// default union variant name.
	Name() string
	Kind() Kind
	// Elems returns the element types of lists (one), maps (key and value),
	// optionals (the inner type) and unions (alternatives in declared
	// order). Untyped containers report nil elements.
	Elems() []Descriptor
	// Optional reports whether absence or null decodes to the none value.
	Optional() bool

	decodeAny(node *ir.Node, path string, dc *decodeConfig) (any, error)
	noneAny() any
}

// Type is a Descriptor for values of the Go type T.
type Type[T any] interface {
	Descriptor

	decode(node *ir.Node, path string, dc *decodeConfig) (T, error)
	encode(v T, path string, ec *encodeConfig) (*ir.Node, error)
	// omit reports whether a record field holding v is left out of the
	// encoded object.
	omit(v T, ec *encodeConfig) bool
}

// Lazy defers obtaining a descriptor until it is used, so that record
// descriptors can refer to each other regardless of declaration order.
func Lazy[T any](f func() Type[T]) Type[T] {
	return lazy[T]{f: f}
}

type lazy[T any] struct {
	f func() Type[T]
}

func (l lazy[T]) Name() string        { return l.f().Name() }
func (l lazy[T]) Kind() Kind          { return l.f().Kind() }
func (l lazy[T]) Elems() []Descriptor { return l.f().Elems() }
func (l lazy[T]) Optional() bool      { return l.f().Optional() }
func (l lazy[T]) noneAny() any        { return l.f().noneAny() }

func (l lazy[T]) decodeAny(node *ir.Node, path string, dc *decodeConfig) (any, error) {
	return l.f().decodeAny(node, path, dc)
}

func (l lazy[T]) decode(node *ir.Node, path string, dc *decodeConfig) (T, error) {
	return l.f().decode(node, path, dc)
}

func (l lazy[T]) encode(v T, path string, ec *encodeConfig) (*ir.Node, error) {
	return l.f().encode(v, path, ec)
}

func (l lazy[T]) omit(v T, ec *encodeConfig) bool {
	return l.f().omit(v, ec)
}

// falsy reports whether v would be considered empty: nil, zero numbers,
// false, and empty strings, slices, arrays and maps. Structs are never
// falsy.
func falsy(v any) bool {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return true
	}
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() == 0
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	case reflect.Struct:
		return false
	default:
		return rv.IsZero()
	}
}

func fieldPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

func indexPath(path string, i int) string {
	return fmt.Sprintf("%s[%d]", path, i)
}

func keyPath(path, key string) string {
	return fmt.Sprintf("%s[%q]", path, key)
}
