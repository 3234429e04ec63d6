package serde

import (
	"fmt"
	"reflect"

	"github.com/signadot/serde/debug"
	"github.com/signadot/serde/ir"
)

// Alt is an alternative of a union of type T.
type Alt[T any] struct {
	name   string
	desc   Descriptor
	decode func(node *ir.Node, path string, dc *decodeConfig) (T, error)
	// encode reports ok=false when v does not hold this alternative.
	encode func(v T, path string, ec *encodeConfig) (node *ir.Node, ok bool, err error)
}

// Name returns the name of the alternative, used as the discriminator
// value.
func (a *Alt[T]) Name() string { return a.name }

// As returns a copy of a named name.
func (a *Alt[T]) As(name string) *Alt[T] {
	res := *a
	res.name = name
	return &res
}

// Case declares an alternative of an interface type T holding values of
// type V, described by t. It panics if V is not assignable to T.
func Case[T, V any](t Type[V]) *Alt[T] {
	vt, tt := reflect.TypeFor[V](), reflect.TypeFor[T]()
	if !vt.AssignableTo(tt) {
		panic(fmt.Sprintf("serde: %s is not assignable to %s", vt, tt))
	}
	return Variant[T, V](t,
		func(v V) T {
			res, _ := any(v).(T)
			return res
		},
		func(v T) (V, bool) {
			res, ok := any(v).(V)
			return res, ok
		})
}

// Variant declares an alternative of T holding values of type V,
// described by t. wrap builds a T from a decoded V; unwrap extracts the V
// from a T, reporting false when the T holds another alternative.
func Variant[T, V any](t Type[V], wrap func(V) T, unwrap func(T) (V, bool)) *Alt[T] {
	return &Alt[T]{
		name: t.Name(),
		desc: t,
		decode: func(node *ir.Node, path string, dc *decodeConfig) (T, error) {
			v, err := t.decode(node, path, dc)
			if err != nil {
				var zero T
				return zero, err
			}
			return wrap(v), nil
		},
		encode: func(v T, path string, ec *encodeConfig) (*ir.Node, bool, error) {
			x, ok := unwrap(v)
			if !ok {
				return nil, false, nil
			}
			node, err := t.encode(x, path, ec)
			return node, true, err
		},
	}
}

// Union describes a value of type T which is one of several alternatives.
//
// Decoding tries the alternatives in declared order and returns the first
// success, unless a discriminator key is configured and present in the
// input, in which case its value names the alternative. Encoding uses
// the first alternative holding the value.
type Union[T any] struct {
	name string
	alts []*Alt[T]
	none bool
	disc string
}

// NewUnion returns a descriptor for a union of the given alternatives.
// It panics if two alternatives share a name.
func NewUnion[T any](name string, alts ...*Alt[T]) *Union[T] {
	seen := make(map[string]bool, len(alts))
	for _, a := range alts {
		if seen[a.name] {
			panic(fmt.Sprintf("serde: union %s declares alternative %q twice", name, a.name))
		}
		seen[a.name] = true
	}
	return &Union[T]{name: name, alts: alts}
}

// OrNone returns a copy of u which also admits the none value: the zero
// T, absent or null in the mapping representation.
func (u *Union[T]) OrNone() *Union[T] {
	res := *u
	res.none = true
	return &res
}

// WithDiscriminator returns a copy of u whose alternatives encode to
// objects carrying key with the name of the alternative.
func (u *Union[T]) WithDiscriminator(key string) *Union[T] {
	res := *u
	res.disc = key
	return &res
}

func (u *Union[T]) Name() string   { return u.name }
func (u *Union[T]) Kind() Kind     { return UnionKind }
func (u *Union[T]) Optional() bool { return u.none }

func (u *Union[T]) Elems() []Descriptor {
	res := make([]Descriptor, len(u.alts))
	for i, a := range u.alts {
		res[i] = a.desc
	}
	return res
}

func (u *Union[T]) noneAny() any {
	var zero T
	return zero
}

func (u *Union[T]) decode(node *ir.Node, path string, dc *decodeConfig) (T, error) {
	var zero T
	if u.none && node.Type == ir.NullType {
		return zero, nil
	}
	if u.disc != "" && node.Type == ir.ObjectType {
		if tag := ir.Get(node, u.disc); tag != nil {
			return u.decodeTagged(node, tag, path, dc)
		}
	}
	errs := make([]error, 0, len(u.alts))
	for _, a := range u.alts {
		v, err := a.decode(node, path, dc)
		if err == nil {
			if debug.Union() {
				debug.Logf("union %s at %s: %s matched\n", u.name, at(path), a.name)
			}
			return v, nil
		}
		if debug.Union() {
			debug.Logf("union %s at %s: %s failed: %v\n", u.name, at(path), a.name, err)
		}
		errs = append(errs, err)
	}
	return zero, &UnionExhaustedError{Path: path, Union: u.name, Errs: errs}
}

func (u *Union[T]) decodeTagged(node, tag *ir.Node, path string, dc *decodeConfig) (T, error) {
	var zero T
	tagPath := fieldPath(path, u.disc)
	if tag.Type != ir.StringType {
		return zero, &TypeMismatchError{Path: tagPath, Expected: "String", Actual: tag.Type.String()}
	}
	for _, a := range u.alts {
		if a.name != tag.String {
			continue
		}
		if debug.Union() {
			debug.Logf("union %s at %s: dispatch on %s=%q\n", u.name, at(path), u.disc, tag.String)
		}
		return a.decode(withoutKey(node, u.disc), path, dc)
	}
	return zero, &ValueError{Path: tagPath, Type: u.name, Err: fmt.Errorf("unknown alternative %q", tag.String)}
}

func withoutKey(node *ir.Node, key string) *ir.Node {
	kvs := make([]ir.KeyVal, 0, len(node.Fields))
	for i, f := range node.Fields {
		if f.String == key {
			continue
		}
		kvs = append(kvs, ir.KeyVal{Key: f.String, Val: node.Values[i]})
	}
	return ir.FromKeyVals(kvs)
}

func (u *Union[T]) decodeAny(node *ir.Node, path string, dc *decodeConfig) (any, error) {
	v, err := u.decode(node, path, dc)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (u *Union[T]) encode(v T, path string, ec *encodeConfig) (*ir.Node, error) {
	if u.none && isZero(v) {
		return ir.Null(), nil
	}
	for _, a := range u.alts {
		node, ok, err := a.encode(v, path, ec)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		if u.disc == "" {
			return node, nil
		}
		if node.Type != ir.ObjectType {
			return nil, &EncodeError{Path: path,
				Message: fmt.Sprintf("alternative %s of %s encodes to %s, cannot carry %q", a.name, u.name, node.Type, u.disc)}
		}
		kvs := []ir.KeyVal{{Key: u.disc, Val: ir.FromString(a.name)}}
		for i, f := range node.Fields {
			if f.String == u.disc {
				continue
			}
			kvs = append(kvs, ir.KeyVal{Key: f.String, Val: node.Values[i]})
		}
		return ir.FromKeyVals(kvs), nil
	}
	return nil, &EncodeError{Path: path, Message: fmt.Sprintf("%T matches no alternative of %s", v, u.name)}
}

func (u *Union[T]) omit(v T, ec *encodeConfig) bool {
	if u.none && isZero(v) {
		return true
	}
	return ec.omitEmpty && falsy(v)
}

func isZero[T any](v T) bool {
	return reflect.ValueOf(&v).Elem().IsZero()
}
