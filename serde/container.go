package serde

import (
	"fmt"
	"maps"
	"slices"

	"github.com/signadot/serde/ir"
)

// List returns a descriptor for slices of E. A nil elem declares an
// untyped list: it encodes its elements as plain values but cannot be
// decoded.
func List[E any](elem Type[E]) Type[[]E] {
	return &list[E]{elem: elem}
}

type list[E any] struct {
	elem Type[E]
}

func (l *list[E]) Name() string {
	if l.elem == nil {
		return "list"
	}
	return "list[" + l.elem.Name() + "]"
}

func (l *list[E]) Kind() Kind     { return ListKind }
func (l *list[E]) Optional() bool { return false }
func (l *list[E]) noneAny() any   { return []E(nil) }

func (l *list[E]) Elems() []Descriptor {
	if l.elem == nil {
		return []Descriptor{nil}
	}
	return []Descriptor{l.elem}
}

func (l *list[E]) decode(node *ir.Node, path string, dc *decodeConfig) ([]E, error) {
	if l.elem == nil {
		return nil, &UntypedContainerError{Path: path, Type: l.Name()}
	}
	if node.Type != ir.ArrayType {
		return nil, &TypeMismatchError{Path: path, Expected: "Array", Actual: node.Type.String()}
	}
	res := make([]E, len(node.Values))
	for i, elt := range node.Values {
		v, err := l.elem.decode(elt, indexPath(path, i), dc)
		if err != nil {
			return nil, err
		}
		res[i] = v
	}
	return res, nil
}

func (l *list[E]) decodeAny(node *ir.Node, path string, dc *decodeConfig) (any, error) {
	v, err := l.decode(node, path, dc)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (l *list[E]) encode(v []E, path string, ec *encodeConfig) (*ir.Node, error) {
	elts := make([]*ir.Node, len(v))
	for i := range v {
		var (
			elt *ir.Node
			err error
		)
		if l.elem == nil {
			elt, err = plainNode(v[i], indexPath(path, i))
		} else {
			elt, err = l.elem.encode(v[i], indexPath(path, i), ec)
		}
		if err != nil {
			return nil, err
		}
		elts[i] = elt
	}
	return ir.FromSlice(elts), nil
}

func (l *list[E]) omit(v []E, ec *encodeConfig) bool {
	return ec.omitEmpty && len(v) == 0
}

// Map returns a descriptor for maps from K to V. Keys are carried as
// strings: they are decoded from string nodes with key and encoded to
// their string form. Encoded maps have their keys in sorted order.
//
// A nil key or val declares an untyped map: it encodes its entries as
// plain values but cannot be decoded.
func Map[K comparable, V any](key Type[K], val Type[V]) Type[map[K]V] {
	return &mapType[K, V]{key: key, val: val}
}

type mapType[K comparable, V any] struct {
	key Type[K]
	val Type[V]
}

func (m *mapType[K, V]) untyped() bool {
	return m.key == nil || m.val == nil
}

func (m *mapType[K, V]) Name() string {
	if m.untyped() {
		return "map"
	}
	return "map[" + m.key.Name() + "]" + m.val.Name()
}

func (m *mapType[K, V]) Kind() Kind     { return MapKind }
func (m *mapType[K, V]) Optional() bool { return false }
func (m *mapType[K, V]) noneAny() any   { return map[K]V(nil) }

func (m *mapType[K, V]) Elems() []Descriptor {
	res := []Descriptor{nil, nil}
	if m.key != nil {
		res[0] = m.key
	}
	if m.val != nil {
		res[1] = m.val
	}
	return res
}

func (m *mapType[K, V]) decode(node *ir.Node, path string, dc *decodeConfig) (map[K]V, error) {
	if m.untyped() {
		return nil, &UntypedContainerError{Path: path, Type: m.Name()}
	}
	if node.Type != ir.ObjectType {
		return nil, &TypeMismatchError{Path: path, Expected: "Object", Actual: node.Type.String()}
	}
	res := make(map[K]V, len(node.Fields))
	for i, f := range node.Fields {
		kPath := keyPath(path, f.String)
		k, err := m.key.decode(f, kPath, dc)
		if err != nil {
			return nil, err
		}
		v, err := m.val.decode(node.Values[i], kPath, dc)
		if err != nil {
			return nil, err
		}
		res[k] = v
	}
	return res, nil
}

func (m *mapType[K, V]) decodeAny(node *ir.Node, path string, dc *decodeConfig) (any, error) {
	v, err := m.decode(node, path, dc)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (m *mapType[K, V]) encode(v map[K]V, path string, ec *encodeConfig) (*ir.Node, error) {
	res := make(map[string]*ir.Node, len(v))
	for k, val := range v {
		ks, err := m.keyString(k, path, ec)
		if err != nil {
			return nil, err
		}
		if _, dup := res[ks]; dup {
			return nil, &EncodeError{Path: path, Message: fmt.Sprintf("duplicate key %q", ks)}
		}
		vPath := keyPath(path, ks)
		var node *ir.Node
		if m.untyped() {
			node, err = plainNode(val, vPath)
		} else {
			node, err = m.val.encode(val, vPath, ec)
		}
		if err != nil {
			return nil, err
		}
		res[ks] = node
	}
	keys := slices.Sorted(maps.Keys(res))
	kvs := make([]ir.KeyVal, len(keys))
	for i, k := range keys {
		kvs[i] = ir.KeyVal{Key: k, Val: res[k]}
	}
	return ir.FromKeyVals(kvs), nil
}

// keyString coerces a map key to its string form.
func (m *mapType[K, V]) keyString(k K, path string, ec *encodeConfig) (string, error) {
	if m.key == nil {
		return fmt.Sprint(k), nil
	}
	node, err := m.key.encode(k, path, ec)
	if err != nil {
		return "", err
	}
	switch node.Type {
	case ir.StringType:
		return node.String, nil
	case ir.NumberType:
		s, err := node.NumberText()
		if err != nil {
			return "", &EncodeError{Path: path, Message: "invalid map key", Err: err}
		}
		return s, nil
	case ir.BoolType:
		if node.Bool {
			return "true", nil
		}
		return "false", nil
	default:
		return "", &EncodeError{Path: path, Message: fmt.Sprintf("map key of type %s has no string form", node.Type)}
	}
}

func (m *mapType[K, V]) omit(v map[K]V, ec *encodeConfig) bool {
	return ec.omitEmpty && len(v) == 0
}

// plainNode converts a value of an untyped container.
func plainNode(v any, path string) (*ir.Node, error) {
	node, err := ir.FromAny(v)
	if err != nil {
		return nil, &EncodeError{Path: path, Message: "untyped container element", Err: err}
	}
	return node, nil
}

// Optional returns a descriptor for an optional T: a nil pointer is the
// none value, absent or null in the mapping representation.
func Optional[T any](t Type[T]) Type[*T] {
	return &optional[T]{elem: t}
}

type optional[T any] struct {
	elem Type[T]
}

func (o *optional[T]) Name() string        { return "optional[" + o.elem.Name() + "]" }
func (o *optional[T]) Kind() Kind          { return OptionalKind }
func (o *optional[T]) Elems() []Descriptor { return []Descriptor{o.elem} }
func (o *optional[T]) Optional() bool      { return true }
func (o *optional[T]) noneAny() any        { return (*T)(nil) }

func (o *optional[T]) decode(node *ir.Node, path string, dc *decodeConfig) (*T, error) {
	if node.Type == ir.NullType {
		return nil, nil
	}
	v, err := o.elem.decode(node, path, dc)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (o *optional[T]) decodeAny(node *ir.Node, path string, dc *decodeConfig) (any, error) {
	v, err := o.decode(node, path, dc)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (o *optional[T]) encode(v *T, path string, ec *encodeConfig) (*ir.Node, error) {
	if v == nil {
		return ir.Null(), nil
	}
	return o.elem.encode(*v, path, ec)
}

func (o *optional[T]) omit(v *T, ec *encodeConfig) bool {
	if v == nil {
		return true
	}
	return o.elem.omit(*v, ec)
}
