package serde

import (
	"fmt"

	"github.com/signadot/serde/debug"
	"github.com/signadot/serde/ir"
)

// Member is a declared field or constructor parameter of a record.
type Member struct {
	Name string
	Type Descriptor
}

// Param declares a constructor parameter.
func Param(name string, t Descriptor) Member {
	return Member{Name: name, Type: t}
}

// Args holds the decoded constructor arguments of a record, keyed by
// parameter name. An absent optional parameter holds the none value of
// its type.
type Args struct {
	vals map[string]any
}

// Arg returns the argument name as a V, or the zero V when there is no
// such argument or it has another type.
func Arg[V any](args Args, name string) V {
	v, _ := args.vals[name].(V)
	return v
}

// Has reports whether the constructor was given an argument name.
func (a Args) Has(name string) bool {
	_, ok := a.vals[name]
	return ok
}

// RecordField is a declared field of a record of type T.
type RecordField[T any] struct {
	name string
	desc Descriptor

	decodeInto func(rec *T, node *ir.Node, path string, dc *decodeConfig) error
	setNone    func(rec *T)
	encodeFrom func(rec *T, path string, ec *encodeConfig) (node *ir.Node, omit bool, err error)
}

// Name returns the key of the field in the mapping representation.
func (f *RecordField[T]) Name() string { return f.name }

// Field declares a field of T named name, holding values described by t
// and accessed through ref.
func Field[T, V any](name string, t Type[V], ref func(*T) *V) *RecordField[T] {
	return &RecordField[T]{
		name: name,
		desc: t,
		decodeInto: func(rec *T, node *ir.Node, path string, dc *decodeConfig) error {
			v, err := t.decode(node, path, dc)
			if err != nil {
				return err
			}
			*ref(rec) = v
			return nil
		},
		setNone: func(rec *T) {
			v, _ := t.noneAny().(V)
			*ref(rec) = v
		},
		encodeFrom: func(rec *T, path string, ec *encodeConfig) (*ir.Node, bool, error) {
			v := *ref(rec)
			if t.omit(v, ec) {
				return nil, true, nil
			}
			node, err := t.encode(v, path, ec)
			return node, false, err
		},
	}
}

// Record describes a struct type T by its declared fields and,
// optionally, a constructor.
//
// Decoding first resolves the constructor parameters from the input and
// calls the constructor; the declared fields it does not cover are then
// decoded and assigned onto the constructed value. Without a constructor
// decoding starts from the zero T.
type Record[T any] struct {
	name   string
	fields []*RecordField[T]
	params []Member
	ctor   func(Args) (T, error)
}

// NewRecord returns a descriptor for T with the given fields, encoded in
// the given order. It panics if two fields share a name.
func NewRecord[T any](name string, fields ...*RecordField[T]) *Record[T] {
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		if seen[f.name] {
			panic(fmt.Sprintf("serde: record %s declares field %q twice", name, f.name))
		}
		seen[f.name] = true
	}
	return &Record[T]{name: name, fields: fields}
}

// WithConstructor returns a copy of r which builds values by calling fn
// with the decoded params. An error from fn fails decoding with a
// *ValueError.
func (r *Record[T]) WithConstructor(fn func(Args) (T, error), params ...Member) *Record[T] {
	res := *r
	res.ctor = fn
	res.params = params
	return &res
}

func (r *Record[T]) Name() string        { return r.name }
func (r *Record[T]) Kind() Kind          { return RecordKind }
func (r *Record[T]) Elems() []Descriptor { return nil }
func (r *Record[T]) Optional() bool      { return false }

func (r *Record[T]) noneAny() any {
	var zero T
	return zero
}

// Params returns the constructor parameters in order.
func (r *Record[T]) Params() []Member {
	return append([]Member(nil), r.params...)
}

// Fields returns the declared fields in order.
func (r *Record[T]) Fields() []Member {
	res := make([]Member, len(r.fields))
	for i, f := range r.fields {
		res[i] = Member{Name: f.name, Type: f.desc}
	}
	return res
}

func (r *Record[T]) decode(node *ir.Node, path string, dc *decodeConfig) (T, error) {
	var zero T
	if node.Type != ir.ObjectType {
		return zero, &TypeMismatchError{Path: path, Expected: "Object", Actual: node.Type.String()}
	}
	if debug.Decode() {
		debug.Logf("decode %s at %s from %s\n", r.name, at(path), debug.JSON{Node: node})
	}
	if dc.disallowUnknown {
		if err := r.checkUnknown(node, path); err != nil {
			return zero, err
		}
	}
	var rec T
	covered := map[string]bool{}
	if r.ctor != nil {
		args := Args{vals: make(map[string]any, len(r.params))}
		for _, p := range r.params {
			fPath := fieldPath(path, p.Name)
			val := ir.Get(node, p.Name)
			switch {
			case val != nil:
				v, err := p.Type.decodeAny(val, fPath, dc)
				if err != nil {
					return zero, err
				}
				args.vals[p.Name] = v
			case p.Type.Optional():
				args.vals[p.Name] = p.Type.noneAny()
			default:
				return zero, &MissingFieldError{Path: path, Field: p.Name, Available: node.Keys()}
			}
			covered[p.Name] = true
		}
		v, err := r.ctor(args)
		if err != nil {
			return zero, &ValueError{Path: path, Type: r.name, Err: err}
		}
		rec = v
	}
	for _, f := range r.fields {
		if covered[f.name] {
			continue
		}
		val := ir.Get(node, f.name)
		switch {
		case val != nil:
			if err := f.decodeInto(&rec, val, fieldPath(path, f.name), dc); err != nil {
				return zero, err
			}
		case f.desc.Optional():
			f.setNone(&rec)
		default:
			return zero, &MissingFieldError{Path: path, Field: f.name, Available: node.Keys()}
		}
	}
	return rec, nil
}

func (r *Record[T]) checkUnknown(node *ir.Node, path string) error {
	known := make(map[string]bool, len(r.fields)+len(r.params))
	for _, f := range r.fields {
		known[f.name] = true
	}
	for _, p := range r.params {
		known[p.Name] = true
	}
	for _, key := range node.Keys() {
		if !known[key] {
			return &UnknownFieldError{Path: path, Field: key}
		}
	}
	return nil
}

func (r *Record[T]) decodeAny(node *ir.Node, path string, dc *decodeConfig) (any, error) {
	v, err := r.decode(node, path, dc)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (r *Record[T]) encode(v T, path string, ec *encodeConfig) (*ir.Node, error) {
	kvs := make([]ir.KeyVal, 0, len(r.fields))
	for _, f := range r.fields {
		node, omit, err := f.encodeFrom(&v, fieldPath(path, f.name), ec)
		if err != nil {
			return nil, err
		}
		if omit {
			continue
		}
		kvs = append(kvs, ir.KeyVal{Key: f.name, Val: node})
	}
	res := ir.FromKeyVals(kvs)
	if debug.Encode() {
		debug.Logf("encode %s at %s to %s\n", r.name, at(path), debug.JSON{Node: res})
	}
	return res, nil
}

// records are never empty.
func (r *Record[T]) omit(T, *encodeConfig) bool {
	return false
}
