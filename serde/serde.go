package serde

import (
	"bytes"
	"fmt"
	"io"

	"github.com/signadot/serde/encode"
	"github.com/signadot/serde/ir"
	"github.com/signadot/serde/parse"
)

// FromIR decodes node as a T described by t.
func FromIR[T any](t Type[T], node *ir.Node, opts ...DecodeOption) (T, error) {
	return t.decode(node, "", newDecodeConfig(opts...))
}

// FromMap decodes a plain mapping, as produced by ToMap or by
// encoding/json into a map[string]any, as a T described by t.
func FromMap[T any](t Type[T], m map[string]any, opts ...DecodeOption) (T, error) {
	node, err := ir.FromAny(m)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("cannot decode %s: %w", t.Name(), err)
	}
	return FromIR(t, node, opts...)
}

// ToIR encodes v, described by t, to the mapping representation.
func ToIR[T any](t Type[T], v T, opts ...EncodeOption) (*ir.Node, error) {
	return t.encode(v, "", newEncodeConfig(opts...))
}

// ToMap encodes v, described by t, to a plain mapping. It fails if t does
// not encode to an object.
func ToMap[T any](t Type[T], v T, opts ...EncodeOption) (map[string]any, error) {
	node, err := ToIR(t, v, opts...)
	if err != nil {
		return nil, err
	}
	if node.Type != ir.ObjectType {
		return nil, &EncodeError{Message: fmt.Sprintf("%s encodes to %s, not a mapping", t.Name(), node.Type)}
	}
	return ir.ToAny(node).(map[string]any), nil
}

// FromText parses d in the textual form and decodes the result as a T
// described by t.
func FromText[T any](t Type[T], d []byte, opts ...DecodeOption) (T, error) {
	dc := newDecodeConfig(opts...)
	node, err := parse.Parse(d, dc.parseOptions...)
	if err != nil {
		var zero T
		return zero, err
	}
	return t.decode(node, "", dc)
}

// ToText encodes v, described by t, to the textual form.
func ToText[T any](t Type[T], v T, opts ...EncodeOption) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := Write(buf, t, v, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Read parses all of r and decodes the result as a T described by t.
func Read[T any](r io.Reader, t Type[T], opts ...DecodeOption) (T, error) {
	dc := newDecodeConfig(opts...)
	node, err := parse.ParseReader(r, dc.parseOptions...)
	if err != nil {
		var zero T
		return zero, err
	}
	return t.decode(node, "", dc)
}

// Write encodes v, described by t, and writes its textual form to w.
func Write[T any](w io.Writer, t Type[T], v T, opts ...EncodeOption) error {
	ec := newEncodeConfig(opts...)
	node, err := t.encode(v, "", ec)
	if err != nil {
		return err
	}
	return encode.Encode(node, w, ec.encodeOptions...)
}
