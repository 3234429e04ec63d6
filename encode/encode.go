package encode

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"unicode"

	"github.com/signadot/serde/format"
	"github.com/signadot/serde/ir"

	"github.com/goccy/go-yaml"
	"github.com/segmentio/encoding/json"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	depth, indent int

	format format.Format
	wire   bool

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node to w in the configured format, followed by a newline.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case format.JSONFormat:
		if err := encodeJSON(node, w, es); err != nil {
			return err
		}
		return writeString(w, "\n")
	case format.YAMLFormat:
		return encodeYAML(node, w, es)
	default:
		return fmt.Errorf("%w: %w: %d", ErrEncoding, format.ErrBadFormat, es.format)
	}
}

func encodeJSON(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.NullType:
		return writeColored(w, es, ir.NullType, ValueColor, "null")
	case ir.BoolType:
		s := "false"
		if node.Bool {
			s = "true"
		}
		return writeColored(w, es, ir.BoolType, ValueColor, s)
	case ir.NumberType:
		s, err := node.NumberText()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrEncoding, err)
		}
		return writeColored(w, es, ir.NumberType, ValueColor, s)
	case ir.StringType:
		q, err := quote(node.String)
		if err != nil {
			return err
		}
		return writeColored(w, es, ir.StringType, ValueColor, q)
	case ir.ArrayType:
		return encodeArray(node, w, es)
	case ir.ObjectType:
		return encodeObject(node, w, es)
	default:
		return fmt.Errorf("%w: unknown node type %s", ErrEncoding, node.Type)
	}
}

func encodeArray(node *ir.Node, w io.Writer, es *EncState) error {
	if len(node.Values) == 0 {
		return writeColored(w, es, ir.ArrayType, SepColor, "[]")
	}
	if err := writeColored(w, es, ir.ArrayType, SepColor, "["); err != nil {
		return err
	}
	es.depth++
	for i, v := range node.Values {
		if i > 0 {
			if err := writeColored(w, es, ir.ArrayType, SepColor, ","); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encodeJSON(v, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeColored(w, es, ir.ArrayType, SepColor, "]")
}

func encodeObject(node *ir.Node, w io.Writer, es *EncState) error {
	if len(node.Fields) == 0 {
		return writeColored(w, es, ir.ObjectType, SepColor, "{}")
	}
	if err := writeColored(w, es, ir.ObjectType, SepColor, "{"); err != nil {
		return err
	}
	es.depth++
	for i, f := range node.Fields {
		if i > 0 {
			if err := writeColored(w, es, ir.ObjectType, SepColor, ","); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		key, err := quote(f.String)
		if err != nil {
			return err
		}
		if err := writeColored(w, es, ir.ObjectType, FieldColor, key); err != nil {
			return err
		}
		sep := ": "
		if es.wire {
			sep = ":"
		}
		if err := writeColored(w, es, ir.ObjectType, SepColor, sep); err != nil {
			return err
		}
		if err := encodeJSON(node.Values[i], w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeColored(w, es, ir.ObjectType, SepColor, "}")
}

func quote(s string) (string, error) {
	d, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	return string(d), nil
}

// Helper functions for writing
func writeNL(w io.Writer, es *EncState) error {
	if es.wire {
		return nil
	}
	return writeString(w, "\n"+strings.Repeat(" ", es.indent*es.depth))
}

func writeColored(w io.Writer, es *EncState, t ir.Type, a ColorAttr, s string) error {
	if es.Color != nil {
		s = es.Color(t, a, s)
	}
	return writeString(w, s)
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

// yamlNumber keeps the exact number text of the node in YAML output.
type yamlNumber string

func (n yamlNumber) MarshalYAML() ([]byte, error) {
	return []byte(n), nil
}

// yamlQuoted holds a string with control characters, which goccy would
// write as a plain scalar losing them. It is written in the JSON double
// quoted form, which is also a YAML double quoted scalar.
type yamlQuoted string

func (s yamlQuoted) MarshalYAML() ([]byte, error) {
	q, err := quote(string(s))
	if err != nil {
		return nil, err
	}
	return []byte(q), nil
}

func yamlString(s string) any {
	if hasControl(s) {
		return yamlQuoted(s)
	}
	return s
}

// yamlFlow holds an object with a key containing control characters.
// goccy writes keys as plain strings, so the whole object is written as a
// JSON flow mapping.
type yamlFlow struct{ node *ir.Node }

func (f yamlFlow) MarshalYAML() ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := encodeJSON(f.node, buf, &EncState{wire: true}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func hasControl(s string) bool {
	return strings.ContainsFunc(s, unicode.IsControl)
}

func encodeYAML(node *ir.Node, w io.Writer, es *EncState) error {
	v, err := toYAMLValue(node)
	if err != nil {
		return err
	}
	d, err := yaml.MarshalWithOptions(v,
		yaml.Indent(es.indent),
		yaml.IndentSequence(true),
		yaml.Flow(es.wire))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	_, err = w.Write(d)
	return err
}

func toYAMLValue(node *ir.Node) (any, error) {
	switch node.Type {
	case ir.NullType:
		return nil, nil
	case ir.BoolType:
		return node.Bool, nil
	case ir.StringType:
		return yamlString(node.String), nil
	case ir.NumberType:
		s, err := node.NumberText()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrEncoding, err)
		}
		return yamlNumber(s), nil
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, v := range node.Values {
			yv, err := toYAMLValue(v)
			if err != nil {
				return nil, err
			}
			res[i] = yv
		}
		return res, nil
	case ir.ObjectType:
		if slices.ContainsFunc(node.Fields, func(f *ir.Node) bool { return hasControl(f.String) }) {
			return yamlFlow{node: node}, nil
		}
		res := make(yaml.MapSlice, len(node.Fields))
		for i, f := range node.Fields {
			yv, err := toYAMLValue(node.Values[i])
			if err != nil {
				return nil, err
			}
			res[i] = yaml.MapItem{Key: f.String, Value: yv}
		}
		return res, nil
	default:
		return nil, fmt.Errorf("%w: unknown node type %s", ErrEncoding, node.Type)
	}
}
