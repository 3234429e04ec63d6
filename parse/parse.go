package parse

import (
	"fmt"
	"io"

	"github.com/signadot/serde/format"
	"github.com/signadot/serde/ir"

	"github.com/buger/jsonparser"
	"github.com/goccy/go-yaml"
	"github.com/segmentio/encoding/json"
)

// Parse parses a single document in the configured format (JSON by
// default).
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, opt := range opts {
		opt(pOpts)
	}
	switch pOpts.format {
	case format.JSONFormat:
		return parseJSON(d)
	case format.YAMLFormat:
		return parseYAML(d)
	default:
		return nil, fmt.Errorf("%w: %w: %d", ErrParse, format.ErrBadFormat, pOpts.format)
	}
}

// ParseReader reads all of r and parses it.
func ParseReader(r io.Reader, opts ...ParseOption) (*ir.Node, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(d, opts...)
}

func parseJSON(d []byte) (*ir.Node, error) {
	if !json.Valid(d) {
		return nil, fmt.Errorf("%w: invalid json", ErrParse)
	}
	value, dt, _, err := jsonparser.Get(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return jsonValue(value, dt)
}

func jsonValue(value []byte, dt jsonparser.ValueType) (*ir.Node, error) {
	switch dt {
	case jsonparser.Null:
		return ir.Null(), nil
	case jsonparser.Boolean:
		b, err := jsonparser.ParseBoolean(value)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		return ir.FromBool(b), nil
	case jsonparser.Number:
		return ir.FromNumber(string(value))
	case jsonparser.String:
		s, err := jsonparser.ParseString(value)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		return ir.FromString(s), nil
	case jsonparser.Array:
		return jsonArray(value)
	case jsonparser.Object:
		return jsonObject(value)
	default:
		return nil, fmt.Errorf("%w: unexpected json value %q", ErrParse, value)
	}
}

func jsonArray(value []byte) (*ir.Node, error) {
	elts := []*ir.Node{}
	var eltErr error
	_, err := jsonparser.ArrayEach(value, func(v []byte, dt jsonparser.ValueType, _ int, err error) {
		if eltErr != nil {
			return
		}
		if err != nil {
			eltErr = err
			return
		}
		elt, err := jsonValue(v, dt)
		if err != nil {
			eltErr = err
			return
		}
		elts = append(elts, elt)
	})
	if eltErr != nil {
		return nil, eltErr
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return ir.FromSlice(elts), nil
}

func jsonObject(value []byte) (*ir.Node, error) {
	kvs := []ir.KeyVal{}
	index := map[string]int{}
	err := jsonparser.ObjectEach(value, func(k, v []byte, dt jsonparser.ValueType, _ int) error {
		val, err := jsonValue(v, dt)
		if err != nil {
			return err
		}
		key := string(k)
		// later duplicates win, in the position of the first
		if i, ok := index[key]; ok {
			kvs[i].Val = val
			return nil
		}
		index[key] = len(kvs)
		kvs = append(kvs, ir.KeyVal{Key: key, Val: val})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return ir.FromKeyVals(kvs), nil
}

func parseYAML(d []byte) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return yamlValue(v)
}

func yamlValue(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case yaml.MapSlice:
		kvs := make([]ir.KeyVal, 0, len(x))
		for _, item := range x {
			val, err := yamlValue(item.Value)
			if err != nil {
				return nil, err
			}
			key, ok := item.Key.(string)
			if !ok {
				key = fmt.Sprint(item.Key)
			}
			kvs = append(kvs, ir.KeyVal{Key: key, Val: val})
		}
		return ir.FromKeyVals(kvs), nil
	case []any:
		elts := make([]*ir.Node, len(x))
		for i := range x {
			elt, err := yamlValue(x[i])
			if err != nil {
				return nil, err
			}
			elts[i] = elt
		}
		return ir.FromSlice(elts), nil
	default:
		node, err := ir.FromAny(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		return node, nil
	}
}
