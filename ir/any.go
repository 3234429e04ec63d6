package ir

import (
	"fmt"
	"math"
	"strconv"

	"github.com/segmentio/encoding/json"
)

// FromAny converts a plain Go tree (maps with string keys, slices and
// scalars) to a node. Map keys are sorted, as a Go map carries no order.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		return x.Clone(), nil
	case bool:
		return FromBool(x), nil
	case string:
		return FromString(x), nil
	case int:
		return FromInt(int64(x)), nil
	case int8:
		return FromInt(int64(x)), nil
	case int16:
		return FromInt(int64(x)), nil
	case int32:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint:
		return fromUint(uint64(x))
	case uint8:
		return FromInt(int64(x)), nil
	case uint16:
		return FromInt(int64(x)), nil
	case uint32:
		return FromInt(int64(x)), nil
	case uint64:
		return fromUint(x)
	case float32:
		return FromFloat(float64(x)), nil
	case float64:
		return FromFloat(x), nil
	case json.Number:
		return FromNumber(string(x))
	case []*Node:
		res := make([]*Node, len(x))
		for i := range x {
			res[i] = x[i].Clone()
		}
		return FromSlice(res), nil
	case []any:
		res := make([]*Node, len(x))
		for i := range x {
			elt, err := FromAny(x[i])
			if err != nil {
				return nil, err
			}
			res[i] = elt
		}
		return FromSlice(res), nil
	case []string:
		res := make([]*Node, len(x))
		for i := range x {
			res[i] = FromString(x[i])
		}
		return FromSlice(res), nil
	case map[string]*Node:
		res := make(map[string]*Node, len(x))
		for k, n := range x {
			res[k] = n.Clone()
		}
		return FromMap(res), nil
	case map[string]any:
		res := make(map[string]*Node, len(x))
		for k, v := range x {
			val, err := FromAny(v)
			if err != nil {
				return nil, err
			}
			res[k] = val
		}
		return FromMap(res), nil
	case map[string]string:
		res := make(map[string]*Node, len(x))
		for k, s := range x {
			res[k] = FromString(s)
		}
		return FromMap(res), nil
	default:
		return nil, fmt.Errorf("%w: cannot represent %T", ErrType, v)
	}
}

func fromUint(u uint64) (*Node, error) {
	if u > math.MaxInt64 {
		return FromNumber(strconv.FormatUint(u, 10))
	}
	return FromInt(int64(u)), nil
}

// ToAny converts node to a plain Go tree: map[string]any for objects,
// []any for arrays, and string, bool, int64, float64 or nil for leaves.
// Numbers with no exact int64 or float64 form are a json.Number holding
// their text, which FromAny accepts back.
func ToAny(node *Node) any {
	switch node.Type {
	case ObjectType:
		n := len(node.Fields)
		res := make(map[string]any, n)
		for i := range n {
			res[node.Fields[i].String] = ToAny(node.Values[i])
		}
		return res
	case ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			res[i] = ToAny(elt)
		}
		return res
	case StringType:
		return node.String
	case NumberType:
		switch {
		case node.Int64 != nil:
			return *node.Int64
		case node.Number != "":
			return json.Number(node.Number)
		case node.Float64 != nil:
			return *node.Float64
		}
		return json.Number("0")
	case BoolType:
		return node.Bool
	case NullType:
		return nil
	default:
		panic("impossible production")
	}
}
