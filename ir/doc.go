// Package ir provides the mapping representation used between typed Go
// values and their textual form.
//
// A Node is a recursive tagged union: the Type field says which of the
// value fields is meaningful.
//
//   - NullType: null value
//   - BoolType: Bool
//   - NumberType: Int64, Float64, or Number (text of integers too large for int64)
//   - StringType: String
//   - ArrayType: Values
//   - ObjectType: Fields (String nodes) and Values, in order
//
// Use the constructor functions to create nodes:
//
//	obj := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "name", Val: ir.FromString("a")},
//	    {Key: "sizes", Val: ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)})},
//	})
//
// FromAny and ToAny convert between nodes and plain Go trees of
// map[string]any, []any and scalars.
package ir
