// Package encode writes IR nodes as text.
//
// # Usage
//
//	node := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "name", Val: ir.FromString("alice")},
//	    {Key: "age", Val: ir.FromInt(30)},
//	})
//	err := encode.Encode(node, os.Stdout)
//
//	// compact JSON
//	err = encode.Encode(node, w, encode.EncodeWire(true))
//
//	// YAML with 4 space indentation
//	err = encode.Encode(node, w, encode.EncodeFormat(format.YAMLFormat), encode.Indent(4))
//
// Object fields are written in node order.
package encode
