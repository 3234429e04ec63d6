// Package serde converts typed Go values to and from the mapping
// representation of package ir, and from there to and from text.
//
// Conversion is driven by descriptors: values of type Type[T] built by the
// programmer (or by serde-gen) which declare how a Go type maps to the
// mapping representation.
//
// # Usage
//
//	type Child struct {
//	    Name      string
//	    Height    *int
//	    Interests []string
//	}
//
//	var ChildType = serde.NewRecord[Child]("Child",
//	    serde.Field("name", serde.String(), func(c *Child) *string { return &c.Name }),
//	    serde.Field("height", serde.Optional(serde.Int()), func(c *Child) **int { return &c.Height }),
//	    serde.Field("interests", serde.List(serde.String()), func(c *Child) *[]string { return &c.Interests }),
//	)
//
//	child, err := serde.FromText(ChildType, []byte(`{"name": "a child", "interests": ["toys"]}`))
//	d, err := serde.ToText(ChildType, child, serde.Indent(4))
//
// Decoding fails with a *MissingFieldError when a field which is not
// optional is absent. Optional fields decode to their none value.
//
// # Unions
//
// A Union lists alternatives in order. Without a discriminator, decoding
// returns the first alternative that decodes successfully and fails with
// a *UnionExhaustedError carrying every failure otherwise:
//
//	var ShapeType = serde.NewUnion[Shape]("Shape",
//	    serde.Case[Shape, Circle](CircleType),
//	    serde.Case[Shape, Square](SquareType),
//	).WithDiscriminator("kind")
//
// # Omission
//
// Encoding leaves out optional fields holding the none value. The
// OmitEmpty option also leaves out zero numbers, false, empty strings,
// lists and maps.
//
// # Debugging
//
// Setting SERDE_DEBUG_DECODE, SERDE_DEBUG_ENCODE or SERDE_DEBUG_UNION in
// the environment logs record decoding, record encoding and union
// resolution to stderr.
package serde
