package encode

import "github.com/signadot/serde/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// Indent sets the number of spaces per nesting level. Values below 1
// are treated as 1; use EncodeWire for single line output.
func Indent(n int) EncodeOption {
	return func(es *EncState) {
		if n < 1 {
			n = 1
		}
		es.indent = n
	}
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}

// EncodeWire selects the compact single line form.
func EncodeWire(v bool) EncodeOption {
	return func(es *EncState) { es.wire = v }
}
