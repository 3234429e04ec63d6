package serde

import (
	"github.com/signadot/serde/encode"
	"github.com/signadot/serde/format"
	"github.com/signadot/serde/parse"
)

// EncodeOption controls encoding of values and of their textual form.
type EncodeOption func(*encodeConfig)

// DecodeOption controls decoding of values and parsing of their textual
// form.
type DecodeOption func(*decodeConfig)

type encodeConfig struct {
	// omitEmpty drops every falsy field, not only none-valued optionals.
	omitEmpty bool

	// EncodeOptions to pass through to encode.Encode
	encodeOptions []encode.EncodeOption
}

type decodeConfig struct {
	disallowUnknown bool

	// ParseOptions to pass through to parse.Parse
	parseOptions []parse.ParseOption
}

func newEncodeConfig(opts ...EncodeOption) *encodeConfig {
	ec := &encodeConfig{}
	for _, opt := range opts {
		opt(ec)
	}
	return ec
}

func newDecodeConfig(opts ...DecodeOption) *decodeConfig {
	dc := &decodeConfig{}
	for _, opt := range opts {
		opt(dc)
	}
	return dc
}

// OmitEmpty makes encoding leave out every field whose value is empty
// (zero numbers, false, empty strings, lists and maps) in addition to
// none-valued optional fields. Decoding such output requires the omitted
// fields to be declared optional.
func OmitEmpty(v bool) EncodeOption {
	return func(ec *encodeConfig) { ec.omitEmpty = v }
}

// Indent sets the indentation width of the textual form.
func Indent(n int) EncodeOption {
	return WithEncodeOptions(encode.Indent(n))
}

// Compact writes the textual form on a single line.
func Compact(v bool) EncodeOption {
	return WithEncodeOptions(encode.EncodeWire(v))
}

// Format selects the textual form written.
func Format(f format.Format) EncodeOption {
	return WithEncodeOptions(encode.EncodeFormat(f))
}

// Colors colours JSON output for terminals.
func Colors(c *encode.Colors) EncodeOption {
	return WithEncodeOptions(encode.EncodeColors(c))
}

// WithEncodeOptions passes options through to the text encoder.
func WithEncodeOptions(opts ...encode.EncodeOption) EncodeOption {
	return func(ec *encodeConfig) {
		ec.encodeOptions = append(ec.encodeOptions, opts...)
	}
}

// DisallowUnknownFields makes record decoding fail on input keys the
// record does not declare. By default they are ignored.
func DisallowUnknownFields() DecodeOption {
	return func(dc *decodeConfig) { dc.disallowUnknown = true }
}

// InputFormat selects the textual form read.
func InputFormat(f format.Format) DecodeOption {
	return WithParseOptions(parse.ParseFormat(f))
}

// WithParseOptions passes options through to the parser.
func WithParseOptions(opts ...parse.ParseOption) DecodeOption {
	return func(dc *decodeConfig) {
		dc.parseOptions = append(dc.parseOptions, opts...)
	}
}
