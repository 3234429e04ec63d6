package encode

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/signadot/serde/format"
	"github.com/signadot/serde/ir"
)

func sample() *ir.Node {
	return ir.FromKeyVals([]ir.KeyVal{
		{Key: "name", Val: ir.FromString("Some \"Person\"")},
		{Key: "height", Val: ir.FromInt(130)},
		{Key: "ratio", Val: ir.FromFloat(2)},
		{Key: "ok", Val: ir.FromBool(true)},
		{Key: "none", Val: ir.Null()},
		{Key: "interests", Val: ir.FromSlice([]*ir.Node{ir.FromString("reading"), ir.FromString("cats")})},
		{Key: "empty", Val: ir.FromKeyVals(nil)},
		{Key: "list", Val: ir.FromSlice(nil)},
	})
}

func TestEncodeJSONIndent(t *testing.T) {
	want := `{
  "name": "Some \"Person\"",
  "height": 130,
  "ratio": 2.0,
  "ok": true,
  "none": null,
  "interests": [
    "reading",
    "cats"
  ],
  "empty": {},
  "list": []
}
`
	buf := bytes.NewBuffer(nil)
	if err := Encode(sample(), buf); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestEncodeJSONWire(t *testing.T) {
	want := `{"name":"Some \"Person\"","height":130,"ratio":2.0,"ok":true,"none":null,"interests":["reading","cats"],"empty":{},"list":[]}`
	if got := MustString(sample(), EncodeWire(true)); got != want {
		t.Errorf("got %s\nwant %s", got, want)
	}
}

func TestEncodeJSONIndentWidth(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{{Key: "a", Val: ir.FromSlice([]*ir.Node{ir.FromInt(1)})}})
	want := "{\n    \"a\": [\n        1\n    ]\n}"
	if got := MustString(node, Indent(4)); got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestEncodeYAML(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: "url", Val: ir.FromString("pkg-a")},
		{Key: "count", Val: ir.FromInt(2)},
		{Key: "channels", Val: ir.FromSlice([]*ir.Node{ir.FromString("stable"), ir.FromString("beta")})},
	})
	got := MustString(node, EncodeFormat(format.YAMLFormat))
	for _, want := range []string{"url: pkg-a", "count: 2", "- stable", "- beta"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in:\n%s", want, got)
		}
	}
	if strings.Index(got, "url") > strings.Index(got, "channels") {
		t.Errorf("field order not preserved:\n%s", got)
	}
}

func TestEncodeYAMLControlChars(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: "s", Val: ir.FromString("tab\tx")},
		{Key: "m", Val: ir.FromKeyVals([]ir.KeyVal{{Key: "k\ty", Val: ir.FromInt(1)}})},
	})
	for _, wire := range []bool{false, true} {
		got := MustString(node, EncodeFormat(format.YAMLFormat), EncodeWire(wire))
		if strings.ContainsRune(got, '\t') {
			t.Errorf("raw tab in:\n%s", got)
		}
		for _, want := range []string{`"tab\tx"`, `"k\ty"`} {
			if !strings.Contains(got, want) {
				t.Errorf("expected %s in:\n%s", want, got)
			}
		}
	}
}

func TestEncodeColors(t *testing.T) {
	colors := &Colors{
		Default: colorDefault,
		Map: map[Colorable]func(string, ...any) string{
			{Type: ir.StringType, Attr: ValueColor}: func(s string, _ ...any) string { return "<" + s + ">" },
		},
	}
	node := ir.FromSlice([]*ir.Node{ir.FromString("x"), ir.FromInt(1)})
	got := MustString(node, EncodeWire(true), EncodeColors(colors))
	if want := `[<"x">,1]`; got != want {
		t.Errorf("got %s want %s", got, want)
	}
}

func TestEncodeErrors(t *testing.T) {
	err := Encode(ir.FromFloat(math.NaN()), bytes.NewBuffer(nil))
	if !errors.Is(err, ErrEncoding) {
		t.Errorf("expected ErrEncoding for NaN, got %v", err)
	}
	err = Encode(ir.Null(), bytes.NewBuffer(nil), EncodeFormat(format.Format(9)))
	if !errors.Is(err, format.ErrBadFormat) {
		t.Errorf("expected ErrBadFormat, got %v", err)
	}
}
