package serde

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestUnionOrder(t *testing.T) {
	intFirst := NewUnion[any]("number",
		Case[any, int](Int()),
		Case[any, float64](Float64()),
	)
	floatFirst := NewUnion[any]("number",
		Case[any, float64](Float64()),
		Case[any, int](Int()),
	)
	got, err := FromText(intFirst, []byte(`3`))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := got.(int); !ok {
		t.Errorf("int first: got %T", got)
	}
	got, err = FromText(floatFirst, []byte(`3`))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := got.(float64); !ok {
		t.Errorf("float first: got %T", got)
	}
	// only the second alternative decodes a fraction
	got, err = FromText(intFirst, []byte(`3.5`))
	if err != nil {
		t.Fatal(err)
	}
	if got != 3.5 {
		t.Errorf("got %v", got)
	}
}

func TestUnionRecords(t *testing.T) {
	got, err := FromText(shapeType, []byte(`{"s": 2}`))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(shape(square{S: 2}), got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	d, err := ToText(shapeType, shape(circle{R: 1.5}), Compact(true))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(d), `{"r":1.5}`+"\n"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestUnionExhausted(t *testing.T) {
	_, err := FromText(shapeType, []byte(`{"x": 1}`))
	var ue *UnionExhaustedError
	if !errors.As(err, &ue) {
		t.Fatalf("expected *UnionExhaustedError, got %v", err)
	}
	if len(ue.Errs) != 2 {
		t.Fatalf("expected one error per alternative, got %v", ue.Errs)
	}
	if !errors.Is(err, ErrUnionExhausted) || !errors.Is(err, ErrMissingField) {
		t.Errorf("errors.Is does not see through %v", err)
	}
	for _, s := range []string{"shape", `"r"`, `"s"`} {
		if !strings.Contains(err.Error(), s) {
			t.Errorf("%q not in %q", s, err)
		}
	}

	_, err = FromText(shapeType, []byte(`[]`))
	if !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("expected type mismatches, got %v", err)
	}
}

func TestUnionEncodeNoMatch(t *testing.T) {
	_, err := ToIR(shapeType, nil)
	if !errors.Is(err, ErrEncode) {
		t.Errorf("expected encode error, got %v", err)
	}
}

func TestDiscriminator(t *testing.T) {
	in := drawing{
		Title:  "d",
		Shapes: []shape{circle{R: 1}, square{S: 2}},
	}
	d, err := ToText(drawingType, in, Compact(true))
	if err != nil {
		t.Fatal(err)
	}
	want := `{"title":"d","shapes":[{"kind":"circle","r":1.0},{"kind":"square","s":2.0}]}` + "\n"
	if got := string(d); got != want {
		t.Errorf("got %s want %s", got, want)
	}
	got, err := FromText(drawingType, d, DisallowUnknownFields())
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(in, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	// the discriminator takes precedence over trial order
	tagged := shapeType.WithDiscriminator("kind")
	s, err := FromText(tagged, []byte(`{"kind": "square", "s": 3, "r": 1}`))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(shape(square{S: 3}), s); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	_, err = FromText(tagged, []byte(`{"kind": "triangle"}`))
	var ve *ValueError
	if !errors.As(err, &ve) || ve.Path != "kind" {
		t.Errorf("expected unknown alternative at kind, got %v", err)
	}
	_, err = FromText(tagged, []byte(`{"kind": 1}`))
	if !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("expected type mismatch, got %v", err)
	}
}

func TestDiscriminatorRenamed(t *testing.T) {
	u := NewUnion[shape]("shape",
		Case[shape, circle](circleType).As("round"),
		Case[shape, square](squareType).As("box"),
	).WithDiscriminator("type")
	d, err := ToText(u, shape(square{S: 1}), Compact(true))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(d), `{"type":"box","s":1.0}`+"\n"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
	names := []string{}
	for _, e := range u.Elems() {
		names = append(names, e.Name())
	}
	if diff := cmp.Diff([]string{"circle", "square"}, names); diff != "" {
		t.Errorf("elems (-want +got):\n%s", diff)
	}
}

func TestOrNone(t *testing.T) {
	got, err := FromText(drawingType, []byte(`{"title": "t", "shapes": [], "focus": null}`))
	if err != nil {
		t.Fatal(err)
	}
	if got.Focus != nil {
		t.Errorf("focus: got %v", got.Focus)
	}
	got, err = FromText(drawingType, []byte(`{"title": "t", "shapes": [], "focus": {"r": 2}}`))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(shape(circle{R: 2}), got.Focus); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if !shapeType.OrNone().Optional() || shapeType.Optional() {
		t.Errorf("OrNone must not modify its receiver")
	}
}

func TestVariant(t *testing.T) {
	type intOrString struct {
		I *int
		S *string
	}
	u := NewUnion[intOrString]("intOrString",
		Variant(Int(),
			func(i int) intOrString { return intOrString{I: &i} },
			func(v intOrString) (int, bool) {
				if v.I == nil {
					return 0, false
				}
				return *v.I, true
			}),
		Variant(String(),
			func(s string) intOrString { return intOrString{S: &s} },
			func(v intOrString) (string, bool) {
				if v.S == nil {
					return "", false
				}
				return *v.S, true
			}),
	).OrNone()
	l := List[intOrString](u)
	got, err := FromText(l, []byte(`[1, "a", null]`))
	if err != nil {
		t.Fatal(err)
	}
	want := []intOrString{{I: ptr(1)}, {S: ptr("a")}, {}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	d, err := ToText(l, got, Compact(true))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(d), `[1,"a",null]`+"\n"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestDescriptors(t *testing.T) {
	d := Descriptor(parentType)
	if d.Kind() != RecordKind {
		t.Errorf("kind %s", d.Kind())
	}
	fields := parentType.Fields()
	if got := fields[1].Type.Elems()[0].Name(); got != "child" {
		t.Errorf("children elem: %s", got)
	}
	if got := fields[2].Type.Name(); got != "map[string]float64" {
		t.Errorf("scores: %s", got)
	}
	if got := List[any](nil).Elems(); len(got) != 1 || got[0] != nil {
		t.Errorf("untyped list elems: %v", got)
	}
	opt := Optional(Int())
	if !opt.Optional() || opt.Kind() != OptionalKind || opt.Elems()[0].Kind() != PrimitiveKind {
		t.Errorf("optional: %s %v", opt.Kind(), opt.Elems())
	}
	if got := Lazy(func() Type[int] { return Int() }).Name(); got != "int" {
		t.Errorf("lazy name: %s", got)
	}
}
