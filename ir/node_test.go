package ir

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/segmentio/encoding/json"
)

func TestFromNumber(t *testing.T) {
	tests := []struct {
		text     string
		wantInt  *int64
		wantText string
		textOnly bool
	}{
		{text: "42", wantInt: ptr(int64(42)), wantText: "42"},
		{text: "-7", wantInt: ptr(int64(-7)), wantText: "-7"},
		{text: "1.5", wantText: "1.5"},
		{text: "2.0", wantText: "2.0"},
		{text: "1e3", wantText: "1000.0"},
		{text: "18446744073709551616", wantText: "18446744073709551616"},
		{text: "1e400", wantText: "1e400", textOnly: true},
		{text: "-2.5e999", wantText: "-2.5e999", textOnly: true},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			node, err := FromNumber(tt.text)
			if err != nil {
				t.Fatal(err)
			}
			if tt.wantInt != nil {
				if node.Int64 == nil || *node.Int64 != *tt.wantInt {
					t.Errorf("expected int %d, got %v", *tt.wantInt, node.Int64)
				}
			} else if node.Float64 == nil && !tt.textOnly {
				t.Errorf("expected a float node for %q", tt.text)
			}
			got, err := node.NumberText()
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.wantText {
				t.Errorf("NumberText() = %q, want %q", got, tt.wantText)
			}
		})
	}
	if _, err := FromNumber("1x"); !errors.Is(err, ErrParse) {
		t.Errorf("expected ErrParse, got %v", err)
	}
}

func TestClone(t *testing.T) {
	orig := FromKeyVals([]KeyVal{
		{Key: "b", Val: FromSlice([]*Node{FromInt(1), FromFloat(2.5)})},
		{Key: "a", Val: FromString("x")},
	})
	c := orig.Clone()
	if diff := cmp.Diff(orig, c); diff != "" {
		t.Fatalf("clone differs from original (-orig +clone):\n%s", diff)
	}
	*c.Values[0].Values[0].Int64 = 9
	if *orig.Values[0].Values[0].Int64 != 1 {
		t.Error("clone shares number storage with original")
	}
	if diff := cmp.Diff([]string{"b", "a"}, orig.Keys()); diff != "" {
		t.Errorf("Keys() mismatch (-want +got):\n%s", diff)
	}
}

func TestAnyRoundTrip(t *testing.T) {
	in := map[string]any{
		"name":  "pkg",
		"count": 3,
		"ratio": 0.5,
		"on":    true,
		"none":  nil,
		"tags":  []any{"a", "b"},
		"sub":   map[string]any{"k": []string{"v"}},
	}
	node, err := FromAny(in)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"count", "name", "none", "on", "ratio", "sub", "tags"}, node.Keys()); diff != "" {
		t.Errorf("keys not sorted (-want +got):\n%s", diff)
	}
	want := map[string]any{
		"name":  "pkg",
		"count": int64(3),
		"ratio": 0.5,
		"on":    true,
		"none":  nil,
		"tags":  []any{"a", "b"},
		"sub":   map[string]any{"k": []any{"v"}},
	}
	if diff := cmp.Diff(want, ToAny(node)); diff != "" {
		t.Errorf("ToAny mismatch (-want +got):\n%s", diff)
	}
	if _, err := FromAny(struct{}{}); !errors.Is(err, ErrType) {
		t.Errorf("expected ErrType for struct, got %v", err)
	}
}

func TestAnyLargeNumbers(t *testing.T) {
	in := map[string]any{
		"max":  uint64(math.MaxUint64),
		"huge": json.Number("1e400"),
		"int":  uint(7),
	}
	node, err := FromAny(in)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{
		"max":  json.Number("18446744073709551615"),
		"huge": json.Number("1e400"),
		"int":  int64(7),
	}
	if diff := cmp.Diff(want, ToAny(node)); diff != "" {
		t.Errorf("ToAny mismatch (-want +got):\n%s", diff)
	}
	back, err := FromAny(ToAny(node))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(node, back); diff != "" {
		t.Errorf("FromAny(ToAny(node)) changed the node (-want +got):\n%s", diff)
	}
}

func ptr[T any](v T) *T { return &v }
