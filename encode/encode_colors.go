package encode

import (
	"github.com/signadot/serde/ir"

	"github.com/fatih/color"
)

// Colorable identifies a colourable part of the output: the keys, values
// or punctuation of nodes of a type.
type Colorable struct {
	Type ir.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	FieldColor ColorAttr = iota
	ValueColor
	SepColor
)

// Colors maps output parts to colouring functions. Parts without an
// entry are written with Default.
type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

// NewColors returns the terminal palette: keys in blue, strings in green,
// numbers in cyan, booleans in yellow, null in magenta and punctuation
// dimmed.
func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map: map[Colorable]func(string, ...any) string{
			{Type: ir.ObjectType, Attr: FieldColor}: paint(color.FgBlue),
			{Type: ir.StringType, Attr: ValueColor}: paint(color.FgGreen),
			{Type: ir.NumberType, Attr: ValueColor}: paint(color.FgCyan),
			{Type: ir.BoolType, Attr: ValueColor}:   paint(color.FgYellow),
			{Type: ir.NullType, Attr: ValueColor}:   paint(color.FgMagenta),
		},
	}
	for _, t := range ir.Types() {
		colors.Map[Colorable{Type: t, Attr: SepColor}] = paint(color.FgHiBlack)
	}
	return colors
}

func paint(attrs ...color.Attribute) func(string, ...any) string {
	c := color.New(attrs...)
	return func(s string, _ ...any) string { return c.Sprint(s) }
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(t ir.Type, a ColorAttr, s string) string {
	return c.Get(t, a)(s)
}

func (c *Colors) Get(t ir.Type, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Type: t, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
