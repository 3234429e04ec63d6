package serde

import (
	"errors"
	"math"
)

type child struct {
	Name      string
	Height    *int
	Interests []string
}

var childType = NewRecord[child]("child",
	Field("name", String(), func(c *child) *string { return &c.Name }),
	Field("height", Optional(Int()), func(c *child) **int { return &c.Height }),
	Field("interests", List(String()), func(c *child) *[]string { return &c.Interests }),
)

type parent struct {
	Name     string
	Children []child
	Scores   map[string]float64
}

var parentType = NewRecord[parent]("parent",
	Field("name", String(), func(p *parent) *string { return &p.Name }),
	Field("children", List[child](childType), func(p *parent) *[]child { return &p.Children }),
	Field("scores", Map(String(), Float64()), func(p *parent) *map[string]float64 { return &p.Scores }),
)

// point is built by a constructor from x and y; label is assigned after.
type point struct {
	x, y  int
	label *string
}

var errNegative = errors.New("negative coordinate")

var pointType = NewRecord[point]("point",
	Field("x", Int(), func(p *point) *int { return &p.x }),
	Field("y", Int(), func(p *point) *int { return &p.y }),
	Field("label", Optional(String()), func(p *point) **string { return &p.label }),
).WithConstructor(func(args Args) (point, error) {
	x, y := Arg[int](args, "x"), Arg[int](args, "y")
	if x < 0 || y < 0 {
		return point{}, errNegative
	}
	return point{x: x, y: y}, nil
}, Param("x", Int()), Param("y", Int()))

type shape interface {
	area() float64
}

type circle struct {
	R float64
}

func (c circle) area() float64 { return math.Pi * c.R * c.R }

type square struct {
	S float64
}

func (s square) area() float64 { return s.S * s.S }

var circleType = NewRecord[circle]("circle",
	Field("r", Float64(), func(c *circle) *float64 { return &c.R }))

var squareType = NewRecord[square]("square",
	Field("s", Float64(), func(s *square) *float64 { return &s.S }))

var shapeType = NewUnion[shape]("shape",
	Case[shape, circle](circleType),
	Case[shape, square](squareType),
)

type drawing struct {
	Title  string
	Shapes []shape
	Focus  shape
}

var drawingType = NewRecord[drawing]("drawing",
	Field("title", String(), func(d *drawing) *string { return &d.Title }),
	Field("shapes", List[shape](shapeType.WithDiscriminator("kind")), func(d *drawing) *[]shape { return &d.Shapes }),
	Field[drawing, shape]("focus", shapeType.OrNone(), func(d *drawing) *shape { return &d.Focus }),
)

type tree struct {
	Label string
	Kids  []tree
}

var treeType Type[tree]

func init() {
	treeType = NewRecord[tree]("tree",
		Field("label", String(), func(t *tree) *string { return &t.Label }),
		Field("kids", List(Lazy(func() Type[tree] { return treeType })), func(t *tree) *[]tree { return &t.Kids }),
	)
}

func ptr[T any](v T) *T { return &v }
