package serde_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/signadot/serde/serde"
)

type Child struct {
	Name      string
	Height    *int
	Interests []string
}

type Parent struct {
	Name     string
	Children []Child
}

var ChildType = serde.NewRecord[Child]("Child",
	serde.Field("name", serde.String(), func(c *Child) *string { return &c.Name }),
	serde.Field("height", serde.Optional(serde.Int()), func(c *Child) **int { return &c.Height }),
	serde.Field("interests", serde.List(serde.String()), func(c *Child) *[]string { return &c.Interests }),
)

var ParentType = serde.NewRecord[Parent]("Parent",
	serde.Field("name", serde.String(), func(p *Parent) *string { return &p.Name }),
	serde.Field("children", serde.List[Child](ChildType), func(p *Parent) *[]Child { return &p.Children }),
)

func Example() {
	height := 130
	parent := Parent{
		Name: "Some Person",
		Children: []Child{
			{Name: "A Child", Height: &height, Interests: []string{"reading", "cats"}},
		},
	}
	if err := serde.Write(os.Stdout, ParentType, parent); err != nil {
		fmt.Println(err)
	}
	// Output:
	// {
	//   "name": "Some Person",
	//   "children": [
	//     {
	//       "name": "A Child",
	//       "height": 130,
	//       "interests": [
	//         "reading",
	//         "cats"
	//       ]
	//     }
	//   ]
	// }
}

func ExampleRead() {
	in := `{"name": "First Last", "children": [{"name": "a child", "interests": ["toys", "games"]}]}`
	parent, err := serde.Read(strings.NewReader(in), ParentType)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, c := range parent.Children {
		fmt.Printf("%s likes %s (height set: %t)\n", c.Name, strings.Join(c.Interests, " and "), c.Height != nil)
	}
	// Output:
	// a child likes toys and games (height set: false)
}

func ExampleMissingFieldError() {
	_, err := serde.FromText(ParentType, []byte(`{"children": []}`))
	fmt.Println(err)
	// Output:
	// missing field at <root>: "name" not found in keys [children]
}
