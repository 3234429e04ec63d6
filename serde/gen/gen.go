package gen

import (
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/format"
	"go/token"
	"go/types"
	"slices"
	"strings"
)

const serdeImport = "github.com/signadot/serde/serde"

var ErrUnsupported = errors.New("unsupported field type")

// record is a struct type with tagged fields.
type record struct {
	name   string
	fields []field
	// deps are the records referred to by the fields.
	deps map[string]bool
}

type field struct {
	key    string
	goName string
	typ    types.Type
}

type generator struct {
	pkg     *types.Package
	records []*record
	byName  map[string]*record
	imports map[string]string
}

// Generate returns the gofmt'ed source of the descriptors of the tagged
// struct types of pkg, in declaration order, or nil if there are none.
func Generate(pkg *types.Package, files []*ast.File) ([]byte, error) {
	g := &generator{
		pkg:     pkg,
		byName:  map[string]*record{},
		imports: map[string]string{serdeImport: "serde"},
	}
	if err := g.collect(files); err != nil {
		return nil, err
	}
	if len(g.records) == 0 {
		return nil, nil
	}
	body := &bytes.Buffer{}
	deferred := &bytes.Buffer{}
	for _, rec := range g.records {
		if !g.recursive(rec.name) {
			fmt.Fprintf(body, "\nvar %sType = ", rec.name)
			if err := g.writeRecord(body, rec); err != nil {
				return nil, err
			}
			continue
		}
		// recursive records are assigned in init and referred to lazily,
		// as a variable initializer may not refer to itself.
		fmt.Fprintf(body, "\nvar %sType *serde.Record[%s]\n", rec.name, rec.name)
		fmt.Fprintf(deferred, "\t%sType = ", rec.name)
		if err := g.writeRecord(deferred, rec); err != nil {
			return nil, err
		}
	}
	if deferred.Len() > 0 {
		fmt.Fprintf(body, "\nfunc init() {\n%s}\n", deferred.Bytes())
	}
	buf := &bytes.Buffer{}
	fmt.Fprintf(buf, "// Code generated by serde-gen. DO NOT EDIT.\n\npackage %s\n\nimport (\n", pkg.Name())
	paths := make([]string, 0, len(g.imports))
	for p := range g.imports {
		paths = append(paths, p)
	}
	slices.Sort(paths)
	for _, p := range paths {
		fmt.Fprintf(buf, "\t%q\n", p)
	}
	buf.WriteString(")\n")
	buf.Write(body.Bytes())
	res, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("generated code does not parse: %w\n%s", err, buf.Bytes())
	}
	return res, nil
}

func (g *generator) collect(files []*ast.File) error {
	for _, file := range files {
		for _, decl := range file.Decls {
			genDecl, ok := decl.(*ast.GenDecl)
			if !ok || genDecl.Tok != token.TYPE {
				continue
			}
			for _, spec := range genDecl.Specs {
				typeSpec := spec.(*ast.TypeSpec)
				rec, err := g.structRecord(typeSpec.Name.Name)
				if err != nil {
					return err
				}
				if rec == nil {
					continue
				}
				g.records = append(g.records, rec)
				g.byName[rec.name] = rec
			}
		}
	}
	for _, rec := range g.records {
		for _, f := range rec.fields {
			g.addDeps(rec, f.typ)
		}
	}
	return nil
}

func (g *generator) structRecord(name string) (*record, error) {
	obj, ok := g.pkg.Scope().Lookup(name).(*types.TypeName)
	if !ok || obj.IsAlias() {
		return nil, nil
	}
	named, ok := obj.Type().(*types.Named)
	if !ok {
		return nil, nil
	}
	st, ok := named.Underlying().(*types.Struct)
	if !ok {
		return nil, nil
	}
	rec := &record{name: name, deps: map[string]bool{}}
	for i := range st.NumFields() {
		v := st.Field(i)
		key, ok := ParseTag(st.Tag(i))
		if !ok {
			continue
		}
		if v.Embedded() || !v.Exported() {
			return nil, fmt.Errorf("%s.%s: tagged fields must be exported and not embedded", name, v.Name())
		}
		rec.fields = append(rec.fields, field{key: key, goName: v.Name(), typ: v.Type()})
	}
	if len(rec.fields) == 0 {
		return nil, nil
	}
	if named.TypeParams().Len() > 0 {
		return nil, fmt.Errorf("%s: generic types are not supported", name)
	}
	return rec, nil
}

func (g *generator) addDeps(rec *record, t types.Type) {
	switch t := types.Unalias(t).(type) {
	case *types.Pointer:
		g.addDeps(rec, t.Elem())
	case *types.Slice:
		g.addDeps(rec, t.Elem())
	case *types.Map:
		g.addDeps(rec, t.Key())
		g.addDeps(rec, t.Elem())
	case *types.Named:
		if t.Obj().Pkg() == g.pkg && g.byName[t.Obj().Name()] != nil {
			rec.deps[t.Obj().Name()] = true
		}
	}
}

// recursive reports whether the record name refers to itself, directly
// or not.
func (g *generator) recursive(name string) bool {
	return g.reaches(name, name)
}

// reaches reports whether from refers to to, directly or not.
func (g *generator) reaches(from, to string) bool {
	seen := map[string]bool{}
	var walk func(string) bool
	walk = func(name string) bool {
		if seen[name] {
			return false
		}
		seen[name] = true
		for dep := range g.byName[name].deps {
			if dep == to || walk(dep) {
				return true
			}
		}
		return false
	}
	return walk(from)
}

func (g *generator) writeRecord(w *bytes.Buffer, rec *record) error {
	fmt.Fprintf(w, "serde.NewRecord[%s](%q,\n", rec.name, rec.name)
	for _, f := range rec.fields {
		desc, err := g.descriptor(f.typ)
		if err != nil {
			return fmt.Errorf("%s.%s: %w", rec.name, f.goName, err)
		}
		fmt.Fprintf(w, "\tserde.Field(%q, %s, func(v *%s) *%s { return &v.%s }),\n",
			f.key, desc, rec.name, g.typeString(f.typ), f.goName)
	}
	w.WriteString(")\n")
	return nil
}

// descriptor returns the expression of the descriptor of t.
func (g *generator) descriptor(t types.Type) (string, error) {
	t = types.Unalias(t)
	switch t := t.(type) {
	case *types.Basic:
		return basicDescriptor(t)
	case *types.Pointer:
		elem, err := g.descriptor(t.Elem())
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("serde.Optional[%s](%s)", g.typeString(t.Elem()), elem), nil
	case *types.Slice:
		elem, err := g.descriptor(t.Elem())
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("serde.List[%s](%s)", g.typeString(t.Elem()), elem), nil
	case *types.Map:
		key, err := g.descriptor(t.Key())
		if err != nil {
			return "", err
		}
		val, err := g.descriptor(t.Elem())
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("serde.Map[%s, %s](%s, %s)", g.typeString(t.Key()), g.typeString(t.Elem()), key, val), nil
	case *types.Interface:
		if t.Empty() {
			return "serde.Any()", nil
		}
	case *types.Named:
		return g.namedDescriptor(t)
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupported, t)
}

func basicDescriptor(t *types.Basic) (string, error) {
	switch t.Kind() {
	case types.String:
		return "serde.String()", nil
	case types.Bool:
		return "serde.Bool()", nil
	case types.Int:
		return "serde.Int()", nil
	case types.Int64:
		return "serde.Int64()", nil
	case types.Uint64:
		return "serde.Uint64()", nil
	case types.Float64:
		return "serde.Float64()", nil
	case types.Int8, types.Int16, types.Int32:
		return fmt.Sprintf("serde.IntOf[%s](%q)", t.Name(), t.Name()), nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupported, t)
}

func (g *generator) namedDescriptor(t *types.Named) (string, error) {
	name := t.Obj().Name()
	ts := g.typeString(t)
	if t.Obj().Pkg() == g.pkg {
		if g.byName[name] != nil {
			if g.recursive(name) {
				return fmt.Sprintf("serde.Lazy(func() serde.Type[%s] { return %sType })", ts, name), nil
			}
			return name + "Type", nil
		}
	}
	if isText(t) {
		return fmt.Sprintf("serde.Text[%s](%q)", ts, name), nil
	}
	if u, ok := t.Underlying().(*types.Basic); ok {
		switch u.Kind() {
		case types.String:
			return fmt.Sprintf("serde.StringOf[%s](%q)", ts, name), nil
		case types.Int, types.Int8, types.Int16, types.Int32, types.Int64:
			return fmt.Sprintf("serde.IntOf[%s](%q)", ts, name), nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupported, ts)
}

// isText reports whether t marshals as text and *t unmarshals from it.
func isText(t *types.Named) bool {
	hasMethod := func(t types.Type, name string) bool {
		sel := types.NewMethodSet(t).Lookup(nil, name)
		return sel != nil
	}
	return hasMethod(t, "MarshalText") && hasMethod(types.NewPointer(t), "UnmarshalText")
}

func (g *generator) typeString(t types.Type) string {
	return types.TypeString(t, func(p *types.Package) string {
		if p == g.pkg {
			return ""
		}
		g.imports[p.Path()] = p.Name()
		return p.Name()
	})
}

// OutputFile returns the name of the generated file of pkg.
func OutputFile(pkg *Package) string {
	return strings.ToLower(pkg.Name) + "_serde.go"
}
