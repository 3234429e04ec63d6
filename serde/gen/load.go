package gen

import (
	"errors"
	"fmt"
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/packages"
)

// Package is a type checked Go package.
type Package struct {
	Name   string
	Path   string
	Dir    string
	Types  *types.Package
	Syntax []*ast.File
}

// Load loads and type checks the package in dir.
func Load(dir string) (*Package, error) {
	cfg := &packages.Config{
		Dir:  dir,
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedTypes | packages.NeedSyntax | packages.NeedTypesInfo,
	}
	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to load package in %q: %w", dir, err)
	}
	if len(pkgs) != 1 {
		return nil, fmt.Errorf("expected one package in %q, found %d", dir, len(pkgs))
	}
	pkg := pkgs[0]
	// type errors are tolerated, the package may refer to descriptors
	// which are yet to be generated.
	var errs []error
	for i := range pkg.Errors {
		if pkg.Errors[i].Kind == packages.TypeError {
			continue
		}
		errs = append(errs, pkg.Errors[i])
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("failed to load package %q: %w", pkg.PkgPath, errors.Join(errs...))
	}
	return &Package{
		Name:   pkg.Name,
		Path:   pkg.PkgPath,
		Dir:    dir,
		Types:  pkg.Types,
		Syntax: pkg.Syntax,
	}, nil
}
