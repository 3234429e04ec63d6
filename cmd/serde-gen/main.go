package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/scott-cotton/cli"
	"github.com/signadot/serde/serde/gen"
)

func main() {
	cli.MainContext(context.Background(), MainCommand())
}

func MainCommand() *cli.Command {
	cfg := &Config{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}

	return cli.NewCommandAt(&cfg.Main, "serde-gen").
		WithSynopsis("serde-gen [opts]").
		WithDescription("Generate serde descriptors for the struct types with serde tags of a package.").
		WithOpts(sOpts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return run(cfg, cc, args)
		})
}

type Config struct {
	OutputFile string `cli:"name=o desc='output file for generated Go code (default: <package>_serde.go)'"`
	Dir        string `cli:"name=dir desc='directory of the package (default: current directory)'"`
	Stdout     bool   `cli:"name=stdout desc='write generated code to stdout'"`

	Main *cli.Command
}

func run(cfg *Config, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: unexpected arguments %v", cli.ErrUsage, args)
	}
	dir := cfg.Dir
	if dir == "" {
		dir, err = os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}
	}
	pkg, err := gen.Load(dir)
	if err != nil {
		return err
	}
	code, err := gen.Generate(pkg.Types, pkg.Syntax)
	if err != nil {
		return fmt.Errorf("failed to generate descriptors for %q: %w", pkg.Path, err)
	}
	if code == nil {
		fmt.Fprintf(cc.Out, "no struct types with serde tags in %s\n", pkg.Path)
		return nil
	}
	if cfg.Stdout {
		_, err := cc.Out.Write(code)
		return err
	}
	out := cfg.OutputFile
	if out == "" {
		out = filepath.Join(dir, gen.OutputFile(pkg))
	}
	if err := os.WriteFile(out, code, 0644); err != nil {
		return fmt.Errorf("failed to write output file %q: %w", out, err)
	}
	return nil
}
