package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/serde/encode"
	"github.com/signadot/serde/format"
	"github.com/signadot/serde/serde"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool   `cli:"name=color desc='encode with color'"`
	WireOut bool   `cli:"name=wire desc='output in compact format'"`
	Indent  int    `cli:"name=indent desc='indentation width of the output'"`
	Check   string `cli:"name=check desc='compare the output with a golden file instead of writing it'"`
	Omit    bool   `cli:"name=omit-empty desc='omit empty fields from the output'"`

	InFormat, OutFormat *format.Format

	// Out is the output file, empty when writing to stdout.
	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	if a == "-" {
		return nil, nil
	}
	cfg.Out = a
	f, err := os.OpenFile(a, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// inFormat returns the input format of the file at path.
func (cfg *MainConfig) inFormat(path string) format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	return format.FromPath(path)
}

func (cfg *MainConfig) encOpts(w io.Writer) []serde.EncodeOption {
	res := []serde.EncodeOption{
		serde.Compact(cfg.WireOut),
		serde.OmitEmpty(cfg.Omit),
	}
	if cfg.OutFormat != nil {
		res = append(res, serde.Format(*cfg.OutFormat))
	}
	if cfg.Indent > 0 {
		res = append(res, serde.Indent(cfg.Indent))
	}
	if cfg.Color {
		return append(res, serde.Colors(encode.NewColors()))
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, serde.Colors(encode.NewColors()))
	}
	return res
}
