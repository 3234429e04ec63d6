package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/signadot/serde/pkgconfig"
	"github.com/signadot/serde/serde"

	"github.com/scott-cotton/cli"
)

func run(cfg *MainConfig, cc *cli.Context, args []string) (err error) {
	defer func() {
		if cfg.CloseOut == nil {
			return
		}
		if cerr := cfg.CloseOut(); err == nil {
			err = cerr
		}
	}()
	args, err = cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Check != "" && cfg.Out != "" {
		return fmt.Errorf("%w: -check and -o are exclusive", cli.ErrUsage)
	}
	configs, err := loadConfigs(cfg, cc, args)
	if err != nil {
		return err
	}
	var errs []error
	for i := range configs {
		errs = append(errs, configs[i].Validate())
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}
	res := pkgconfig.GenerateOmahaClientConfig(configs)
	if cfg.Check != "" {
		return check(cfg, cc, res)
	}
	return res.Write(cc.Out, cfg.encOpts(cc.Out)...)
}

func loadConfigs(cfg *MainConfig, cc *cli.Context, args []string) ([]pkgconfig.PackageConfig, error) {
	if len(args) == 0 {
		return pkgconfig.LoadPackageConfigs(cc.In, cfg.decOpts("-")...)
	}
	var res []pkgconfig.PackageConfig
	for _, arg := range args {
		f, err := os.Open(arg)
		if err != nil {
			return nil, err
		}
		configs, err := pkgconfig.LoadPackageConfigs(f, cfg.decOpts(arg)...)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("error reading %s: %w", arg, err)
		}
		res = append(res, configs...)
	}
	return res, nil
}

func (cfg *MainConfig) decOpts(path string) []serde.DecodeOption {
	return []serde.DecodeOption{serde.InputFormat(cfg.inFormat(path))}
}
