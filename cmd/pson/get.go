package main

import (
	"fmt"

	"github.com/protoson/go-pson/encode"
	"github.com/protoson/go-pson/ir/kpath"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	path, err := kpath.Parse(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	for _, file := range fileArgs(args[1:]) {
		doc, _, err := getObjFile(cc, file)
		if err != nil {
			return err
		}
		res, err := doc.GetKPath(path)
		if err != nil {
			return fmt.Errorf("error getting %s from %s: %w", args[0], file, err)
		}
		if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out, 0)...); err != nil {
			return err
		}
		if _, err := cc.Out.Write([]byte{'\n'}); err != nil {
			return err
		}
	}
	return nil
}
