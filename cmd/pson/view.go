package main

import (
	"fmt"

	"github.com/protoson/go-pson/encode"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	indent := cfg.Indent
	if indent <= 0 {
		indent = 2
	}
	for _, file := range fileArgs(args) {
		v, _, err := getObjFile(cc, file)
		if err != nil {
			return err
		}
		if err := encode.Encode(v, cc.Out, cfg.encOpts(cc.Out, indent)...); err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
		if _, err := cc.Out.Write([]byte{'\n'}); err != nil {
			return err
		}
	}
	return nil
}
