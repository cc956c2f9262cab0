package main

import (
	"fmt"

	"github.com/protoson/go-pson"
	"github.com/protoson/go-pson/ir"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	failed := 0
	for _, file := range fileArgs(args) {
		d, err := readFile(cc, file)
		if err != nil {
			return err
		}
		v := ir.New()
		if err := pson.Unmarshal(d, v); err != nil {
			theLog.Error("decoding failed", "file", file, "error", err)
			failed++
			continue
		}
		v.Release()
		fmt.Fprintf(cc.Out, "%s: decoding ok\n", file)
	}
	if failed > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
