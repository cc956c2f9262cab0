package main

import (
	"fmt"

	"github.com/protoson/go-pson/encode"
	"github.com/protoson/go-pson/ir"

	"github.com/expr-lang/expr"
	"github.com/scott-cotton/cli"
)

func query(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		cfg.Query.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: query requires an expression", cli.ErrUsage)
	}
	prg, err := expr.Compile(args[0], expr.Env(map[string]any{"doc": nil}))
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	for _, file := range fileArgs(args[1:]) {
		doc, _, err := getObjFile(cc, file)
		if err != nil {
			return err
		}
		out, err := expr.Run(prg, map[string]any{"doc": doc.Interface()})
		if err != nil {
			return fmt.Errorf("error evaluating %q on %s: %w", args[0], file, err)
		}
		res := ir.New()
		if err := ir.FromAny(res, out); err != nil {
			return fmt.Errorf("query result: %w", err)
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
