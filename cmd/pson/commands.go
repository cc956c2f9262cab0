package main

import (
	"fmt"

	"github.com/protoson/go-pson/format"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "pson").
		WithSynopsis("pson [opts] command [opts]").
		WithDescription("pson converts between JSON and the PSON binary format.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return psonMain(cfg, cc, args)
		}).
		WithSubs(
			EncodeCommand(cfg),
			DecodeCommand(cfg),
			CheckCommand(cfg),
			ViewCommand(cfg),
			InspectCommand(cfg),
			GetCommand(cfg),
			DiffCommand(cfg),
			QueryCommand(cfg),
			PatchCommand(cfg))
}

func EncodeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EncodeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Encode, "encode").
		WithAliases("e", "j2p").
		WithSynopsis("encode [-z lz4|zstd] [file]").
		WithDescription("encode JSON or JSONC as PSON").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return encodeCmd(cfg, cc, args)
		})
}

func DecodeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DecodeConfig{MainConfig: mainCfg, OutFormat: format.JSONFormat}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, &cli.Opt{
		Name:        "O",
		Aliases:     []string{"ofmt"},
		Description: "output format: json/j, yaml/y, cbor/c",
		Type:        cli.NamedFuncOpt(cfg.fmtFunc(), "(format)"),
	})
	return cli.NewCommandAt(&cfg.Decode, "decode").
		WithAliases("d", "p2j").
		WithSynopsis("decode [-t] [-O format] [file]").
		WithDescription("decode PSON, framed or not, to JSON, YAML or CBOR").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return decodeCmd(cfg, cc, args)
		})
}

func (cfg *DecodeConfig) fmtFunc() cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		if f.IsPSON() {
			return nil, fmt.Errorf("%w: decode cannot output pson", cli.ErrUsage)
		}
		cfg.OutFormat = f
		return f, nil
	})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("c").
		WithSynopsis("check [files]").
		WithDescription("check that files decode as PSON").
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.View, "view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("view JSON or PSON documents as indented JSON, in color on terminals").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
}

func InspectCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &InspectConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Inspect, "inspect").
		WithAliases("i").
		WithSynopsis("inspect [file]").
		WithDescription("list the records of a PSON document with their offsets").
		WithRun(func(cc *cli.Context, args []string) error {
			return inspect(cfg, cc, args)
		})
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g").
		WithSynopsis("get <path> [files]").
		WithDescription("get the value at a path such as a.b[0] from documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithOpts(opts...).
		WithSynopsis("diff [-text] a b").
		WithDescription("diff two documents, exiting with 1 when they differ").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func QueryCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &QueryConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Query, "query").
		WithAliases("q").
		WithSynopsis("query <expr> [files]").
		WithDescription(queryDescription).
		WithRun(func(cc *cli.Context, args []string) error {
			return query(cfg, cc, args)
		})
}

const queryDescription = `query evaluates an expression against each document.

The document is bound to the variable 'doc', so

  pson query 'doc.readings[0] > 10' data.pson
  pson query 'filter(doc.items, .price < 5)' items.json

The expression language is that of github.com/expr-lang/expr. The result
is written as JSON.`

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Patch, "patch").
		WithAliases("p").
		WithSynopsis("patch [-z c] <patchfile> [file]").
		WithDescription("apply an RFC 6902 JSON patch, writing the result in the format of the input").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
}
