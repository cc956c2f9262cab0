package main

import (
	"bytes"
	"fmt"

	"github.com/protoson/go-pson/encode"
	"github.com/protoson/go-pson/frame"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"
	"github.com/tidwall/jsonc"
)

// patch applies a JSON patch to the JSON rendering of a document, so bytes
// values in the document become empty strings.
func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: patch requires a patch file and at most one document", cli.ErrUsage)
	}
	c, framed, err := parseCompression(cfg.Compress)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	pd, err := readFile(cc, args[0])
	if err != nil {
		return err
	}
	ops, err := jsonpatch.DecodePatch(jsonc.ToJSON(pd))
	if err != nil {
		return fmt.Errorf("error decoding patch %s: %w", args[0], err)
	}
	file := fileArgs(args[1:])[0]
	doc, f, err := getObjFile(cc, file)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := encode.Encode(doc, &buf); err != nil {
		return err
	}
	out, err := ops.Apply(buf.Bytes())
	if err != nil {
		return fmt.Errorf("error patching %s: %w", file, err)
	}
	res, err := parseJSON(out)
	if err != nil {
		return fmt.Errorf("error parsing patch result: %w", err)
	}
	if !f.IsPSON() {
		return writeAs(cc.Out, res, f, cfg.encOpts(cc.Out, 0)...)
	}
	var bin bytes.Buffer
	if err := writeAs(&bin, res, f); err != nil {
		return err
	}
	if !framed {
		_, err = cc.Out.Write(bin.Bytes())
		return err
	}
	d, err := frame.Wrap(bin.Bytes(), c)
	if err != nil {
		return err
	}
	_, err = cc.Out.Write(d)
	return err
}
