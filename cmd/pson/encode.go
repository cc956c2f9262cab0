package main

import (
	"fmt"

	"github.com/protoson/go-pson"

	"github.com/scott-cotton/cli"
)

func encodeCmd(cfg *EncodeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Encode.Parse(cc, args)
	if err != nil {
		cfg.Encode.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: encode takes at most one file", cli.ErrUsage)
	}
	c, framed, err := parseCompression(cfg.Compress)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	file := fileArgs(args)[0]
	d, err := readFile(cc, file)
	if err != nil {
		return err
	}
	v, err := parseJSON(d)
	if err != nil {
		return fmt.Errorf("error parsing %s: %w", file, err)
	}
	var out []byte
	if framed {
		out, err = pson.MarshalFramed(v, c)
	} else {
		out, err = pson.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("error encoding %s: %w", file, err)
	}
	if _, err := cc.Out.Write(out); err != nil {
		return err
	}
	if framed {
		theLog.Info("encoded", "file", file, "json", len(d), "frame", len(out), "compression", c)
	}
	return nil
}
