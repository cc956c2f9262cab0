package main

import (
	"fmt"
	"io"

	"github.com/protoson/go-pson"
	"github.com/protoson/go-pson/encode"
	"github.com/protoson/go-pson/format"
	"github.com/protoson/go-pson/ir"

	"github.com/fxamacker/cbor/v2"
	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func decodeCmd(cfg *DecodeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Decode.Parse(cc, args)
	if err != nil {
		cfg.Decode.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: decode takes at most one file", cli.ErrUsage)
	}
	if cfg.Transcode && !cfg.OutFormat.IsJSON() {
		return fmt.Errorf("%w: -t only produces json", cli.ErrUsage)
	}
	file := fileArgs(args)[0]
	d, err := readFile(cc, file)
	if err != nil {
		return err
	}
	if cfg.Transcode {
		out, err := pson.Transcode(d)
		if err != nil {
			return fmt.Errorf("error transcoding %s: %w", file, err)
		}
		_, err = cc.Out.Write(append(out, '\n'))
		return err
	}
	v := ir.New()
	if err := pson.Unmarshal(d, v); err != nil {
		return fmt.Errorf("error decoding %s: %w", file, err)
	}
	return writeAs(cc.Out, v, cfg.OutFormat, encode.EncodeIndent(cfg.Indent))
}

// writeAs writes v to w in format f. JSON output ends with a newline.
func writeAs(w io.Writer, v *ir.Value, f format.Format, opts ...encode.EncodeOption) error {
	switch f {
	case format.PSONFormat:
		d, err := pson.Marshal(v)
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	case format.YAMLFormat:
		enc := yaml.NewEncoder(w, yaml.Indent(2))
		if err := enc.Encode(v.Interface()); err != nil {
			return err
		}
		return enc.Close()
	case format.CBORFormat:
		return cbor.NewEncoder(w).Encode(v.Interface())
	default:
		if err := encode.Encode(v, w, opts...); err != nil {
			return err
		}
		_, err := w.Write([]byte{'\n'})
		return err
	}
}
