package main

import (
	"fmt"
	"io"

	"github.com/protoson/go-pson/encode"
	"github.com/protoson/go-pson/libdiff"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	from, _, err := getObjFile(cc, args[0])
	if err != nil {
		return err
	}
	to, _, err := getObjFile(cc, args[1])
	if err != nil {
		return err
	}
	var out string
	if cfg.Text {
		out = libdiff.Text(
			encode.MustString(from, encode.EncodeIndent(2))+"\n",
			encode.MustString(to, encode.EncodeIndent(2))+"\n")
	} else {
		out = libdiff.Format(libdiff.Diff(from, to))
	}
	if out == "" {
		return nil
	}
	if err := writeDiff(cc.Out, out, cfg.useColor(cc.Out)); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

// writeDiff writes diff lines, coloring them by their leading marker when
// colors is set.
func writeDiff(w io.Writer, out string, colors bool) error {
	if !colors {
		_, err := io.WriteString(w, out)
		return err
	}
	marks := map[byte]*color.Color{
		'+': color.New(color.FgGreen),
		'-': color.New(color.FgRed),
		'~': color.New(color.FgYellow),
	}
	start := 0
	for i := 0; i < len(out); i++ {
		if out[i] != '\n' {
			continue
		}
		line := out[start : i+1]
		start = i + 1
		if c, ok := marks[line[0]]; ok {
			if _, err := c.Fprint(w, line); err != nil {
				return err
			}
			continue
		}
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
	}
	return nil
}
