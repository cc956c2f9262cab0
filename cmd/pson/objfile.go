package main

import (
	"fmt"
	"io"
	"os"

	"github.com/protoson/go-pson"
	"github.com/protoson/go-pson/format"
	"github.com/protoson/go-pson/ir"
	"github.com/protoson/go-pson/parse"

	"github.com/scott-cotton/cli"
	"github.com/tidwall/jsonc"
)

// readFile reads path, or the command input when path is "-".
func readFile(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

// fileArgs returns args, or "-" for the command input when args is empty.
func fileArgs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

// parseJSON parses JSON text, allowing the comments and trailing commas of
// JSONC.
func parseJSON(d []byte) (*ir.Value, error) {
	return parse.Parse(jsonc.ToJSON(d))
}

// decodeDoc decodes d as PSON or JSON, whichever it looks like, and
// returns the format it found.
func decodeDoc(d []byte) (*ir.Value, format.Format, error) {
	f := format.Detect(d)
	if f.IsJSON() {
		v, err := parseJSON(d)
		return v, f, err
	}
	v := ir.New()
	if err := pson.Unmarshal(d, v); err != nil {
		return nil, f, err
	}
	return v, f, nil
}

func getObjFile(cc *cli.Context, path string) (*ir.Value, format.Format, error) {
	d, err := readFile(cc, path)
	if err != nil {
		return nil, 0, err
	}
	v, f, err := decodeDoc(d)
	if err != nil {
		return nil, f, fmt.Errorf("error decoding %s as %s: %w", path, f, err)
	}
	return v, f, nil
}
