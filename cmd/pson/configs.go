package main

import (
	"io"
	"os"

	"github.com/protoson/go-pson/encode"
	"github.com/protoson/go-pson/format"
	"github.com/protoson/go-pson/frame"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color    bool `cli:"name=color desc='encode with color'"`
	Circular int  `cli:"name=circular desc='decode into a circular buffer of this many bytes'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

// useColor reports whether output to w is colored: when asked for with
// -color, or when -color is not given and w is a terminal.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name == "color" && opt.Value != nil {
			return false
		}
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (cfg *MainConfig) encOpts(w io.Writer, indent int) []encode.EncodeOption {
	res := []encode.EncodeOption{encode.EncodeIndent(indent)}
	if cfg.useColor(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type EncodeConfig struct {
	*MainConfig
	Compress string `cli:"name=z desc='wrap in a frame compressed with none, lz4 or zstd'"`

	Encode *cli.Command
}

type DecodeConfig struct {
	*MainConfig
	Transcode bool `cli:"name=t desc='stream through the transcoder, without a value tree'"`
	Indent    int  `cli:"name=i desc='indent JSON output by this many spaces'"`

	OutFormat format.Format
	Decode    *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Check *cli.Command
}

type ViewConfig struct {
	*MainConfig
	Indent int `cli:"name=i desc='indentation (default 2)'"`

	View *cli.Command
}

type InspectConfig struct {
	*MainConfig

	Inspect *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Text bool `cli:"name=text desc='show a line diff of the indented JSON'"`

	Diff *cli.Command
}

type QueryConfig struct {
	*MainConfig

	Query *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Compress string `cli:"name=z desc='frame PSON output compressed with none, lz4 or zstd'"`

	Patch *cli.Command
}

func parseCompression(name string) (frame.Compression, bool, error) {
	if name == "" {
		return frame.None, false, nil
	}
	c, err := frame.ParseCompression(name)
	return c, err == nil, err
}
