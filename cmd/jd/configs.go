package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/jdom/encode"
	"github.com/signadot/jdom/format"
	"github.com/signadot/jdom/gomap"
	"github.com/signadot/jdom/ir"
	"github.com/signadot/jdom/parse"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Color    bool `cli:"name=color desc='encode with color'"`
	WireOut  bool `cli:"name=wire desc='output in compact format'"`
	Comments bool `cli:"name=c aliases=comments desc='tolerate // and /* */ comments in input'"`
	Strict   bool `cli:"name=strict desc='reject trailing content after the document'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	res := []parse.ParseOption{}
	if cfg.Comments {
		res = append(res, parse.StripComments())
	}
	if cfg.Strict {
		res = append(res, parse.RequireFull())
	}
	return res
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeWire(cfg.WireOut),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// encodeOut renders node to w in the selected output format, JSON by
// default, YAML with -O yaml.
func (cfg *MainConfig) encodeOut(w io.Writer, node *ir.Node) error {
	if cfg.OutFormat != nil && cfg.OutFormat.IsYAML() {
		d, err := yaml.Marshal(gomap.ToAny(node))
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	}
	if err := encode.Encode(node, w, cfg.encOpts(w)...); err != nil {
		return err
	}
	_, err := w.Write([]byte("\n"))
	return err
}

// readDoc parses one document from a file path or stdin for "-".
func (cfg *MainConfig) readDoc(arg string) (*ir.Node, error) {
	var r io.Reader
	if arg == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", arg, err)
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", arg, err)
	}
	node, err := parse.Parse(d, cfg.parseOpts()...)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	return node, nil
}

type FmtConfig struct {
	*MainConfig

	Fmt *cli.Command
}

type MinConfig struct {
	*MainConfig

	Min *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Merge bool `cli:"name=m aliases=merge desc='apply arg as RFC 7386 merge patch'"`

	Patch *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Env map[string]any

	Eval *cli.Command
}
