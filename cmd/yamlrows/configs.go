package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/yamlrows/format"
	"github.com/signadot/yamlrows/rows"
	"github.com/signadot/yamlrows/schema"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Tolerant bool   `cli:"name=tolerant desc='recover what can be read from malformed documents'"`
	Color    bool   `cli:"name=color desc='output with color'"`
	Path     string `cli:"name=path desc='path selecting the rows of each document, e.g. $.items'"`
	Raw      bool   `cli:"name=raw desc='do not detect column types'"`
	Debug    bool   `cli:"name=debug desc='log debug messages'"`

	// Opts holds the defaults, replaced by -config.
	Opts     rows.Options
	MultiDoc *format.MultiDoc
	Columns  schema.Columns

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) configOpt(_ *cli.Context, v string) (any, error) {
	opts, err := rows.LoadOptions(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.Opts = opts
	return v, nil
}

func (cfg *MainConfig) multiDocOpt(_ *cli.Context, v string) (any, error) {
	m, err := format.ParseMultiDoc(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.MultiDoc = &m
	return m, nil
}

// columnsOpt parses a column list such as "id BIGINT, name VARCHAR".
func (cfg *MainConfig) columnsOpt(_ *cli.Context, v string) (any, error) {
	t, err := schema.ParseType("STRUCT(" + v + ")")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.Columns = schema.ColumnsOf(t, rows.ValueColumn)
	return v, nil
}

// readOptions combines the config file options with the command line.
func (cfg *MainConfig) readOptions() rows.Options {
	opts := cfg.Opts
	if cfg.Tolerant {
		opts.Tolerant = true
	}
	if cfg.Raw {
		opts.AutoDetect = false
	}
	if cfg.Path != "" {
		opts.Path = cfg.Path
	}
	if cfg.MultiDoc != nil {
		opts.MultiDoc = *cfg.MultiDoc
	}
	if len(cfg.Columns) != 0 {
		opts.Columns = cfg.Columns
	}
	opts.Logger = theLog
	if cfg.Debug {
		opts.Logger = debugLog
	}
	return opts
}

func (cfg *MainConfig) colors(w io.Writer) *colors {
	if cfg.Color {
		return newColors()
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
		return nil
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return newColors()
	}
	return nil
}

type SchemaConfig struct {
	*MainConfig
	Types bool `cli:"name=t aliases=type desc='print the row type on one line'"`

	Schema *cli.Command
}

type RowsConfig struct {
	*MainConfig
	Where    string `cli:"name=where aliases=w desc='only output rows for which the expression is true'"`
	Source   bool   `cli:"name=s aliases=source desc='prefix each row with its source'"`
	Metadata bool   `cli:"name=m aliases=metadata desc='output frontmatter metadata instead of rows'"`
	Select   string `cli:"name=select desc='comma separated columns to output'"`
	Indent   int    `cli:"name=indent desc='block style indentation'"`

	Style  format.Style
	Layout format.Layout

	Rows *cli.Command
}

func (cfg *RowsConfig) styleOpt(_ *cli.Context, v string) (any, error) {
	s, err := format.ParseStyle(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.Style = s
	return s, nil
}

func (cfg *RowsConfig) layoutOpt(_ *cli.Context, v string) (any, error) {
	l, err := format.ParseLayout(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.Layout = l
	return l, nil
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type ListConfig struct {
	*MainConfig

	List *cli.Command
}

type JSONConfig struct {
	*MainConfig
	Indent int `cli:"name=i aliases=indent desc='indent output by this many spaces'"`

	JSON *cli.Command
}

type PatchConfig struct {
	*MainConfig
	JSONPatch bool `cli:"name=j aliases=json-patch desc='patch is a JSON patch (RFC 6902) instead of a merge patch'"`
	String    bool `cli:"name=s desc='patch arg as string'"`

	Patch *cli.Command
}

type RoundTripConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q desc='only report whether the documents round trip'"`

	RoundTrip *cli.Command
}
