package main

import (
	"github.com/signadot/yamlrows/rows"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{Opts: rows.DefaultOptions()}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "config",
			Aliases:     []string{"c"},
			Description: "read options from a yaml file",
			Type:        cli.NamedFuncOpt(cfg.configOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "multi",
			Aliases:     []string{"m"},
			Description: "multi document handling: first, rows, frontmatter, list",
			Type:        cli.NamedFuncOpt(cfg.multiDocOpt, "(mode)"),
		},
		&cli.Opt{
			Name:        "columns",
			Description: "explicit columns, e.g. 'id BIGINT, tags VARCHAR[]'",
			Type:        cli.NamedFuncOpt(cfg.columnsOpt, "(columns)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "yamlrows").
		WithSynopsis("yamlrows [opts] command [opts]").
		WithDescription("yamlrows reads yaml documents as typed rows and writes rows back as yaml.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return yamlrowsMain(cfg, cc, args)
		}).
		WithSubs(
			SchemaCommand(cfg),
			RowsCommand(cfg),
			GetCommand(cfg),
			ListCommand(cfg),
			JSONCommand(cfg),
			PatchCommand(cfg),
			RoundTripCommand(cfg))
}

func SchemaCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SchemaConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Schema, "schema").
		WithAliases("s").
		WithSynopsis("schema [opts] [files]").
		WithDescription("print the columns inferred from yaml documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return schemaMain(cfg, cc, args)
		})
}

func RowsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RowsConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts,
		&cli.Opt{
			Name:        "style",
			Description: "serialization style: block, flow",
			Type:        cli.NamedFuncOpt(cfg.styleOpt, "(style)"),
		},
		&cli.Opt{
			Name:        "layout",
			Aliases:     []string{"l"},
			Description: "row layout: none, sequence, document",
			Type:        cli.NamedFuncOpt(cfg.layoutOpt, "(layout)"),
		})
	return cli.NewCommandAt(&cfg.Rows, "rows").
		WithAliases("r").
		WithSynopsis("rows [-where expr] [-select cols] [-style s] [-layout l] [-indent n] [files]").
		WithDescription("convert yaml documents to typed rows and write them back as yaml").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return rowsMain(cfg, cc, args)
		})
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g").
		WithSynopsis("get <path> [files]").
		WithDescription("get the node at a path, e.g. $.items[0], from each document").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
}

func ListCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ListConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.List, "list").
		WithAliases("l").
		WithSynopsis("list <path> [files]").
		WithDescription("list the nodes matching a path with [*] or .., e.g. $..name, in each document").
		WithRun(func(cc *cli.Context, args []string) error {
			return list(cfg, cc, args)
		})
}

func JSONCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &JSONConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.JSON, "json").
		WithAliases("j").
		WithSynopsis("json [-i n] [files]").
		WithDescription("transcode yaml documents to json, one document per line").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return jsonMain(cfg, cc, args)
		})
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Patch, "patch").
		WithAliases("p").
		WithSynopsis("patch [-j] [-s] <patch> [files]").
		WithDescription("apply a merge patch or a json patch to yaml documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patchMain(cfg, cc, args)
		})
}

func RoundTripCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RoundTripConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.RoundTrip, "roundtrip").
		WithAliases("rt").
		WithSynopsis("roundtrip [-q] [files]").
		WithDescription("read documents as rows, write them back and diff against the input").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return roundTripMain(cfg, cc, args)
		})
}
