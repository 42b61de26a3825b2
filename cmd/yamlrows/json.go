package main

import (
	"github.com/signadot/yamlrows/ir"
	"github.com/signadot/yamlrows/transcode"

	"github.com/scott-cotton/cli"
)

func jsonMain(cfg *JSONConfig, cc *cli.Context, args []string) error {
	args, err := cfg.JSON.Parse(cc, args)
	if err != nil {
		return err
	}
	srcs, err := readSources(args)
	if err != nil {
		return err
	}
	opts := []transcode.Option{
		transcode.JSONIndent(cfg.Indent),
		transcode.JSONMaxDepth(cfg.Opts.MaxDepth),
	}
	for i := range srcs {
		docs, err := documents(cfg.MainConfig, &srcs[i])
		if err != nil {
			return err
		}
		for _, doc := range docs {
			if ir.IsAbsent(doc) {
				continue
			}
			if err := transcode.WriteJSON(cc.Out, doc, opts...); err != nil {
				return err
			}
		}
	}
	return nil
}
