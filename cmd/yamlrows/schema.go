package main

import (
	"fmt"

	"github.com/signadot/yamlrows/schema"

	"github.com/scott-cotton/cli"
)

func schemaMain(cfg *SchemaConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Schema.Parse(cc, args)
	if err != nil {
		return err
	}
	res, err := read(cfg.MainConfig, args)
	if err != nil {
		return err
	}
	c := cfg.colors(cc.Out)
	if cfg.Types {
		fmt.Fprintln(cc.Out, c.typ(res.RowType))
		return nil
	}
	if res.MetadataType != nil {
		fmt.Fprintf(cc.Out, "%s %s\n", c.sep("# metadata"), c.typ(res.MetadataType))
	}
	width := 0
	for _, col := range res.Columns {
		width = max(width, len(schema.QuoteName(col.Name)))
	}
	for _, col := range res.Columns {
		name := schema.QuoteName(col.Name)
		pad := width - len(name)
		fmt.Fprintf(cc.Out, "%s%*s %s\n", c.name(name), pad, "", c.typ(col.Type))
	}
	return nil
}
