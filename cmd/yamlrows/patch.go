package main

import (
	"fmt"
	"io"

	"github.com/signadot/yamlrows/encode"
	"github.com/signadot/yamlrows/format"
	"github.com/signadot/yamlrows/ir"
	"github.com/signadot/yamlrows/layout"
	"github.com/signadot/yamlrows/parse"
	"github.com/signadot/yamlrows/transcode"

	"github.com/scott-cotton/cli"
)

func patchMain(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch argument", cli.ErrUsage)
	}
	var patchData []byte
	if cfg.String {
		patchData = []byte(args[0])
	} else {
		patchData, err = readFile(args[0])
		if err != nil {
			return err
		}
	}
	apply, err := patcher(cfg, patchData)
	if err != nil {
		return err
	}
	srcs, err := readSources(args[1:])
	if err != nil {
		return err
	}
	n := 0
	for i := range srcs {
		docs, err := documents(cfg.MainConfig, &srcs[i])
		if err != nil {
			return err
		}
		for _, doc := range docs {
			if ir.IsAbsent(doc) {
				continue
			}
			res, err := apply(doc)
			if err != nil {
				return fmt.Errorf("error patching %s: %w", srcs[i].Name, err)
			}
			if err := writeDoc(cc.Out, res, n); err != nil {
				return err
			}
			n++
		}
	}
	return nil
}

func patcher(cfg *PatchConfig, d []byte) (func(*ir.Node) (*ir.Node, error), error) {
	if cfg.JSONPatch {
		return func(doc *ir.Node) (*ir.Node, error) {
			return transcode.ApplyJSONPatch(doc, d)
		}, nil
	}
	patch, err := parse.Parse(d)
	if err != nil {
		return nil, fmt.Errorf("error decoding patch: %w", err)
	}
	return func(doc *ir.Node) (*ir.Node, error) {
		return transcode.MergePatch(doc, patch), nil
	}, nil
}

// writeDoc writes doc in block style as document i of a stream.
func writeDoc(w io.Writer, doc *ir.Node, i int) error {
	s, err := encode.String(doc, encode.EncodeStyle(format.BlockStyle))
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, layout.Apply(s, i, format.DocumentLayout, format.BlockStyle)+"\n")
	return err
}
