package main

import (
	"fmt"
	"io"

	"github.com/signadot/yamlrows/ir"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	path, err := queryPath("get", args)
	if err != nil {
		return err
	}
	return query(cfg.MainConfig, cc.Out, path, args[1:], false)
}

func list(cfg *ListConfig, cc *cli.Context, args []string) error {
	args, err := cfg.List.Parse(cc, args)
	if err != nil {
		return err
	}
	path, err := queryPath("list", args)
	if err != nil {
		return err
	}
	return query(cfg.MainConfig, cc.Out, path, args[1:], true)
}

func queryPath(cmd string, args []string) (string, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("%w: %s requires one argument, an object path", cli.ErrUsage, cmd)
	}
	path := args[0]
	if path == "" {
		return "", fmt.Errorf("%w: invalid query \"\"", cli.ErrUsage)
	}
	if path[0] != '$' {
		path = "$" + path
	}
	if _, err := ir.ParsePath(path); err != nil {
		return "", fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return path, nil
}

// query writes, for every document of files, the node at path or with
// list the sequence of all nodes matching path.
func query(cfg *MainConfig, w io.Writer, path string, files []string, list bool) error {
	srcs, err := readSources(files)
	if err != nil {
		return err
	}
	n := 0
	for i := range srcs {
		src := &srcs[i]
		docs, err := documents(cfg, src)
		if err != nil {
			return err
		}
		for _, doc := range docs {
			if ir.IsAbsent(doc) {
				continue
			}
			res, err := queryDoc(doc, path, list)
			if err != nil {
				return fmt.Errorf("error querying %s with %s: %w", src.Name, path, err)
			}
			if res == nil {
				continue
			}
			if err := writeDoc(w, res, n); err != nil {
				return err
			}
			n++
		}
	}
	return nil
}

func queryDoc(doc *ir.Node, path string, list bool) (*ir.Node, error) {
	if list {
		res, err := doc.ListPath(nil, path)
		if err != nil {
			return nil, err
		}
		return ir.FromSlice(res), nil
	}
	res, err := doc.GetPath(path)
	if err != nil {
		return nil, err
	}
	if res.Type == ir.UndefinedType {
		return nil, nil
	}
	return res, nil
}
