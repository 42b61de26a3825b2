package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/yamlrows/ir"
	"github.com/signadot/yamlrows/parse"
	"github.com/signadot/yamlrows/rows"

	"golang.org/x/sync/errgroup"
)

const maxOpenFiles = 16

// readSources reads files concurrently, keeping their order. No files or
// "-" reads stdin.
func readSources(files []string) ([]rows.Source, error) {
	if len(files) == 0 {
		files = []string{"-"}
	}
	res := make([]rows.Source, len(files))
	var g errgroup.Group
	g.SetLimit(maxOpenFiles)
	for i, file := range files {
		g.Go(func() error {
			d, err := readFile(file)
			if err != nil {
				return err
			}
			res[i] = rows.Source{Name: file, Text: d}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

func readFile(file string) ([]byte, error) {
	var r io.Reader
	if file == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", file, err)
	}
	return d, nil
}

func read(cfg *MainConfig, files []string) (*rows.Result, error) {
	srcs, err := readSources(files)
	if err != nil {
		return nil, err
	}
	res, err := rows.Read(srcs, cfg.readOptions())
	if err != nil {
		return nil, err
	}
	if rep := res.Report; rep.Recovered {
		theLog.Warn("recovered malformed input", "documents", rep.Documents, "discarded", rep.Discarded, "oversized", rep.Oversized)
	}
	return res, nil
}

// documents parses the documents of src with the read options of cfg.
func documents(cfg *MainConfig, src *rows.Source) ([]*ir.Node, error) {
	opts := cfg.readOptions()
	docs, err := parse.ParseAll(src.Text,
		parse.ParseTolerant(opts.Tolerant),
		parse.ParseMaxDocumentSize(opts.MaxDocumentSize),
		parse.ParseMaxDepth(opts.MaxDepth),
		parse.ParseLogger(opts.Logger.With("source", src.Name)))
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", src.Name, err)
	}
	return docs, nil
}
