package rows

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/signadot/yamlrows/format"
	"github.com/signadot/yamlrows/schema"
)

// fileOptions is the config file form of Options. Absent keys keep their
// defaults.
type fileOptions struct {
	AutoDetect      *bool        `yaml:"auto_detect"`
	Tolerant        *bool        `yaml:"tolerant"`
	MaxDocumentSize *int64       `yaml:"max_document_size"`
	MultiDocument   *string      `yaml:"multi_document"`
	ExpandSequences *bool        `yaml:"expand_sequences"`
	Path            *string      `yaml:"path"`
	SampleRows      *int         `yaml:"sample_rows"`
	SampleFiles     *int         `yaml:"sample_files"`
	MaxDepth        *int         `yaml:"max_depth"`
	Columns         []fileColumn `yaml:"columns"`
}

type fileColumn struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// LoadOptions reads options from a YAML config file on top of
// DefaultOptions. For example
//
//	tolerant: true
//	multi_document: frontmatter
//	path: $.items
//	columns:
//	  - {name: id, type: BIGINT}
//	  - {name: tags, type: "VARCHAR[]"}
func LoadOptions(path string) (Options, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return Options{}, err
	}
	opts, err := ParseOptions(d)
	if err != nil {
		return Options{}, fmt.Errorf("%s: %w", path, err)
	}
	return opts, nil
}

// ParseOptions parses config file text. Unknown keys are errors.
func ParseOptions(d []byte) (Options, error) {
	fo := &fileOptions{}
	if err := yaml.UnmarshalWithOptions(d, fo, yaml.Strict()); err != nil {
		return Options{}, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	opts := DefaultOptions()
	if fo.AutoDetect != nil {
		opts.AutoDetect = *fo.AutoDetect
	}
	if fo.Tolerant != nil {
		opts.Tolerant = *fo.Tolerant
	}
	if fo.MaxDocumentSize != nil {
		opts.MaxDocumentSize = *fo.MaxDocumentSize
	}
	if fo.MultiDocument != nil {
		m, err := format.ParseMultiDoc(*fo.MultiDocument)
		if err != nil {
			return Options{}, fmt.Errorf("%w: %w", ErrConfig, err)
		}
		opts.MultiDoc = m
	}
	if fo.ExpandSequences != nil {
		opts.ExpandSequences = *fo.ExpandSequences
	}
	if fo.Path != nil {
		opts.Path = *fo.Path
	}
	if fo.SampleRows != nil {
		opts.SampleRows = *fo.SampleRows
	}
	if fo.SampleFiles != nil {
		opts.SampleFiles = *fo.SampleFiles
	}
	if fo.MaxDepth != nil {
		opts.MaxDepth = *fo.MaxDepth
	}
	for _, c := range fo.Columns {
		t, err := schema.ParseType(c.Type)
		if err != nil {
			return Options{}, fmt.Errorf("%w: column %q: %w", ErrConfig, c.Name, err)
		}
		opts.Columns = append(opts.Columns, schema.Column{Name: c.Name, Type: t})
	}
	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}
