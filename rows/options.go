package rows

import (
	"fmt"
	"log/slog"

	"github.com/signadot/yamlrows/format"
	"github.com/signadot/yamlrows/ir"
	"github.com/signadot/yamlrows/metrics"
	"github.com/signadot/yamlrows/schema"
)

const (
	// Unlimited disables a sampling cap.
	Unlimited = -1

	DefaultSampleRows      = 20480
	DefaultSampleFiles     = 32
	DefaultMaxDocumentSize = 16 << 20

	// ValueColumn names the column of rows that are not maps.
	ValueColumn = "value"
	// DocumentsColumn names the column of rows in format.DocumentList mode.
	DocumentsColumn = "documents"
)

// Options configures Read. Use DefaultOptions for a starting point.
type Options struct {
	// AutoDetect infers column types. When false, columns are still
	// discovered but typed YAML.
	AutoDetect bool
	// Tolerant recovers what it can from malformed text instead of
	// failing.
	Tolerant bool
	// MaxDocumentSize bounds the bytes of one document of raw text. 0
	// means no bound.
	MaxDocumentSize int64
	MultiDoc        format.MultiDoc
	// ExpandSequences makes a top level sequence give one row per
	// element.
	ExpandSequences bool
	// Path selects the nodes of each document that rows are taken from,
	// for example $.items. A selected sequence gives one row per element.
	Path string
	// SampleRows and SampleFiles bound the rows and sources used for
	// inference. Unlimited disables a bound.
	SampleRows  int
	SampleFiles int
	// Columns, when set, are used instead of inference.
	Columns  schema.Columns
	MaxDepth int

	Logger  *slog.Logger
	Metrics *metrics.Read
}

func DefaultOptions() Options {
	return Options{
		AutoDetect:      true,
		MaxDocumentSize: DefaultMaxDocumentSize,
		MultiDoc:        format.DocumentRows,
		ExpandSequences: true,
		SampleRows:      DefaultSampleRows,
		SampleFiles:     DefaultSampleFiles,
		MaxDepth:        ir.DefaultMaxDepth,
	}
}

// Validate reports the first invalid option. Errors wrap ErrConfig.
func (o *Options) Validate() error {
	if o.MaxDocumentSize < 0 {
		return fmt.Errorf("%w: max document size %d is negative", ErrConfig, o.MaxDocumentSize)
	}
	if o.SampleRows < Unlimited || o.SampleRows == 0 {
		return fmt.Errorf("%w: sample rows must be positive or %d, got %d", ErrConfig, Unlimited, o.SampleRows)
	}
	if o.SampleFiles < Unlimited || o.SampleFiles == 0 {
		return fmt.Errorf("%w: sample files must be positive or %d, got %d", ErrConfig, Unlimited, o.SampleFiles)
	}
	if o.MaxDepth < 0 {
		return fmt.Errorf("%w: max depth %d is negative", ErrConfig, o.MaxDepth)
	}
	if _, err := o.MultiDoc.MarshalText(); err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}
	if o.Path != "" {
		if _, err := ir.ParsePath(o.Path); err != nil {
			return fmt.Errorf("%w: %w", ErrConfig, err)
		}
	}
	seen := make(map[string]bool, len(o.Columns))
	for i, c := range o.Columns {
		if c.Name == "" {
			return fmt.Errorf("%w: column %d has no name", ErrConfig, i)
		}
		if seen[c.Name] {
			return fmt.Errorf("%w: duplicate column %q", ErrConfig, c.Name)
		}
		seen[c.Name] = true
		if c.Type == nil {
			return fmt.Errorf("%w: column %q has no type", ErrConfig, c.Name)
		}
	}
	return nil
}

func (o *Options) maxDepth() int {
	if o.MaxDepth == 0 {
		return ir.DefaultMaxDepth
	}
	return o.MaxDepth
}

func (o *Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return o.Logger
}
