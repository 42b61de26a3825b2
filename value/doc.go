// Package value provides typed values tagged with a schema.Type.
//
// A Value is the tabular counterpart of an ir.Node: it is what a document
// field becomes once converted against an inferred column type, and what
// the write path serializes back into document text. Only the payload field
// selected by the value's type ID is meaningful, and a Null value carries its
// type but no payload.
//
// The package also holds the canonical lexical forms of the temporal types.
// Dates use YYYY-MM-DD, times HH:MM:SS with an optional fraction, and
// timestamps combine the two with a T separator. Timestamps with a zone
// offset are normalized to UTC.
package value
