// Package schema defines the semantic column types produced by inference and
// consumed by value conversion, and the merge used to reconcile the types of
// many documents into one schema.
//
// # Types
//
// A *Type is a closed tagged union selected by its ID:
//
//   - Null: placeholder for a value only ever observed as null
//   - Boolean, TinyInt, SmallInt, Integer, BigInt, Double
//   - Date, Time, Timestamp
//   - String
//   - YAML: passthrough type holding the original text of a value
//   - List: homogeneous list, element type in Elem
//   - Struct: ordered named fields in Fields
//
// Types render and parse with SQL style names, for example
// `STRUCT(a INTEGER, tags VARCHAR[])`.
//
// # Merging
//
// Merge folds the type inferred for one document into a running aggregate.
// Struct fields are unioned in first seen order, nested structs and lists are
// merged recursively, numeric types widen, and anything irreconcilable
// becomes YAML so that no value is dropped. Merge is associative, so merging
// a population in chunks gives the same result as merging it one document at
// a time.
//
// # Related Packages
//
//   - github.com/signadot/yamlrows/infer - Infer types from documents
//   - github.com/signadot/yamlrows/convert - Convert documents to typed values
package schema
