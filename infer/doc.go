// Package infer infers schema types from document nodes.
//
// DetectScalar classifies a single scalar lexeme using ordered rules: null
// lexemes, booleans, temporal forms (date before timestamp before time),
// special floats, integers by width and finally doubles, where an integral
// double is reclassified as an integer. Anything else is a string. The
// detector looks only at the lexeme.
//
// Node infers the type of a whole document, unifying the element types of
// sequences and mapping maps to structs. Population folds the types of many
// documents with schema.Merge.
package infer
