// Package convert converts between document nodes and typed values.
//
// FromNode converts a node against a target schema.Type and ToNode converts
// a value back into a node. Neither direction returns an error. A value that
// does not fit its target type becomes NULL, and the Outcome in the result
// records whether that happened. Recursion is bounded by a maximum depth;
// beyond it the converters produce the ir.DepthSentinel text (or NULL where
// text cannot be held) and report DepthExceeded.
//
// ToNode quotes strings that would read back as something other than a
// string, so that
//
//	FromNode(ToNode(v).Node, v.Type).Value
//
// equals v for every non-null value of a boolean, integer, temporal, list or
// struct type.
package convert
