// Package ir provides the in-memory document tree shared by the parser, the
// emitter, schema inference and value conversion.
//
// # Overview
//
// A document is a tree of *Node values. The IR is a recursive tagged union:
// the Type field says which of the other fields are meaningful.
//
//   - UndefinedType: the path or key is not present at all
//   - NullType: the value is explicitly present and null
//   - ScalarType: a scalar, whose raw lexeme is kept in String
//   - SequenceType: an ordered list, elements in Values
//   - MapType: key/value pairs, keys in Fields and values in Values
//
// Undefined and Null are distinct: a map missing a key yields Undefined on
// lookup, while `key: null` yields Null.
//
// Scalars are not typed by the IR. The lexeme is kept verbatim and typing is
// left to consumers (see package infer), except for the Quoted flag which
// records that the source forced a string interpretation.
//
// # IR Structure Constraints
//
// For MapType nodes, Fields[i] is the key for the value at Values[i], so
// there are always the same number of fields as values. Fields are scalar
// nodes. Keys are treated as unique for lookup; Get returns the first match.
//
// # Creating Nodes
//
//	node := ir.FromString("hello")
//	obj := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "a", Val: ir.FromString("1")},
//	})
//	arr := ir.FromSlice([]*ir.Node{ir.FromString("1"), ir.Null()})
//
// # Paths
//
// Paths are JSONPath-like strings rooted at "$", for example "$.items[0]",
// "$.items[*].name" or "$..name". GetPath resolves a single node; ListPath
// collects every match.
//
// # Thread Safety
//
// Nodes are not safe for concurrent mutation. Trees are handed from stage to
// stage; clone a tree before sharing it.
//
// # Related Packages
//
//   - github.com/signadot/yamlrows/parse - Parse text into IR nodes
//   - github.com/signadot/yamlrows/encode - Encode IR nodes to text
//   - github.com/signadot/yamlrows/transcode - IR to JSON and merge patches
package ir
