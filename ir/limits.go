package ir

// DefaultMaxDepth bounds every recursive walk over a document tree:
// parsing, inference, conversion and transcoding.
const DefaultMaxDepth = 1000

// DepthSentinel replaces any subtree found beyond the depth bound.
const DepthSentinel = "<max depth exceeded>"

// DepthNode returns the quoted scalar standing in for a subtree beyond the
// depth bound.
func DepthNode() *Node {
	return FromQuoted(DepthSentinel)
}
