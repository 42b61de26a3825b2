package convert

import (
	"github.com/signadot/yamlrows/ir"
	"github.com/signadot/yamlrows/value"
)

type Outcome int

const (
	// Converted means the value was converted in full. An explicit null
	// node converts to a NULL value with this outcome.
	Converted Outcome = iota
	// Absent means the node was missing and the value is NULL.
	Absent
	// Degraded means the value, or some part of it, did not fit its type
	// and was replaced by NULL.
	Degraded
	// DepthExceeded means the maximum depth was reached and part of the
	// result is the depth sentinel or NULL.
	DepthExceeded
)

func (o Outcome) String() string {
	switch o {
	case Converted:
		return "converted"
	case Absent:
		return "absent"
	case Degraded:
		return "degraded"
	case DepthExceeded:
		return "depth-exceeded"
	default:
		return "<unknown outcome>"
	}
}

// worse combines the outcome of a part into the outcome of its container.
// Absent parts do not make the container absent.
func worse(container, part Outcome) Outcome {
	if part == Absent {
		return container
	}
	if part > container {
		return part
	}
	return container
}

// Result is the result of FromNode.
type Result struct {
	Value   value.Value
	Outcome Outcome
	// Degraded counts the values, including nested ones, replaced by NULL
	// because they did not fit their type.
	Degraded int
}

// NodeResult is the result of ToNode.
type NodeResult struct {
	Node    *ir.Node
	Outcome Outcome
}
