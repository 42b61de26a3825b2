package ir

// Equal reports whether a and b hold the same document, ignoring parent
// links and tags. A nil node equals an undefined node.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil {
		return b.Type == UndefinedType
	}
	if b == nil {
		return a.Type == UndefinedType
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case UndefinedType, NullType:
		return true
	case ScalarType:
		return a.String == b.String && a.Quoted == b.Quoted
	case SequenceType:
		return equalSeqs(a.Values, b.Values)
	case MapType:
		if len(a.Fields) != len(b.Fields) {
			return false
		}
		for i := range a.Fields {
			if a.Fields[i].String != b.Fields[i].String {
				return false
			}
		}
		return equalSeqs(a.Values, b.Values)
	}
	return false
}

func equalSeqs(a, b []*Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
