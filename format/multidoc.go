package format

import "fmt"

// MultiDoc controls how a stream holding several documents becomes rows.
type MultiDoc int

const (
	// FirstDocument reads only the first document of each source.
	FirstDocument MultiDoc = iota
	// DocumentRows reads every document as independent rows.
	DocumentRows
	// Frontmatter treats the first document as metadata and the rest as rows.
	Frontmatter
	// DocumentList collects every document into one list valued row.
	DocumentList
)

func ParseMultiDoc(v string) (MultiDoc, error) {
	m, ok := map[string]MultiDoc{
		"first":       FirstDocument,
		"rows":        DocumentRows,
		"frontmatter": Frontmatter,
		"list":        DocumentList,
	}[v]
	if ok {
		return m, nil
	}
	return 0, fmt.Errorf("%w: multi-document mode %q", ErrBadFormat, v)
}

func (m MultiDoc) String() string {
	d, err := m.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (m MultiDoc) MarshalText() ([]byte, error) {
	switch m {
	case FirstDocument:
		return []byte("first"), nil
	case DocumentRows:
		return []byte("rows"), nil
	case Frontmatter:
		return []byte("frontmatter"), nil
	case DocumentList:
		return []byte("list"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a multi-document mode>", m)
	}
}

func (m *MultiDoc) UnmarshalText(d []byte) error {
	pm, err := ParseMultiDoc(string(d))
	if err != nil {
		return err
	}
	*m = pm
	return nil
}

// AllMultiDocs returns every mode in declaration order.
func AllMultiDocs() []MultiDoc {
	return []MultiDoc{FirstDocument, DocumentRows, Frontmatter, DocumentList}
}
