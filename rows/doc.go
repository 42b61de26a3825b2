// Package rows turns populations of documents into typed rows and typed
// values back into document text.
//
// # Read path
//
// Read takes an ordered list of sources, each holding parsed documents or
// raw text, and an Options value. It extracts rows from every document,
// infers a schema from a sample of them, and converts every row against
// that schema:
//
//	res, err := rows.Read([]rows.Source{{Name: "a.yaml", Text: data}}, rows.DefaultOptions())
//	for _, row := range res.Rows {
//		fmt.Println(row.Values)
//	}
//
// Rows that are maps give one column per field. Any other rows give a
// single column named value. Fields that do not fit their column type are
// NULL; Read fails only for invalid options and, unless Options.Tolerant is
// set, for malformed text.
//
// # Write path
//
// Format and Write serialize typed values in block or flow style, optionally
// laid out as sequence items or as a stream of documents.
package rows
