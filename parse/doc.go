// Package parse parses YAML text into IR nodes.
//
// # Usage
//
//	// Parse the first document of a stream
//	node, err := parse.Parse([]byte("a: 1\nb: [x, y]"))
//
//	// Parse every document, recovering from malformed ones
//	var report parse.Report
//	docs, err := parse.ParseAll(data,
//	    parse.ParseTolerant(true),
//	    parse.ParseMaxDocumentSize(1<<20),
//	    parse.ParseReport(&report))
//
// Parsing is delegated to gopkg.in/yaml.v3. Aliases are resolved, `<<`
// merge keys are expanded and scalars keep their raw lexeme (see ir.Node).
//
// In tolerant mode a stream which fails to parse is split on document
// separator lines and every fragment is parsed on its own; fragments which
// still fail are discarded and logged.
//
// # Related Packages
//
//   - github.com/signadot/yamlrows/ir - IR representation
//   - github.com/signadot/yamlrows/encode - Encode IR to text
package parse
