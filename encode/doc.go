// Package encode encodes IR nodes to YAML text.
//
// # Usage
//
//	node := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "name", Val: ir.FromQuoted("alice")},
//	    {Key: "tags", Val: ir.FromSlice([]*ir.Node{ir.FromString("a")})},
//	})
//
//	// Block style (the default)
//	err := encode.Encode(node, os.Stdout)
//
//	// Flow style: {name: 'alice', tags: [a]}
//	s, err := encode.String(node, encode.EncodeStyle(format.FlowStyle))
//
// Emission is delegated to gopkg.in/yaml.v3. Scalars are written with their
// raw lexeme; a quoted scalar is written single quoted unless the emitter
// requires a double quoted form.
//
// # Related Packages
//
//   - github.com/signadot/yamlrows/ir - IR representation
//   - github.com/signadot/yamlrows/parse - Parse text to IR
//   - github.com/signadot/yamlrows/layout - Row layouts over encoded text
package encode
