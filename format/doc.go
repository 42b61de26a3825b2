// Package format holds the small enumerations shared by the read and write
// paths: the serialization [Style] (block or flow), the row [Layout] applied
// on top of single-document output, and the [MultiDoc] handling mode for
// multi-document streams.
//
// Each enumeration parses from and marshals to its lower-case name, so it can
// be used directly in configuration files and command line flags.
//
// # Related Packages
//
//   - github.com/signadot/yamlrows/encode - Encode documents in a Style
//   - github.com/signadot/yamlrows/layout - Apply a Layout to encoded rows
//   - github.com/signadot/yamlrows/rows - Read options using MultiDoc
package format
