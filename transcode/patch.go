package transcode

import (
	"fmt"

	"github.com/signadot/yamlrows/ir"
	"github.com/signadot/yamlrows/parse"

	jsonpatch "github.com/evanphx/json-patch"
)

// MergePatch applies patch to target as an RFC 7386 merge patch and returns
// a new tree. Neither argument is modified and the result shares no nodes
// with them.
//
// A patch that is not a map replaces the target. Otherwise each patch field
// with a null value removes the key from the target, and every other patch
// field is merged into the target's value for that key.
func MergePatch(target, patch *ir.Node) *ir.Node {
	if patch == nil || patch.Type == ir.UndefinedType {
		return target.Clone()
	}
	if patch.Type != ir.MapType {
		return patch.Clone()
	}
	type entry struct {
		key     string
		val     *ir.Node
		fresh   bool
		removed bool
	}
	var entries []entry
	index := map[string]int{}
	if target != nil && target.Type == ir.MapType {
		entries = make([]entry, 0, len(target.Fields))
		for i, f := range target.Fields {
			if _, dup := index[f.String]; dup {
				continue
			}
			index[f.String] = len(entries)
			entries = append(entries, entry{key: f.String, val: target.Values[i]})
		}
	}
	for i, f := range patch.Fields {
		pv := patch.Values[i]
		j, present := index[f.String]
		switch {
		case pv.Type == ir.NullType:
			if present {
				entries[j].removed = true
			}
		case present && !entries[j].removed:
			entries[j].val = MergePatch(entries[j].val, pv)
			entries[j].fresh = true
		case present:
			entries[j] = entry{key: f.String, val: MergePatch(nil, pv), fresh: true}
		default:
			index[f.String] = len(entries)
			entries = append(entries, entry{key: f.String, val: MergePatch(nil, pv), fresh: true})
		}
	}
	kvs := make([]ir.KeyVal, 0, len(entries))
	for _, e := range entries {
		if e.removed {
			continue
		}
		val := e.val
		if !e.fresh {
			val = val.Clone()
		}
		kvs = append(kvs, ir.KeyVal{Key: e.key, Val: val})
	}
	return ir.FromKeyVals(kvs)
}

// ApplyJSONPatch applies an RFC 6902 patch document to doc. The document
// goes through ToJSON, so scalars JSON cannot represent come back as
// strings.
func ApplyJSONPatch(doc *ir.Node, patch []byte) (*ir.Node, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding json patch: %w", ErrPatch, err)
	}
	out, err := ops.Apply([]byte(ToJSON(doc)))
	if err != nil {
		return nil, fmt.Errorf("%w: applying json patch: %w", ErrPatch, err)
	}
	res, err := parse.Parse(out)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return res, nil
}
