// Package transcode converts document trees to JSON and patches them.
//
// ToJSON classifies unquoted scalars on its own: JSON has no date, time or
// alias boolean literals, so only true, false, null and finite numbers are
// emitted bare and everything else becomes a JSON string. Map keys are
// always strings.
//
// MergePatch implements RFC 7386 merge patches on document trees, and
// ApplyJSONPatch applies RFC 6902 patch documents by way of JSON.
package transcode
