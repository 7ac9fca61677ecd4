package beartype

import "strings"

// LabelPlaceholder is the non-human-readable substring embedded in messages
// produced by memoized code paths. Memoized construction cannot format
// call-site context into its diagnostics (doing so would defeat the cache),
// so it emits this placeholder instead and callers substitute the real label
// before surfacing the error.
const LabelPlaceholder = "$%LABEL/~"

// ReplaceLabel returns err with every occurrence of LabelPlaceholder in its
// issue messages and hints replaced by label. Non-Issues errors are returned
// unchanged.
func ReplaceLabel(err error, label string) error {
	iss, ok := AsIssues(err)
	if !ok {
		return err
	}
	out := make(Issues, len(iss))
	for i, it := range iss {
		it.Message = strings.ReplaceAll(it.Message, LabelPlaceholder, label)
		it.Hint = strings.ReplaceAll(it.Hint, LabelPlaceholder, label)
		out[i] = it
	}
	return out
}
