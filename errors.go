package beartype

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	// CodeUnhashableInput marks a descriptor or argument that cannot be used
	// as a hash-based lookup key. Always a caller bug; never recovered locally.
	CodeUnhashableInput = "unhashable_input"
	// CodeNoOrigin marks a descriptor that resolves to no concrete origin
	// type. Recoverable via OriginOfOrNil.
	CodeNoOrigin = "no_origin"
	// CodeInvalidSubscription marks a malformed validator subscription:
	// zero arguments, a non-class argument, or a class unusable for the
	// membership test. Raised at subscription time, never from IsValid.
	CodeInvalidSubscription = "invalid_subscription"
)

// Issue represents a single diagnostic entry.
type Issue struct {
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints, offending representations, etc.
	Cause   error  // Optional: underlying error.
	// Params carries structured parameters (e.g., {"index":1, "arg":"int"})
	// for i18n and observability.
	Params map[string]any
}

// Issues is a collection of diagnostics that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		if it.Hint != "" {
			fmt.Fprintf(b, "%s: %s (%s)", it.Code, it.Message, it.Hint)
		} else {
			fmt.Fprintf(b, "%s: %s", it.Code, it.Message)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// HasCode reports whether err carries at least one Issue with the given code.
func HasCode(err error, code string) bool {
	iss, ok := AsIssues(err)
	if !ok {
		return false
	}
	for _, it := range iss {
		if it.Code == code {
			return true
		}
	}
	return false
}

// IsUnhashableInput reports whether err stems from a non-hashable descriptor
// or argument.
func IsUnhashableInput(err error) bool { return HasCode(err, CodeUnhashableInput) }

// IsNoOrigin reports whether err stems from a descriptor with no resolvable
// origin type.
func IsNoOrigin(err error) bool { return HasCode(err, CodeNoOrigin) }

// IsInvalidSubscription reports whether err stems from a malformed validator
// subscription.
func IsInvalidSubscription(err error) bool { return HasCode(err, CodeInvalidSubscription) }
