package book

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrBookNotFound = errors.New("book not found")
)

// ValidationError reports admin input problems per field so the caller can
// surface them next to the offending form inputs instead of aborting the
// whole request with a single message.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
