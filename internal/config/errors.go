package config

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrStructural is wrapped by every resolution failure: malformed YAML,
	// type mismatches, unreadable override files and missing fields.
	ErrStructural = errors.New("invalid configuration document")
	// ErrMissingField is wrapped when the merged document lacks required fields.
	ErrMissingField = errors.New("missing required field")
)

// StructuralError reports why a settings or pipeline document could not be
// turned into its typed form.
type StructuralError struct {
	// Source is the path of the offending document, or "baseline" for the
	// embedded one. Empty when the merged result failed validation.
	Source string
	// Fields lists the document paths of missing required fields.
	Fields []string
	Err    error
}

func (e *StructuralError) Error() string {
	var b strings.Builder
	b.WriteString(ErrStructural.Error())
	if e.Source != "" {
		fmt.Fprintf(&b, " %s", e.Source)
	}
	if len(e.Fields) > 0 {
		fmt.Fprintf(&b, ": %s: %s", ErrMissingField, strings.Join(e.Fields, ", "))
		return b.String()
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

// Is matches ErrStructural always and ErrMissingField when fields are missing.
func (e *StructuralError) Is(target error) bool {
	switch target {
	case ErrStructural:
		return true
	case ErrMissingField:
		return len(e.Fields) > 0
	}
	return false
}

func (e *StructuralError) Unwrap() error {
	return e.Err
}
