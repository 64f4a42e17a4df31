package config

import (
	"errors"
	"strings"
	"testing"
)

func TestStructuralErrorMessage(t *testing.T) {
	t.Parallel()

	parse := &StructuralError{Source: "config/default.yaml", Err: errors.New("parse YAML: boom")}
	if got := parse.Error(); got != "invalid configuration document config/default.yaml: parse YAML: boom" {
		t.Fatalf("unexpected message %q", got)
	}
	if errors.Is(parse, ErrMissingField) {
		t.Fatalf("parse error must not match ErrMissingField")
	}

	missing := &StructuralError{Fields: []string{"api.base_url", "app.version"}}
	if got := missing.Error(); !strings.HasSuffix(got, "missing required field: api.base_url, app.version") {
		t.Fatalf("unexpected message %q", got)
	}
	if !errors.Is(missing, ErrStructural) || !errors.Is(missing, ErrMissingField) {
		t.Fatalf("expected missing-field error to match both sentinels")
	}
}
