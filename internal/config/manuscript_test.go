package config

import (
	"errors"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

const pipelineDoc = `
base_dir: /home/user/manuscripts
system_info: darwin-arm64
manuscripts:
  - base_dir: /home/user/manuscripts/demo
    name: demo
    spec_version: v1.0.0
    parallelism: 1
    chain: zkevm
    table: blocks
    database: zkevm
    query: select * from zkevm.blocks
    sink: postgres
    port: 8081
    db_port: 15432
    db_user: postgres
    db_password: postgres
    graphql_image: repository.chainbase.com/manuscript-node/graphql-engine:latest
    graphql_port: 19080
    sources:
      - name: zkevm_blocks
        type: dataset
        dataset: zkevm.blocks
        filter: "block_number > 100"
    transforms:
      - name: zkevm_blocks_transform
        sql: SELECT * FROM zkevm_blocks
    sinks:
      - name: postgres
        type: postgres
        from: zkevm_blocks_transform
        database: zkevm
        schema: public
        table: blocks
        primary_key: block_number
        config:
          host: postgres
          port: "5432"
    unknown_key: ignored
`

func TestParseManuscripts(t *testing.T) {
	t.Parallel()

	cfg, err := ParseManuscripts([]byte(pipelineDoc))
	if err != nil {
		t.Fatalf("ParseManuscripts returned error: %v", err)
	}
	if len(cfg.Manuscripts) != 1 {
		t.Fatalf("expected one manuscript, got %d", len(cfg.Manuscripts))
	}

	m := cfg.Manuscripts[0]
	if m.Name != "demo" || m.DBPort != 15432 || m.GraphQLPort != 19080 {
		t.Fatalf("unexpected manuscript: %+v", m)
	}
	if m.Sources[0].Type != "dataset" {
		t.Fatalf("expected source type to map from the type key, got %q", m.Sources[0].Type)
	}
	if m.Sinks[0].Type != "postgres" || m.Sinks[0].PrimaryKey != "block_number" {
		t.Fatalf("unexpected sink: %+v", m.Sinks[0])
	}
	if m.Sinks[0].Config["port"] != "5432" {
		t.Fatalf("unexpected sink config: %v", m.Sinks[0].Config)
	}
}

func TestParseManuscriptsTypeMismatch(t *testing.T) {
	t.Parallel()

	_, err := ParseManuscripts([]byte("manuscripts:\n  - parallelism: many\n"))
	if !errors.Is(err, ErrStructural) {
		t.Fatalf("expected ErrStructural, got %v", err)
	}
}

func TestParseManuscriptsMissingFields(t *testing.T) {
	t.Parallel()

	_, err := ParseManuscripts([]byte("base_dir: /tmp\nsystem_info: linux\nmanuscripts:\n  - name: demo\n"))
	if !errors.Is(err, ErrMissingField) {
		t.Fatalf("expected ErrMissingField, got %v", err)
	}

	var serr *StructuralError
	if !errors.As(err, &serr) {
		t.Fatalf("expected *StructuralError, got %T", err)
	}
	for _, want := range []string{"manuscripts[0].base_dir", "manuscripts[0].spec_version", "manuscripts[0].graphql_port"} {
		if !slices.Contains(serr.Fields, want) {
			t.Fatalf("expected %s among missing fields %v", want, serr.Fields)
		}
	}
	if slices.Contains(serr.Fields, "manuscripts[0].name") {
		t.Fatalf("name is present and must not be reported: %v", serr.Fields)
	}
}

func TestParseManuscriptsNestedMissingField(t *testing.T) {
	t.Parallel()

	doc := strings.Replace(pipelineDoc, "        primary_key: block_number\n", "", 1)
	_, err := ParseManuscripts([]byte(doc))

	var serr *StructuralError
	if !errors.As(err, &serr) {
		t.Fatalf("expected *StructuralError, got %v", err)
	}
	if want := []string{"manuscripts[0].sinks[0].primary_key"}; !slices.Equal(serr.Fields, want) {
		t.Fatalf("expected missing fields %v, got %v", want, serr.Fields)
	}
}

func TestParseManuscriptsAcceptsZeroValues(t *testing.T) {
	t.Parallel()

	doc := strings.Replace(pipelineDoc, "parallelism: 1", "parallelism: 0", 1)
	doc = strings.Replace(doc, `filter: "block_number > 100"`, `filter: ""`, 1)

	cfg, err := ParseManuscripts([]byte(doc))
	if err != nil {
		t.Fatalf("ParseManuscripts returned error: %v", err)
	}
	if cfg.Manuscripts[0].Parallelism != 0 || cfg.Manuscripts[0].Sources[0].Filter != "" {
		t.Fatalf("expected zero values to be kept, got %+v", cfg.Manuscripts[0])
	}
}

func TestParseManuscriptsEmptyDocument(t *testing.T) {
	t.Parallel()

	if _, err := ParseManuscripts(nil); !errors.Is(err, ErrMissingField) {
		t.Fatalf("expected ErrMissingField for empty document, got %v", err)
	}
}

func TestLoadManuscripts(t *testing.T) {
	t.Parallel()

	path := writeFile(t, filepath.Join(t.TempDir(), "manuscript.yaml"), pipelineDoc)
	cfg, err := LoadManuscripts(path)
	if err != nil {
		t.Fatalf("LoadManuscripts returned error: %v", err)
	}
	if cfg.SystemInfo != "darwin-arm64" {
		t.Fatalf("unexpected system info %q", cfg.SystemInfo)
	}

	_, err = LoadManuscripts(filepath.Join(t.TempDir(), "missing.yaml"))
	var serr *StructuralError
	if !errors.As(err, &serr) {
		t.Fatalf("expected *StructuralError, got %v", err)
	}
	if serr.Source == "" {
		t.Fatalf("expected source path in error")
	}
}
