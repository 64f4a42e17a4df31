package config

import (
	"fmt"
	"os"
	"reflect"

	"gopkg.in/yaml.v3"
)

// ManuscriptConfigs is a pipeline definition document: a set of manuscripts,
// each reading from sources, running SQL transforms and writing to sinks.
type ManuscriptConfigs struct {
	BaseDir     string       `yaml:"base_dir"`
	SystemInfo  string       `yaml:"system_info"`
	Manuscripts []Manuscript `yaml:"manuscripts"`
}

// Manuscript is a single pipeline together with the local node that runs it.
type Manuscript struct {
	BaseDir      string      `yaml:"base_dir"`
	Name         string      `yaml:"name"`
	SpecVersion  string      `yaml:"spec_version"`
	Parallelism  int32       `yaml:"parallelism"`
	Sources      []Source    `yaml:"sources"`
	Transforms   []Transform `yaml:"transforms"`
	Sinks        []Sink      `yaml:"sinks"`
	Chain        string      `yaml:"chain"`
	Table        string      `yaml:"table"`
	Database     string      `yaml:"database"`
	Query        string      `yaml:"query"`
	Sink         string      `yaml:"sink"`
	Port         int32       `yaml:"port"`
	DBPort       int32       `yaml:"db_port"`
	DBUser       string      `yaml:"db_user"`
	DBPassword   string      `yaml:"db_password"`
	GraphQLImage string      `yaml:"graphql_image"`
	GraphQLPort  int32       `yaml:"graphql_port"`
}

// Source is a dataset a manuscript reads from.
type Source struct {
	Name    string `yaml:"name"`
	Type    string `yaml:"type"`
	Dataset string `yaml:"dataset"`
	Filter  string `yaml:"filter"`
}

// Transform is a named SQL step.
type Transform struct {
	Name string `yaml:"name"`
	SQL  string `yaml:"sql"`
}

// Sink is a destination table fed from a transform.
type Sink struct {
	Name       string            `yaml:"name"`
	Type       string            `yaml:"type"`
	From       string            `yaml:"from"`
	Database   string            `yaml:"database"`
	Schema     string            `yaml:"schema"`
	Table      string            `yaml:"table"`
	PrimaryKey string            `yaml:"primary_key"`
	Config     map[string]string `yaml:"config"`
}

// ParseManuscripts decodes a pipeline document. Every field is required: a
// missing or null key fails with a *StructuralError naming its path, while a
// present zero value is accepted. Unknown keys are ignored.
func ParseManuscripts(data []byte) (ManuscriptConfigs, error) {
	return parseManuscripts("", data)
}

// LoadManuscripts reads and decodes the pipeline document at path.
func LoadManuscripts(path string) (ManuscriptConfigs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ManuscriptConfigs{}, &StructuralError{Source: path, Err: fmt.Errorf("read file: %w", err)}
	}
	return parseManuscripts(path, data)
}

func parseManuscripts(source string, data []byte) (ManuscriptConfigs, error) {
	var (
		node yaml.Node
		out  ManuscriptConfigs
	)
	if err := yaml.Unmarshal(data, &node); err != nil {
		return ManuscriptConfigs{}, &StructuralError{Source: source, Err: fmt.Errorf("parse YAML: %w", err)}
	}
	if resolveNode(&node) != nil {
		if err := node.Decode(&out); err != nil {
			return ManuscriptConfigs{}, &StructuralError{Source: source, Err: fmt.Errorf("decode manuscripts: %w", err)}
		}
	}

	if missing := missingKeys(&node, reflect.TypeOf(out), ""); len(missing) > 0 {
		return ManuscriptConfigs{}, &StructuralError{Source: source, Fields: missing}
	}
	return out, nil
}
