package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"reflect"

	"dario.cat/mergo"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const (
	overrideDir    = "config"
	overrideFile   = "default.yaml"
	baselineSource = "baseline"
)

//go:embed default.yaml
var baseline []byte

var executable = os.Executable

// Resolver merges the baseline document with the first override found among
// its candidate paths.
type Resolver struct {
	baseline   []byte
	candidates []string
	logger     *zap.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithBaseline replaces the embedded baseline document.
func WithBaseline(doc []byte) Option {
	return func(r *Resolver) {
		r.baseline = doc
	}
}

// WithCandidates replaces the override search path. Calling it with no paths
// disables overrides entirely.
func WithCandidates(paths ...string) Option {
	return func(r *Resolver) {
		r.candidates = append([]string{}, paths...)
	}
}

// WithLogger sets the logger used for debug output about source selection.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// NewResolver creates a Resolver using the embedded baseline and
// DefaultCandidates unless overridden.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{baseline: baseline}
	for _, opt := range opts {
		opt(r)
	}
	if r.candidates == nil {
		r.candidates = DefaultCandidates()
	}
	if r.logger == nil {
		r.logger = zap.NewNop()
	}
	return r
}

// Resolve resolves settings with the default baseline and search path.
func Resolve() (Settings, error) {
	return NewResolver().Resolve()
}

// Resolve builds the merged settings. The override is merged over the
// baseline key by key: every key the override defines wins, including keys
// set to an empty value, and nested mappings are merged recursively. Every
// failure is a *StructuralError.
func (r *Resolver) Resolve() (Settings, error) {
	merged, err := decodeDocument(baselineSource, r.baseline)
	if err != nil {
		return Settings{}, err
	}

	source := baselineSource
	if path, ok := r.findOverride(); ok {
		data, err := os.ReadFile(path)
		if err != nil {
			return Settings{}, &StructuralError{Source: path, Err: fmt.Errorf("read file: %w", err)}
		}

		override, err := decodeDocument(path, data)
		if err != nil {
			return Settings{}, err
		}

		if len(override) > 0 {
			if merged == nil {
				merged = map[string]any{}
			}
			if err := mergo.Merge(&merged, override, mergo.WithOverride); err != nil {
				return Settings{}, &StructuralError{Source: path, Err: fmt.Errorf("merge override: %w", err)}
			}
		}
		source = path
	}

	return decodeSettings(source, merged)
}

// findOverride returns the first candidate that exists. Later candidates are
// never consulted once one matches.
func (r *Resolver) findOverride() (string, bool) {
	for _, path := range r.candidates {
		if _, err := os.Stat(path); err == nil {
			r.logger.Debug("layering settings override", zap.String("path", path))
			return path, true
		}
	}

	r.logger.Debug("no settings override found, using baseline only",
		zap.Strings("candidates", r.candidates),
	)
	return "", false
}

// DefaultCandidates returns the override search path in priority order.
func DefaultCandidates() []string {
	return candidatesFor(executableDir())
}

func candidatesFor(exeDir string) []string {
	rel := filepath.Join(overrideDir, overrideFile)
	return []string{
		rel,
		filepath.Join("..", rel),
		filepath.Join("..", "..", rel),
		filepath.Join(exeDir, rel),
	}
}

func executableDir() string {
	exe, err := executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// Baseline returns a copy of the embedded baseline document.
func Baseline() []byte {
	return bytes.Clone(baseline)
}

func decodeDocument(source string, data []byte) (map[string]any, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &StructuralError{Source: source, Err: fmt.Errorf("parse YAML: %w", err)}
	}
	return doc, nil
}

// decodeSettings turns the merged document into Settings, failing on type
// mismatches and on required keys the document does not define.
func decodeSettings(source string, doc map[string]any) (Settings, error) {
	var (
		node yaml.Node
		out  Settings
	)
	if doc != nil {
		if err := node.Encode(doc); err != nil {
			return Settings{}, &StructuralError{Source: source, Err: fmt.Errorf("encode merged document: %w", err)}
		}
		if err := node.Decode(&out); err != nil {
			return Settings{}, &StructuralError{Source: source, Err: fmt.Errorf("decode settings: %w", err)}
		}
	}

	if missing := missingKeys(&node, reflect.TypeOf(out), ""); len(missing) > 0 {
		return Settings{}, &StructuralError{Fields: missing}
	}
	return out, nil
}
