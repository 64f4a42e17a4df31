// Package config resolves the application settings from an embedded baseline
// YAML document and at most one external override file. The override is the
// first existing path among config/default.yaml, ../config/default.yaml,
// ../../config/default.yaml and config/default.yaml next to the running
// executable. Override leaves take precedence over baseline leaves; anything
// the override omits falls through to the baseline.
package config
