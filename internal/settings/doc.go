// Package settings exposes values derived from the resolved configuration.
//
// A Provider resolves at most once and caches the outcome for its lifetime.
// Settings returns the outcome as is; the accessors (ChainsURL, StatusText,
// DockerImages, BaseURL) never fail and substitute the documented fallback
// literals when resolution failed, logging the cause.
package settings
