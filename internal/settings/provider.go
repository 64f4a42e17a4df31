package settings

import (
	"fmt"
	"runtime"
	"sync"

	"go.uber.org/zap"

	"github.com/chainbase-labs/manuscript-settings/internal/config"
)

const archARM64 = "arm64"

// ResolveFunc produces the settings a Provider caches.
type ResolveFunc func() (config.Settings, error)

// Option configures a Provider.
type Option func(*Provider)

// WithArch overrides the CPU architecture lookup, primarily for tests.
func WithArch(arch func() string) Option {
	return func(p *Provider) {
		p.arch = arch
	}
}

// Provider caches the outcome of a single resolution and derives
// consumer-facing values from it.
type Provider struct {
	resolve ResolveFunc
	logger  *zap.Logger
	arch    func() string

	once     sync.Once
	settings config.Settings
	err      error
}

// NewProvider constructs a Provider. Resolution is deferred until the first
// read.
func NewProvider(resolve ResolveFunc, logger *zap.Logger, opts ...Option) *Provider {
	if logger == nil {
		logger = zap.NewNop()
	}
	p := &Provider{
		resolve: resolve,
		logger:  logger,
		arch: func() string {
			return runtime.GOARCH
		},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Settings returns the resolved settings or the resolution error. Concurrent
// first callers block until the single resolution finishes.
func (p *Provider) Settings() (config.Settings, error) {
	p.once.Do(func() {
		if p.resolve == nil {
			p.err = fmt.Errorf("%w: no resolver configured", config.ErrStructural)
			return
		}
		p.settings, p.err = p.resolve()
	})
	return p.settings, p.err
}

// ChainsURL returns the endpoint listing the supported chains.
func (p *Provider) ChainsURL() string {
	s, err := p.Settings()
	if err != nil {
		p.reportFallback("chains_url", err, FallbackChainsURL)
		return FallbackChainsURL
	}
	return s.API.BaseURL + s.API.Endpoints.Chains
}

// StatusText returns the status bar line. The trailing space is part of the
// rendered layout.
func (p *Provider) StatusText() string {
	s, err := p.Settings()
	if err != nil {
		p.reportFallback("status_text", err, FallbackStatusText)
		return FallbackStatusText
	}
	return fmt.Sprintf("[? Help] Chainbase Network [%s] [%s] ", s.App.Network, s.App.Version)
}

// DockerImages returns the job manager and GraphQL engine images matching the
// architecture of the running process.
func (p *Provider) DockerImages() (jobManager, graphQLEngine string) {
	s, err := p.Settings()
	if err != nil {
		p.reportFallback("docker_images", err, FallbackJobManagerImage, FallbackGraphQLEngineImage)
		return FallbackJobManagerImage, FallbackGraphQLEngineImage
	}

	if p.arch() == archARM64 {
		return s.Node.JobManagerImageARM64, s.Node.HasuraImageARM64
	}
	return s.Node.JobManagerImageAMD64, s.Node.HasuraImageAMD64
}

// BaseURL returns the Chainbase API root.
func (p *Provider) BaseURL() string {
	s, err := p.Settings()
	if err != nil {
		p.reportFallback("base_url", err, FallbackBaseURL)
		return FallbackBaseURL
	}
	return s.API.BaseURL
}

func (p *Provider) reportFallback(accessor string, err error, fallback ...string) {
	p.logger.Error("failed to load settings",
		zap.Error(err),
		zap.String("accessor", accessor),
		zap.Strings("fallback", fallback),
	)
}
