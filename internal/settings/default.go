package settings

import (
	"sync"

	"go.uber.org/zap"

	"github.com/chainbase-labs/manuscript-settings/internal/config"
	"github.com/chainbase-labs/manuscript-settings/internal/logging"
)

var defaultProvider = sync.OnceValue(func() *Provider {
	logger, err := logging.New()
	if err != nil {
		logger = zap.NewNop()
	}
	return NewProvider(func() (config.Settings, error) {
		return config.NewResolver(config.WithLogger(logger)).Resolve()
	}, logger)
})

// Default returns the process-wide Provider backed by the embedded baseline
// and the default override search path. Prefer passing a Provider explicitly
// where the caller controls construction.
func Default() *Provider {
	return defaultProvider()
}

// ChainsURL is Default().ChainsURL().
func ChainsURL() string { return Default().ChainsURL() }

// StatusText is Default().StatusText().
func StatusText() string { return Default().StatusText() }

// DockerImages is Default().DockerImages().
func DockerImages() (jobManager, graphQLEngine string) { return Default().DockerImages() }

// BaseURL is Default().BaseURL().
func BaseURL() string { return Default().BaseURL() }
