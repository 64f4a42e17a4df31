package config

// Settings aggregates the resolved configuration. Once returned by Resolve it
// is never mutated.
type Settings struct {
	API  APIConfig  `yaml:"api"`
	App  AppConfig  `yaml:"app"`
	Node NodeConfig `yaml:"node"`
}

// APIConfig describes the Chainbase API. BaseURL is used verbatim; no
// trailing-slash normalization is applied.
type APIConfig struct {
	BaseURL   string    `yaml:"base_url"`
	Endpoints Endpoints `yaml:"endpoints"`
}

// Endpoints holds API paths appended to APIConfig.BaseURL.
type Endpoints struct {
	Chains string `yaml:"chains"`
}

// AppConfig carries descriptive metadata shown in the status line.
type AppConfig struct {
	Network string `yaml:"network"`
	Version string `yaml:"version"`
}

// NodeConfig holds the container image references of the local manuscript
// node, per component and CPU architecture.
type NodeConfig struct {
	JobManagerImageARM64 string `yaml:"job_manager_image_arm64"`
	HasuraImageARM64     string `yaml:"hasura_image_arm64"`
	JobManagerImageAMD64 string `yaml:"job_manager_image_amd64"`
	HasuraImageAMD64     string `yaml:"hasura_image_amd64"`
}
