package application

import (
	"go.uber.org/zap"

	"github.com/chainbase-labs/manuscript-settings/internal/config"
	"github.com/chainbase-labs/manuscript-settings/internal/settings"
)

// App encapsulates the settings provider used by every command.
type App struct {
	provider *settings.Provider
}

// Report is the full set of derived values, in the form printed by the CLI.
type Report struct {
	BaseURL            string `yaml:"base_url"`
	ChainsURL          string `yaml:"chains_url"`
	StatusText         string `yaml:"status_text"`
	JobManagerImage    string `yaml:"job_manager_image"`
	GraphQLEngineImage string `yaml:"graphql_engine_image"`
}

// New wires a resolver and provider. Resolver options are applied after the
// logger so callers can replace the baseline or search path.
func New(logger *zap.Logger, opts ...config.Option) *App {
	if logger == nil {
		logger = zap.NewNop()
	}

	resolverOpts := append([]config.Option{config.WithLogger(logger)}, opts...)
	resolver := config.NewResolver(resolverOpts...)

	return &App{
		provider: settings.NewProvider(resolver.Resolve, logger),
	}
}

// Provider returns the settings provider shared by every command.
func (a *App) Provider() *settings.Provider {
	return a.provider
}

// Report evaluates every accessor once.
func (a *App) Report() Report {
	jobManager, graphQLEngine := a.provider.DockerImages()
	return Report{
		BaseURL:            a.provider.BaseURL(),
		ChainsURL:          a.provider.ChainsURL(),
		StatusText:         a.provider.StatusText(),
		JobManagerImage:    jobManager,
		GraphQLEngineImage: graphQLEngine,
	}
}
