package settings

// Values returned by the accessors when settings could not be resolved.
const (
	FallbackChainsURL          = "https://api.chainbase.com/api/v1/metadata/network_chains"
	FallbackStatusText         = "[? Help] Chainbase Network [Unknown] [Unknown]"
	FallbackJobManagerImage    = "repository.chainbase.com/manuscript-node/manuscript-node:latest"
	FallbackGraphQLEngineImage = "repository.chainbase.com/manuscript-node/graphql-engine-amd64:latest"
	FallbackBaseURL            = "https://api.chainbase.com"
)
