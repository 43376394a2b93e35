package config

import (
	"os"
	"strings"
)

// Deployment environments. Feed configuration is validated strictly in
// production-like environments and leniently in development.
const (
	EnvironmentDevelopment = "development"
	EnvironmentStaging     = "staging"
	EnvironmentProduction  = "production"
)

const (
	envVar       = "DEPTHFLOW_ENV"
	legacyEnvVar = "APP_ENV"
)

var environmentAliases = map[string]string{
	"dev":     EnvironmentDevelopment,
	"develop": EnvironmentDevelopment,
	"stag":    EnvironmentStaging,
	"stage":   EnvironmentStaging,
	"prod":    EnvironmentProduction,
}

// AppEnvironment reads the deployment environment from DEPTHFLOW_ENV,
// falling back to APP_ENV for older deployments, normalizes known aliases
// and defaults to development.
func AppEnvironment() string {
	env := strings.ToLower(strings.TrimSpace(os.Getenv(envVar)))
	if env == "" {
		env = strings.ToLower(strings.TrimSpace(os.Getenv(legacyEnvVar)))
	}
	if env == "" {
		return EnvironmentDevelopment
	}
	if canonical, ok := environmentAliases[env]; ok {
		return canonical
	}
	return env
}

// IsProductionLike reports whether env warrants production strictness.
// Staging runs against the same venues as production and is held to the
// same configuration rules.
func IsProductionLike(env string) bool {
	return env == EnvironmentProduction || env == EnvironmentStaging
}

// resolveEnvSpecificPath picks the per-environment config file for the
// current environment unless the caller asked for a specific one.
func resolveEnvSpecificPath(path, defaultPath string, envPaths map[string]string) string {
	envPath, ok := envPaths[AppEnvironment()]
	if !ok {
		if path == "" {
			return defaultPath
		}
		return path
	}
	switch path {
	case "", defaultPath, envPath:
		return envPath
	}
	return path
}
