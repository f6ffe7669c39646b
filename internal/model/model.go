package model

// Environment is the deployment environment name.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Scope carries the per-request session: the credential presented by the
// caller and the workspace they selected. It replaces any ambient global
// state — every use-case operation receives its scope explicitly.
type Scope struct {
	APIKey      string
	WorkspaceID string
}
