package model

// Environment names the deployment environment.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Scope carries the request principal through usecases.
type Scope struct {
	UserID   string
	Username string
}
