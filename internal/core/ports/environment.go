package ports

// Environment is a read-only view of the process environment.
//
//go:generate mockgen -source=environment.go -destination=mocks/mock_environment.go -package=mocks
type Environment interface {
	// Environ returns every entry as "KEY=VALUE", sorted by key.
	Environ() []string

	// Lookup returns the value of key and whether it is set.
	Lookup(key string) (string, bool)
}

// EnvironmentLoader snapshots the environment for a project.
type EnvironmentLoader interface {
	// Load returns the process environment overlaid with the project's .env file.
	Load(root string) (Environment, error)
}
