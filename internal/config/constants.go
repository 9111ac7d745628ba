package config

const (
	// DefaultDatabasePath is the default location of the catalog database file
	DefaultDatabasePath = "./learning.db"

	// DefaultSeedFile is the fixture the seed command reads when no -file flag is given
	DefaultSeedFile = "./fixtures/catalog.yaml"
)
