package config

// Default configuration values
const (
	DefaultPort         = "8080"
	DefaultLogLevel     = "INFO"
	DefaultLogFormat    = "text"
	DefaultEnvironment  = "dev"
	DefaultServiceName  = "barodex"
	DefaultVersion      = "dev"
	DefaultDatabasePath = "data/items.db"
)
