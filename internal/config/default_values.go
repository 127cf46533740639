package config

const (
	BackendSQLite = "sqlite"
	BackendJSON   = "json"

	DefaultTheme = "dark"

	DefaultWatchDebounceMS = 250
)
