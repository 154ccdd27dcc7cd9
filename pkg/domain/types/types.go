package types

// Version is the application version, overridden at build time with -ldflags.
var Version = "dev"

const (
	DefaultDays         = 30
	DefaultRecentDays   = 7
	DefaultTimelineDays = 30
	DefaultListLimit    = 20
	DefaultDatabase     = "devmemory.db"
	DefaultConfigFile   = ".devmemory.toml"
	DefaultExportFile   = "DECISIONS.md"
)
