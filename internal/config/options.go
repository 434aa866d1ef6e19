package config

//go:generate go run github.com/ecordell/optgen -output zz_generated.options.go . ConfigurationOptions

// Option keys shared by the command line and the configuration file.
const (
	KeyHelp                = "help"
	KeyLogLevel            = "loglevel"
	KeyConfigFile          = "config-file"
	KeySchedulerDBServer   = "scheduler_dbserver"
	KeySchedulerDBPort     = "scheduler_dbport"
	KeySchedulerDBUser     = "scheduler_dbuser"
	KeySchedulerDBPassword = "scheduler_dbpassword"
	KeySchedulerDatabase   = "scheduler_database"
	KeySchedulerCAFile     = "scheduler_cafile"
)

// ConfigurationOptions holds the resolved startup parameters of the agent.
type ConfigurationOptions struct {
	SchedulerDBServer   string `debugmap:"visible" default:"localhost"`
	SchedulerDBPort     uint16 `debugmap:"visible" default:"5432"`
	SchedulerDBUser     string `debugmap:"visible" default:"scheduler"`
	SchedulerDBPassword string `debugmap:"sensitive"`
	SchedulerDatabase   string `debugmap:"visible" default:"atlasmnsdb"`
	SchedulerCAFile     string `debugmap:"visible"`
	LogLevel            uint   `debugmap:"visible" default:"2"`
	ConfigFile          string `debugmap:"visible"`
}
