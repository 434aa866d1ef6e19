// Package config resolves the startup configuration of the atlasmns-trace-agent.
//
// Values come from three precedence layers. A higher layer wins for every key
// it explicitly supplies; flag defaults never count as "supplied":
//
//	CommandLine  (highest)  argv, parsed with pflag
//	ConfigFile              optional file named by -c/--config-file or positionally
//	Default      (lowest)   `default:` tags on ConfigurationOptions
//
// # Option Schema
//
// DefaultSchema is the single table both frontends are driven by:
//
//	┌──────────────────────┬───────┬──────────────┬──────────────┬──────────┐
//	│ Key                  │ Short │ Kind         │ Default      │ Scopes   │
//	├──────────────────────┼───────┼──────────────┼──────────────┼──────────┤
//	│ help                 │ -h    │ bool         │ false        │ CLI      │
//	│ loglevel             │       │ uint         │ 2 (info)     │ CLI,file │
//	│ config-file          │ -c    │ string       │ -            │ CLI      │
//	│ scheduler_dbserver   │       │ string       │ "localhost"  │ CLI,file │
//	│ scheduler_dbport     │       │ uint16       │ 5432         │ CLI,file │
//	│ scheduler_dbuser     │       │ string       │ "scheduler"  │ CLI,file │
//	│ scheduler_dbpassword │       │ string       │ -            │ CLI,file │
//	│ scheduler_database   │       │ string       │ "atlasmnsdb" │ CLI,file │
//	│ scheduler_cafile     │       │ string       │ -            │ CLI,file │
//	└──────────────────────┴───────┴──────────────┴──────────────┴──────────┘
//
// # Resolution Flow
//
//	ParseCommandLine(argv) / CommandLineLayer(fs, args)
//	    └── CommandLine{Layer, HelpRequested, ConfigFile}
//	LoadFile(path)                       (only when a path was given)
//	    └── FileLayer{Layer, Ignored}
//	Resolve(cli, file)
//	    ├── Merge(Defaults, file, cli)   → Resolved{Options, Provenance}
//	    └── Validate(Options)
//
// # Configuration File
//
// Files ending in .yaml, .yml, .json or .toml are decoded with viper. Any
// other file uses plain "key = value" lines:
//
//	# scheduler database
//	scheduler_dbserver = db.example.org
//	scheduler_dbport   = 6000
//	loglevel           = 1
//
// Keys the schema does not know are ignored and listed in FileLayer.Ignored.
//
// Key names in "key = value" files are case-sensitive. viper folds keys to
// lower case, so YAML, JSON and TOML files match them case-insensitively:
// SCHEDULER_DBUSER is scheduler_dbuser there but an unknown key in a .conf
// file. In the structured formats the string options (server, user,
// password, database, CA file) must be strings; an unquoted 0x1F or 1e3 is
// rejected rather than read back as a number.
//
// # Code Generation
//
// Functional options and DebugMap are generated by optgen:
//
//	//go:generate go run github.com/ecordell/optgen -output zz_generated.options.go . ConfigurationOptions
//
// The password is tagged `debugmap:"sensitive"` so it never reaches the logs:
//
//	log.Info("configuration resolved", zap.Any("config", resolved.Options.DebugMap()))
package config
