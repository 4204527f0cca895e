package config

const (
	defaultConfigPath       = "~/.config/movefiles/config.toml"
	projectConfigName       = "movefiles.toml"
	defaultStateDir         = "~/.local/state/movefiles"
	defaultLogDir           = "~/.local/state/movefiles/logs"
	defaultOutputFormat     = "text"
	defaultHistoryKeepRuns  = 200
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
	defaultLogRetentionDays = 30
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			StateDir: defaultStateDir,
			LogDir:   defaultLogDir,
		},
		Move: Move{
			VerifyCopy: true,
			Lock:       true,
		},
		Output: Output{
			Format: defaultOutputFormat,
		},
		History: History{
			Enabled:  true,
			KeepRuns: defaultHistoryKeepRuns,
		},
		Logging: Logging{
			Format:        defaultLogFormat,
			Level:         defaultLogLevel,
			RetentionDays: defaultLogRetentionDays,
		},
	}
}
