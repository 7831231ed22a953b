package config

const (
	defaultConfigPath  = "~/.config/mytool/config.toml"
	projectConfigName  = "mytool.toml"
	defaultHelloName   = "world"
	defaultOutputColor = ColorAuto
	defaultLogFormat   = "console"
	defaultLogLevel    = "warn"
)

// Colour modes accepted by output.color and --color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Hello: Hello{
			DefaultName: defaultHelloName,
		},
		Output: Output{
			Color: defaultOutputColor,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
