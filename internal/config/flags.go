package config

import "flag"

var (
	flagConfig      = flag.String("config", "", "Path to config file")
	flagDebug       = flag.Bool("debug", false, "Enable debug logging")
	flagSkipUnknown = flag.Bool("skip-unknown", false, "Skip usemtl events naming unknown materials")
	flagFormat      = flag.String("format", "", "Output format (text, yaml)")
	flagLogFile     = flag.String("log-file", "", "Write logs to this file")
	flagHideEmpty   = flag.Bool("hide-empty", false, "Omit groups without faces")
)

// ParseFlags parses command-line flags from args and returns the
// remaining positional arguments.
func ParseFlags(args []string) ([]string, error) {
	if err := flag.CommandLine.Parse(args); err != nil {
		return nil, err
	}
	return flag.Args(), nil
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagSkipUnknown {
		cfg.Replay.OnUnknownMaterial = OnUnknownSkip
	}
	if *flagFormat != "" {
		cfg.Output.Format = *flagFormat
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
	if *flagHideEmpty {
		cfg.Output.ShowEmptyGroups = false
	}
}
