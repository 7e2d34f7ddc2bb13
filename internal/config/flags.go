package config

import "flag"

var (
	flagConfig      = flag.String("config", "", "Path to config file")
	flagDebug       = flag.Bool("debug", false, "Enable debug logging")
	flagCatalog     = flag.String("catalog", "", "Path to a catalog file")
	flagVehicle     = flag.String("vehicle", "", "Path to a vehicle configuration patch")
	flagFPS         = flag.Int("fps", 0, "Simulated frames per second")
	flagDuration    = flag.Duration("duration", 0, "Simulated time")
	flagStartOffset = flag.Float64("start-offset", 0, "Initial body height above the settled height (meters)")
	flagLogFile     = flag.String("log-file", "", "Write logs to this file")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
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
	if *flagCatalog != "" {
		cfg.Catalog.Path = *flagCatalog
	}
	if *flagVehicle != "" {
		cfg.Vehicle.Patch = *flagVehicle
	}
	if *flagFPS > 0 {
		cfg.Simulation.FPS = *flagFPS
	}
	if *flagDuration > 0 {
		cfg.Simulation.Duration = *flagDuration
	}
	if *flagStartOffset > 0 {
		cfg.Animation.StartOffset = *flagStartOffset
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
}
