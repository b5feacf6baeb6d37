package config

import (
	"flag"
	"os"
	"strconv"
	"time"
)

// envOverride binds one environment variable to one configuration field.
// The parse function returns false when the raw value does not parse, in
// which case the variable is ignored and the flag/default value stands.
type envOverride struct {
	flagName string
	envKey   string
	apply    func(cfg *AppConfig, raw string) bool
}

func envString(dst func(*AppConfig) *string) func(*AppConfig, string) bool {
	return func(cfg *AppConfig, raw string) bool {
		*dst(cfg) = raw
		return true
	}
}

func envInt(dst func(*AppConfig) *int) func(*AppConfig, string) bool {
	return func(cfg *AppConfig, raw string) bool {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return false
		}
		*dst(cfg) = v
		return true
	}
}

func envFloat(dst func(*AppConfig) *float64) func(*AppConfig, string) bool {
	return func(cfg *AppConfig, raw string) bool {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return false
		}
		*dst(cfg) = v
		return true
	}
}

func envBool(dst func(*AppConfig) *bool) func(*AppConfig, string) bool {
	return func(cfg *AppConfig, raw string) bool {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return false
		}
		*dst(cfg) = v
		return true
	}
}

func envDuration(dst func(*AppConfig) *time.Duration) func(*AppConfig, string) bool {
	return func(cfg *AppConfig, raw string) bool {
		v, err := time.ParseDuration(raw)
		if err != nil {
			return false
		}
		*dst(cfg) = v
		return true
	}
}

var envOverrides = []envOverride{
	{"mode", EnvPrefix + "MODE", envString(func(c *AppConfig) *string { return &c.Mode })},
	{"points", EnvPrefix + "POINTS", envInt(func(c *AppConfig) *int { return &c.Points })},
	{"step", EnvPrefix + "STEP", envFloat(func(c *AppConfig) *float64 { return &c.Step })},
	{"center", EnvPrefix + "CENTER", envFloat(func(c *AppConfig) *float64 { return &c.Center })},
	{"h1", EnvPrefix + "H1", envFloat(func(c *AppConfig) *float64 { return &c.H1 })},
	{"h2", EnvPrefix + "H2", envFloat(func(c *AppConfig) *float64 { return &c.H2 })},
	{"series-threshold", EnvPrefix + "SERIES_THRESHOLD", envFloat(func(c *AppConfig) *float64 { return &c.SeriesThreshold })},
	{"tolerance", EnvPrefix + "TOLERANCE", envFloat(func(c *AppConfig) *float64 { return &c.Tolerance })},
	{"precision", EnvPrefix + "PRECISION", envInt(func(c *AppConfig) *int { return &c.Precision })},
	{"width", EnvPrefix + "WIDTH", envInt(func(c *AppConfig) *int { return &c.Width })},
	{"timeout", EnvPrefix + "TIMEOUT", envDuration(func(c *AppConfig) *time.Duration { return &c.Timeout })},
	{"output", EnvPrefix + "OUTPUT", envString(func(c *AppConfig) *string { return &c.OutputFile })},
	{"metrics-addr", EnvPrefix + "METRICS_ADDR", envString(func(c *AppConfig) *string { return &c.MetricsAddr })},
	{"quiet", EnvPrefix + "QUIET", envBool(func(c *AppConfig) *bool { return &c.Quiet })},
	{"verbose", EnvPrefix + "VERBOSE", envBool(func(c *AppConfig) *bool { return &c.Verbose })},
	{"tui", EnvPrefix + "TUI", envBool(func(c *AppConfig) *bool { return &c.TUI })},
	{"no-color", EnvPrefix + "NO_COLOR", envBool(func(c *AppConfig) *bool { return &c.NoColor })},
}

// flagAliases maps shorthand flag names to the canonical name used in the
// override table, so that setting -q on the command line also shields the
// quiet field from ROTCOEF_QUIET.
var flagAliases = map[string]string{
	"o": "output",
	"q": "quiet",
	"v": "verbose",
}

// applyEnvOverrides applies ROTCOEF_* environment variables to every field
// whose flag was not set explicitly on the command line.
func applyEnvOverrides(cfg *AppConfig, fs *flag.FlagSet) {
	setFlags := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		setFlags[f.Name] = true
		if canonical, ok := flagAliases[f.Name]; ok {
			setFlags[canonical] = true
		}
	})

	for _, ov := range envOverrides {
		if setFlags[ov.flagName] {
			continue
		}
		raw, ok := os.LookupEnv(ov.envKey)
		if !ok || raw == "" {
			continue
		}
		ov.apply(cfg, raw)
	}
}
