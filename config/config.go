// Package config loads the runtime configuration a peerdas-kzg process
// needs: where its trusted setup lives, how much FK20 precomputation to
// build, and how verbosely to log, from flags, environment variables, and
// defaults, in that order of precedence.
package config

import (
	"fmt"
	"strings"

	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	defaultTrustedSetupPath  = ""
	defaultCheckSubgroup     = false
	defaultPrecomputeWidth   = 8
	defaultLogLevel          = "info"
	envPrefix                = "PEERDAS_KZG"
)

// Config holds a fully resolved runtime configuration.
type Config struct {
	TrustedSetup TrustedSetupConfig
	Precompute   PrecomputeConfig
	Log          LogConfig
}

// TrustedSetupConfig controls where the SRS is loaded from.
type TrustedSetupConfig struct {
	Path          string `mapstructure:"path"`          // path to a JSON trusted setup file; empty uses the insecure toy setup
	CheckSubgroup bool   `mapstructure:"checkSubgroup"` // verify subgroup membership of every loaded point
}

// PrecomputeConfig controls FK20 prover construction.
type PrecomputeConfig struct {
	Width int `mapstructure:"width"` // nonzero enables precomputation (the kzg package's fixed table width is used, whatever the value); 0 disables it
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// FlagSet builds the pflag.FlagSet a caller parses before calling Load. It
// is separate from Load so a cmd package can customize Usage before
// parsing.
func FlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.String("trustedsetup.path", defaultTrustedSetupPath, "path to a JSON trusted setup file (empty uses an insecure toy setup)")
	fs.Bool("trustedsetup.checkSubgroup", defaultCheckSubgroup, "verify subgroup membership of every point in the trusted setup")
	fs.Int("precompute.width", defaultPrecomputeWidth, "nonzero enables FK20 precomputation at the library's fixed table width (0 disables precomputation)")
	fs.String("log.level", defaultLogLevel, "log level (debug, info, warn, error)")
	return fs
}

// Load resolves a Config from an already-parsed FlagSet, environment
// variables prefixed with PEERDAS_KZG_, and the defaults set on fs.
func Load(fs *flag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("config: binding flags: %w", err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshaling: %w", err)
	}
	return cfg, nil
}
