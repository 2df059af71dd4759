package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config wraps a viper instance holding every tunable for the fill
// tools. Flags win over environment variables (XWFILL_ prefix), which
// win over defaults.
type Config struct {
	v    *viper.Viper
	args []string
}

func DefaultConfig() *Config {
	v := viper.New()
	v.SetDefault("debug", false)
	v.SetDefault("solve-log", "")
	v.SetDefault("manifest", "")
	v.SetDefault("workers", 0)
	v.SetEnvPrefix("xwfill")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return &Config{v: v}
}

// Load parses command-line args into the config. Positional arguments
// left after flag parsing are available via Args.
func (c *Config) Load(args []string) error {
	fs := pflag.NewFlagSet("xwfill", pflag.ContinueOnError)
	fs.Bool("debug", false, "log at debug level")
	fs.String("solve-log", "", "path to a sqlite database recording solve runs; empty disables")
	fs.String("manifest", "", "YAML manifest of puzzles to solve as a batch")
	fs.Int("workers", 0, "concurrent workers in manifest mode; 0 means GOMAXPROCS")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := c.v.BindPFlags(fs); err != nil {
		return err
	}
	c.args = fs.Args()
	return nil
}

// Args returns the positional arguments left after flag parsing.
func (c *Config) Args() []string {
	return c.args
}

func (c *Config) GetString(key string) string {
	return c.v.GetString(key)
}

func (c *Config) GetBool(key string) bool {
	return c.v.GetBool(key)
}

func (c *Config) GetInt(key string) int {
	return c.v.GetInt(key)
}
