package app

import (
	"io"
	"os"
	"strings"

	"github.com/spf13/viper"

	"solid/internal/logging"
)

// Config keys.
const (
	KeyLogLevel = "log_level"
	KeyAmount   = "amount"
	KeyBird     = "bird"

	envPrefix = "SOLID"
)

// Defaults reproduce the fixed output of each demo.
const (
	DefaultAmount = "100"
	DefaultBird   = "eagle"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Out      io.Writer // demo output, normally stdout
	Err      io.Writer // log output, normally stderr
	LogLevel string    // debug, info, warn or error
	Amount   string    // input to the discount strategies
	Bird     string    // flyer handed to the trainer
}

// NewViper returns a viper instance with defaults and SOLID_* environment
// lookups applied. Callers may bind flags on it before LoadConfig.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyLogLevel, logging.DefaultLevel)
	v.SetDefault(KeyAmount, DefaultAmount)
	v.SetDefault(KeyBird, DefaultBird)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// LoadConfig reads the resolved settings from v. Nil writers fall back to
// the process's stdout and stderr.
func LoadConfig(v *viper.Viper, out, errOut io.Writer) Config {
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	return Config{
		Out:      out,
		Err:      errOut,
		LogLevel: v.GetString(KeyLogLevel),
		Amount:   v.GetString(KeyAmount),
		Bird:     v.GetString(KeyBird),
	}
}
