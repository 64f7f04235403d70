package cmd

import (
	"os"

	"github.com/GrayChrysTea/coupled-values/coupled/commons"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	log "github.com/sirupsen/logrus"
)

// Config is the CLI configuration file.
type Config struct {
	ErrorMode commons.ErrorMode `yaml:"error_mode"`
	LogLevel  string            `yaml:"log_level"`
	Color     bool              `yaml:"color"`
}

func DefaultConfig() *Config {
	return &Config{
		ErrorMode: commons.Strict,
		LogLevel:  log.InfoLevel.String(),
		Color:     true,
	}
}

// LoadConfig reads path over the defaults. An empty path yields the defaults.
func LoadConfig(path string) (*Config, error) {
	c := DefaultConfig()
	if path == "" {
		return c, nil
	}
	buff, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read configFile")
	}
	if err := yaml.Unmarshal(buff, c); err != nil {
		return nil, errors.Wrap(err, "failed to parse configFile")
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return nil, errors.Wrap(err, "invalid log_level")
	}
	return c, nil
}

// ApplyFlags overrides c with the non-empty command line values.
func (c *Config) ApplyFlags(errorMode, logLevel string, noColor bool) error {
	if errorMode != "" {
		mode, err := commons.ParseErrorMode(errorMode)
		if err != nil {
			return err
		}
		c.ErrorMode = mode
	}
	if logLevel != "" {
		if _, err := log.ParseLevel(logLevel); err != nil {
			return errors.Wrap(err, "invalid --log-level")
		}
		c.LogLevel = logLevel
	}
	if noColor {
		c.Color = false
	}
	return nil
}

// Apply configures logger and the color output from c.
func (c *Config) Apply(logger *log.Logger) error {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return err
	}
	logger.SetLevel(level)
	logger.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
	color.NoColor = color.NoColor || !c.Color
	return nil
}
