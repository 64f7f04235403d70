package cmd

import (
	"fmt"
	"os"

	"github.com/GrayChrysTea/coupled-values/coupled"
	"github.com/GrayChrysTea/coupled-values/coupled/ingest"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	log "github.com/sirupsen/logrus"
)

var (
	configFile    string
	errorModeFlag string
	logLevelFlag  string
	noColor       bool

	cfg = DefaultConfig()
)

var rootCmd = &cobra.Command{
	Use:   "coupled",
	Short: "Inspect and query symmetric pair documents",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := LoadConfig(configFile)
		if err != nil {
			return err
		}
		if err := loaded.ApplyFlags(errorModeFlag, logLevelFlag, noColor); err != nil {
			return err
		}
		cfg = loaded
		return cfg.Apply(log.StandardLogger())
	},
	SilenceUsage: true,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func bailf(format string, args ...interface{}) {
	fmt.Fprintln(os.Stderr, color.RedString(format, args...))
	os.Exit(1)
}

func checkErr(err error) {
	if err != nil {
		bailf("error: %v", err)
	}
}

// loadSet reads a YAML or JSON pair document into a set.
func loadSet(path string) (*coupled.PairSet[string], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	pairs, err := ingest.FromDocument[string](data)
	if err != nil {
		return nil, err
	}
	set, err := coupled.NewPairSet(cfg.ErrorMode, pairs...)
	if err != nil {
		return nil, err
	}
	set.SetLogger(log.WithFields(log.Fields{"component": "pairset", "file": path}))
	return set, nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "YAML configuration file")
	rootCmd.PersistentFlags().StringVarP(&errorModeFlag, "error-mode", "", "", "strict or lenient, overrides the configuration file")
	rootCmd.PersistentFlags().StringVarP(&logLevelFlag, "log-level", "", "", "log level, overrides the configuration file")
	rootCmd.PersistentFlags().BoolVarP(&noColor, "no-color", "", false, "disable colored output")
}
