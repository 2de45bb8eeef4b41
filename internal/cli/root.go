// Package cli implements the zbxdoc command surface.
package cli

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version = "dev"
	commit  = "unknown"
)

var (
	flagVerbose bool
	flagQuiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "zbxdoc",
	Short: "Generate Markdown documentation from Zabbix template exports",
	Long: "zbxdoc renders a Zabbix template export (YAML) as a Markdown document:\n" +
		"one section per template with Items, Triggers, Macros and Discovery rules\n" +
		"tables, optionally with machine-translated descriptions.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "only log errors")

	viper.SetEnvPrefix("ZBXDOC")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion records build metadata injected by the linker.
func SetVersion(v, c string) {
	if v != "" {
		version = v
	}
	if c != "" {
		commit = c
	}
}

// newLogger builds the diagnostic logger. It writes to stderr so the
// primary output stream stays clean.
func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if flagQuiet {
		level = zerolog.ErrorLevel
	}
	if flagVerbose {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}
