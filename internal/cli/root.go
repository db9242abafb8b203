package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/oneclick-labs/ymp/internal/branding"
	"github.com/oneclick-labs/ymp/internal/config"
	"github.com/oneclick-labs/ymp/internal/logging"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	rootLogLevel string

	// logger is rebuilt by the root pre-run once config and flags are known.
	logger = logging.New(os.Stderr, "")
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` reads One Click Install (.ymp) repository descriptions and
lists, filters and validates the software repositories they declare.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.Load()

		level := rootLogLevel
		if level == "" {
			level = config.LogLevel()
		}
		if _, err := logging.ParseLevel(level); err != nil {
			return err
		}
		logger = logging.New(cmd.ErrOrStderr(), level)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootLogLevel, "log-level", "", "Log level (debug, info, warn, error); overrides the log_level setting")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
	}
	return err
}

// currentLogger is the logger commands hand to the parser.
func currentLogger() *log.Logger {
	return logger
}
