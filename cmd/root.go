package cmd

import (
	"fmt"
	"os"

	"china-division/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "china-division",
	Short: "China administrative division service",
	Long: `china-division resolves six digit administrative division codes of the
People's Republic of China against every published revision of the code table.
It serves lookups over HTTP, exports revisions to a database and publishes the
source tables to S3 compatible storage.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with the development config gives ISO8601 timestamps
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
