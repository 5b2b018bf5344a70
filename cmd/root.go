// Package cmd contains the commands of the collections binary.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	logLevelFlag = "log-level"
	sortedFlag   = "sorted"
)

// NewRootCommand returns the root command. Flags can also be set from
// environment variables prefixed with COLLECTIONS.
func NewRootCommand() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("COLLECTIONS")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root := &cobra.Command{
		Use:           "collections",
		Short:         "Load items into a linked stack, queue or bag and print them back",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(command *cobra.Command, _ []string) {
			mustBindPFlag(v, logLevelFlag, command.Flag(logLevelFlag))
		},
	}
	root.PersistentFlags().String(logLevelFlag, "info", "log level: trace, debug, info, warn, error")

	root.AddCommand(newStackCommand(v))
	root.AddCommand(newQueueCommand(v))
	root.AddCommand(newBagCommand(v))
	return root
}
