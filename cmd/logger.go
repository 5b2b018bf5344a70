package cmd

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// newLogger builds a logger writing to the command's stderr at the configured level.
func newLogger(v *viper.Viper, command *cobra.Command) (*log.Logger, error) {
	level, err := log.ParseLevel(v.GetString(logLevelFlag))
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", logLevelFlag, err)
	}
	logger := log.New()
	logger.SetOutput(command.ErrOrStderr())
	logger.SetLevel(level)
	return logger, nil
}
