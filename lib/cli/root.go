// Package cli implements the trimesh command-line tool.
package cli

import (
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/go-trimesh/go-trimesh/lib/config"
	"github.com/go-trimesh/go-trimesh/lib/util/logger"
)

var log = logger.GetLogger()

var (
	cfgFile string
	logFile string
)

var rootCmd = &cobra.Command{
	Use:          "trimesh",
	Short:        "Inspect and validate indexed triangle mesh topology",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.CfgFile = cfgFile
		config.InitConfig()
		setupLogging()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $HOME/.go-trimesh/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to a rotating file")
}

// setupLogging routes log output into a rotating file when one is
// configured, either on the command line or in the config file.
func setupLogging() {
	cfg := config.TrimeshConfigProperties.Log
	file := logFile
	if file == "" {
		file = cfg.File
	}
	if file == "" {
		return
	}
	logger.SetOutput(&lumberjack.Logger{
		Filename:   file,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
	})
	logger.SetLevelString(cfg.Level)
	log.WithField("file", file).Debug("logging to rotating file")
}
