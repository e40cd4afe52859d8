package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mowtools/pkg/config"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "mowtools",
	Short: "Mission fixes for Men of War: Assault Squad 2",
	Long: `mowtools unpacks the game's map archive and removes the scripted autosave
triggers from every single-player mission.

Supported operations:
  - Run the whole fix (extract, strip, delete map.pak)
  - Extract resource/map.pak only
  - List the single-player missions of an extracted tree
  - Strip autosave lines from an extracted tree

The game directory is taken from the first argument, then from base_path in
the file given with --config, then defaults to the current directory.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: configureLogging,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"YAML file providing base_path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"print verbose progress information")
}

func configureLogging(cmd *cobra.Command, args []string) error {
	formatter := new(log.TextFormatter)
	formatter.TimestampFormat = "2006-01-02 15:04:05"
	formatter.FullTimestamp = true
	log.SetFormatter(formatter)
	log.SetOutput(cmd.ErrOrStderr())

	if verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
	return nil
}

// basePath resolves the game directory for a command invocation.
func basePath(args []string) (string, error) {
	base, err := config.ResolveBasePath(args, configPath)
	if err != nil {
		return "", fmt.Errorf("failed to resolve base path: %w", err)
	}
	log.Debugf("Using base path %s", base)
	return base, nil
}
