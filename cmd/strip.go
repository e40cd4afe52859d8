package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mowtools/pkg/mission"
)

var stripCmd = &cobra.Command{
	Use:   "strip [base]",
	Short: "Remove autosave lines from an already extracted map tree",
	Long: `Remove every line containing {"autosave"} from the 0.mi file of each
mission below <base>/resource/map/single/. No archive is read or deleted.

A mission folder without 0.mi stops the run.

Examples:
  mowtools strip /games/mowas2`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStrip,
}

func init() {
	rootCmd.AddCommand(stripCmd)
}

func runStrip(cmd *cobra.Command, args []string) error {
	base, err := basePath(args)
	if err != nil {
		return err
	}

	folders, err := mission.Discover(base)
	if err != nil {
		return err
	}

	results, err := mission.StripAll(folders)
	if err != nil {
		return err
	}

	changed := 0
	for _, r := range results {
		if r.Changed() {
			changed++
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Stripped %d of %d mission files\n", changed, len(results))
	return nil
}
