package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mowtools/pkg/mission"
)

var listCmd = &cobra.Command{
	Use:   "list [base]",
	Short: "List single-player missions of an extracted map tree",
	Long: `List every mission folder below <base>/resource/map/single/.

Factions are printed in name order; missions keep the directory order.

Examples:
  mowtools list /games/mowas2`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	base, err := basePath(args)
	if err != nil {
		return err
	}

	folders, err := mission.Discover(base)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, f := range folders {
		fmt.Fprintf(out, "%s/%s\n", f.Faction, f.Name)
	}
	fmt.Fprintf(out, "Missions: %d\n", len(folders))
	return nil
}
