package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mowtools/pkg/fix"
)

var fixCmd = &cobra.Command{
	Use:   "fix [base]",
	Short: "Extract map.pak, strip autosaves, delete the archive",
	Long: `Run the complete mission fix against a game directory.

Steps:
  1. Locate <base>/resource/map.pak
  2. Extract it into <base>/resource/
  3. Find every mission under resource/map/single/<faction>/<mission>/
  4. Remove each line containing {"autosave"} from the mission's 0.mi
  5. Delete map.pak

If map.pak does not exist nothing is changed.

Examples:
  # Fix the game in the current directory
  mowtools fix

  # Fix a Steam installation
  mowtools fix "/media/2A/SteamLibrary/steamapps/common/Men of War Assault Squad 2/"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFix,
}

func init() {
	rootCmd.AddCommand(fixCmd)
}

func runFix(cmd *cobra.Command, args []string) error {
	base, err := basePath(args)
	if err != nil {
		return err
	}

	_, err = fix.Run(fix.Options{
		BasePath: base,
		Out:      cmd.OutOrStdout(),
		Verbose:  verbose,
	})
	return err
}
