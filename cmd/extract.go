package cmd

import (
	"fmt"

	"code.cloudfoundry.org/bytefmt"
	"github.com/spf13/cobra"

	"github.com/mowtools/pkg/pak"
)

var extractCmd = &cobra.Command{
	Use:   "extract [base]",
	Short: "Extract resource/map.pak without modifying missions",
	Long: `Extract <base>/resource/map.pak into <base>/resource/.

Existing files are overwritten. The archive is kept.

Examples:
  # Extract the archive of the game in the current directory
  mowtools extract

  # Extract with a listing of every file
  mowtools extract /games/mowas2 -v`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	base, err := basePath(args)
	if err != nil {
		return err
	}

	archive := pak.Locate(base)
	if !archive.Exists {
		return fmt.Errorf("archive not found: %s", archive.Path)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Extracting: %s\n", archive.Path)

	stats, err := pak.Expand(archive.Path, pak.ResourcePath(base), verbose)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Files: %d\n", stats.Files)
	fmt.Fprintf(out, "Size: %s\n", bytefmt.ByteSize(stats.Bytes))
	fmt.Fprintln(out, "Extraction complete!")
	return nil
}
