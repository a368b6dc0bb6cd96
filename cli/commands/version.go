package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/loomlang/loom/cli/internal/ui"
	"github.com/loomlang/loom/cli/internal/update"
	"github.com/loomlang/loom/cli/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  maximumArgs(0),
	RunE:  runVersion,
}

var versionVerbose bool

func init() {
	versionCmd.Flags().BoolVarP(&versionVerbose, "verbose", "v", false, "Include build metadata")

	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, args []string) error {
	info := version.Get()

	if versionVerbose {
		fmt.Println(info.FullString())
	} else {
		fmt.Println(info.String())
	}

	latest, newer, err := update.Check(info.Version)
	if err != nil {
		return fmt.Errorf("failed to check for updates: %w", err)
	}
	if newer {
		fmt.Println()
		ui.PrintWarning("A newer release is available: %s", latest)
		ui.PrintInfo("Download: %s", update.DownloadURL(latest))
	}

	return nil
}
