package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yeisme/animations/pkg/style"
	"github.com/yeisme/animations/pkg/utils/version"
)

var (
	// Version command flags
	versionDetailed bool
	versionJSON     bool
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long: `
Display version information for animations.

Examples:
  animations version             # short version info
  animations version --detailed  # version, commit, go version and platform
  animations version --json      # machine readable`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		switch {
		case versionJSON:
			return style.PrintJSON(cmd.OutOrStdout(), version.GetVersion())
		case versionDetailed:
			fmt.Fprintln(cmd.OutOrStdout(), version.GetVersionString())
		default:
			fmt.Fprintln(cmd.OutOrStdout(), version.GetShortVersionString())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().BoolVarP(&versionDetailed, "detailed", "d", false, "show detailed version information")
	versionCmd.Flags().BoolVarP(&versionJSON, "json", "j", false, "output version information in JSON format")
}
