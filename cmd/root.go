package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	appctx "github.com/yeisme/animations/pkg/context"
	log2 "github.com/yeisme/animations/pkg/utils/log"
	"github.com/yeisme/animations/pkg/utils/version"
)

var (
	appCtx *appctx.AppContext
	log    log2.Logger = log2.GetLogger()

	// Global flags
	globalFlags appctx.GlobalFlags
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "animations",
	Short: "animations shows text spinners in the terminal",
	Long: `animations cycles through a sequence of characters (clock faces by default)
on a single terminal line to signal that work is in progress.`,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		if globalFlags.VersionEnable {
			fmt.Fprintln(cmd.OutOrStdout(), version.GetShortVersionString())
			return
		}
		_ = cmd.Help()
	},
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		ctx, err := appctx.InitAppContext(cmd.Context(), globalFlags)
		if err != nil {
			return err
		}

		appCtx = ctx
		log = ctx.Logger

		log.Debug().Msgf("Execute Command: %s %s", "animations", strings.Join(os.Args[1:], " "))
		return nil
	},
}

// Execute adds all child commands to the root command and returns the process exit code.
func Execute(ctx context.Context) int {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		return 1
	}
	return 0
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&globalFlags.ConfigPath, "config", "c", "", "config file")
	rootCmd.PersistentFlags().BoolVar(&globalFlags.Debug, "debug", false, "enable debug mode (prints additional information)")
	rootCmd.PersistentFlags().BoolVarP(&globalFlags.Verbose, "verbose", "V", false, "enable verbose output (prints more detailed information)")
	rootCmd.PersistentFlags().BoolVar(&globalFlags.Quiet, "quiet", false, "suppress all log output")
	rootCmd.Flags().BoolVarP(&globalFlags.VersionEnable, "version", "v", false, "show version information")
}
