package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yeisme/animations/pkg/animation"
	"github.com/yeisme/animations/pkg/configs"
)

var (
	noColor bool

	configCmd = &cobra.Command{
		Use:     "config",
		Short:   "Manage animations configuration",
		Long:    `animations config allows you to view and manage your animations configuration settings.`,
		Aliases: []string{"c"},
	}

	configValidateCmd = &cobra.Command{
		Use:   "validate",
		Short: "Validate animations configuration",
		Long:  `animations config validate loads the configuration and checks that the animation section builds a valid animation.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := animation.New(appCtx.Config.Animation.Options()...)
			if err != nil {
				return err
			}

			fileUsed := appCtx.Viper.ConfigFileUsed()
			if fileUsed == "" {
				fileUsed = "(defaults)"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "config %s is valid: %s\n", fileUsed, a)
			return nil
		},
		Aliases: []string{"check", "verify"},
	}

	configListCmd = &cobra.Command{
		Use:   "list [section]",
		Short: "List animations configuration",
		Long: `animations config list displays the current configuration settings.

You can specify a section to display only that part of the configuration:
  - animation: Animation settings
  - app: Application settings
  - log: Logging settings

Examples:
  animations config list                    # Show all configuration (viper raw data)
  animations config list --all              # Show all configuration with defaults
  animations config list animation --json   # Show animation settings in JSON`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			section := ""
			if len(args) > 0 {
				section = args[0]
			}

			format := configs.GetOutputFormatFromFlags(cmd)
			showAll, _ := cmd.Flags().GetBool("all")

			data, err := configs.GetConfigSection(appCtx.Viper, section, showAll)
			if err != nil {
				return err
			}
			return configs.OutputData(data, format, cmd.OutOrStdout(), !noColor)
		},
		Aliases: []string{"ls"},
	}

	configInitCmd = &cobra.Command{
		Use:   "init",
		Short: "Initialize animations configuration",
		Long: `animations config init creates a new configuration file with default settings.

Examples:
  animations config init                    # Create .animations.yaml in current directory
  animations config init --path ~/.config/animations/animations.toml --format toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, _ := cmd.Flags().GetString("path")
			formatStr, _ := cmd.Flags().GetString("format")

			format, err := configs.ParseOutputFormat(formatStr)
			if err != nil {
				return err
			}
			if path == "" {
				path = ".animations." + string(format)
			}

			if err := configs.CreateDefaultConfig(path, format); err != nil {
				return err
			}
			log.Info().Str("path", path).Msg("config file created")
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
)

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.AddCommand(
		configListCmd,
		configValidateCmd,
		configInitCmd,
	)

	configListCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	configListCmd.Flags().StringP("format", "f", "", fmt.Sprintf("Output format (%s)", strings.Join(configs.ValidFormats(), ", ")))
	configListCmd.Flags().Bool("yaml", false, "Output in YAML format")
	configListCmd.Flags().Bool("json", false, "Output in JSON format")
	configListCmd.Flags().Bool("toml", false, "Output in TOML format")
	configListCmd.Flags().Bool("text", false, "Output in plain text format")
	configListCmd.Flags().BoolP("all", "a", false, "Show complete configuration with defaults (processed struct)")

	configInitCmd.Flags().StringP("path", "p", "", "Path to the config file")
	configInitCmd.Flags().StringP("format", "f", "yaml", "Format of the config file (yaml, json, toml)")
}
