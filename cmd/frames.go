package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"
	"github.com/yeisme/animations/pkg/animation"
	"github.com/yeisme/animations/pkg/style"
)

var (
	framesCmd = &cobra.Command{
		Use:     "frames",
		Short:   "Inspect the built-in frame sets",
		Aliases: []string{"presets"},
	}

	framesListCmd = &cobra.Command{
		Use:     "list",
		Short:   "List the built-in frame sets",
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var rows [][]string
			for _, name := range animation.PresetNames() {
				frames, _ := animation.Preset(name)
				if name == animation.DefaultPreset {
					name += " (default)"
				}
				rows = append(rows, []string{
					name,
					strconv.Itoa(len(frames)),
					strconv.Itoa(animation.Width(frames)),
					strings.Join(frames, " "),
				})
			}
			return style.PrintTable(cmd.OutOrStdout(), []string{"name", "count", "width", "frames"}, rows, 0)
		},
	}

	framesShowCmd = &cobra.Command{
		Use:   "show <name>",
		Short: "Print the frames of a built-in frame set, one per line",
		Args:  cobra.ExactArgs(1),
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return animation.PresetNames(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			frames, err := animation.Preset(args[0])
			if err != nil {
				return err
			}
			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				return style.PrintJSON(cmd.OutOrStdout(), frames)
			}
			for _, f := range frames {
				fmt.Fprintln(cmd.OutOrStdout(), f)
			}
			return nil
		},
	}

	framesPickCmd = &cobra.Command{
		Use:   "pick",
		Short: "Pick a frame set interactively and run it",
		Long: `
Open a fuzzy finder over the built-in frame sets, then run the selected one
with the animation settings from the config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			names := animation.PresetNames()
			idx, err := fuzzyfinder.Find(names,
				func(i int) string { return names[i] },
				fuzzyfinder.WithPromptString("frames> "),
				fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
					if i < 0 {
						return ""
					}
					frames, _ := animation.Preset(names[i])
					return strings.Join(frames, "\n")
				}),
			)
			if errors.Is(err, fuzzyfinder.ErrAbort) {
				return nil
			}
			if err != nil {
				return err
			}

			cfg := appCtx.Config.Animation
			cfg.Preset = names[idx]
			cfg.Frames = nil
			log.Debug().Str("preset", cfg.Preset).Msg("preset picked")
			return runAnimation(cmd.Context(), cmd.OutOrStdout(), cfg)
		},
	}
)

func init() {
	rootCmd.AddCommand(framesCmd)

	framesCmd.AddCommand(
		framesListCmd,
		framesShowCmd,
		framesPickCmd,
	)

	framesShowCmd.Flags().BoolP("json", "j", false, "output the frames as a JSON array")
}
