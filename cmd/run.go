package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/yeisme/animations/pkg/animation"
	"github.com/yeisme/animations/pkg/configs"
	"github.com/yeisme/animations/pkg/style"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a spinner animation",
	Long: `
Run a spinner animation on the current terminal line.

Flags override the values from the config file (section "animation").

Examples:
  # Show the clock faces once
  animations run

  # Three passes over a custom frame set, 200ms per frame
  animations run -f "🐶,🐱" -n 3 -d 200ms

  # Spin until Ctrl+C with surrounding text
  animations run -p dots --forever --pre "building " --post " please wait"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg := appCtx.Config.Animation
		if err := applyRunFlags(cmd, &cfg); err != nil {
			return err
		}
		return runAnimation(cmd.Context(), cmd.OutOrStdout(), cfg)
	},
}

// applyRunFlags 将显式设置的标志覆盖到配置上
// 取值校验与配置文件一致，统一交给 AnimationConfig.Options 与 animation.New
func applyRunFlags(cmd *cobra.Command, cfg *configs.AnimationConfig) error {
	flags := cmd.Flags()
	if flags.Changed("preset") {
		cfg.Preset, _ = flags.GetString("preset")
		cfg.Frames = nil
	}
	if flags.Changed("frames") {
		cfg.Frames, _ = flags.GetStringSlice("frames")
		if len(cfg.Frames) == 0 {
			return fmt.Errorf("%w: --frames must not be empty", animation.ErrInvalidConfiguration)
		}
	}
	if flags.Changed("max-iterations") {
		cfg.MaxIterations, _ = flags.GetInt("max-iterations")
	}
	if flags.Changed("forever") {
		cfg.Forever, _ = flags.GetBool("forever")
	}
	if flags.Changed("delay") {
		cfg.Delay, _ = flags.GetDuration("delay")
	}
	if flags.Changed("pre") {
		cfg.PreText, _ = flags.GetString("pre")
	}
	if flags.Changed("post") {
		cfg.PostText, _ = flags.GetString("post")
	}
	if noHide, _ := flags.GetBool("no-hide-cursor"); noHide {
		cfg.HideCursor = false
	}
	return nil
}

// runAnimation 构建动画并阻塞运行，ctx 取消视为正常退出
func runAnimation(ctx context.Context, out io.Writer, cfg configs.AnimationConfig) error {
	opts := append(cfg.Options(),
		animation.WithOutput(out),
		animation.WithLogger(*log),
	)
	if !style.IsTerminal(out) {
		opts = append(opts, animation.WithHideCursor(false))
	}

	a, err := animation.New(opts...)
	if err != nil {
		return err
	}
	log.Debug().Stringer("animation", a).Msg("starting animation")

	start := time.Now()
	err = a.Run(ctx, cfg.PreText, cfg.PostText)
	switch {
	case errors.Is(err, context.Canceled):
		// 换行，避免 shell 提示符覆盖最后一帧
		fmt.Fprintln(out)
		log.Info().Dur("elapsed", time.Since(start)).Msg("animation interrupted")
		return nil
	case err != nil:
		return err
	}
	log.Debug().Dur("elapsed", time.Since(start)).Msg("animation done")
	return nil
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("preset", "p", animation.DefaultPreset, fmt.Sprintf("built-in frame set (%s)", strings.Join(animation.PresetNames(), ", ")))
	runCmd.Flags().StringSliceP("frames", "f", nil, "custom frames, comma separated (overrides --preset)")
	runCmd.Flags().IntP("max-iterations", "n", animation.DefaultMaxIterations, "number of passes over the frames, -1 for unbounded")
	runCmd.Flags().Bool("forever", false, "spin until interrupted")
	runCmd.Flags().DurationP("delay", "d", 100*time.Millisecond, "wait before each frame, 0 for none")
	runCmd.Flags().String("pre", "", "text printed before the frame")
	runCmd.Flags().String("post", "", "text printed after the frame")
	runCmd.Flags().Bool("no-hide-cursor", false, "keep the terminal cursor visible")
}
