package configs

import (
	"time"

	"github.com/spf13/viper"
	"github.com/yeisme/animations/pkg/animation"
)

// AnimationConfig 动画配置
type AnimationConfig struct {
	Preset        string        `mapstructure:"preset"`          // 内置帧序列名称，frames 非空时忽略
	Frames        []string      `mapstructure:"frames"`          // 自定义帧序列
	MaxIterations int           `mapstructure:"max_iterations"`  // 迭代次数，-1 表示不限，0 非法
	Forever       bool          `mapstructure:"forever"`         // 不限迭代次数，优先于 max_iterations
	Delay         time.Duration `mapstructure:"delay"`           // 每帧前的等待时间，0 表示不等待
	RaiseOnFinish bool          `mapstructure:"raise_on_finish"` // 迭代耗尽时返回错误
	HideCursor    bool          `mapstructure:"hide_cursor"`     // 渲染时隐藏光标
	PreText       string        `mapstructure:"pre_text"`
	PostText      string        `mapstructure:"post_text"`
}

func setAnimationConfigDefaults(v *viper.Viper) {
	v.SetDefault("animation.preset", animation.DefaultPreset)
	v.SetDefault("animation.frames", []string{})
	v.SetDefault("animation.max_iterations", animation.DefaultMaxIterations)
	v.SetDefault("animation.forever", false)
	v.SetDefault("animation.delay", "100ms")
	v.SetDefault("animation.raise_on_finish", false)
	v.SetDefault("animation.hide_cursor", true)
	v.SetDefault("animation.pre_text", "")
	v.SetDefault("animation.post_text", "")
}

// Options 将配置转换为 animation.Option，由 animation.New 负责校验
// max_iterations 总是传入，0 与命令行 -n 0 一样被拒绝；delay 为 0 表示不等待
func (c *AnimationConfig) Options() []animation.Option {
	var opts []animation.Option

	if len(c.Frames) > 0 {
		opts = append(opts, animation.WithFrames(c.Frames...))
	} else if c.Preset != "" {
		opts = append(opts, animation.WithPreset(c.Preset))
	}

	if c.Forever {
		opts = append(opts, animation.WithMaxIterations(animation.Unbounded))
	} else {
		opts = append(opts, animation.WithMaxIterations(c.MaxIterations))
	}

	if c.Delay != 0 {
		opts = append(opts, animation.WithDelay(c.Delay))
	}

	return append(opts,
		animation.WithRaiseOnFinish(c.RaiseOnFinish),
		animation.WithHideCursor(c.HideCursor),
	)
}
