// Package animation 提供终端文本旋转动画
// Animation 按顺序循环输出一组帧字符串（默认为时钟表情），用于提示用户有任务正在进行
package animation

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	// Unbounded 表示不按迭代次数结束
	Unbounded = -1
	// DefaultMaxIterations 默认迭代次数
	DefaultMaxIterations = 1
)

var (
	// ErrInvalidConfiguration 构造参数不合法
	ErrInvalidConfiguration = errors.New("invalid animation configuration")
	// ErrIterationExhausted 在 raiseOnFinish 模式下迭代次数耗尽时由 Next 返回
	ErrIterationExhausted = errors.New("animation iterations exhausted")
)

// DefaultFrames 默认帧序列
var DefaultFrames = []string{"🕐", "🕑", "🕒", "🕓", "🕔", "🕕", "🕖", "🕗", "🕘", "🕙", "🕚", "🕛"}

// Animation 保存帧序列与迭代状态
//
// 非并发安全：Next、Render、Run、Reset 不可在同一实例上并发调用
type Animation struct {
	frames        []string
	maxIterations int
	delay         time.Duration
	raiseOnFinish bool
	hideCursor    bool

	frameIndex          int
	completedIterations int

	out    io.Writer
	logger zerolog.Logger
	sleep  sleepFunc
}

// Option 构造选项
type Option func(*Animation) error

// WithMaxIterations 设置最大迭代次数，必须为 Unbounded 或正数
func WithMaxIterations(n int) Option {
	return func(a *Animation) error {
		if n != Unbounded && n <= 0 {
			return fmt.Errorf("%w: max iterations must be %d or > 0, got %d", ErrInvalidConfiguration, Unbounded, n)
		}
		a.maxIterations = n
		return nil
	}
}

// WithFrames 设置帧序列，至少一帧且每帧不能为空字符串
func WithFrames(frames ...string) Option {
	return func(a *Animation) error {
		if err := validateFrames(frames); err != nil {
			return err
		}
		a.frames = append([]string(nil), frames...)
		return nil
	}
}

// WithPreset 使用内置的帧序列
func WithPreset(name string) Option {
	return func(a *Animation) error {
		frames, err := Preset(name)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
		}
		a.frames = frames
		return nil
	}
}

// WithDelay 设置每次渲染前的等待时间，必须大于 0
func WithDelay(d time.Duration) Option {
	return func(a *Animation) error {
		if d <= 0 {
			return fmt.Errorf("%w: delay must be > 0, got %s", ErrInvalidConfiguration, d)
		}
		a.delay = d
		return nil
	}
}

// WithRaiseOnFinish 迭代耗尽后 Next 返回 ErrIterationExhausted
func WithRaiseOnFinish(raise bool) Option {
	return func(a *Animation) error {
		a.raiseOnFinish = raise
		return nil
	}
}

// WithOutput 设置 Render 的输出目标，默认 os.Stdout
func WithOutput(w io.Writer) Option {
	return func(a *Animation) error {
		if w == nil {
			return fmt.Errorf("%w: output writer is nil", ErrInvalidConfiguration)
		}
		a.out = w
		return nil
	}
}

// WithHideCursor 渲染时是否隐藏光标，默认隐藏
func WithHideCursor(hide bool) Option {
	return func(a *Animation) error {
		a.hideCursor = hide
		return nil
	}
}

// WithLogger 注入日志记录器，默认不输出
func WithLogger(l zerolog.Logger) Option {
	return func(a *Animation) error {
		a.logger = l
		return nil
	}
}

func validateFrames(frames []string) error {
	if len(frames) == 0 {
		return fmt.Errorf("%w: frames must not be empty", ErrInvalidConfiguration)
	}
	for i, f := range frames {
		if f == "" {
			return fmt.Errorf("%w: frame %d is an empty string", ErrInvalidConfiguration, i)
		}
	}
	return nil
}

// New 创建 Animation，任一参数不合法时返回 ErrInvalidConfiguration
func New(opts ...Option) (*Animation, error) {
	a := &Animation{
		frames:        append([]string(nil), DefaultFrames...),
		maxIterations: DefaultMaxIterations,
		hideCursor:    true,
		out:           os.Stdout,
		logger:        zerolog.Nop(),
		sleep:         sleepContext,
	}
	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}
	a.Reset()

	if a.delay > 0 {
		if total, ok := a.TotalWait(); ok {
			a.logger.Debug().Dur("total", total).Msg("animation cycle total waiting time")
		} else {
			a.logger.Debug().Str("total", "unbounded").Msg("animation cycle total waiting time")
		}
	}
	return a, nil
}

// Next 返回当前帧并将游标后移一位，越过最后一帧时回到 0 并计一次迭代
func (a *Animation) Next() (string, error) {
	if a.raiseOnFinish && a.Finished() {
		return "", ErrIterationExhausted
	}
	frame := a.frames[a.frameIndex]
	a.frameIndex++
	if a.frameIndex >= len(a.frames) {
		a.frameIndex = 0
		a.completedIterations++
	}
	return frame, nil
}

// Finished 是否已达到最大迭代次数，Unbounded 时总为 false
func (a *Animation) Finished() bool {
	if a.maxIterations == Unbounded {
		return false
	}
	return a.completedIterations >= a.maxIterations
}

// Reset 将游标与迭代计数恢复为初始值，不修改配置
func (a *Animation) Reset() {
	a.frameIndex = 0
	a.completedIterations = 0
}

// TotalWait 返回完整运行所需的等待时间，Unbounded 时 ok 为 false
// 乘积溢出时饱和为最大 time.Duration
func (a *Animation) TotalWait() (time.Duration, bool) {
	if a.maxIterations == Unbounded {
		return 0, false
	}
	if a.delay == 0 {
		return 0, true
	}
	limit := int64(math.MaxInt64 / a.delay)
	if int64(a.maxIterations) > limit/int64(len(a.frames)) {
		return time.Duration(math.MaxInt64), true
	}
	return a.delay * time.Duration(len(a.frames)) * time.Duration(a.maxIterations), true
}

// Frames 返回帧序列的副本
func (a *Animation) Frames() []string { return append([]string(nil), a.frames...) }

// Len 帧数
func (a *Animation) Len() int { return len(a.frames) }

func (a *Animation) MaxIterations() int       { return a.maxIterations }
func (a *Animation) Delay() time.Duration     { return a.delay }
func (a *Animation) RaiseOnFinish() bool      { return a.raiseOnFinish }
func (a *Animation) FrameIndex() int          { return a.frameIndex }
func (a *Animation) CompletedIterations() int { return a.completedIterations }

// String 依次输出 max_iterations、frames，以及设置过的 delay 与 raise_on_finish
func (a *Animation) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Animation(max_iterations=%d, frames=%q", a.maxIterations, a.frames)
	if a.delay > 0 {
		fmt.Fprintf(&b, ", delay=%s", a.delay)
	}
	if a.raiseOnFinish {
		b.WriteString(", raise_on_finish=true")
	}
	b.WriteString(")")
	return b.String()
}
