package animation

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/x/ansi"
)

type sleepFunc func(ctx context.Context, d time.Duration) error

// sleepContext 阻塞等待 d，ctx 取消时提前返回
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// withHiddenCursor 在 fn 执行期间隐藏光标，任何返回路径都会恢复光标
func withHiddenCursor(w io.Writer, fn func() error) (err error) {
	if _, err = io.WriteString(w, ansi.HideCursor); err != nil {
		return err
	}
	defer func() {
		if _, showErr := io.WriteString(w, ansi.ShowCursor); err == nil {
			err = showErr
		}
	}()
	return fn()
}

// Render 输出下一帧，以回车结尾覆盖同一行
// 设置了 delay 时先等待 delay 再绘制
func (a *Animation) Render(ctx context.Context, pre, post string) error {
	if a.delay > 0 {
		if err := a.sleep(ctx, a.delay); err != nil {
			return err
		}
	}

	draw := func() error {
		frame, err := a.Next()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(a.out, "%s%s%s\r", pre, frame, post)
		return err
	}

	if !a.hideCursor {
		return draw()
	}
	return withHiddenCursor(a.out, draw)
}

// Run 从初始状态开始渲染直到 Finished，结束后（包括 ctx 取消）重置状态
// Unbounded 时只能通过取消 ctx 结束
func (a *Animation) Run(ctx context.Context, pre, post string) error {
	a.Reset()
	defer a.Reset()

	for !a.Finished() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := a.Render(ctx, pre, post); err != nil {
			return err
		}
	}
	a.logger.Debug().Int("iterations", a.completedIterations).Msg("animation finished")
	return nil
}
