package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/yeisme/animations/cmd"
)

func main() {
	// Ctrl+C 取消 context，正在运行的动画会恢复光标后退出
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cmd.Execute(ctx)
	stop()
	os.Exit(code)
}
