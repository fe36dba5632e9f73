package style

import (
	"io"
	"os"
	"strconv"

	xterm "github.com/charmbracelet/x/term"
)

// IsTerminal 判断 writer 是否为终端
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && xterm.IsTerminal(f.Fd())
}

// detectTerminalWidth 尝试从 writer 获取终端宽度，失败则返回 0
func detectTerminalWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if cols, _, err := xterm.GetSize(f.Fd()); err == nil && cols > 0 {
			return cols
		}
	}
	// 尝试从环境变量读取（例如某些环境会设置 COLUMNS）
	if v := os.Getenv("COLUMNS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return 0
}
