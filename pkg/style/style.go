// Package style 提供终端样式化输出功能
package style

import "github.com/charmbracelet/lipgloss"

// 定义一套颜色，方便管理和修改
const (
	// 表格边框颜色
	ColorBorder = lipgloss.Color("238")
	// 表头文字颜色
	ColorHeader = lipgloss.Color("252")

	// JSON 高亮颜色
	ColorJSONKey    = lipgloss.Color("#55bcf4ff") // 键名
	ColorJSONString = lipgloss.Color("#FFFFFF")   // 字符串值
	ColorJSONNumber = lipgloss.Color("#d4ec19ff") // 数字
	ColorJSONBool   = lipgloss.Color("#dfab49ff") // 布尔
	ColorJSONNull   = lipgloss.Color("#6272A4")   // null
	ColorJSONPunct  = lipgloss.Color("#6B7280")   // 标点
)
