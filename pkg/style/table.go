package style

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// PrintTable 输出带边框的表格，表头统一大写
// width<=0 时自动探测终端宽度，探测失败则按内容自适应
func PrintTable(w io.Writer, headers []string, rows [][]string, width int) error {
	if width <= 0 {
		width = detectTerminalWidth(w)
	}

	re := lipgloss.NewRenderer(w)
	baseStyle := re.NewStyle().Padding(0, 1)
	headerStyle := baseStyle.Foreground(ColorHeader).Bold(true)

	upper := make([]string, len(headers))
	for i, h := range headers {
		upper[i] = strings.ToUpper(h)
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(re.NewStyle().Foreground(ColorBorder)).
		Headers(upper...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return baseStyle
		})
	if width > 0 {
		tbl = tbl.Width(width)
	}

	_, err := fmt.Fprintln(w, tbl)
	return err
}
