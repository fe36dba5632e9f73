package style

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// jsonToken 依次匹配：字符串（可带紧随的冒号表示键名）、数字、字面量、标点
var jsonToken = regexp.MustCompile(`("(?:\\.|[^"\\])*")(\s*:)?|(-?\d+(?:\.\d+)?(?:[eE][+-]?\d+)?)|\b(true|false|null)\b|([{}\[\],])`)

// PrintJSON 将 JSON 文本或任意值缩进并高亮后输出
// string / []byte 视为原始 JSON，其余值先经 json.MarshalIndent 编码
func PrintJSON(w io.Writer, v any) error {
	pretty, err := FormatJSON(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, colorizeJSON(lipgloss.NewRenderer(w), pretty))
	return err
}

// FormatJSON 返回以换行结尾的缩进 JSON
func FormatJSON(v any) (string, error) {
	var src []byte
	switch x := v.(type) {
	case string:
		src = []byte(x)
	case []byte:
		src = x
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		src = b
	}

	src = bytes.TrimSpace(src)
	if len(src) == 0 {
		return "null\n", nil
	}
	var out bytes.Buffer
	if err := json.Indent(&out, src, "", "  "); err != nil {
		return "", err
	}
	out.WriteByte('\n')
	return out.String(), nil
}

func colorizeJSON(re *lipgloss.Renderer, s string) string {
	keyStyle := re.NewStyle().Foreground(ColorJSONKey).Bold(true)
	strStyle := re.NewStyle().Foreground(ColorJSONString)
	numStyle := re.NewStyle().Foreground(ColorJSONNumber)
	boolStyle := re.NewStyle().Foreground(ColorJSONBool)
	nullStyle := re.NewStyle().Foreground(ColorJSONNull)
	punctStyle := re.NewStyle().Foreground(ColorJSONPunct)

	var b strings.Builder
	last := 0
	for _, m := range jsonToken.FindAllStringSubmatchIndex(s, -1) {
		b.WriteString(s[last:m[0]])
		last = m[1]

		switch {
		case m[2] >= 0 && m[4] >= 0:
			b.WriteString(keyStyle.Render(s[m[2]:m[3]]))
			b.WriteString(s[m[4] : m[5]-1])
			b.WriteString(punctStyle.Render(":"))
		case m[2] >= 0:
			b.WriteString(strStyle.Render(s[m[2]:m[3]]))
		case m[6] >= 0:
			b.WriteString(numStyle.Render(s[m[6]:m[7]]))
		case m[8] >= 0:
			lit := s[m[8]:m[9]]
			if lit == "null" {
				b.WriteString(nullStyle.Render(lit))
			} else {
				b.WriteString(boolStyle.Render(lit))
			}
		default:
			b.WriteString(punctStyle.Render(s[m[10]:m[11]]))
		}
	}
	b.WriteString(s[last:])
	return b.String()
}
