package animation

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/mattn/go-runewidth"
)

// DefaultPreset 默认预设名称
const DefaultPreset = "clock"

// ErrUnknownPreset 预设不存在
var ErrUnknownPreset = errors.New("unknown preset")

var presets = map[string][]string{
	DefaultPreset: DefaultFrames,
	"dots":        {"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
	"line":        {"-", "\\", "|", "/"},
	"moon":        {"🌑", "🌒", "🌓", "🌔", "🌕", "🌖", "🌗", "🌘"},
	"arrow":       {"←", "↖", "↑", "↗", "→", "↘", "↓", "↙"},
	"bounce":      {"⠁", "⠂", "⠄", "⠂"},
	"pets":        {"🐶", "🐱"},
}

// Preset 返回预设帧序列的副本
// 名称不存在时返回 ErrUnknownPreset，并附带相近名称建议
func Preset(name string) ([]string, error) {
	frames, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		if suggestions := fuzzy.RankFindFold(name, PresetNames()); len(suggestions) > 0 {
			slices.SortFunc(suggestions, func(a, b fuzzy.Rank) int { return a.Distance - b.Distance })
			return nil, fmt.Errorf("%w %q, did you mean %q?", ErrUnknownPreset, name, suggestions[0].Target)
		}
		return nil, fmt.Errorf("%w %q, available: %s", ErrUnknownPreset, name, strings.Join(PresetNames(), ", "))
	}
	return append([]string(nil), frames...), nil
}

// PresetNames 返回按字母排序的预设名称
func PresetNames() []string {
	return slices.Sorted(maps.Keys(presets))
}

// Width 返回帧序列中最宽一帧的显示宽度
func Width(frames []string) int {
	w := 0
	for _, f := range frames {
		w = max(w, runewidth.StringWidth(f))
	}
	return w
}
