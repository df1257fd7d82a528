package style

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss/list"
)

// PrintList 渲染一个带主题样式的圆点列表
// hidden 大于 0 时在末尾追加一项 “… and N more”，提示列表已被截断
func PrintList(w io.Writer, items []string, hidden int) error {
	if len(items) == 0 {
		return nil
	}
	re := newRenderer(w)

	// 为编号符号定义样式：使用主题强调色
	enumeratorStyle := re.NewStyle().
		Foreground(ColorAccentPrimary).
		MarginRight(1)

	// 为列表项文本定义样式：使用主要文本颜色
	itemStyle := re.NewStyle().
		Foreground(ColorText)

	values := make([]any, 0, len(items)+1)
	for _, it := range items {
		values = append(values, it)
	}
	if hidden > 0 {
		values = append(values, re.NewStyle().Foreground(ColorMuted).Render(fmt.Sprintf("… and %d more", hidden)))
	}

	l := list.New(values...).
		Enumerator(list.Bullet).
		EnumeratorStyle(enumeratorStyle).
		ItemStyle(itemStyle)

	_, err := fmt.Fprintln(w, l)
	return err
}
