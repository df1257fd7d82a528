package style

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PrintBlock 把预先排好版的多行文本放进圆角边框中输出，内容原样保留
// 超出终端宽度的行按显示宽度截断
func PrintBlock(w io.Writer, lines []string) error {
	if len(lines) == 0 {
		return nil
	}
	limit := detectTerminalWidth(w)
	if limit <= 0 {
		limit = 80
	}
	// 边框与内边距共占 4 列
	limit -= 4

	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = Truncate(l, limit)
	}

	box := newRenderer(w).NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Foreground(ColorText).
		Padding(0, 1)
	_, err := fmt.Fprintln(w, box.Render(strings.Join(out, "\n")))
	return err
}
