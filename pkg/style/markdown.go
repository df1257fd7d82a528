package style

import (
	"io"

	"github.com/charmbracelet/glamour"
)

// RenderMarkdown 渲染传入的 Markdown 文本并输出到指定 writer
// 宽度限制在 [80, 120] 且不超过终端宽度；关闭颜色时使用 notty 样式
//
// 参数:
//
//  1. w: 输出的 io.Writer
//  2. input: 要渲染的 Markdown 文本
//  3. width: 渲染的宽度，<=0 时使用探测到的终端宽度
//  4. theme: 渲染时使用的主题 (例如 "dracula", "dark", "light" 等)
func RenderMarkdown(w io.Writer, input string, width int, theme string) error {
	if theme == "" {
		theme = "dracula"
	}
	if noColor {
		theme = "notty"
	}
	termWidth := detectTerminalWidth(w)
	if termWidth <= 0 {
		termWidth = 80
	}
	if width <= 0 {
		width = termWidth
	}
	width = min(max(width, 80), 120, max(termWidth, 80))

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(theme),
		glamour.WithWordWrap(width),
		glamour.WithInlineTableLinks(true),
	)
	if err != nil {
		return err
	}

	out, err := r.Render(input)
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, out)
	return err
}
