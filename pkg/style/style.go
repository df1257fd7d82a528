// Package style 提供多种样式化输出功能
package style

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// 定义一套颜色，方便管理和修改
const (
	// 主题强调色/品牌色，用于吸引注意力的元素，如表头背景
	ColorAccentPrimary = lipgloss.Color("#33A1FF")

	// 强调文本色，用于在强调背景(AccentPrimary)上显示的文本，以确保对比度
	ColorAccentText = lipgloss.Color("#FFFFFF")

	// 主要文本颜色，用于普通的数据行内容
	ColorText = lipgloss.Color("#E4E4E4")

	// 次要文本颜色，用于说明文字与计数
	ColorMuted = lipgloss.Color("#9CA3AF")

	// 边框颜色，用于表格或容器的轮廓
	ColorBorder = lipgloss.Color("#444444")

	// 成功/通过 绿色，用于架构说明等正向提示
	ColorSuccess = lipgloss.Color("#22C55E")
)

// noColor 为 true 时所有渲染器都退化为无颜色输出
var noColor bool

// SetNoColor 全局关闭（或重新打开）彩色输出
func SetNoColor(disable bool) {
	noColor = disable
}

// newRenderer 为 w 创建 lipgloss 渲染器，颜色能力按 w 是否为终端自动探测
func newRenderer(w io.Writer) *lipgloss.Renderer {
	re := lipgloss.NewRenderer(w)
	if noColor {
		re.SetColorProfile(termenv.Ascii)
	}
	return re
}
