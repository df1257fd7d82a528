package style

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// KeyValue 一行 “名称 + 说明” 形式的条目
type KeyValue struct {
	Key   string
	Value string
}

// PrintHeading 打印一个区块标题
func PrintHeading(w io.Writer, title string) error {
	style := newRenderer(w).NewStyle().
		Foreground(ColorAccentText).
		Background(ColorAccentPrimary).
		Bold(true).
		Padding(0, 1)
	_, err := fmt.Fprintln(w, style.Render(strings.ToUpper(title)))
	return err
}

// PrintKeyValues 以对齐的方式打印键值列表
// 对齐按显示宽度计算，中文等宽字符也能对齐；键过长时截断到 maxKey 列
func PrintKeyValues(w io.Writer, items []KeyValue, maxKey int) error {
	if len(items) == 0 {
		return nil
	}
	// 计算最大名称宽度用于对齐
	width := 0
	for _, it := range items {
		width = max(width, runewidth.StringWidth(it.Key))
	}
	if maxKey > 0 {
		width = min(width, maxKey)
	}

	re := newRenderer(w)
	keyStyle := re.NewStyle().Foreground(ColorAccentPrimary).Bold(true)
	valueStyle := re.NewStyle().Foreground(ColorText)

	for _, it := range items {
		key := Truncate(it.Key, width)
		padding := strings.Repeat(" ", width-runewidth.StringWidth(key))
		line := fmt.Sprintf("  %s%s  %s", keyStyle.Render(key), padding, valueStyle.Render(it.Value))
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// PrintNote 打印一行次要说明文字
func PrintNote(w io.Writer, text string) error {
	_, err := fmt.Fprintln(w, newRenderer(w).NewStyle().Foreground(ColorMuted).Italic(true).Render(text))
	return err
}

// Truncate 按显示宽度截断字符串，超出部分以 … 结尾
func Truncate(s string, width int) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}
