package style

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss/tree"
)

// TreeNode 定义了用于构建树的数据结构
type TreeNode struct {
	Text     string
	Children []TreeNode
}

// Leaves 构造一个只有叶子节点的子树
func Leaves(text string, children ...string) TreeNode {
	n := TreeNode{Text: text}
	for _, c := range children {
		n.Children = append(n.Children, TreeNode{Text: c})
	}
	return n
}

// PrintTree 用于渲染一个带有主题样式的树形结构到指定的 writer
func PrintTree(w io.Writer, rootNode TreeNode) error {
	re := newRenderer(w)
	rootStyle := re.NewStyle().Foreground(ColorAccentPrimary).Bold(true)
	itemStyle := re.NewStyle().Foreground(ColorText)
	enumeratorStyle := re.NewStyle().Foreground(ColorBorder)

	// 将 TreeNode 递归转换为 lipgloss/tree；没有子节点的节点直接作为字符串叶子
	var build func(TreeNode) any
	build = func(node TreeNode) any {
		if len(node.Children) == 0 {
			return node.Text
		}
		t := tree.New().Root(node.Text)
		for _, child := range node.Children {
			t.Child(build(child))
		}
		return t
	}

	t := tree.New().Root(rootNode.Text)
	for _, child := range rootNode.Children {
		t.Child(build(child))
	}
	t = t.Enumerator(tree.RoundedEnumerator).
		RootStyle(rootStyle).
		ItemStyle(itemStyle).
		EnumeratorStyle(enumeratorStyle)

	_, err := fmt.Fprintln(w, t)
	return err
}
