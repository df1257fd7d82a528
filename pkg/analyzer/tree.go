package analyzer

import (
	"path/filepath"
	"strings"

	"github.com/yeisme/projscope/pkg/utils/walk"
)

// 树形连接符
const (
	branchMid  = "├── "
	branchLast = "└── "
	indentMid  = "│   "
	indentLast = "    "
)

// renderTree 绘制有界的目录树：根行为 `<name>/`，最多 TreeDepth 层，每个目录最多 TreeEntries 项
// 目录排在文件之前，同类按名称排序；隐藏条目和忽略集合中的名称都不展示
// 连接符按截断前的兄弟数量决定：被截断的目录中不会出现 └──
func (a *analysis) renderTree() []string {
	lines := []string{rootLabel(a.root)}

	// last[d] 记录深度 d 上当前祖先是否为其目录中的最后一项
	var last []bool
	w := &walk.Walker{
		MaxDepth: a.opts.TreeDepth - 1,
		Skip: func(e walk.Entry) bool {
			return strings.HasPrefix(e.Name, ".") || IgnoreDirs[e.Name] || a.excluded(e)
		},
		Sort:  walk.DirsFirst,
		Limit: a.opts.TreeEntries,
		Visit: func(e walk.Entry) error {
			last = last[:e.Depth]
			var b strings.Builder
			for _, l := range last {
				if l {
					b.WriteString(indentLast)
				} else {
					b.WriteString(indentMid)
				}
			}
			if e.Last() {
				b.WriteString(branchLast)
			} else {
				b.WriteString(branchMid)
			}
			b.WriteString(e.Name)
			if e.IsDir {
				b.WriteString("/")
			}
			lines = append(lines, b.String())
			last = append(last, e.Last())
			return nil
		},
		OnError: a.onWalkError,
	}
	_ = w.Walk(a.root)
	return lines
}

// rootLabel 返回树的根行
func rootLabel(root string) string {
	name := filepath.Base(root)
	if strings.HasSuffix(name, string(filepath.Separator)) {
		return name
	}
	return name + "/"
}
