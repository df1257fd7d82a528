package analyzer

import (
	"strings"

	"github.com/yeisme/projscope/pkg/models"
	"github.com/yeisme/projscope/pkg/utils/walk"
)

// collectStats 在 MaxDepth 范围内统计文件扩展名
// 隐藏条目（.env/.env.example 除外）与忽略目录都不计入
func (a *analysis) collectStats() models.ExtensionHistogram {
	hist := models.ExtensionHistogram{}
	w := &walk.Walker{
		MaxDepth: a.opts.MaxDepth,
		Skip: func(e walk.Entry) bool {
			return hidden(e.Name) || a.excluded(e)
		},
		Prune: ignoredDir,
		Visit: func(e walk.Entry) error {
			if !e.IsDir {
				hist[extOf(e.Name)]++
			}
			return nil
		},
		OnError: a.onWalkError,
	}
	_ = w.Walk(a.root)
	return hist
}

// extOf 返回小写扩展名（含点）
// 名称开头的点不算扩展名（.env -> ""，.env.example -> ".example"），以点结尾的名称也没有扩展名
func extOf(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 || i == len(name)-1 {
		return ""
	}
	return strings.ToLower(name[i:])
}
