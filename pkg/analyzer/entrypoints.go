package analyzer

import (
	"github.com/yeisme/projscope/pkg/utils/walk"
)

// EntryPointNames 各生态中约定俗成的入口文件名，按文件名精确匹配
var EntryPointNames = []string{
	"main.py", "app.py", "server.py", "run.py", "__init__.py",
	"index.js", "index.ts", "server.js", "app.js", "main.js",
	"main.go", "main.rs", "Main.java", "Program.cs",
	"index.html", "index.php",
}

var entryPointSet = func() map[string]bool {
	m := make(map[string]bool, len(EntryPointNames))
	for _, n := range EntryPointNames {
		m[n] = true
	}
	return m
}()

// findEntryPoints 遍历整棵目录树（仅剪掉忽略目录），按遍历顺序收集入口文件的相对路径
// 每个目录自身的文件先于其子目录中的文件；不同目录下的同名文件全部保留
func (a *analysis) findEntryPoints() []string {
	entries := []string{}
	w := &walk.Walker{
		MaxDepth:      -1,
		SiblingsFirst: true,
		Skip:          a.excluded,
		Prune:         ignoredDir,
		Visit: func(e walk.Entry) error {
			if !e.IsDir && entryPointSet[e.Name] {
				entries = append(entries, e.Rel)
			}
			return nil
		},
		OnError: a.onWalkError,
	}
	_ = w.Walk(a.root)
	return entries
}
