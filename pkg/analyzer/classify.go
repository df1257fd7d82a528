package analyzer

import (
	"strings"

	"github.com/yeisme/projscope/pkg/models"
	"github.com/yeisme/projscope/pkg/utils/walk"
)

// rootFiles 根目录下的普通文件名集合（符号链接按目标判断）
type rootFiles map[string]bool

// first 返回 names 中第一个存在的名称
func (f rootFiles) first(names ...string) (string, bool) {
	for _, n := range names {
		if f[n] {
			return n, true
		}
	}
	return "", false
}

// classifyRule 是分类规则表中的一项，返回 ok=false 时继续尝试下一条
type classifyRule func(a *analysis, files rootFiles) (c models.Classification, ok bool)

// marker 生成“根目录存在任一标记文件即命中”的规则
func marker(t models.ProjectType, names ...string) classifyRule {
	return func(_ *analysis, files rootFiles) (models.Classification, bool) {
		name, ok := files.first(names...)
		return models.Classification{Type: t, Signal: "manifest:" + name}, ok
	}
}

// suffixMarker 根目录存在以 suffix 结尾的文件即命中
func suffixMarker(t models.ProjectType, suffix string) classifyRule {
	return func(_ *analysis, files rootFiles) (models.Classification, bool) {
		for name := range files {
			if strings.HasSuffix(name, suffix) {
				return models.Classification{Type: t, Signal: "manifest:*" + suffix}, true
			}
		}
		return models.Classification{}, false
	}
}

// classifyRules 按优先级排列，第一条命中的规则决定项目类型
var classifyRules = []classifyRule{
	(*analysis).classifyNode,
	marker(models.ProjectRust, "Cargo.toml"),
	marker(models.ProjectGo, "go.mod"),
	marker(models.ProjectJava, "pom.xml", "build.gradle"),
	marker(models.ProjectPython, "requirements.txt", "pyproject.toml", "setup.py"),
	marker(models.ProjectRuby, "Gemfile"),
	suffixMarker(models.ProjectCSharp, ".csproj"),
}

// extensionTypes 扩展名多数兜底时使用的映射表
var extensionTypes = map[string]models.ProjectType{
	".py":   models.ProjectPython,
	".js":   models.ProjectJavaScript,
	".ts":   models.ProjectTypeScript,
	".java": models.ProjectJava,
	".go":   models.ProjectGo,
	".rs":   models.ProjectRust,
	".rb":   models.ProjectRuby,
	".php":  models.ProjectPHP,
}

// classify 依次应用规则表，全部未命中时按数量最多的扩展名兜底
func (a *analysis) classify(hist models.ExtensionHistogram) models.Classification {
	files := a.listRootFiles()
	for _, rule := range classifyRules {
		if c, ok := rule(a, files); ok {
			return c
		}
	}
	return classifyByExtension(hist)
}

// classifyByExtension 取数量最多的扩展名；数量相同时字典序最小者胜出
func classifyByExtension(hist models.ExtensionHistogram) models.Classification {
	sorted := hist.Sorted()
	if len(sorted) == 0 {
		return models.Classification{Type: models.ProjectUnknown, Signal: "none"}
	}
	top := sorted[0].Ext
	t, ok := extensionTypes[top]
	if !ok {
		t = models.ProjectUnknown
	}
	return models.Classification{Type: t, Signal: "extension:" + top}
}

// classifyNode 根据 package.json 中合并后的依赖判断前端/后端框架
// 解析失败时退化为 JavaScript 项目
func (a *analysis) classifyNode(files rootFiles) (models.Classification, bool) {
	if !files["package.json"] {
		return models.Classification{}, false
	}
	c := models.Classification{Type: models.ProjectNode, Signal: "manifest:package.json"}
	pkg, err := readPackageJSON(a.rootPath("package.json"))
	if err != nil {
		a.log.Debug().Err(err).Msg("package.json is not valid, classify as plain javascript")
		c.Type = models.ProjectJavaScript
		return c, true
	}
	deps := pkg.allNames()
	switch {
	case deps["react"] || deps["next"]:
		c.Type = models.ProjectReactNext
	case deps["vue"]:
		c.Type = models.ProjectVue
	case deps["express"]:
		c.Type = models.ProjectNodeExpress
	}
	return c, true
}

// listRootFiles 枚举根目录下的文件
func (a *analysis) listRootFiles() rootFiles {
	files := rootFiles{}
	w := &walk.Walker{
		Visit: func(e walk.Entry) error {
			if !e.IsDir {
				files[e.Name] = true
			}
			return nil
		},
		OnError: a.onWalkError,
	}
	_ = w.Walk(a.root)
	return files
}
