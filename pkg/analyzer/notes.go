package analyzer

import (
	"os"
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/yeisme/projscope/pkg/utils/walk"
)

// architectureConvention 约定目录名与对应的架构说明
type architectureConvention struct {
	dirs []string
	note string
}

var architectureConventions = []architectureConvention{
	{[]string{"components"}, "Frontend component-based architecture detected"},
	{[]string{"api", "routes"}, "API/routing layer present"},
	{[]string{"models"}, "Data models layer detected"},
	{[]string{"tests", "test"}, "Test suite present"},
	{[]string{"docs"}, "Documentation directory found"},
}

// architectureNotes 检查根目录或 src/ 下的约定目录，每种约定最多产生一条说明
// 被 Options.Exclude 排除的目录（或其父目录 src）不计入
func (a *analysis) architectureNotes() []string {
	notes := []string{}
	for _, c := range architectureConventions {
		if a.hasConventionDir(c.dirs) {
			notes = append(notes, c.note)
		}
	}
	return notes
}

func (a *analysis) hasConventionDir(names []string) bool {
	for _, n := range names {
		if a.conventionDir(n) || (!a.excludedDir("src") && a.conventionDir("src/"+n)) {
			return true
		}
	}
	return false
}

// conventionDir 报告 rel 是否为未被排除的目录
func (a *analysis) conventionDir(rel string) bool {
	return !a.excludedDir(rel) && isDir(a.rootPath(rel))
}

// excludedDir 按遍历时的规则判断目录 rel 是否被排除
// `docs/**` 这类只匹配目录内容的模式同样视为排除了目录本身
func (a *analysis) excludedDir(rel string) bool {
	if a.excluded(walk.Entry{Rel: rel, Name: path.Base(rel), IsDir: true}) {
		return true
	}
	for _, p := range a.opts.Exclude {
		if prefix, ok := strings.CutSuffix(p, "/**"); ok {
			if hit, _ := doublestar.Match(prefix, rel); hit {
				return true
			}
		}
	}
	return false
}
