// Package analyzer 实现项目结构分析：统计文件扩展名、识别项目类型、定位入口文件、
// 收集配置文件与依赖，并渲染有界的目录树，最终组装为一份 models.Report
//
// 分析过程是单线程、顺序执行的；除 Report 本身外不存在跨组件共享的可变状态
package analyzer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"

	"github.com/yeisme/projscope/pkg/models"
	"github.com/yeisme/projscope/pkg/utils/walk"
)

var (
	// ErrInvalidRoot 根路径不存在、不可访问或不是目录
	ErrInvalidRoot = errors.New("invalid project root")
	// ErrInvalidOptions 分析选项不合法（例如排除模式语法错误）
	ErrInvalidOptions = errors.New("invalid analyze options")
)

// 默认遍历边界
const (
	DefaultMaxDepth    = 5
	DefaultTreeDepth   = 3
	DefaultTreeEntries = 20
)

// IgnoreDirs 任何遍历都不会进入的目录名称
var IgnoreDirs = map[string]bool{
	".git":          true,
	"node_modules":  true,
	"__pycache__":   true,
	".venv":         true,
	"venv":          true,
	"dist":          true,
	"build":         true,
	".next":         true,
	"coverage":      true,
	".pytest_cache": true,
	"vendor":        true,
	"target":        true,
	"bin":           true,
	"obj":           true,
}

// hiddenAllowList 以 `.` 开头但仍参与统计的文件名
var hiddenAllowList = map[string]bool{
	".env":         true,
	".env.example": true,
}

// Options 控制一次分析的遍历边界
// 零值字段会被替换为默认值
type Options struct {
	// MaxDepth 扩展名统计遍历的最大目录深度
	MaxDepth int `mapstructure:"max_depth" json:"max_depth" yaml:"max_depth" toml:"max_depth" jsonschema:"title=MaxDepth,description=Maximum directory depth of the statistics walk,default=5"`
	// TreeDepth 目录树最多展示的层级
	TreeDepth int `mapstructure:"tree_depth" json:"tree_depth" yaml:"tree_depth" toml:"tree_depth" jsonschema:"title=TreeDepth,description=Levels shown in the directory tree,default=3"`
	// TreeEntries 目录树中每个目录最多展示的条目数
	TreeEntries int `mapstructure:"tree_entries" json:"tree_entries" yaml:"tree_entries" toml:"tree_entries" jsonschema:"title=TreeEntries,description=Entries shown per directory in the tree,default=20"`
	// Exclude 额外排除的 glob 模式（支持 **），匹配相对路径或文件名
	Exclude []string `mapstructure:"exclude" json:"exclude" yaml:"exclude" toml:"exclude" jsonschema:"title=Exclude,description=Extra glob patterns excluded from every walk"`
}

// DefaultOptions 返回默认选项
func DefaultOptions() Options {
	return Options{
		MaxDepth:    DefaultMaxDepth,
		TreeDepth:   DefaultTreeDepth,
		TreeEntries: DefaultTreeEntries,
	}
}

// normalize 填充默认值并校验排除模式
func (o Options) normalize() (Options, error) {
	if o.MaxDepth <= 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	if o.TreeDepth <= 0 {
		o.TreeDepth = DefaultTreeDepth
	}
	if o.TreeEntries <= 0 {
		o.TreeEntries = DefaultTreeEntries
	}
	patterns := make([]string, 0, len(o.Exclude))
	for _, p := range o.Exclude {
		p = strings.TrimPrefix(filepath.ToSlash(strings.TrimSpace(p)), "./")
		if p == "" {
			continue
		}
		if !doublestar.ValidatePattern(p) {
			return o, fmt.Errorf("%w: bad exclude pattern %q", ErrInvalidOptions, p)
		}
		patterns = append(patterns, p)
	}
	o.Exclude = patterns
	return o, nil
}

// ResolveRoot 将路径转换为绝对路径，并确认其存在且为目录
func ResolveRoot(root string) (string, error) {
	if strings.TrimSpace(root) == "" {
		return "", fmt.Errorf("%w: empty path", ErrInvalidRoot)
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrInvalidRoot, root, err)
	}
	st, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidRoot, err)
	}
	if !st.IsDir() {
		return "", fmt.Errorf("%w: %s is not a directory", ErrInvalidRoot, abs)
	}
	if _, err := os.ReadDir(abs); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidRoot, err)
	}
	return abs, nil
}

// analysis 保存一次分析运行所需的只读参数
type analysis struct {
	root string
	opts Options
	log  *zerolog.Logger
}

// Analyze 对 root 执行完整分析并返回报告
// ctx 仅用于携带日志记录器（见 zerolog.Ctx），分析过程本身不可取消
// 只有根路径或选项不合法时才会返回错误，其余文件系统问题都会降级为部分结果
func Analyze(ctx context.Context, root string, opts Options) (*models.Report, error) {
	abs, err := ResolveRoot(root)
	if err != nil {
		return nil, err
	}
	opts, err = opts.normalize()
	if err != nil {
		return nil, err
	}

	a := &analysis{root: abs, opts: opts, log: zerolog.Ctx(ctx)}
	a.log.Debug().Str("root", abs).Int("max_depth", opts.MaxDepth).Msg("analyze project")

	hist := a.collectStats()
	class := a.classify(hist)
	entries := a.findEntryPoints()
	configs := a.catalogConfigs()
	deps := a.extractDependencies()
	tree := a.renderTree()
	notes := a.architectureNotes()

	a.log.Debug().
		Str("type", string(class.Type)).
		Int("files", hist.Total()).
		Int("entry_points", len(entries)).
		Int("config_files", len(configs)).
		Msg("analysis finished")

	return &models.Report{
		Name:              filepath.Base(abs),
		Root:              abs,
		ProjectType:       class.Type,
		Classification:    class,
		Languages:         hist,
		Structure:         tree,
		EntryPoints:       entries,
		ConfigFiles:       configs,
		Dependencies:      deps,
		ArchitectureNotes: notes,
	}, nil
}

// excluded 判断条目是否命中用户的排除模式
func (a *analysis) excluded(e walk.Entry) bool {
	for _, p := range a.opts.Exclude {
		if ok, _ := doublestar.Match(p, e.Rel); ok {
			return true
		}
		if !strings.Contains(p, "/") {
			if ok, _ := doublestar.Match(p, e.Name); ok {
				return true
			}
		}
	}
	return false
}

// ignoredDir 判断目录是否在忽略集合中
func ignoredDir(e walk.Entry) bool {
	return e.IsDir && IgnoreDirs[e.Name]
}

// hidden 判断条目是否为隐藏条目（允许名单中的环境文件除外）
func hidden(name string) bool {
	return strings.HasPrefix(name, ".") && !hiddenAllowList[name]
}

// onWalkError 记录无法枚举的目录，遍历随后跳过该子树
func (a *analysis) onWalkError(path string, err error) {
	a.log.Debug().Err(err).Str("dir", path).Msg("skip unreadable directory")
}

// rootPath 拼接 root 下的相对路径
func (a *analysis) rootPath(elem ...string) string {
	return filepath.Join(append([]string{a.root}, elem...)...)
}
