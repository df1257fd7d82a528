package analyzer

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"golang.org/x/mod/modfile"

	"github.com/yeisme/projscope/pkg/models"
)

// 依赖列表的长度上限
const (
	SplitDepsLimit = 10 // 区分生产/开发依赖的列表，每类上限
	FlatDepsLimit  = 15 // 扁平列表上限
)

// depsReader 从根目录下的单个清单文件读取依赖
// 返回错误时该包管理器的条目整体省略，不产生部分结果
type depsReader struct {
	manager  string
	manifest string
	read     func(data []byte) (models.DependencyList, error)
}

// depsReaders 相互独立，按 models.ManagerOrder 的顺序执行
var depsReaders = []depsReader{
	{"npm", "package.json", readNpmDeps},
	{"pip", "requirements.txt", readPipDeps},
	{"go", "go.mod", readGoDeps},
	{"cargo", "Cargo.toml", readCargoDeps},
	{"pyproject", "pyproject.toml", readPyprojectDeps},
	{"composer", "composer.json", readComposerDeps},
	{"gem", "Gemfile", readGemDeps},
}

// extractDependencies 依次读取已知的清单文件
// 清单不存在不是错误；读取或解析失败只记录调试日志
func (a *analysis) extractDependencies() models.Dependencies {
	deps := models.Dependencies{}
	for _, r := range depsReaders {
		data, err := os.ReadFile(a.rootPath(r.manifest))
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				a.log.Debug().Err(err).Str("manifest", r.manifest).Msg("skip unreadable manifest")
			}
			continue
		}
		list, err := r.read(data)
		if err != nil {
			a.log.Debug().Err(err).Str("manifest", r.manifest).Msg("skip malformed manifest")
			continue
		}
		deps[r.manager] = list
	}
	return deps
}

// packageManifest 是 package.json 中与依赖相关的部分，依赖对象保持声明顺序
type packageManifest struct {
	Dependencies    *orderedmap.OrderedMap[string, json.RawMessage]
	DevDependencies *orderedmap.OrderedMap[string, json.RawMessage]
}

// parsePackageJSON 解析 package.json
// 顶层必须是对象；dependencies/devDependencies 可以缺省，但出现时必须是对象（null 也算格式错误）
// 键名大小写敏感，不接受 "Dependencies" 之类的写法
func parsePackageJSON(data []byte) (*packageManifest, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, err
	}
	if top == nil {
		return nil, errNotObject
	}

	var pkg packageManifest
	for _, f := range []struct {
		key string
		dst **orderedmap.OrderedMap[string, json.RawMessage]
	}{
		{"dependencies", &pkg.Dependencies},
		{"devDependencies", &pkg.DevDependencies},
	} {
		key, dst := f.key, f.dst
		raw, ok := top[key]
		if !ok {
			continue
		}
		if trimmed := bytes.TrimSpace(raw); len(trimmed) == 0 || trimmed[0] != '{' {
			return nil, fmt.Errorf("%s: %w", key, errNotObject)
		}
		m := orderedmap.New[string, json.RawMessage]()
		if err := json.Unmarshal(raw, m); err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		*dst = m
	}
	return &pkg, nil
}

// errNotObject 清单中本应是 JSON 对象的位置出现了其他值
var errNotObject = errors.New("expected a JSON object")

func readPackageJSON(path string) (*packageManifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parsePackageJSON(data)
}

// allNames 合并生产与开发依赖的名称
func (p *packageManifest) allNames() map[string]bool {
	names := map[string]bool{}
	for _, n := range orderedKeys(p.Dependencies, -1) {
		names[n] = true
	}
	for _, n := range orderedKeys(p.DevDependencies, -1) {
		names[n] = true
	}
	return names
}

// orderedKeys 按插入顺序返回最多 limit 个键，limit < 0 表示不限制
func orderedKeys(m *orderedmap.OrderedMap[string, json.RawMessage], limit int) []string {
	keys := []string{}
	if m == nil {
		return keys
	}
	for pair := m.Oldest(); pair != nil; pair = pair.Next() {
		if limit >= 0 && len(keys) >= limit {
			break
		}
		keys = append(keys, pair.Key)
	}
	return keys
}

func readNpmDeps(data []byte) (models.DependencyList, error) {
	pkg, err := parsePackageJSON(data)
	if err != nil {
		return models.DependencyList{}, err
	}
	return models.DependencyList{
		Production:  orderedKeys(pkg.Dependencies, SplitDepsLimit),
		Development: orderedKeys(pkg.DevDependencies, SplitDepsLimit),
		Split:       true,
	}, nil
}

// readPipDeps 逐行读取 requirements.txt
// 跳过空行、注释行以及 pip 选项行（-r、-e、--index-url 等），
// 截掉 `==` 与 `>=` 之后的版本约束
func readPipDeps(data []byte) (models.DependencyList, error) {
	names := []string{}
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() && len(names) < FlatDepsLimit {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "-") {
			continue
		}
		name, _, _ := strings.Cut(line, "==")
		name, _, _ = strings.Cut(name, ">=")
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	if err := sc.Err(); err != nil {
		return models.DependencyList{}, err
	}
	return models.DependencyList{Production: names}, nil
}

// readGoDeps 只取直接依赖（不带 // indirect 注释的 require）
func readGoDeps(data []byte) (models.DependencyList, error) {
	f, err := modfile.ParseLax("go.mod", data, nil)
	if err != nil {
		return models.DependencyList{}, err
	}
	names := []string{}
	for _, r := range f.Require {
		if r.Indirect {
			continue
		}
		if len(names) >= FlatDepsLimit {
			break
		}
		names = append(names, r.Mod.Path)
	}
	return models.DependencyList{Production: names}, nil
}

type cargoManifest struct {
	Dependencies    map[string]any `toml:"dependencies"`
	DevDependencies map[string]any `toml:"dev-dependencies"`
}

// readCargoDeps TOML 表解码后不再保留声明顺序，因此按名称排序
func readCargoDeps(data []byte) (models.DependencyList, error) {
	var m cargoManifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return models.DependencyList{}, err
	}
	return models.DependencyList{
		Production:  sortedKeys(m.Dependencies, SplitDepsLimit),
		Development: sortedKeys(m.DevDependencies, SplitDepsLimit),
		Split:       true,
	}, nil
}

// sortedKeys 按字典序返回最多 limit 个键，同时排除 skip 中的名称
func sortedKeys(m map[string]any, limit int, skip ...string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		if !slices.Contains(skip, k) {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	if len(keys) > limit {
		keys = keys[:limit]
	}
	return keys
}

type pyprojectManifest struct {
	Project struct {
		Dependencies []string `toml:"dependencies"`
	} `toml:"project"`
	Tool struct {
		Poetry struct {
			Dependencies map[string]any `toml:"dependencies"`
		} `toml:"poetry"`
	} `toml:"tool"`
}

// requirementName 匹配 PEP 508 依赖声明开头的包名
var requirementName = regexp.MustCompile(`^\s*([A-Za-z0-9][A-Za-z0-9._-]*)`)

// readPyprojectDeps 优先读取 PEP 621 的 [project].dependencies，
// 没有时回退到 [tool.poetry.dependencies]（排除 python 本身）
func readPyprojectDeps(data []byte) (models.DependencyList, error) {
	var m pyprojectManifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return models.DependencyList{}, err
	}
	if len(m.Project.Dependencies) == 0 {
		return models.DependencyList{
			Production: sortedKeys(m.Tool.Poetry.Dependencies, FlatDepsLimit, "python"),
		}, nil
	}
	names := []string{}
	for _, req := range m.Project.Dependencies {
		if len(names) >= FlatDepsLimit {
			break
		}
		if sub := requirementName.FindStringSubmatch(req); sub != nil {
			names = append(names, sub[1])
		}
	}
	return models.DependencyList{Production: names}, nil
}

type composerManifest struct {
	Require    *orderedmap.OrderedMap[string, json.RawMessage] `json:"require"`
	RequireDev *orderedmap.OrderedMap[string, json.RawMessage] `json:"require-dev"`
}

// readComposerDeps 保持声明顺序，排除 php 版本约束与 ext-* 扩展
func readComposerDeps(data []byte) (models.DependencyList, error) {
	var m composerManifest
	if err := json.Unmarshal(data, &m); err != nil {
		return models.DependencyList{}, err
	}
	return models.DependencyList{
		Production:  composerPackages(m.Require),
		Development: composerPackages(m.RequireDev),
		Split:       true,
	}, nil
}

func composerPackages(m *orderedmap.OrderedMap[string, json.RawMessage]) []string {
	names := []string{}
	for _, k := range orderedKeys(m, -1) {
		if k == "php" || strings.HasPrefix(k, "ext-") {
			continue
		}
		if len(names) >= SplitDepsLimit {
			break
		}
		names = append(names, k)
	}
	return names
}

var gemLine = regexp.MustCompile(`^\s*gem\s+['"]([^'"]+)['"]`)

func readGemDeps(data []byte) (models.DependencyList, error) {
	names := []string{}
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() && len(names) < FlatDepsLimit {
		if sub := gemLine.FindStringSubmatch(sc.Text()); sub != nil {
			names = append(names, sub[1])
		}
	}
	if err := sc.Err(); err != nil {
		return models.DependencyList{}, err
	}
	return models.DependencyList{Production: names}, nil
}
