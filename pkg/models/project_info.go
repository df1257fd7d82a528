package models

import (
	"encoding/json"
	"slices"
)

// ProjectType 项目类型标签，取值来自一个封闭集合
type ProjectType string

// 所有可能的项目类型
const (
	ProjectReactNext   ProjectType = "React/Next.js Project"
	ProjectVue         ProjectType = "Vue.js Project"
	ProjectNodeExpress ProjectType = "Node.js/Express Project"
	ProjectNode        ProjectType = "Node.js Project"
	ProjectJavaScript  ProjectType = "JavaScript Project"
	ProjectTypeScript  ProjectType = "TypeScript Project"
	ProjectRust        ProjectType = "Rust Project"
	ProjectGo          ProjectType = "Go Project"
	ProjectJava        ProjectType = "Java Project"
	ProjectPython      ProjectType = "Python Project"
	ProjectRuby        ProjectType = "Ruby Project"
	ProjectCSharp      ProjectType = "C# Project"
	ProjectPHP         ProjectType = "PHP Project"
	ProjectUnknown     ProjectType = "Unknown Project Type"
)

// ProjectTypes 返回全部项目类型，顺序固定
func ProjectTypes() []ProjectType {
	return []ProjectType{
		ProjectReactNext, ProjectVue, ProjectNodeExpress, ProjectNode, ProjectJavaScript,
		ProjectTypeScript, ProjectRust, ProjectGo, ProjectJava, ProjectPython,
		ProjectRuby, ProjectCSharp, ProjectPHP, ProjectUnknown,
	}
}

// Classification 分类结果：类型以及触发该结果的信号
type Classification struct {
	Type   ProjectType `json:"type" yaml:"type" toml:"type"`
	Signal string      `json:"signal" yaml:"signal" toml:"signal"` // 例如 manifest:package.json, extension:.py
}

// ExtensionHistogram 扩展名（小写，含点；无扩展名为空串）到文件数量的映射
type ExtensionHistogram map[string]int

// Total 返回所有扩展名的文件总数
func (h ExtensionHistogram) Total() int {
	n := 0
	for _, c := range h {
		n += c
	}
	return n
}

// ExtensionCount 单个扩展名的计数
type ExtensionCount struct {
	Ext   string `json:"ext" yaml:"ext" toml:"ext"`
	Count int    `json:"count" yaml:"count" toml:"count"`
}

// Sorted 按数量降序、扩展名升序返回所有计数
func (h ExtensionHistogram) Sorted() []ExtensionCount {
	out := make([]ExtensionCount, 0, len(h))
	for ext, n := range h {
		out = append(out, ExtensionCount{Ext: ext, Count: n})
	}
	slices.SortFunc(out, func(a, b ExtensionCount) int {
		if a.Count != b.Count {
			return b.Count - a.Count
		}
		switch {
		case a.Ext < b.Ext:
			return -1
		case a.Ext > b.Ext:
			return 1
		}
		return 0
	})
	return out
}

// ConfigCatalog 配置文件相对路径到说明文字的映射
type ConfigCatalog map[string]string

// Paths 返回按字典序排列的路径
func (c ConfigCatalog) Paths() []string {
	paths := make([]string, 0, len(c))
	for p := range c {
		paths = append(paths, p)
	}
	slices.Sort(paths)
	return paths
}

// DependencyList 单个包管理器的依赖列表
// Split 为 true 时区分生产依赖与开发依赖（如 npm），否则只有 Production 一个扁平列表（如 pip）
type DependencyList struct {
	Production  []string `json:"dependencies" yaml:"dependencies" toml:"dependencies"`
	Development []string `json:"devDependencies,omitempty" yaml:"devDependencies,omitempty" toml:"devDependencies,omitempty"`
	Split       bool     `json:"-" yaml:"-" toml:"-"`
}

// splitDependencies 拆分列表的编码结构，两个键总是存在
type splitDependencies struct {
	Dependencies    []string `json:"dependencies" yaml:"dependencies" toml:"dependencies"`
	DevDependencies []string `json:"devDependencies" yaml:"devDependencies" toml:"devDependencies"`
}

// encoded 扁平列表编码为数组，拆分列表编码为 splitDependencies
func (d DependencyList) encoded() any {
	if !d.Split {
		return nonNil(d.Production)
	}
	return splitDependencies{nonNil(d.Production), nonNil(d.Development)}
}

// MarshalJSON 扁平列表直接编码为数组，拆分列表编码为对象
func (d DependencyList) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.encoded())
}

// MarshalYAML 与 MarshalJSON 保持相同的结构
func (d DependencyList) MarshalYAML() (any, error) {
	return d.encoded(), nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// Dependencies 包管理器名称（npm、pip ...）到依赖列表的映射
type Dependencies map[string]DependencyList

// ManagerOrder 报告中包管理器的固定展示顺序
var ManagerOrder = []string{"npm", "pip", "go", "cargo", "pyproject", "composer", "gem"}

// Managers 按 ManagerOrder 返回存在的包管理器，未登记的名称按字典序排在最后
func (d Dependencies) Managers() []string {
	out := make([]string, 0, len(d))
	for _, m := range ManagerOrder {
		if _, ok := d[m]; ok {
			out = append(out, m)
		}
	}
	var rest []string
	for m := range d {
		if !slices.Contains(ManagerOrder, m) {
			rest = append(rest, m)
		}
	}
	slices.Sort(rest)
	return append(out, rest...)
}

// Report 是一次分析的完整结果，组装后不再修改，也不会被持久化
type Report struct {
	// Name 项目根目录名称
	Name string `json:"name" yaml:"name" toml:"name"`
	// Root 项目根目录绝对路径
	Root string `json:"root" yaml:"root" toml:"root"`

	ProjectType    ProjectType    `json:"project_type" yaml:"project_type" toml:"project_type"`
	Classification Classification `json:"classification" yaml:"classification" toml:"classification"`

	Languages         ExtensionHistogram `json:"languages" yaml:"languages" toml:"languages"`
	Structure         []string           `json:"structure" yaml:"structure" toml:"structure"`
	EntryPoints       []string           `json:"entry_points" yaml:"entry_points" toml:"entry_points"`
	ConfigFiles       ConfigCatalog      `json:"config_files" yaml:"config_files" toml:"config_files"`
	Dependencies      Dependencies       `json:"dependencies" yaml:"dependencies" toml:"dependencies"`
	ArchitectureNotes []string           `json:"architecture_notes" yaml:"architecture_notes" toml:"architecture_notes"`
}

// tomlReport 与 Report 字段一一对应，只是依赖列表换成已经整形的值
// go-toml 不识别自定义编码方法，这里预先整形以保持与 JSON/YAML 相同的结构
type tomlReport struct {
	Name              string             `toml:"name"`
	Root              string             `toml:"root"`
	ProjectType       ProjectType        `toml:"project_type"`
	Classification    Classification     `toml:"classification"`
	Languages         ExtensionHistogram `toml:"languages"`
	Structure         []string           `toml:"structure"`
	EntryPoints       []string           `toml:"entry_points"`
	ConfigFiles       ConfigCatalog      `toml:"config_files"`
	Dependencies      map[string]any     `toml:"dependencies"`
	ArchitectureNotes []string           `toml:"architecture_notes"`
}

// TOMLDocument 返回用于 TOML 编码的报告视图
func (r *Report) TOMLDocument() any {
	deps := make(map[string]any, len(r.Dependencies))
	for m, d := range r.Dependencies {
		deps[m] = d.encoded()
	}
	return tomlReport{
		Name:              r.Name,
		Root:              r.Root,
		ProjectType:       r.ProjectType,
		Classification:    r.Classification,
		Languages:         r.Languages,
		Structure:         nonNil(r.Structure),
		EntryPoints:       nonNil(r.EntryPoints),
		ConfigFiles:       r.ConfigFiles,
		Dependencies:      deps,
		ArchitectureNotes: nonNil(r.ArchitectureNotes),
	}
}
