package project

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/yeisme/projscope/pkg/analyzer"
	"github.com/yeisme/projscope/pkg/configs"
	"github.com/yeisme/projscope/pkg/style"
)

// 目录条目的种类
const (
	KindConfig     = "config"
	KindEntryPoint = "entry-point"
)

// CatalogEntry 分析器识别的一个已知文件名
type CatalogEntry struct {
	Kind        string `json:"kind" yaml:"kind" toml:"kind"`
	Name        string `json:"name" yaml:"name" toml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
}

// CatalogOptions catalog 命令的选项
type CatalogOptions struct {
	Query       string
	EntryPoints bool // 同时列出入口文件名
	Interactive bool // 使用 fuzzyfinder 交互选择一项
	Format      configs.OutputFormat
}

// Catalog 返回配置文件表（按名称排序），withEntryPoints 为 true 时追加入口文件候选
func Catalog(withEntryPoints bool) []CatalogEntry {
	var out []CatalogEntry
	for _, name := range analyzer.ConfigNames() {
		out = append(out, CatalogEntry{Kind: KindConfig, Name: name, Description: analyzer.ConfigDescriptions[name]})
	}
	if withEntryPoints {
		for _, name := range analyzer.EntryPointNames {
			out = append(out, CatalogEntry{Kind: KindEntryPoint, Name: name})
		}
	}
	return out
}

// FilterCatalog 按名称与说明做模糊匹配（忽略大小写），空查询返回全部
// 结果按匹配距离升序，距离相同时保持原顺序
func FilterCatalog(entries []CatalogEntry, query string) []CatalogEntry {
	q := strings.TrimSpace(query)
	if q == "" {
		return entries
	}
	type ranked struct {
		entry CatalogEntry
		dist  int
	}
	var hits []ranked
	for _, e := range entries {
		best := -1
		for _, target := range []string{e.Name, e.Description} {
			if target == "" {
				continue
			}
			if d := fuzzy.RankMatchFold(q, target); d >= 0 && (best < 0 || d < best) {
				best = d
			}
		}
		if best >= 0 {
			hits = append(hits, ranked{e, best})
		}
	}
	slices.SortStableFunc(hits, func(a, b ranked) int { return a.dist - b.dist })

	out := make([]CatalogEntry, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.entry)
	}
	return out
}

// ExecuteCatalogCommand 输出（或交互选择）分析器认识的文件名
func ExecuteCatalogCommand(opts CatalogOptions, w io.Writer) error {
	entries := FilterCatalog(Catalog(opts.EntryPoints), opts.Query)
	if len(entries) == 0 {
		log.Warn().Str("query", opts.Query).Msg("no catalog entry matched")
		return nil
	}

	if opts.Interactive {
		sel, err := interactiveSelect(entries)
		if err != nil {
			return err
		}
		entries = []CatalogEntry{*sel}
	}

	switch opts.Format {
	case configs.FormatText, "":
		for _, e := range entries {
			if _, err := fmt.Fprintln(w, catalogLine(e)); err != nil {
				return err
			}
		}
		return nil
	case configs.FormatPretty, configs.FormatMarkdown:
		rows := make([][]string, 0, len(entries))
		for _, e := range entries {
			rows = append(rows, []string{e.Name, e.Kind, e.Description})
		}
		return style.PrintTable(w, []string{"file", "kind", "description"}, rows, 0)
	default:
		return configs.OutputData(entries, opts.Format, w)
	}
}

func catalogLine(e CatalogEntry) string {
	if e.Description == "" {
		return fmt.Sprintf("%s [%s]", e.Name, e.Kind)
	}
	return fmt.Sprintf("%s [%s]: %s", e.Name, e.Kind, e.Description)
}

// interactiveSelect 使用 fuzzyfinder 在多个候选中交互选择一项
func interactiveSelect(entries []CatalogEntry) (*CatalogEntry, error) {
	idx, err := fuzzyfinder.Find(entries,
		func(i int) string { return entries[i].Name },
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i < 0 {
				return ""
			}
			return catalogLine(entries[i])
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil, fmt.Errorf("selection aborted")
		}
		return nil, err
	}
	sel := entries[idx]
	return &sel, nil
}
