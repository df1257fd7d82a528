package project

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/yeisme/projscope/pkg/analyzer"
	"github.com/yeisme/projscope/pkg/configs"
	gctx "github.com/yeisme/projscope/pkg/context"
	"github.com/yeisme/projscope/pkg/models"
	"github.com/yeisme/projscope/pkg/style"
)

// AnalyzeOptions analyze 命令的选项
type AnalyzeOptions struct {
	analyzer.Options

	// Format 输出格式
	Format configs.OutputFormat
}

// ResolveRoot 解析根路径参数，为空时默认为当前目录
func ResolveRoot(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return "."
}

// ExecuteAnalyzeCommand 分析 args 指定的目录并按 opts.Format 输出报告
// 根路径无效时返回包装了 analyzer.ErrInvalidRoot 的错误，且不输出任何报告内容
func ExecuteAnalyzeCommand(ctx *gctx.ProjscopeContext, opts AnalyzeOptions, args []string, w io.Writer) error {
	root := ResolveRoot(args)
	report, err := analyzer.Analyze(ctx, root, opts.Options)
	if err != nil {
		return err
	}
	zerolog.Ctx(ctx).Info().
		Str("root", report.Root).
		Str("type", string(report.ProjectType)).
		Msg("project analyzed")

	return RenderReport(w, report, opts.Format)
}

// RenderReport 按格式输出报告
func RenderReport(w io.Writer, r *models.Report, format configs.OutputFormat) error {
	switch format {
	case configs.FormatText, "":
		return analyzer.FormatText(w, r)
	case configs.FormatPretty:
		return renderPretty(w, r)
	case configs.FormatMarkdown:
		var buf bytes.Buffer
		if err := analyzer.FormatMarkdown(&buf, r); err != nil {
			return err
		}
		return style.RenderMarkdown(w, buf.String(), 0, "")
	case configs.FormatTOML:
		return configs.OutputData(r.TOMLDocument(), format, w)
	default:
		return configs.OutputData(r, format, w)
	}
}

// renderPretty 使用 lipgloss 组件输出报告，展示上限与纯文本摘要一致
func renderPretty(w io.Writer, r *models.Report) error {
	if err := style.PrintHeading(w, "project analysis: "+r.Name); err != nil {
		return err
	}
	if err := style.PrintKeyValues(w, []style.KeyValue{
		{Key: "Root", Value: r.Root},
		{Key: "Project Type", Value: string(r.ProjectType)},
		{Key: "Signal", Value: r.Classification.Signal},
		{Key: "Files", Value: strconv.Itoa(r.Languages.Total())},
	}, 0); err != nil {
		return err
	}

	sorted := r.Languages.Sorted()
	if len(sorted) > 0 {
		rows := make([][]string, 0, analyzer.TopExtensions)
		for _, ec := range headOf(sorted, analyzer.TopExtensions) {
			rows = append(rows, []string{analyzer.ExtensionLabel(ec.Ext), strconv.Itoa(ec.Count)})
		}
		if err := section(w, "file distribution"); err != nil {
			return err
		}
		if err := style.PrintTable(w, []string{"extension", "files"}, rows, 0, 1); err != nil {
			return err
		}
	}

	if err := section(w, fmt.Sprintf("entry points (%d)", len(r.EntryPoints))); err != nil {
		return err
	}
	if err := style.PrintList(w, headOf(r.EntryPoints, analyzer.ShownEntryPoints), len(r.EntryPoints)-analyzer.ShownEntryPoints); err != nil {
		return err
	}

	if err := section(w, fmt.Sprintf("configuration files (%d)", len(r.ConfigFiles))); err != nil {
		return err
	}
	paths := r.ConfigFiles.Paths()
	items := make([]style.KeyValue, 0, analyzer.ShownConfigFiles)
	for _, p := range headOf(paths, analyzer.ShownConfigFiles) {
		items = append(items, style.KeyValue{Key: p, Value: r.ConfigFiles[p]})
	}
	if err := style.PrintKeyValues(w, items, 40); err != nil {
		return err
	}

	if len(r.Dependencies) > 0 {
		if err := section(w, "key dependencies"); err != nil {
			return err
		}
		root := style.TreeNode{Text: "dependencies"}
		for _, m := range r.Dependencies.Managers() {
			d := r.Dependencies[m]
			root.Children = append(root.Children, style.Leaves(analyzer.ManagerLabel(m, d), headOf(d.Production, analyzer.ShownDeps)...))
		}
		if err := style.PrintTree(w, root); err != nil {
			return err
		}
	}

	if len(r.ArchitectureNotes) > 0 {
		if err := section(w, "architecture notes"); err != nil {
			return err
		}
		if err := style.PrintList(w, r.ArchitectureNotes, 0); err != nil {
			return err
		}
	}

	if err := section(w, "project structure"); err != nil {
		return err
	}
	if err := style.PrintBlock(w, headOf(r.Structure, analyzer.ShownTreeLines)); err != nil {
		return err
	}
	if hidden := len(r.Structure) - analyzer.ShownTreeLines; hidden > 0 {
		return style.PrintNote(w, fmt.Sprintf("  … %d more lines", hidden))
	}
	return nil
}

func section(w io.Writer, title string) error {
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	return style.PrintHeading(w, title)
}

func headOf[T any](s []T, n int) []T {
	if len(s) > n {
		return s[:n]
	}
	return s
}
