package analyzer

import (
	"fmt"
	"io"
	"strings"

	"github.com/yeisme/projscope/pkg/models"
)

// 文本摘要中各部分的展示上限
const (
	TopExtensions    = 10
	ShownEntryPoints = 5
	ShownConfigFiles = 10
	ShownDeps        = 5
	ShownTreeLines   = 30
)

const bannerWidth = 60

// summaryWriter 记录第一次写入错误，之后的写入全部忽略
type summaryWriter struct {
	w   io.Writer
	err error
}

func (s *summaryWriter) printf(format string, args ...any) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.w, format, args...)
}

// FormatText 按固定顺序输出纯文本摘要：
// 标题、项目类型、扩展名分布、入口文件、配置文件、关键依赖、架构说明、目录树
// 依赖与架构说明为空时对应段落不输出
func FormatText(w io.Writer, r *models.Report) error {
	s := &summaryWriter{w: w}
	banner := strings.Repeat("=", bannerWidth)

	s.printf("\n%s\nPROJECT ANALYSIS: %s\n%s\n\n", banner, r.Name, banner)
	s.printf("Project Type: %s\n\n", r.ProjectType)

	s.printf("File Distribution:\n")
	for _, ec := range headOf(r.Languages.Sorted(), TopExtensions) {
		s.printf("  %s: %d files\n", ExtensionLabel(ec.Ext), ec.Count)
	}

	s.printf("\nEntry Points (%d):\n", len(r.EntryPoints))
	for _, ep := range headOf(r.EntryPoints, ShownEntryPoints) {
		s.printf("  - %s\n", ep)
	}

	s.printf("\nConfiguration Files (%d):\n", len(r.ConfigFiles))
	for _, p := range headOf(r.ConfigFiles.Paths(), ShownConfigFiles) {
		s.printf("  - %s: %s\n", p, r.ConfigFiles[p])
	}

	if len(r.Dependencies) > 0 {
		s.printf("\nKey Dependencies:\n")
		for _, m := range r.Dependencies.Managers() {
			s.printf("  %s: %s\n", ManagerLabel(m, r.Dependencies[m]), strings.Join(headOf(r.Dependencies[m].Production, ShownDeps), ", "))
		}
	}

	if len(r.ArchitectureNotes) > 0 {
		s.printf("\nArchitecture Notes:\n")
		for _, n := range r.ArchitectureNotes {
			s.printf("  - %s\n", n)
		}
	}

	s.printf("\nProject Structure:\n")
	for _, line := range headOf(r.Structure, ShownTreeLines) {
		s.printf("  %s\n", line)
	}
	return s.err
}

// FormatMarkdown 输出 Markdown 形式的报告，列表同样受展示上限约束
func FormatMarkdown(w io.Writer, r *models.Report) error {
	s := &summaryWriter{w: w}

	s.printf("# Project Analysis: %s\n\n", r.Name)
	s.printf("**Project Type:** %s  \n", r.ProjectType)
	s.printf("**Root:** `%s`\n\n", r.Root)

	s.printf("## File Distribution\n\n| Extension | Files |\n| --- | ---: |\n")
	for _, ec := range headOf(r.Languages.Sorted(), TopExtensions) {
		s.printf("| %s | %d |\n", ExtensionLabel(ec.Ext), ec.Count)
	}

	s.printf("\n## Entry Points (%d)\n\n", len(r.EntryPoints))
	for _, ep := range headOf(r.EntryPoints, ShownEntryPoints) {
		s.printf("- `%s`\n", ep)
	}

	s.printf("\n## Configuration Files (%d)\n\n", len(r.ConfigFiles))
	for _, p := range headOf(r.ConfigFiles.Paths(), ShownConfigFiles) {
		s.printf("- `%s`: %s\n", p, r.ConfigFiles[p])
	}

	if len(r.Dependencies) > 0 {
		s.printf("\n## Key Dependencies\n\n")
		for _, m := range r.Dependencies.Managers() {
			d := r.Dependencies[m]
			s.printf("- **%s**: %s\n", ManagerLabel(m, d), strings.Join(headOf(d.Production, ShownDeps), ", "))
			if d.Split && len(d.Development) > 0 {
				s.printf("- **%s (development)**: %s\n", m, strings.Join(headOf(d.Development, ShownDeps), ", "))
			}
		}
	}

	if len(r.ArchitectureNotes) > 0 {
		s.printf("\n## Architecture Notes\n\n")
		for _, n := range r.ArchitectureNotes {
			s.printf("- %s\n", n)
		}
	}

	s.printf("\n## Project Structure\n\n```\n")
	for _, line := range headOf(r.Structure, ShownTreeLines) {
		s.printf("%s\n", line)
	}
	s.printf("```\n")
	return s.err
}

// ExtensionLabel 无扩展名时显示为 "no extension"
func ExtensionLabel(ext string) string {
	if ext == "" {
		return "no extension"
	}
	return ext
}

// ManagerLabel 区分生产/开发依赖的列表只展示生产依赖，标签上注明
func ManagerLabel(manager string, d models.DependencyList) string {
	if d.Split {
		return manager + " (production)"
	}
	return manager
}

func headOf[T any](s []T, n int) []T {
	if len(s) > n {
		return s[:n]
	}
	return s
}
