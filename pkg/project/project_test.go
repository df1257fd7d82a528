package project

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/yeisme/projscope/pkg/analyzer"
	"github.com/yeisme/projscope/pkg/configs"
	gctx "github.com/yeisme/projscope/pkg/context"
	"github.com/yeisme/projscope/pkg/style"
)

func testContext() *gctx.ProjscopeContext {
	return &gctx.ProjscopeContext{Context: context.Background(), Config: configs.DefaultConfig()}
}

func goProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	files := map[string]string{
		"go.mod":           "module example.com/demo\n\ngo 1.22\n\nrequire github.com/spf13/cobra v1.9.1\n",
		"main.go":          "package main\n",
		"cmd/tool/main.go": "package main\n",
		"README.md":        "# demo\n",
	}
	for rel, content := range files {
		p := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}
	require.NoError(t, os.MkdirAll(filepath.Join(root, "docs"), 0o755))
	return root
}

func TestExecuteAnalyzeCommand_Text(t *testing.T) {
	root := goProject(t)
	var buf bytes.Buffer
	err := ExecuteAnalyzeCommand(testContext(), AnalyzeOptions{Format: configs.FormatText}, []string{root}, &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "PROJECT ANALYSIS: "+filepath.Base(root))
	assert.Contains(t, out, "Project Type: Go Project")
	assert.Contains(t, out, "Entry Points (2):")
	assert.Contains(t, out, "  go: github.com/spf13/cobra\n")
	assert.Contains(t, out, "  - Documentation directory found\n")
}

func TestExecuteAnalyzeCommand_InvalidRootPrintsNothing(t *testing.T) {
	var buf bytes.Buffer
	err := ExecuteAnalyzeCommand(testContext(), AnalyzeOptions{}, []string{filepath.Join(t.TempDir(), "nope")}, &buf)
	assert.True(t, errors.Is(err, analyzer.ErrInvalidRoot))
	assert.Zero(t, buf.Len())
}

func TestExecuteAnalyzeCommand_StructuredFormats(t *testing.T) {
	root := goProject(t)

	var buf bytes.Buffer
	require.NoError(t, ExecuteAnalyzeCommand(testContext(), AnalyzeOptions{Format: configs.FormatJSON}, []string{root}, &buf))
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "Go Project", decoded["project_type"])
	assert.Equal(t, []any{"github.com/spf13/cobra"}, decoded["dependencies"].(map[string]any)["go"])

	buf.Reset()
	require.NoError(t, ExecuteAnalyzeCommand(testContext(), AnalyzeOptions{Format: configs.FormatYAML}, []string{root}, &buf))
	decoded = nil
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "Go Project", decoded["project_type"])
}

func TestRenderReport_TOMLKeepsDependencyShape(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "requirements.txt"), []byte("flask==3.0\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "package.json"), []byte(`{"dependencies":{"express":"4"}}`), 0o644))

	r, err := analyzer.Analyze(context.Background(), root, analyzer.Options{})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, RenderReport(&buf, r, configs.FormatTOML))

	var decoded map[string]any
	require.NoError(t, toml.Unmarshal(buf.Bytes(), &decoded), buf.String())
	deps := decoded["dependencies"].(map[string]any)
	assert.Equal(t, []any{"flask"}, deps["pip"])
	npm := deps["npm"].(map[string]any)
	assert.Equal(t, []any{"express"}, npm["dependencies"])
	assert.Equal(t, []any{}, npm["devDependencies"])
	assert.Equal(t, "Node.js/Express Project", decoded["project_type"])
}

func TestRenderReport_Pretty(t *testing.T) {
	style.SetNoColor(true)
	t.Cleanup(func() { style.SetNoColor(false) })

	r, err := analyzer.Analyze(context.Background(), goProject(t), analyzer.Options{})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, RenderReport(&buf, r, configs.FormatPretty))
	out := buf.String()
	for _, s := range []string{"PROJECT ANALYSIS", "Go Project", "ENTRY POINTS (2)", "README.md", "github.com/spf13/cobra", "main.go"} {
		assert.Contains(t, out, s)
	}
}

func TestFilterCatalog(t *testing.T) {
	all := Catalog(false)
	assert.Len(t, all, len(analyzer.ConfigDescriptions))
	assert.Len(t, Catalog(true), len(analyzer.ConfigDescriptions)+len(analyzer.EntryPointNames))

	assert.Equal(t, all, FilterCatalog(all, "  "))

	hits := FilterCatalog(all, "docker")
	names := make([]string, 0, len(hits))
	for _, h := range hits {
		names = append(names, h.Name)
	}
	assert.Contains(t, names, "Dockerfile")
	assert.Contains(t, names, "docker-compose.yml")
	assert.NotContains(t, names, "go.mod")

	hits = FilterCatalog(all, "CARGO")
	require.NotEmpty(t, hits)
	assert.Equal(t, "Cargo.toml", hits[0].Name)
}

func TestExecuteCatalogCommand_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ExecuteCatalogCommand(CatalogOptions{Query: "main.go", EntryPoints: true}, &buf))
	assert.Contains(t, buf.String(), "main.go [entry-point]")

	buf.Reset()
	require.NoError(t, ExecuteCatalogCommand(CatalogOptions{Query: "zzzzqqq"}, &buf))
	assert.Zero(t, buf.Len())

	buf.Reset()
	require.NoError(t, ExecuteCatalogCommand(CatalogOptions{Query: "go.mod", Format: configs.FormatJSON}, &buf))
	var entries []CatalogEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entries))
	require.NotEmpty(t, entries)
	assert.True(t, strings.HasPrefix(entries[0].Name, "go.mod"))
}
