package configs

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	if c.App.Name != "projscope" {
		t.Fatalf("app.name = %q", c.App.Name)
	}
	if c.Analyze.MaxDepth != 5 || c.Analyze.TreeDepth != 3 || c.Analyze.TreeEntries != 20 {
		t.Fatalf("unexpected analyze defaults: %+v", c.Analyze)
	}
	if c.Analyze.Format != "text" || !c.Analyze.Color {
		t.Fatalf("unexpected output defaults: %+v", c.Analyze)
	}
	if c.Log.Mode != "console" {
		t.Fatalf("log.mode = %q", c.Log.Mode)
	}
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "projscope.yaml", `
analyze:
  max_depth: 8
  exclude:
    - "examples/**"
  format: json
log:
  level: debug
`)

	c, v, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if v.ConfigFileUsed() != path {
		t.Fatalf("config file used = %q", v.ConfigFileUsed())
	}
	if c.Analyze.MaxDepth != 8 {
		t.Fatalf("max_depth = %d", c.Analyze.MaxDepth)
	}
	if c.Analyze.TreeDepth != 3 {
		t.Fatalf("tree_depth default lost: %d", c.Analyze.TreeDepth)
	}
	if !reflect.DeepEqual(c.Analyze.Exclude, []string{"examples/**"}) {
		t.Fatalf("exclude = %v", c.Analyze.Exclude)
	}
	if c.Analyze.Format != "json" || c.Log.Level != "debug" {
		t.Fatalf("unexpected config: %+v", c)
	}
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "projscope.toml", "[analyze]\ntree_entries = 10\n")
	t.Setenv("PROJSCOPE_ANALYZE_TREE_ENTRIES", "7")

	c, _, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if c.Analyze.TreeEntries != 7 {
		t.Fatalf("tree_entries = %d, want 7", c.Analyze.TreeEntries)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := LoadConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}

	bad := writeFile(t, dir, "bad.yaml", "analyze: [1, 2\n")
	if _, _, err := LoadConfig(bad); err == nil {
		t.Fatal("expected error for malformed config file")
	}

	format := writeFile(t, dir, "format.yaml", "analyze:\n  format: html\n")
	if _, _, err := LoadConfig(format); err == nil || !strings.Contains(err.Error(), "analyze.format") {
		t.Fatalf("expected analyze.format error, got %v", err)
	}
}

func TestCreateDefaultConfig_RoundTrip(t *testing.T) {
	for _, format := range []OutputFormat{FormatYAML, FormatJSON, FormatTOML} {
		dir := t.TempDir()
		path := filepath.Join(dir, "nested", DefaultConfigPath(format))

		if err := CreateDefaultConfig(path, format, false); err != nil {
			t.Fatalf("%s: CreateDefaultConfig: %v", format, err)
		}
		c, _, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("%s: LoadConfig: %v", format, err)
		}
		if !reflect.DeepEqual(c.Analyze, DefaultConfig().Analyze) {
			t.Fatalf("%s: analyze = %+v", format, c.Analyze)
		}

		err = CreateDefaultConfig(path, format, false)
		if !errors.Is(err, ErrConfigExists) {
			t.Fatalf("%s: expected ErrConfigExists, got %v", format, err)
		}
		if err := CreateDefaultConfig(path, format, true); err != nil {
			t.Fatalf("%s: forced overwrite: %v", format, err)
		}
	}

	if err := CreateDefaultConfig(filepath.Join(t.TempDir(), "x.txt"), FormatText, false); err == nil {
		t.Fatal("text format must be rejected")
	}
}

func TestParseOutputFormat(t *testing.T) {
	cases := map[string]OutputFormat{
		"text": FormatText, "TXT": FormatText, "pretty": FormatPretty,
		"json": FormatJSON, "yml": FormatYAML, "toml": FormatTOML, "md": FormatMarkdown,
	}
	for in, want := range cases {
		got, err := ParseOutputFormat(in)
		if err != nil || got != want {
			t.Fatalf("%s => %s, %v; want %s", in, got, err, want)
		}
	}
	if _, err := ParseOutputFormat("xml"); err == nil {
		t.Fatal("expected error for xml")
	}
}

func TestGetOutputFormatFromFlags(t *testing.T) {
	newCmd := func() *cobra.Command {
		cmd := &cobra.Command{Use: "x"}
		cmd.Flags().String("format", "", "")
		cmd.Flags().Bool("json", false, "")
		cmd.Flags().Bool("yaml", false, "")
		return cmd
	}

	cmd := newCmd()
	if f, _ := GetOutputFormatFromFlags(cmd, FormatText); f != FormatText {
		t.Fatalf("fallback = %s", f)
	}

	cmd = newCmd()
	_ = cmd.Flags().Set("yaml", "true")
	if f, _ := GetOutputFormatFromFlags(cmd, FormatText); f != FormatYAML {
		t.Fatalf("--yaml = %s", f)
	}

	_ = cmd.Flags().Set("format", "markdown")
	if f, _ := GetOutputFormatFromFlags(cmd, FormatText); f != FormatMarkdown {
		t.Fatalf("--format wins over shorthands, got %s", f)
	}

	_ = cmd.Flags().Set("format", "xml")
	if _, err := GetOutputFormatFromFlags(cmd, FormatText); err == nil {
		t.Fatal("expected error for --format xml")
	}
}

func TestOutputData(t *testing.T) {
	data := map[string]any{"name": "demo", "count": 2}

	var buf bytes.Buffer
	if err := OutputData(data, FormatJSON, &buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"name": "demo"`) {
		t.Fatalf("json output: %s", buf.String())
	}

	buf.Reset()
	if err := OutputData(data, FormatYAML, &buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "name: demo") {
		t.Fatalf("yaml output: %s", buf.String())
	}

	buf.Reset()
	if err := OutputData(data, FormatTOML, &buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "name = 'demo'") && !strings.Contains(buf.String(), `name = "demo"`) {
		t.Fatalf("toml output: %s", buf.String())
	}

	if err := OutputData(data, FormatPretty, &buf); err == nil {
		t.Fatal("pretty is not a data format")
	}
}

func TestGetConfigSection(t *testing.T) {
	v, err := NewViper(writeFile(t, t.TempDir(), "c.yaml", "app:\n  debug: true\n"))
	if err != nil {
		t.Fatal(err)
	}

	got, err := GetConfigSection(v, "analyze", true)
	if err != nil {
		t.Fatal(err)
	}
	if a, ok := got.(AnalyzeConfig); !ok || a.TreeDepth != 3 {
		t.Fatalf("analyze section = %#v", got)
	}

	got, err = GetConfigSection(v, "app", false)
	if err != nil {
		t.Fatal(err)
	}
	if m, ok := got.(map[string]any); !ok || m["debug"] != true {
		t.Fatalf("app section = %#v", got)
	}

	if _, err := GetConfigSection(v, "plugins", true); err == nil {
		t.Fatal("expected unknown section error")
	}
}
