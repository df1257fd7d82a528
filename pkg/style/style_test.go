package style

import (
	"bytes"
	"strings"
	"testing"
)

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Fatalf("got %q", got)
	}
	if got := Truncate("abcdefghij", 5); got != "abcd…" {
		t.Fatalf("got %q", got)
	}
	// 中文字符占两列
	if got := Truncate("项目结构分析", 7); got != "项目结…" {
		t.Fatalf("got %q", got)
	}
	if got := Truncate("anything", 0); got != "anything" {
		t.Fatalf("zero width must not truncate, got %q", got)
	}
}

func TestPrintKeyValues_AlignsByDisplayWidth(t *testing.T) {
	SetNoColor(true)
	t.Cleanup(func() { SetNoColor(false) })

	var buf bytes.Buffer
	err := PrintKeyValues(&buf, []KeyValue{
		{Key: ".go", Value: "12"},
		{Key: "说明", Value: "3"},
		{Key: "no extension", Value: "1"},
	}, 0)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines: %q", lines)
	}
	want := []string{
		"  .go           12",
		"  说明          3",
		"  no extension  1",
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d: got %q want %q", i, lines[i], want[i])
		}
	}
}

func TestPrintList_HiddenCount(t *testing.T) {
	SetNoColor(true)
	t.Cleanup(func() { SetNoColor(false) })

	var buf bytes.Buffer
	if err := PrintList(&buf, []string{"main.go", "cmd/app/main.go"}, 3); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, s := range []string{"main.go", "cmd/app/main.go", "… and 3 more"} {
		if !strings.Contains(out, s) {
			t.Fatalf("missing %q in %q", s, out)
		}
	}

	buf.Reset()
	if err := PrintList(&buf, nil, 0); err != nil || buf.Len() != 0 {
		t.Fatalf("empty list should print nothing, got %q", buf.String())
	}
}

func TestPrintBlock_KeepsLines(t *testing.T) {
	SetNoColor(true)
	t.Cleanup(func() { SetNoColor(false) })

	var buf bytes.Buffer
	if err := PrintBlock(&buf, []string{"demo/", "├── cmd/", "└── main.go"}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, s := range []string{"demo/", "├── cmd/", "└── main.go", "╭", "╯"} {
		if !strings.Contains(out, s) {
			t.Fatalf("missing %q in:\n%s", s, out)
		}
	}
}
