package log

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/yeisme/projscope/pkg/configs"
)

func TestResolveLevel_Priority(t *testing.T) {
	cases := []struct {
		name string
		app  configs.AppConfig
		lvl  string
		want zerolog.Level
	}{
		{"quiet wins", configs.AppConfig{Quiet: true, Debug: true}, "trace", zerolog.Disabled},
		{"debug over verbose", configs.AppConfig{Debug: true, Verbose: true}, "error", zerolog.DebugLevel},
		{"verbose over level", configs.AppConfig{Verbose: true}, "error", zerolog.InfoLevel},
		{"configured level", configs.AppConfig{}, "warn", zerolog.WarnLevel},
		{"unknown level", configs.AppConfig{}, "loud", zerolog.InfoLevel},
	}
	for _, tc := range cases {
		got := ResolveLevel(&configs.LogConfig{Level: tc.lvl}, &tc.app)
		if got != tc.want {
			t.Errorf("%s: got %s want %s", tc.name, got, tc.want)
		}
	}
}

func TestInitLogger_ConsoleGoesToConsoleOut(t *testing.T) {
	var buf bytes.Buffer
	prev := consoleOut
	consoleOut = &buf
	t.Cleanup(func() {
		consoleOut = prev
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	})

	logger := InitLogger(context.Background(),
		&configs.LogConfig{Level: "info", Mode: "console", JSON: true},
		&configs.AppConfig{Name: "projscope"})
	logger.Info().Str("k", "v").Msg("hello")
	logger.Debug().Msg("hidden")

	out := buf.String()
	if !strings.Contains(out, `"message":"hello"`) || !strings.Contains(out, `"k":"v"`) {
		t.Fatalf("unexpected log output: %s", out)
	}
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line should be filtered: %s", out)
	}
	if GetLogger() != logger {
		t.Fatal("GetLogger should return the initialized logger")
	}
}

func TestInitLogger_FileMode(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })
	path := filepath.Join(t.TempDir(), "logs", "projscope.log")

	logger := InitLogger(context.Background(),
		&configs.LogConfig{Level: "debug", Mode: "file", FilePath: path, MaxSize: 1},
		&configs.AppConfig{})
	logger.Warn().Msg("to file")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "to file") {
		t.Fatalf("log file content: %s", data)
	}
}

func TestInitLogger_Quiet(t *testing.T) {
	var buf bytes.Buffer
	prev := consoleOut
	consoleOut = &buf
	t.Cleanup(func() {
		consoleOut = prev
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	})

	logger := InitLogger(context.Background(), &configs.LogConfig{Level: "trace"}, &configs.AppConfig{Quiet: true})
	logger.Error().Msg("nothing")
	if buf.Len() != 0 {
		t.Fatalf("quiet logger wrote: %s", buf.String())
	}
}
