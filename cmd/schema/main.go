// Package main writes the projscope JSON schemas into docs/.
package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/yeisme/projscope/pkg/utils/schema"
)

const docsDir = "../../docs"

//go:generate go run github.com/yeisme/projscope/cmd/schema
func main() {
	if err := os.MkdirAll(docsDir, 0o755); err != nil {
		panic(err)
	}
	if err := writeSchema("config_schema.json", schema.GenConfigSchema); err != nil {
		panic(err)
	}
	if err := writeSchema("report_schema.json", schema.GenReportSchema); err != nil {
		panic(err)
	}
}

func writeSchema(name string, gen func(io.Writer) error) error {
	f, err := os.Create(filepath.Join(docsDir, name))
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return gen(f)
}
