package configs

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/yeisme/projscope/pkg/analyzer"
)

// AnalyzeConfig analyze 命令的默认行为
// 遍历边界直接复用 analyzer.Options，命令行标志会覆盖这里的值
type AnalyzeConfig struct {
	analyzer.Options `mapstructure:",squash" yaml:",inline"`

	// Format 默认输出格式
	Format string `mapstructure:"format" json:"format" yaml:"format" toml:"format" jsonschema:"enum=text,enum=pretty,enum=json,enum=yaml,enum=toml,enum=markdown,default=text"`
	// Color 是否允许彩色输出（仅 pretty 与 markdown 格式使用）
	Color bool `mapstructure:"color" json:"color" yaml:"color" toml:"color" jsonschema:"default=true"`
}

func setAnalyzeConfigDefaults(v *viper.Viper) {
	v.SetDefault("analyze.max_depth", analyzer.DefaultMaxDepth)
	v.SetDefault("analyze.tree_depth", analyzer.DefaultTreeDepth)
	v.SetDefault("analyze.tree_entries", analyzer.DefaultTreeEntries)
	v.SetDefault("analyze.exclude", []string{})
	v.SetDefault("analyze.format", string(FormatText))
	v.SetDefault("analyze.color", true)
}

// Validate 检查配置中的输出格式与数值边界
func (c AnalyzeConfig) Validate() error {
	if _, err := ParseOutputFormat(c.Format); err != nil {
		return fmt.Errorf("analyze.format: %w", err)
	}
	if c.MaxDepth < 0 || c.TreeDepth < 0 || c.TreeEntries < 0 {
		return fmt.Errorf("analyze: depth and entry limits must not be negative")
	}
	return nil
}
