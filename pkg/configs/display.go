package configs

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// OutputFormat 输出格式类型
type OutputFormat string

const (
	// FormatText 纯文本摘要（analyze 的默认格式）
	FormatText OutputFormat = "text"
	// FormatPretty 使用 lipgloss 渲染的终端样式
	FormatPretty OutputFormat = "pretty"
	// FormatJSON represents the JSON output format.
	FormatJSON OutputFormat = "json"
	// FormatYAML represents the YAML output format.
	FormatYAML OutputFormat = "yaml"
	// FormatTOML represents the TOML output format.
	FormatTOML OutputFormat = "toml"
	// FormatMarkdown Markdown 文档，终端下经 glamour 渲染
	FormatMarkdown OutputFormat = "markdown"
)

// ValidFormats 返回所有有效的输出格式
func ValidFormats() []string {
	return []string{
		string(FormatText), string(FormatPretty), string(FormatJSON),
		string(FormatYAML), string(FormatTOML), string(FormatMarkdown),
	}
}

// ParseOutputFormat 解析输出格式字符串
func ParseOutputFormat(format string) (OutputFormat, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "text", "txt":
		return FormatText, nil
	case "pretty", "styled":
		return FormatPretty, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("unsupported format '%s', supported formats: %s", format, strings.Join(ValidFormats(), ", "))
	}
}

// GetOutputFormatFromFlags 从命令行标志获取输出格式
// --format 优先，其次是 --json/--yaml/--toml 等快捷标志，都没有时返回 fallback
func GetOutputFormatFromFlags(cmd *cobra.Command, fallback OutputFormat) (OutputFormat, error) {
	// 首先检查 --format 标志
	if formatFlag, _ := cmd.Flags().GetString("format"); formatFlag != "" {
		return ParseOutputFormat(formatFlag)
	}

	// 检查具体的格式标志
	shorthands := []OutputFormat{FormatJSON, FormatYAML, FormatTOML, FormatText}
	for _, f := range shorthands {
		if on, _ := cmd.Flags().GetBool(string(f)); on {
			return f, nil
		}
	}

	// 默认格式
	return fallback, nil
}

// OutputData 根据指定格式输出数据
// 只支持结构化格式与 text，pretty/markdown 需要调用方自行渲染
func OutputData(data any, format OutputFormat, out io.Writer) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(data); err != nil {
			return fmt.Errorf("failed to marshal to YAML: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to close YAML encoder: %w", err)
		}

	case FormatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(data); err != nil {
			return fmt.Errorf("failed to marshal to JSON: %w", err)
		}

	case FormatTOML:
		enc := toml.NewEncoder(out)
		enc.SetIndentTables(true)
		if err := enc.Encode(data); err != nil {
			return fmt.Errorf("failed to marshal to TOML: %w", err)
		}

	case FormatText:
		// 简单的文本格式输出
		if _, err := fmt.Fprintf(out, "%+v\n", data); err != nil {
			return err
		}

	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}

	return nil
}

// GetConfigSection 从 viper 实例获取指定配置段
func GetConfigSection(v *viper.Viper, section string, showAll bool) (any, error) {
	if showAll {
		// 返回完整的配置结构体（包含默认值）
		var config Config
		if err := v.Unmarshal(&config); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}

		if section == "" {
			return config, nil
		}

		// 使用反射动态查找配置段
		val := reflect.ValueOf(config)
		typ := val.Type()
		lowerSection := strings.ToLower(section)

		for i := 0; i < val.NumField(); i++ {
			field := typ.Field(i)
			tag := field.Tag.Get("mapstructure")
			if strings.ToLower(tag) == lowerSection {
				return val.Field(i).Interface(), nil
			}
		}

		return nil, fmt.Errorf("unknown configuration section: %s", section)
	}

	// 返回 viper 的原始数据
	lowerSection := strings.ToLower(section)

	if lowerSection == "" {
		// 显示所有配置
		return v.AllSettings(), nil
	}

	// 检查 section 是否是 viper 中的一个顶级键或已设置的键
	if v.IsSet(lowerSection) {
		return v.Get(lowerSection), nil
	}

	return nil, fmt.Errorf("unknown or unset configuration section %s", section)
}
