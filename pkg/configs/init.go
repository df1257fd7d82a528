package configs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrConfigExists 目标配置文件已存在且未要求覆盖
var ErrConfigExists = errors.New("config file already exists")

// DefaultConfigPath 返回指定格式的默认配置文件名
func DefaultConfigPath(format OutputFormat) string {
	return ".projscope." + string(format)
}

// CreateDefaultConfig 将默认配置写入 path
// 只支持 yaml、json、toml；force 为 false 时不会覆盖已存在的文件
func CreateDefaultConfig(path string, format OutputFormat, force bool) error {
	switch format {
	case FormatYAML, FormatJSON, FormatTOML:
	default:
		return fmt.Errorf("format %s is not supported for config files", format)
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrConfigExists, path)
		}
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("创建配置目录失败: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("创建配置文件失败: %w", err)
	}
	defer f.Close()

	return OutputData(DefaultConfig(), format, f)
}
