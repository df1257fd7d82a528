// Package configs 提供应用程序配置管理功能
package configs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix 环境变量前缀，例如 PROJSCOPE_ANALYZE_MAX_DEPTH
const EnvPrefix = "PROJSCOPE"

// Config 应用配置结构
type Config struct {
	Version string        `mapstructure:"version" json:"version" yaml:"version" toml:"version"`
	Log     LogConfig     `mapstructure:"log" json:"log" yaml:"log" toml:"log"`
	App     AppConfig     `mapstructure:"app" json:"app" yaml:"app" toml:"app"`
	Analyze AnalyzeConfig `mapstructure:"analyze" json:"analyze" yaml:"analyze" toml:"analyze"`
}

// setDefaults 设置默认配置值
func setDefaults(v *viper.Viper) {
	v.SetDefault("version", "1.0")
	setLogConfigDefaults(v)
	setAppConfigDefaults(v)
	setAnalyzeConfigDefaults(v)
}

// searchPaths 配置文件搜索路径，靠前的优先
func searchPaths() []string {
	paths := []string{
		".",
		"./configs",
		"$HOME",
		"$HOME/.config",
		"$HOME/.config/projscope",
	}

	// Windows 特殊路径
	if runtime.GOOS == "windows" {
		paths = append(paths,
			"$USERPROFILE",
			"$APPDATA/projscope",
		)
	} else {
		paths = append(paths, "/etc/projscope")
	}
	return paths
}

// findConfigFile 按搜索路径、文件名、扩展名的顺序查找第一个存在的配置文件
func findConfigFile() (string, bool) {
	configNames := []string{".projscope", "projscope"}
	extensions := []string{"yaml", "yml", "json", "toml"}

	for _, path := range searchPaths() {
		for _, name := range configNames {
			for _, ext := range extensions {
				configFile := filepath.Join(path, name+"."+ext)

				// 展开环境变量
				if strings.Contains(configFile, "$") {
					configFile = os.ExpandEnv(configFile)
				}

				if st, err := os.Stat(configFile); err == nil && !st.IsDir() {
					return configFile, true
				}
			}
		}
	}
	return "", false
}

// NewViper 创建带默认值与环境变量绑定的 viper 实例，并读取配置文件
// configPath 为空时按 findConfigFile 的规则查找，找不到配置文件不是错误
func NewViper(configPath string) (*viper.Viper, error) {
	v := viper.New()
	if configPath != "" {
		// 使用指定的配置文件路径
		v.SetConfigFile(configPath)
	} else if file, ok := findConfigFile(); ok {
		v.SetConfigFile(file)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if v.ConfigFileUsed() == "" {
		return v, nil
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
	}
	return v, nil
}

// LoadConfig 加载配置文件并解析为 Config
func LoadConfig(configPath string) (*Config, *viper.Viper, error) {
	v, err := NewViper(configPath)
	if err != nil {
		return nil, nil, err
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	if err := config.Analyze.Validate(); err != nil {
		return nil, nil, err
	}

	// 确保日志目录存在
	if config.Log.Mode == "file" || config.Log.Mode == "both" {
		logDir := filepath.Dir(config.Log.FilePath)
		if err := os.MkdirAll(logDir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("创建日志目录失败: %w", err)
		}
	}

	return &config, v, nil
}

// DefaultConfig 返回只包含默认值的配置
func DefaultConfig() *Config {
	v := viper.New()
	setDefaults(v)
	var config Config
	// 默认值全部是合法的基础类型，解码不会失败
	_ = v.Unmarshal(&config)
	return &config
}
