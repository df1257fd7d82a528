// Package context 组装一次命令执行所需的运行时环境：配置、viper 实例与日志记录器
package context

import (
	"context"

	"github.com/spf13/viper"

	"github.com/yeisme/projscope/pkg/configs"
	"github.com/yeisme/projscope/pkg/utils/log"
)

// GlobalFlags 所有命令共享的全局标志
type GlobalFlags struct {
	ConfigPath    string
	Debug         bool
	Verbose       bool
	Quiet         bool
	CPUProfile    string
	Trace         string
	VersionEnable bool
}

// ProjscopeContext 命令执行上下文
// 内嵌的 context.Context 已携带日志记录器，可直接传给 analyzer.Analyze
type ProjscopeContext struct {
	context.Context
	Config *configs.Config // 应用配置
	Viper  *viper.Viper    // 配置来源，config 子命令使用
	Logger log.Logger      // 日志记录器
}

// InitProjscopeContext 加载配置并初始化日志
// 命令行上的 --debug/--verbose/--quiet 覆盖配置文件中的同名设置
func InitProjscopeContext(flags GlobalFlags) (*ProjscopeContext, error) {
	config, v, err := configs.LoadConfig(flags.ConfigPath)
	if err != nil {
		return nil, err
	}
	if flags.Debug {
		config.App.Debug = true
	}
	if flags.Verbose {
		config.App.Verbose = true
	}
	if flags.Quiet {
		config.App.Quiet = true
	}

	logger := log.InitLogger(context.Background(), &config.Log, &config.App)

	return &ProjscopeContext{
		Context: logger.WithContext(context.Background()),
		Config:  config,
		Viper:   v,
		Logger:  logger,
	}, nil
}
