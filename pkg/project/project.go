// Package project 实现 projscope 各个子命令的业务逻辑：调用分析核心，并按输出格式渲染结果
package project

import (
	log2 "github.com/yeisme/projscope/pkg/utils/log"
)

var log log2.Logger

func init() {
	log = log2.GetLogger()
}
