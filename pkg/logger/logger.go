// Package logger 提供全局 logrus 日志实例
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log 全局日志实例
// 未调用 Init 时也可直接使用（默认 info 级别、文本格式、输出到 stderr）。
var Log = logrus.New()

// Init 根据环境变量初始化全局日志，在 main 中调用一次
//
// LOG_LEVEL: 日志级别，默认 info；verbose 为 true 时默认 debug
// LOG_FORMAT: "json" 输出 JSON，其他值输出文本
func Init(verbose bool) {
	def := "info"
	if verbose {
		def = "debug"
	}

	logLevel, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		logLevel = def
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	Log.SetOutput(os.Stdout)
}

// Silence 丢弃所有日志输出（测试和无界面工具使用）
func Silence() {
	Log.SetOutput(io.Discard)
}
