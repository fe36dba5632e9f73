// Package log 根据配置构建 zerolog 记录器，支持控制台、文件（lumberjack 轮转）或两者同时输出
// 控制台日志写入 stderr，stdout 留给动画输出
package log

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yeisme/animations/pkg/configs"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger 命令层共享的记录器类型
type Logger = *zerolog.Logger

var (
	current    Logger
	consoleOut io.Writer = os.Stderr
)

// InitLogger 按配置构建记录器并设为当前记录器
// 级别只作用于返回的记录器本身，不修改 zerolog 全局级别
func InitLogger(ctx context.Context, config *configs.LogConfig, appConfig *configs.AppConfig) Logger {
	if appConfig.Quiet {
		logger := zerolog.Nop()
		current = &logger
		return current
	}

	fields := zerolog.New(newOutput(config)).Level(resolveLevel(config, appConfig)).With().Timestamp()
	if appConfig.Debug || appConfig.Verbose {
		fields = fields.Str("app", appConfig.Name).Ctx(ctx)
	}
	if appConfig.Debug {
		fields = fields.Caller()
	}

	logger := fields.Logger()
	current = &logger
	return current
}

// resolveLevel 优先级：debug > verbose > config.Level
func resolveLevel(config *configs.LogConfig, appConfig *configs.AppConfig) zerolog.Level {
	switch {
	case appConfig.Debug:
		return zerolog.DebugLevel
	case appConfig.Verbose:
		return zerolog.InfoLevel
	default:
		return parseLogLevel(config.Level)
	}
}

func newOutput(config *configs.LogConfig) io.Writer {
	switch strings.ToLower(config.Mode) {
	case "file":
		return newFileWriter(config)
	case "both":
		return io.MultiWriter(newConsoleWriter(config.JSON), newFileWriter(config))
	default:
		return newConsoleWriter(config.JSON)
	}
}

func newConsoleWriter(useJSON bool) io.Writer {
	if useJSON {
		return consoleOut
	}
	return zerolog.ConsoleWriter{Out: consoleOut, TimeFormat: "15:04:05.000"}
}

// newFileWriter 目录无法创建时退回控制台
func newFileWriter(config *configs.LogConfig) io.Writer {
	if err := os.MkdirAll(filepath.Dir(config.FilePath), 0755); err != nil {
		return consoleOut
	}
	return &lumberjack.Logger{
		Filename:   config.FilePath,
		MaxSize:    config.MaxSize, // MB
		MaxBackups: config.MaxBackups,
		MaxAge:     config.MaxAge, // days
		Compress:   true,
	}
}

// GetLogger 返回当前记录器，未初始化时返回不输出的记录器
func GetLogger() Logger {
	if current == nil {
		logger := zerolog.Nop()
		return &logger
	}
	return current
}

// parseLogLevel 无法识别的级别按 info 处理
func parseLogLevel(level string) zerolog.Level {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "warning" {
		return zerolog.WarnLevel
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}
