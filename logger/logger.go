package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"stroke_risk/config"
)

// Logger 全局日志记录器，Init 之前使用 slog 默认实现
var Logger = slog.Default()

// Init 使用配置文件初始化日志系统
func Init(cfg *config.Config) error {
	l, err := New(cfg)
	if err != nil {
		return err
	}
	Logger = l
	slog.SetDefault(l)
	return nil
}

// New 根据配置创建 slog 日志记录器
func New(cfg *config.Config) (*slog.Logger, error) {
	writer, err := openWriter(cfg.Log.Output, cfg.Log.FilePath)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Log.Level)}
	var handler slog.Handler
	switch strings.ToLower(cfg.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(writer, opts)
	default:
		handler = slog.NewTextHandler(writer, opts)
	}
	return slog.New(handler), nil
}

// ParseLevel 解析日志级别，未知值按 info 处理
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func openWriter(output, filePath string) (io.Writer, error) {
	output = strings.ToLower(output)
	if output != "file" && output != "both" {
		return os.Stdout, nil
	}

	// 创建日志目录
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	if output == "both" {
		return io.MultiWriter(os.Stdout, file), nil
	}
	return file, nil
}

// Debug 记录调试级别的日志
func Debug(msg string, args ...any) {
	Logger.Debug(msg, args...)
}

// Info 记录信息级别的日志
func Info(msg string, args ...any) {
	Logger.Info(msg, args...)
}

// Warn 记录警告级别的日志
func Warn(msg string, args ...any) {
	Logger.Warn(msg, args...)
}

// Error 记录错误级别的日志
func Error(msg string, args ...any) {
	Logger.Error(msg, args...)
}
