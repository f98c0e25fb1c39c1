package log

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger 在 slog.Logger 之上附带组件名
type Logger struct {
	*slog.Logger
	base      *slog.Logger // 不含组件名
	component string
}

// Config 日志配置
type Config struct {
	Level     string // debug/info/warn/error
	Format    string // text/json
	Component string
	Output    io.Writer
}

// ParseLevel 解析日志级别，未知值按 info 处理
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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

// New 按配置创建日志器
func New(cfg Config) *Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	component := cfg.Component
	if component == "" {
		component = ComponentApp
	}

	base := slog.New(handler)
	return &Logger{
		Logger:    base.With(FieldComponent, component),
		base:      base,
		component: component,
	}
}

// Discard 丢弃全部输出（测试用）
func Discard() *Logger {
	return New(Config{Output: io.Discard, Level: "error"})
}

// With 附加属性
func (l *Logger) With(args ...any) *Logger {
	return &Logger{
		Logger:    l.Logger.With(args...),
		base:      l.base.With(args...),
		component: l.component,
	}
}

// WithComponent 切换组件名
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		Logger:    l.base.With(FieldComponent, component),
		base:      l.base,
		component: component,
	}
}

// Component 组件名
func (l *Logger) Component() string {
	return l.component
}

// SetDefault 设置全局默认日志器
func SetDefault(logger *Logger) {
	slog.SetDefault(logger.Logger)
}
