package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// 环境变量（优先级高于 config.toml）
const (
	EnvPort          = "REVENUE_PLATFORM_PORT"
	EnvUploadDelayMs = "REVENUE_PLATFORM_UPLOAD_DELAY_MS"
	EnvLogLevel      = "REVENUE_PLATFORM_LOG_LEVEL"
	EnvLocale        = "REVENUE_PLATFORM_LOCALE"
)

// AppConfig 应用配置
type AppConfig struct {
	Server  ServerConfig  `toml:"server"`
	Data    DataConfig    `toml:"data"`
	Upload  UploadConfig  `toml:"upload"`
	Display DisplayConfig `toml:"display"`
	Log     LogConfig     `toml:"log"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port        int  `toml:"port"`
	DevMode     bool `toml:"dev_mode"`
	OpenBrowser bool `toml:"open_browser"`
}

// DataConfig 存储配置
type DataConfig struct {
	DSN string `toml:"dsn"` // 为空时使用独立的内存库
}

// UploadConfig 模拟上传配置
type UploadConfig struct {
	SimulatedDelayMs  int      `toml:"simulated_delay_ms"`
	AllowedExtensions []string `toml:"allowed_extensions"`
}

// DisplayConfig 金额展示配置
type DisplayConfig struct {
	Locale         string `toml:"locale"`
	CurrencySymbol string `toml:"currency_symbol"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// LoadConfigInfo 配置加载元信息
type LoadConfigInfo struct {
	Path          string
	PortSpecified bool
}

// DefaultConfig 默认配置
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:        20262,
			DevMode:     false,
			OpenBrowser: true,
		},
		Upload: UploadConfig{
			SimulatedDelayMs:  2000,
			AllowedExtensions: []string{".xlsx", ".xls", ".csv"},
		},
		Display: DisplayConfig{
			Locale:         "en-US",
			CurrencySymbol: "₹",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// UploadDelay 模拟上传耗时
func (c *AppConfig) UploadDelay() time.Duration {
	return time.Duration(c.Upload.SimulatedDelayMs) * time.Millisecond
}

// Validate 校验配置
func (c *AppConfig) Validate() error {
	var errs []string

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Sprintf("invalid port %d: must be between 1 and 65535", c.Server.Port))
	}
	if c.Upload.SimulatedDelayMs < 0 {
		errs = append(errs, "upload.simulated_delay_ms must not be negative")
	}
	if len(c.Upload.AllowedExtensions) == 0 {
		errs = append(errs, "upload.allowed_extensions must not be empty")
	}
	for _, ext := range c.Upload.AllowedExtensions {
		if !strings.HasPrefix(ext, ".") {
			errs = append(errs, fmt.Sprintf("invalid extension %q: must start with '.'", ext))
		}
	}

	if len(errs) > 0 {
		return errors.New("configuration errors: " + strings.Join(errs, "; "))
	}
	return nil
}

func isPortSpecifiedInToml(data []byte) bool {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return false
	}

	serverAny, ok := raw["server"]
	if !ok {
		return false
	}

	serverMap, ok := serverAny.(map[string]any)
	if !ok {
		return false
	}

	_, ok = serverMap["port"]
	return ok
}

// GetExeDir 获取可执行文件所在目录
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// DefaultConfigPath config.toml 默认位置（可执行文件同目录）
func DefaultConfigPath() string {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}
	return filepath.Join(exeDir, "config.toml")
}

// LoadConfigWithInfo 从默认位置加载配置
func LoadConfigWithInfo() (*AppConfig, LoadConfigInfo, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom 从指定 config.toml 加载配置并叠加环境变量
// 文件不存在时使用默认配置；工作目录下的 .env 会先被载入（不覆盖已有环境变量）
func LoadFrom(path string) (*AppConfig, LoadConfigInfo, error) {
	info := LoadConfigInfo{Path: path}
	cfg := DefaultConfig()

	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		info.PortSpecified = isPortSpecifiedInToml(data)
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, info, fmt.Errorf("parse %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// 配置文件不存在，使用默认配置
	default:
		return nil, info, err
	}

	if err := applyEnv(cfg, &info); err != nil {
		return nil, info, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, info, err
	}

	return cfg, info, nil
}

func applyEnv(cfg *AppConfig, info *LoadConfigInfo) error {
	if v := os.Getenv(EnvPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvPort, v, err)
		}
		cfg.Server.Port = port
		info.PortSpecified = true
	}
	if v := os.Getenv(EnvUploadDelayMs); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvUploadDelayMs, v, err)
		}
		cfg.Upload.SimulatedDelayMs = ms
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv(EnvLocale); v != "" {
		cfg.Display.Locale = v
	}
	return nil
}

// SaveConfig 保存配置到指定路径
func SaveConfig(path string, cfg *AppConfig) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
