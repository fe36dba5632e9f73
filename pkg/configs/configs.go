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

// Config 应用配置结构
type Config struct {
	Version   string          `mapstructure:"version"`
	Log       LogConfig       `mapstructure:"log"`
	App       AppConfig       `mapstructure:"app"`
	Animation AnimationConfig `mapstructure:"animation"`
}

// setDefaults 设置默认配置值
func setDefaults(v *viper.Viper) {
	v.SetDefault("version", "1.0")
	setLogConfigDefaults(v)
	setAppConfigDefaults(v)
	setAnimationConfigDefaults(v)
}

// findConfigFile 按搜索路径查找不同格式的配置文件
func findConfigFile() (string, bool) {
	// 配置文件搜索路径
	searchPaths := []string{
		".",
		"./configs",
		"$HOME",
		"$HOME/.config",
		"$HOME/.config/animations",
	}

	// Windows 特殊路径
	if runtime.GOOS == "windows" {
		searchPaths = append(searchPaths,
			"$USERPROFILE",
			"$APPDATA/animations",
		)
	} else {
		searchPaths = append(searchPaths, "/etc/animations")
	}

	configNames := []string{".animations", "animations"}
	extensions := []string{"yaml", "yml", "json", "toml"}

	for _, path := range searchPaths {
		for _, name := range configNames {
			for _, ext := range extensions {
				configFile := filepath.Join(path, name+"."+ext)

				if strings.Contains(configFile, "$") {
					configFile = os.ExpandEnv(configFile)
				}

				if _, err := os.Stat(configFile); err == nil {
					return configFile, true
				}
			}
		}
	}

	return "", false
}

// LoadConfig 加载配置文件
// configPath 为空时按默认路径搜索，找不到配置文件时使用默认值
func LoadConfig(configPath string) (*Config, *viper.Viper, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else if file, ok := findConfigFile(); ok {
		v.SetConfigFile(file)
	}

	// 设置环境变量前缀，如 ANIMATIONS_ANIMATION_DELAY
	v.SetEnvPrefix("ANIMATIONS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if v.ConfigFileUsed() != "" {
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, nil, fmt.Errorf("读取配置文件失败: %w", err)
			}
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	// 确保日志目录存在
	if config.Log.Mode == "file" || config.Log.Mode == "both" {
		logDir := filepath.Dir(config.Log.FilePath)
		if err := os.MkdirAll(logDir, 0755); err != nil {
			return nil, nil, fmt.Errorf("创建日志目录失败: %w", err)
		}
	}

	return &config, v, nil
}
