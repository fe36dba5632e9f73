package configs

import (
	"github.com/spf13/viper"
)

// AppConfig 应用配置
type AppConfig struct {
	Name    string `mapstructure:"name"`
	Debug   bool   `mapstructure:"debug"`
	Verbose bool   `mapstructure:"verbose"`
	Quiet   bool   `mapstructure:"quiet"` // 是否安静模式，禁止所有日志输出
}

func setAppConfigDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "animations")
	v.SetDefault("app.debug", false)
	v.SetDefault("app.verbose", false)
	v.SetDefault("app.quiet", false)
}
