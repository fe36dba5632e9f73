package context

import (
	"context"

	"github.com/spf13/viper"
	"github.com/yeisme/animations/pkg/configs"
	"github.com/yeisme/animations/pkg/utils/log"
)

// AppContext 命令执行时共享的上下文
type AppContext struct {
	context.Context
	Config *configs.Config // 应用配置
	Viper  *viper.Viper    // 配置来源
	Logger log.Logger      // 日志记录器
}

// GlobalFlags 全局命令行标志
type GlobalFlags struct {
	ConfigPath    string
	Debug         bool
	Verbose       bool
	Quiet         bool
	VersionEnable bool
}

// InitAppContext 加载配置并初始化日志，命令行标志优先于配置文件
func InitAppContext(ctx context.Context, flags GlobalFlags) (*AppContext, error) {
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

	logger := log.InitLogger(ctx, &config.Log, &config.App)
	if path := v.ConfigFileUsed(); path != "" {
		logger.Debug().Str("path", path).Msg("config file loaded")
	}

	return &AppContext{
		Context: ctx,
		Config:  config,
		Viper:   v,
		Logger:  logger,
	}, nil
}
