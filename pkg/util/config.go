package util

import (
	"errors"
	"fmt"

	"github.com/lintang-b-s/Pyramidx/pkg"
	"github.com/spf13/viper"
)

// ReadConfig loads config.yaml from ./data/ (or configFile when not empty) into viper.
// a missing default config file is not an error, defaults and env variables still apply.
func ReadConfig(configFile string) error {
	SetDefaults()
	viper.AutomaticEnv()

	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName("config")
		viper.AddConfigPath("./data/")
	}

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("fatal error config file: %w", err)
	}
	return nil
}

func SetDefaults() {
	viper.SetDefault(pkg.CONFIG_API_PORT, 6060)
	viper.SetDefault(pkg.CONFIG_API_TIMEOUT, "30s")
	viper.SetDefault(pkg.CONFIG_HTTP_SERVER_READ_TIMEOUT, "10s")
	viper.SetDefault(pkg.CONFIG_HTTP_SERVER_WRITE_TIMEOUT, "10s")
	viper.SetDefault(pkg.CONFIG_HTTP_SERVER_IDLE_TIMEOUT, "60s")
	viper.SetDefault(pkg.CONFIG_HTTP_SERVER_READ_HEADER_TIMEOUT, "5s")
	viper.SetDefault(pkg.CONFIG_USE_RATE_LIMIT, false)
	viper.SetDefault(pkg.CONFIG_RATE_LIMIT_RPS, 50.0)
	viper.SetDefault(pkg.CONFIG_RATE_LIMIT_BURST, 100)
	viper.SetDefault(pkg.CONFIG_SOLVER_STRATEGY, pkg.STRATEGY_BOTTOM_UP)
	viper.SetDefault(pkg.CONFIG_SOLVER_MAX_RECURSION_DEPTH, pkg.DEFAULT_MAX_RECURSION_DEPTH)
	viper.SetDefault(pkg.CONFIG_CACHE_SIZE, 1024)
	viper.SetDefault(pkg.CONFIG_LOG_LEVEL, "info")
	viper.SetDefault(pkg.CONFIG_WORKERS, 4)
}
