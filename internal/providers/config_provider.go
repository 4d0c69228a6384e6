package providers

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"
	"wadboard/internal/structures"

	"github.com/spf13/viper"
)

const (
	AppName         = "wadboard"
	DefaultPassword = "wadboard"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("webServer.host", "0.0.0.0")
	v.SetDefault("webServer.port", 3000)
	v.SetDefault("persistence.filePath", "data/dashboard.json")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.mode", 0644)
	v.SetDefault("auth.password", DefaultPassword)
	v.SetDefault("auth.sessionTTL", time.Hour)
	v.SetDefault("auth.cookieName", "wadboard_session")
	v.SetDefault("prober.interval", 10*time.Second)
	v.SetDefault("prober.httpTimeout", 5*time.Second)
	v.SetDefault("prober.pingTimeout", 2*time.Second)
	v.SetDefault("prober.pingBinary", "ping")
	v.SetDefault("wol.timeout", 3*time.Second)
	v.SetDefault("wol.scheme", "http")
	v.SetDefault("wol.scriptPath", "/rest/system/script/run")
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.size", DefaultCacheSizeMB)
	v.SetDefault("cache.ttl", 10*time.Second)
	v.SetDefault("metrics.enabled", false)
	v.SetDefault("frontend.indexPath", "public/index.html")
}

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	v := viper.New()
	setDefaults(v)

	filename := filepath.Base(flags.ConfigPath)
	v.AddConfigPath(filepath.Dir(flags.ConfigPath))
	v.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	v.SetConfigType("yaml")

	_ = v.BindEnv("auth.password", "WADBOARD_PASSWORD")
	_ = v.BindEnv("persistence.filePath", "WADBOARD_DATA_FILE")
	_ = v.BindEnv("webServer.port", "WADBOARD_PORT")
	_ = v.BindEnv("logger.level", "WADBOARD_LOG_LEVEL")
	_ = v.BindEnv("prober.interval", "WADBOARD_PROBE_INTERVAL")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	if err := v.Unmarshal(&conf); err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	if err := cnfValidator.Validate(); err != nil {
		return nil, err
	}

	conf.AppName = AppName
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
