package structures

import "time"

type Server struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required|uint|min:1|max:65535"`
}

type Persistence struct {
	FilePath string `yaml:"filePath" validate:"required"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir"`
}

type AuthConfig struct {
	Password     string        `yaml:"password" validate:"required"`
	SessionTTL   time.Duration `yaml:"sessionTTL" validate:"required|min:1"`
	CookieName   string        `yaml:"cookieName" validate:"required"`
	HashKey      string        `yaml:"hashKey"`
	SecureCookie bool          `yaml:"secureCookie"`
}

type ProberConfig struct {
	Interval    time.Duration `yaml:"interval" validate:"required|min:1"`
	HTTPTimeout time.Duration `yaml:"httpTimeout" validate:"required|min:1"`
	PingTimeout time.Duration `yaml:"pingTimeout" validate:"required|min:1"`
	PingBinary  string        `yaml:"pingBinary" validate:"required"`
}

type WolConfig struct {
	Timeout    time.Duration `yaml:"timeout" validate:"required|min:1"`
	Scheme     string        `yaml:"scheme" validate:"required|in:http,https"`
	ScriptPath string        `yaml:"scriptPath" validate:"required"`
}

type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Size    int           `yaml:"size"`
	TTL     time.Duration `yaml:"ttl"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type FrontendConfig struct {
	IndexPath string `yaml:"indexPath"`
}

type Config struct {
	AppName     string
	Debug       bool
	Path        string
	WebServer   Server         `yaml:"webServer"`
	Persistence Persistence    `yaml:"persistence"`
	Logger      LoggerConfig   `yaml:"logger"`
	Auth        AuthConfig     `yaml:"auth"`
	Prober      ProberConfig   `yaml:"prober"`
	Wol         WolConfig      `yaml:"wol"`
	Cache       CacheConfig    `yaml:"cache"`
	Metrics     MetricsConfig  `yaml:"metrics"`
	Frontend    FrontendConfig `yaml:"frontend"`
}
