package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. MAHC_LOG_LEVEL.
const EnvPrefix = "MAHC"

type Config struct {
	Log      LogConf      `mapstructure:"log"`
	Defaults DefaultsConf `mapstructure:"defaults"`
	Output   OutputConf   `mapstructure:"output"`
	Batch    BatchConf    `mapstructure:"batch"`
	Server   ServerConf   `mapstructure:"server"`
}

type LogConf struct {
	Level string `mapstructure:"level"`
}

// DefaultsConf fills in hand fields the caller leaves out.
type DefaultsConf struct {
	Seat      string `mapstructure:"seat"`
	Prevalent string `mapstructure:"prevalent"`
}

type OutputConf struct {
	JSON bool `mapstructure:"json"`
}

type BatchConf struct {
	Workers int `mapstructure:"workers"`
}

type ServerConf struct {
	Addr        string    `mapstructure:"addr"`
	MetricsAddr string    `mapstructure:"metricsAddr"`
	Cache       CacheConf `mapstructure:"cache"`
}

type CacheConf struct {
	MaxCost int64         `mapstructure:"maxCost"`
	TTL     time.Duration `mapstructure:"ttl"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "warn")
	v.SetDefault("defaults.seat", "Ew")
	v.SetDefault("defaults.prevalent", "Ew")
	v.SetDefault("output.json", false)
	v.SetDefault("batch.workers", runtime.NumCPU())
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.metricsAddr", "")
	v.SetDefault("server.cache.maxCost", 1<<20)
	v.SetDefault("server.cache.ttl", "10m")
}

// Default returns the built-in configuration, ignoring files and the
// environment.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	cfg, err := (&Loader{v: v}).Config()
	if err != nil {
		panic(err)
	}
	return cfg
}

// Loader reads configuration from an optional file and the environment.
type Loader struct {
	v    *viper.Viper
	file string
}

// NewLoader prepares a loader. An empty configFile searches ./mahc.yaml and
// then $HOME/.mahc.yaml; finding neither is not an error.
func NewLoader(configFile string) (*Loader, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if configFile == "" {
		configFile = findConfigFile()
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}
	return &Loader{v: v, file: configFile}, nil
}

func findConfigFile() string {
	candidates := []string{"mahc.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".mahc.yaml"))
	}
	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c
		}
	}
	return ""
}

// File returns the config file in use, or "" when running on defaults.
func (l *Loader) File() string {
	return l.file
}

// Config decodes the current values.
func (l *Loader) Config() (*Config, error) {
	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if cfg.Batch.Workers < 1 {
		cfg.Batch.Workers = 1
	}
	return &cfg, nil
}

// ErrNoConfigFile is returned by Watch when there is no file to watch.
var ErrNoConfigFile = errors.New("no config file to watch")

// Watch calls onChange with the re-read configuration each time the config
// file is written.
func (l *Loader) Watch(onChange func(*Config, error)) error {
	if l.file == "" {
		return ErrNoConfigFile
	}
	l.v.OnConfigChange(func(in fsnotify.Event) {
		if !in.Has(fsnotify.Write) && !in.Has(fsnotify.Create) {
			return
		}
		onChange(l.Config())
	})
	l.v.WatchConfig()
	return nil
}

// Load is NewLoader followed by Config.
func Load(configFile string) (*Config, error) {
	l, err := NewLoader(configFile)
	if err != nil {
		return nil, err
	}
	return l.Config()
}
