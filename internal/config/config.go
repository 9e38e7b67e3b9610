package config

import (
	"context"
	"sync"

	"github.com/iamwavecut/tool"
	"github.com/sethvargo/go-envconfig"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	DefaultLanguage string `env:"LANG,default=en"`
	LocalesPath     string `env:"LOCALES_PATH"`
	LogLevel        string `env:"LOG_LEVEL,default=info"`
}

var once sync.Once
var globalConfig = &Config{}

func Get() Config {
	once.Do(func() {
		cfg := &Config{}
		tool.Must(envconfig.ProcessWith(context.Background(), cfg, envconfig.OsLookuper()))
		globalConfig = cfg
	})
	return *globalConfig
}

// SetupLogger applies the configured log level and the package formatter.
func SetupLogger() {
	log.SetFormatter(&NbFormatter{})
	if lvl, err := log.ParseLevel(Get().LogLevel); err == nil {
		log.SetLevel(lvl)
	}
}
