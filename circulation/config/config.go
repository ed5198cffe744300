package config

import (
	"log"
	"sync"
	"time"

	"github.com/Astemirdum/library-circulation/circulation/internal/scheduler"
	"github.com/Astemirdum/library-circulation/pkg/kafka"
	"github.com/Astemirdum/library-circulation/pkg/logger"
	"github.com/Astemirdum/library-circulation/pkg/postgres"
	"github.com/Astemirdum/library-circulation/pkg/tracing"
	"github.com/kelseyhightower/envconfig"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"CIRCULATION_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"CIRCULATION_HTTP_PORT" default:"8060"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"10s"`
	WriteTimeout time.Duration `yaml:"writeTimeout" envconfig:"HTTP_WRITE" default:"10s"`
}

type Config struct {
	Server    HTTPServer       `yaml:"server"`
	Kafka     kafka.Config     `yaml:"kafka"`
	Database  postgres.DB      `yaml:"db"`
	Log       logger.Log       `yaml:"log"`
	Tracing   tracing.Config   `yaml:"tracing"`
	Scheduler scheduler.Config `yaml:"scheduler"`
}

var (
	once sync.Once
	cfg  *Config
)

// NewConfig reads config from environment. Options override what envconfig has set.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		var config Config
		err := envconfig.Process("", &config)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		for _, op := range ops {
			op(&config)
		}
		cfg = &config
	})

	return cfg
}
