package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/Astemirdum/library-desk/pkg/kafka"
	"github.com/Astemirdum/library-desk/pkg/logger"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"DESK_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"DESK_HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"30s"`
	WriteTimeout time.Duration
}

type StateHTTPServer struct {
	Host    string        `envconfig:"STATE_HTTP_HOST" default:"localhost"`
	Port    string        `envconfig:"STATE_HTTP_PORT" default:"8081"`
	Timeout time.Duration `envconfig:"STATE_HTTP_TIMEOUT" default:"10s"`
}

type Auth struct {
	Secret   string        `envconfig:"JWT_SECRET" default:"library-desk-secret" json:"-"`
	TokenTTL time.Duration `envconfig:"TOKEN_TTL" default:"12h"`
}

type Circulation struct {
	LoanDays int `envconfig:"LOAN_DAYS" default:"14"`
}

type Persist struct {
	MaxAttempts int           `envconfig:"PERSIST_MAX_ATTEMPTS" default:"5"`
	BaseDelay   time.Duration `envconfig:"PERSIST_BASE_DELAY" default:"200ms"`
	// circuit breaker
	RecordLength     int           `envconfig:"PERSIST_CB_RECORDS" default:"10"`
	OpenTimeout      time.Duration `envconfig:"PERSIST_CB_TIMEOUT" default:"30s"`
	FailureRatio     float64       `envconfig:"PERSIST_CB_RATIO" default:"0.6"`
	RecoveryRequests int           `envconfig:"PERSIST_CB_RECOVERY" default:"2"`
}

type Config struct {
	Server          HTTPServer `yaml:"server"`
	StateHTTPServer StateHTTPServer
	Kafka           kafka.Config
	Auth            Auth
	Circulation     Circulation
	Persist         Persist
	Log             logger.Log `yaml:"log"`
}

var (
	once sync.Once
	cfg  *Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		err := envconfig.Process("", &config)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = &config
		printConfig(cfg)
	})

	return cfg
}

func printConfig(cfg *Config) {
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
