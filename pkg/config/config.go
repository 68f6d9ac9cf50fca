package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"FinScan/pkg/util"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const envPrefix = "SCANNER_"

type Config struct {
	Environment string `yaml:"environment" default:"development" validate:"oneof=development staging production test"`
	Server      struct {
		Host            string        `yaml:"host" default:"0.0.0.0"`
		Port            int           `yaml:"port" default:"8080" validate:"min=1,max=65535"`
		ReadTimeout     time.Duration `yaml:"read_timeout" default:"10s"`
		WriteTimeout    time.Duration `yaml:"write_timeout" default:"90s"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"10s"`
		SlowThreshold   time.Duration `yaml:"slow_threshold" default:"30s"`
		CORS            bool          `yaml:"cors" default:"true"`
	} `yaml:"server"`
	Log struct {
		Level  string `yaml:"level" default:"info" validate:"oneof=debug info warn error"`
		Format string `yaml:"format" default:"json" validate:"oneof=json console"`
		Output string `yaml:"output" default:"stdout" validate:"required"`
	} `yaml:"log"`
	Metrics struct {
		Enabled bool   `yaml:"enabled" default:"true"`
		Path    string `yaml:"path" default:"/metrics"`
	} `yaml:"metrics"`
	Quotes struct {
		BaseURL             string        `yaml:"base_url" default:"https://query1.finance.yahoo.com" validate:"url"`
		UserAgent           string        `yaml:"user_agent" default:"Mozilla/5.0"`
		HistoryTimeout      time.Duration `yaml:"history_timeout" default:"8s"`
		FundamentalsTimeout time.Duration `yaml:"fundamentals_timeout" default:"6s"`
		Attempts            int           `yaml:"attempts" default:"1" validate:"min=1,max=5"`
		MaxConcurrency      int           `yaml:"max_concurrency" default:"16" validate:"min=1"`
		RequestsPerSecond   float64       `yaml:"requests_per_second" default:"0" validate:"gte=0"`
		Burst               int           `yaml:"burst" default:"16" validate:"min=1"`
	} `yaml:"quotes"`
	Scanner struct {
		CacheTTL      time.Duration `yaml:"cache_ttl" default:"15m"`
		Timezone      string        `yaml:"timezone" default:"Asia/Kolkata"`
		ExchangeMIC   string        `yaml:"exchange_mic" default:"xnse"`
		SymbolWorkers int           `yaml:"symbol_workers" default:"8" validate:"min=1"`
		Universe      []string      `yaml:"universe"`
		IntradayORB   bool          `yaml:"intraday_orb" default:"false"`
	} `yaml:"scanner"`
	Cache struct {
		Redis struct {
			Enabled   bool   `yaml:"enabled"`
			Addr      string `yaml:"addr" default:"localhost:6379" validate:"required_if=Enabled true"`
			Password  string `yaml:"password"`
			DB        int    `yaml:"db"`
			KeyPrefix string `yaml:"key_prefix" default:"finscan:scan:"`
		} `yaml:"redis"`
	} `yaml:"cache"`
	Kafka struct {
		Enabled         bool          `yaml:"enabled"`
		Brokers         []string      `yaml:"brokers" validate:"required_if=Enabled true"`
		Topic           string        `yaml:"topic" default:"finscan.scans"`
		RequiredAcks    int           `yaml:"required_acks" default:"-1"`
		Compression     string        `yaml:"compression" default:"gzip" validate:"oneof=gzip snappy lz4 zstd"`
		AutoCreateTopic bool          `yaml:"auto_create_topic"`
		Producer        struct {
			MaxAttempts  int           `yaml:"max_attempts" default:"3"`
			Linger       time.Duration `yaml:"linger" default:"100ms"`
			BatchBytes   int           `yaml:"batch_bytes" default:"1048576"`
			BatchSize    int           `yaml:"batch_size" default:"10"`
			WriteTimeout time.Duration `yaml:"write_timeout" default:"5s"`
			ReadTimeout  time.Duration `yaml:"read_timeout" default:"5s"`
			Async        bool          `yaml:"async" default:"true"`
		} `yaml:"producer"`
	} `yaml:"kafka"`
	RateLimit struct {
		Capacity     float64 `yaml:"capacity" default:"20" validate:"gte=0"`
		RefillPerSec float64 `yaml:"refill_per_sec" default:"2" validate:"gte=0"`
	} `yaml:"ratelimit"`
}

// Load reads and parses a YAML configuration file over the tag defaults, so
// explicit false and zero values in the file survive. An empty path yields
// the defaults.
func Load(path string) (*Config, error) {
	var c Config
	if err := defaults.Set(&c); err != nil {
		return nil, fmt.Errorf("config defaults: %w", err)
	}
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(b, &c); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &c, nil
}

// LoadWithEnv loads an optional .env file, then the YAML file, then applies
// SCANNER_* environment overrides.
func LoadWithEnv(path, dotenv string) (*Config, error) {
	if dotenv != "" {
		if err := godotenv.Load(dotenv); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", dotenv, err)
		}
	}
	c, err := Load(path)
	if err != nil {
		return nil, err
	}
	if err := c.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return c, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(name string, dst *string) {
		if v, ok := lookup(envPrefix + name); ok && v != "" {
			*dst = v
		}
	}
	list := func(name string, dst *[]string) {
		if v, ok := lookup(envPrefix + name); ok && v != "" {
			*dst = util.SplitList(v)
		}
	}
	var errs []error
	integer := func(name string, dst *int) {
		if v, ok := lookup(envPrefix + name); ok && v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", envPrefix, name, err))
				return
			}
			*dst = n
		}
	}
	boolean := func(name string, dst *bool) {
		if v, ok := lookup(envPrefix + name); ok && v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", envPrefix, name, err))
				return
			}
			*dst = b
		}
	}
	duration := func(name string, dst *time.Duration) {
		if v, ok := lookup(envPrefix + name); ok && v != "" {
			d, err := time.ParseDuration(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", envPrefix, name, err))
				return
			}
			*dst = d
		}
	}

	str("ENVIRONMENT", &c.Environment)
	integer("PORT", &c.Server.Port)
	str("LOG_LEVEL", &c.Log.Level)
	str("LOG_FORMAT", &c.Log.Format)
	str("QUOTES_BASE_URL", &c.Quotes.BaseURL)
	integer("QUOTES_MAX_CONCURRENCY", &c.Quotes.MaxConcurrency)
	duration("CACHE_TTL", &c.Scanner.CacheTTL)
	str("TIMEZONE", &c.Scanner.Timezone)
	list("UNIVERSE", &c.Scanner.Universe)
	integer("SYMBOL_WORKERS", &c.Scanner.SymbolWorkers)
	boolean("INTRADAY_ORB", &c.Scanner.IntradayORB)
	boolean("REDIS_ENABLED", &c.Cache.Redis.Enabled)
	str("REDIS_ADDR", &c.Cache.Redis.Addr)
	str("REDIS_PASSWORD", &c.Cache.Redis.Password)
	boolean("KAFKA_ENABLED", &c.Kafka.Enabled)
	list("KAFKA_BROKERS", &c.Kafka.Brokers)
	str("KAFKA_TOPIC", &c.Kafka.Topic)

	return errors.Join(errs...)
}

var validate = validator.New()

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, e := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %s", e.Namespace(), e.Tag()))
			}
			return errors.New(strings.Join(msgs, "; "))
		}
		return err
	}
	if c.Scanner.CacheTTL <= 0 {
		return fmt.Errorf("scanner.cache_ttl must be positive")
	}
	if c.Quotes.HistoryTimeout <= 0 || c.Quotes.FundamentalsTimeout <= 0 {
		return fmt.Errorf("quotes timeouts must be positive")
	}
	return nil
}
