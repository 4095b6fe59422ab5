package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Env       string
	Server    ServerConfig
	DB        DBConfig
	Redis     RedisConfig
	LLM       LLMConfig
	Interview InterviewConfig
	Recruit   RecruitConfig
	NATS      NATSConfig
	Logger    LoggerConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	BodyLimitMB  int
}

type DBConfig struct {
	Path string
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// LLMConfig OpenAI 호환 엔드포인트(OpenRouter) 설정
type LLMConfig struct {
	BaseURL                    string
	APIKey                     string
	DefaultModel               string
	EvaluationModel            string
	FollowUpModel              string
	TranscriptionModel         string
	TranscriptionFallbackModel string
	RecruitModel               string
	RequestTimeout             time.Duration
}

type InterviewConfig struct {
	PoolLimit   int
	LockTTL     time.Duration
	SetCacheTTL time.Duration
}

type RecruitConfig struct {
	RegisterURL       string
	RegisterTimeout   time.Duration
	KeepaliveInterval time.Duration
}

type NATSConfig struct {
	URL     string
	Subject string
}

type LoggerConfig struct {
	Level string
	Env   string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "development")

	v.SetDefault("server.port", 8090)
	v.SetDefault("server.read_timeout", 30)
	v.SetDefault("server.write_timeout", 0)
	v.SetDefault("server.body_limit_mb", 30)

	v.SetDefault("db.path", "data/interview.db")

	v.SetDefault("redis.db", 0)

	v.SetDefault("llm.base_url", "https://openrouter.ai/api/v1")
	v.SetDefault("llm.default_model", "google/gemini-2.5-flash-preview-09-2025")
	v.SetDefault("llm.evaluation_model", "google/gemini-2.5-flash-preview-09-2025")
	v.SetDefault("llm.followup_model", "google/gemini-2.5-flash-preview-09-2025")
	v.SetDefault("llm.transcription_model", "google/gemini-2.5-flash")
	v.SetDefault("llm.transcription_fallback_model", "google/gemini-2.5-flash")
	v.SetDefault("llm.recruit_model", "google/gemini-3-pro-preview")
	v.SetDefault("llm.request_timeout", 0)

	v.SetDefault("interview.pool_limit", 20)
	v.SetDefault("interview.lock_ttl", 300)
	v.SetDefault("interview.set_cache_ttl", 3600)

	v.SetDefault("recruit.register_url", "https://api.korfit.co.kr/api/v2/recruit")
	v.SetDefault("recruit.register_timeout", 30)
	v.SetDefault("recruit.keepalive_interval", 3)

	v.SetDefault("nats.subject", "interview.completed")

	v.SetDefault("logger.level", "info")
}

// LoadConfig .env -> config.yaml -> 환경변수 순서로 설정을 읽는다.
// config.yaml 이 없으면 기본값과 환경변수만 사용한다.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Add config paths based on environment
	if os.Getenv("ENV") == "test" {
		v.AddConfigPath("../../config")
		v.AddConfigPath("../../")
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	setDefaults(v)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	cfg := &Config{
		Env: v.GetString("env"),
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  time.Duration(v.GetInt("server.read_timeout")) * time.Second,
			WriteTimeout: time.Duration(v.GetInt("server.write_timeout")) * time.Second,
			BodyLimitMB:  v.GetInt("server.body_limit_mb"),
		},
		DB: DBConfig{
			Path: v.GetString("db.path"),
		},
		Redis: RedisConfig{
			Address:  v.GetString("redis.address"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		LLM: LLMConfig{
			BaseURL:                    v.GetString("llm.base_url"),
			APIKey:                     v.GetString("llm.api_key"),
			DefaultModel:               v.GetString("llm.default_model"),
			EvaluationModel:            v.GetString("llm.evaluation_model"),
			FollowUpModel:              v.GetString("llm.followup_model"),
			TranscriptionModel:         v.GetString("llm.transcription_model"),
			TranscriptionFallbackModel: v.GetString("llm.transcription_fallback_model"),
			RecruitModel:               v.GetString("llm.recruit_model"),
			RequestTimeout:             time.Duration(v.GetInt("llm.request_timeout")) * time.Second,
		},
		Interview: InterviewConfig{
			PoolLimit:   v.GetInt("interview.pool_limit"),
			LockTTL:     time.Duration(v.GetInt("interview.lock_ttl")) * time.Second,
			SetCacheTTL: time.Duration(v.GetInt("interview.set_cache_ttl")) * time.Second,
		},
		Recruit: RecruitConfig{
			RegisterURL:       v.GetString("recruit.register_url"),
			RegisterTimeout:   time.Duration(v.GetInt("recruit.register_timeout")) * time.Second,
			KeepaliveInterval: time.Duration(v.GetInt("recruit.keepalive_interval")) * time.Second,
		},
		NATS: NATSConfig{
			URL:     v.GetString("nats.url"),
			Subject: v.GetString("nats.subject"),
		},
		Logger: LoggerConfig{
			Level: v.GetString("logger.level"),
			Env:   v.GetString("env"),
		},
	}

	// Override with environment variables if set
	if env := os.Getenv("ENV"); env != "" {
		cfg.Env = env
		cfg.Logger.Env = env
	}
	if port := os.Getenv("PORT"); port != "" {
		var p int
		if _, err := fmt.Sscanf(port, "%d", &p); err == nil && p > 0 {
			cfg.Server.Port = p
		}
	}
	if dbPath := os.Getenv("DATABASE_PATH"); dbPath != "" {
		cfg.DB.Path = dbPath
	}
	if redisAddress := os.Getenv("REDIS_ADDRESS"); redisAddress != "" {
		cfg.Redis.Address = redisAddress
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		cfg.Redis.Password = redisPassword
	}
	if apiKey := os.Getenv("OPENROUTER_API_KEY"); apiKey != "" {
		cfg.LLM.APIKey = apiKey
	}
	if natsURL := os.Getenv("NATS_URL"); natsURL != "" {
		cfg.NATS.URL = natsURL
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.Logger.Level = level
	}

	return cfg, nil
}

// IsProduction reports whether the service runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
