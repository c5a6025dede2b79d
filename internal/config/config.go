package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App           AppConfig
	Server        ServerConfig
	Logger        LoggerConfig
	DB            DBConfig
	Redis         RedisConfig
	CacheTTLs     CacheTTLConfig
	Generation    GenerationConfig
	Transcoder    TranscoderConfig
	Transcription TranscriptionConfig
	Otel          OtelConfig
}

type AppConfig struct {
	Name    string
	Version string
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	BodyLimitMB  int
}

type LoggerConfig struct {
	Env   string `yaml:"env"`
	Level string `yaml:"level"`
}

type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

// Enabled reports whether a run-statistics database is configured.
func (d DBConfig) Enabled() bool {
	return d.Host != ""
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type CacheTTLConfig struct {
	Transcript string `yaml:"transcript"`
}

type GenerationConfig struct {
	MaxItems           int
	Seed               uint64
	MaxTranscriptChars int
}

type TranscoderConfig struct {
	FFmpegPath string
	SampleRate int
	Channels   int
}

type TranscriptionConfig struct {
	Engine  string
	Whisper WhisperConfig
	OpenAI  OpenAIConfig
	GCP     GCPSpeechConfig
}

type WhisperConfig struct {
	Binary string
	Model  string
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type GCPSpeechConfig struct {
	LanguageCode    string
	CredentialsFile string
}

type OtelConfig struct {
	Enabled     bool
	ServiceName string
	Endpoint    string
	Insecure    bool
	SampleRatio float64
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "quiz-scribe")
	v.SetDefault("app.version", "0.1.0")

	v.SetDefault("server.port", 8090)
	v.SetDefault("server.read_timeout", 20)
	v.SetDefault("server.write_timeout", 20)
	v.SetDefault("server.body_limit_mb", 512)

	v.SetDefault("logger.env", "development")
	v.SetDefault("logger.level", "info")

	v.SetDefault("db.port", 1521)

	v.SetDefault("cache_ttls.transcript", "24h")

	v.SetDefault("generation.max_items", 50)
	v.SetDefault("generation.seed", 0)
	v.SetDefault("generation.max_transcript_chars", 200000)

	v.SetDefault("transcoder.ffmpeg_path", "ffmpeg")
	v.SetDefault("transcoder.sample_rate", 16000)
	v.SetDefault("transcoder.channels", 1)

	v.SetDefault("transcription.engine", "whisper")
	v.SetDefault("transcription.whisper.binary", "whisper")
	v.SetDefault("transcription.whisper.model", "base")
	v.SetDefault("transcription.openai.model", "whisper-1")
	v.SetDefault("transcription.gcp.language_code", "en-US")

	v.SetDefault("otel.service_name", "quiz-scribe")
	v.SetDefault("otel.sample_ratio", 0.1)
}

// LoadConfig reads config.yaml from the usual locations, layering .env and
// APP_-prefixed environment variables on top.
func LoadConfig() (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	var paths []string
	if os.Getenv("ENV") == "test" {
		paths = []string{"../../config", "../../"}
	} else {
		paths = []string{".", "./config"}
	}
	return loadFromPaths(paths...)
}

func loadFromPaths(paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

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
		App: AppConfig{
			Name:    v.GetString("app.name"),
			Version: v.GetString("app.version"),
		},
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  time.Duration(v.GetInt("server.read_timeout")) * time.Second,
			WriteTimeout: time.Duration(v.GetInt("server.write_timeout")) * time.Second,
			BodyLimitMB:  v.GetInt("server.body_limit_mb"),
		},
		Logger: LoggerConfig{
			Env:   v.GetString("logger.env"),
			Level: v.GetString("logger.level"),
		},
		DB: DBConfig{
			Host:     v.GetString("db.host"),
			Port:     v.GetInt("db.port"),
			User:     v.GetString("db.user"),
			Password: v.GetString("db.password"),
			DBName:   v.GetString("db.name"),
		},
		Redis: RedisConfig{
			Address:  v.GetString("redis.address"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		CacheTTLs: CacheTTLConfig{
			Transcript: v.GetString("cache_ttls.transcript"),
		},
		Generation: GenerationConfig{
			MaxItems:           v.GetInt("generation.max_items"),
			Seed:               v.GetUint64("generation.seed"),
			MaxTranscriptChars: v.GetInt("generation.max_transcript_chars"),
		},
		Transcoder: TranscoderConfig{
			FFmpegPath: v.GetString("transcoder.ffmpeg_path"),
			SampleRate: v.GetInt("transcoder.sample_rate"),
			Channels:   v.GetInt("transcoder.channels"),
		},
		Transcription: TranscriptionConfig{
			Engine: strings.ToLower(v.GetString("transcription.engine")),
			Whisper: WhisperConfig{
				Binary: v.GetString("transcription.whisper.binary"),
				Model:  v.GetString("transcription.whisper.model"),
			},
			OpenAI: OpenAIConfig{
				APIKey:  v.GetString("transcription.openai.api_key"),
				Model:   v.GetString("transcription.openai.model"),
				BaseURL: v.GetString("transcription.openai.base_url"),
			},
			GCP: GCPSpeechConfig{
				LanguageCode:    v.GetString("transcription.gcp.language_code"),
				CredentialsFile: v.GetString("transcription.gcp.credentials_file"),
			},
		},
		Otel: OtelConfig{
			Enabled:     v.GetBool("otel.enabled"),
			ServiceName: v.GetString("otel.service_name"),
			Endpoint:    v.GetString("otel.endpoint"),
			Insecure:    v.GetBool("otel.insecure"),
			SampleRatio: v.GetFloat64("otel.sample_ratio"),
		},
	}

	if openAIKey := os.Getenv("OPENAI_API_KEY"); openAIKey != "" && cfg.Transcription.OpenAI.APIKey == "" {
		cfg.Transcription.OpenAI.APIKey = openAIKey
	}

	return cfg, nil
}

// GetDSN builds the go-ora connection URL.
func (c *Config) GetDSN() string {
	return fmt.Sprintf("oracle://%s:%s@%s:%d/%s",
		c.DB.User,
		c.DB.Password,
		c.DB.Host,
		c.DB.Port,
		c.DB.DBName,
	)
}

// ParseTTLStringOrDefault parses a duration such as "24h", falling back to def.
func (c *Config) ParseTTLStringOrDefault(ttl string, def time.Duration) time.Duration {
	if ttl == "" {
		return def
	}
	d, err := time.ParseDuration(ttl)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
