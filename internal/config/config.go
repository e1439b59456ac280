package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server ServerConfig `yaml:"server"`
	Chat   ChatConfig   `yaml:"chat"`
	CORS   CORSConfig   `yaml:"cors"`
	Log    LogConfig    `yaml:"log"`

	// Debug forces debug logging.
	Debug bool `yaml:"debug"`
}

type ServerConfig struct {
	ListenAddr      string        `yaml:"listen"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type ChatConfig struct {
	// Delay is the simulated backend latency applied to every chat call.
	Delay time.Duration `yaml:"delay"`
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type LogConfig struct {
	Level  string `yaml:"level"`  // debug|info|warn|error
	Format string `yaml:"format"` // json|text
}

func Default() Config {
	return Config{
		Server: ServerConfig{
			ListenAddr:      "127.0.0.1:5000",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 8 * time.Second,
		},
		Chat: ChatConfig{
			Delay: 3 * time.Second,
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"*"},
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load layers defaults, the optional YAML file, CHATMOCK_* env vars and
// explicitly set flags, in that order.
func Load(args []string) (Config, error) {
	cfg := Default()

	fs := flag.NewFlagSet("chatmock", flag.ContinueOnError)
	fs.SetOutput(os.Stdout)

	var (
		configPath = fs.String("config", os.Getenv("CHATMOCK_CONFIG"), "Path to a YAML config file (optional)")
		listen     = fs.String("listen", cfg.Server.ListenAddr, "HTTP listen address (host:port)")
		delay      = fs.Duration("delay", cfg.Chat.Delay, "Simulated latency before each chat response")
		origins    = fs.String("cors.origins", strings.Join(cfg.CORS.AllowedOrigins, ","), "Comma-separated allowed CORS origins")
		logLevel   = fs.String("log.level", cfg.Log.Level, "Log level: debug|info|warn|error")
		logFormat  = fs.String("log.format", cfg.Log.Format, "Log format: json|text")
		debug      = fs.Bool("debug", cfg.Debug, "Enable debug logging")
	)

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if p := strings.TrimSpace(*configPath); p != "" {
		if err := loadFile(p, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "listen":
			cfg.Server.ListenAddr = strings.TrimSpace(*listen)
		case "delay":
			cfg.Chat.Delay = *delay
		case "cors.origins":
			cfg.CORS.AllowedOrigins = splitCSV(*origins)
		case "log.level":
			cfg.Log.Level = strings.TrimSpace(*logLevel)
		case "log.format":
			cfg.Log.Format = strings.TrimSpace(*logFormat)
		case "debug":
			cfg.Debug = *debug
		}
	})

	if cfg.Debug {
		cfg.Log.Level = "debug"
	}

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if v := env("CHATMOCK_LISTEN"); v != "" {
		cfg.Server.ListenAddr = v
	}
	if v := env("CHATMOCK_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("CHATMOCK_DELAY: %w", err)
		}
		cfg.Chat.Delay = d
	}
	if v := env("CHATMOCK_CORS_ORIGINS"); v != "" {
		cfg.CORS.AllowedOrigins = splitCSV(v)
	}
	if v := env("CHATMOCK_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := env("CHATMOCK_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := env("CHATMOCK_DEBUG"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("CHATMOCK_DEBUG: %w", err)
		}
		cfg.Debug = b
	}
	return nil
}

func Validate(cfg Config) error {
	if cfg.Server.ListenAddr == "" {
		return errors.New("listen must not be empty")
	}
	if cfg.Chat.Delay < 0 {
		return fmt.Errorf("delay must not be negative: %v", cfg.Chat.Delay)
	}
	if cfg.Server.WriteTimeout > 0 && cfg.Server.WriteTimeout <= cfg.Chat.Delay {
		return fmt.Errorf("write_timeout (%v) must exceed delay (%v)", cfg.Server.WriteTimeout, cfg.Chat.Delay)
	}
	if cfg.Server.ShutdownTimeout <= cfg.Chat.Delay {
		return fmt.Errorf("shutdown_timeout (%v) must exceed delay (%v)", cfg.Server.ShutdownTimeout, cfg.Chat.Delay)
	}
	if len(cfg.CORS.AllowedOrigins) == 0 {
		return errors.New("cors.origins must list at least one origin")
	}

	switch strings.ToLower(cfg.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log.level: %q", cfg.Log.Level)
	}

	switch strings.ToLower(cfg.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("invalid log.format: %q", cfg.Log.Format)
	}
	return nil
}

func env(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func splitCSV(s string) []string {
	raw := strings.Split(s, ",")
	out := make([]string, 0, len(raw))
	for _, r := range raw {
		t := strings.TrimSpace(r)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}
