// Package config loads server configuration from a YAML file, falling back
// to defaults when the file is absent.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so YAML values like "45m" or "1.5s" parse.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) Std() time.Duration { return time.Duration(d) }

// Storage backend names accepted in the config file.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendMySQL  = "mysql"
)

type Config struct {
	ListenAddr string  `yaml:"listen_addr"`
	Storage    Storage `yaml:"storage"`
	Pricing    Pricing `yaml:"pricing"`
	Latency    Latency `yaml:"latency"`
}

type Storage struct {
	Backend   string `yaml:"backend"` // memory | redis | mysql
	RedisAddr string `yaml:"redis_addr"`
	MySQLDSN  string `yaml:"mysql_dsn"`
}

type Pricing struct {
	DeliveryFee      float64  `yaml:"delivery_fee"`
	FreeDeliveryOver float64  `yaml:"free_delivery_over"`
	TaxRate          float64  `yaml:"tax_rate"`
	EstimatedReadyIn Duration `yaml:"estimated_ready_in"`
}

// Latency holds the simulated backend delays. Zero disables them.
type Latency struct {
	Login      Duration `yaml:"login"`
	Submission Duration `yaml:"submission"`
	AdminFetch Duration `yaml:"admin_fetch"`
}

// Default returns the configuration used when no file is provided.
func Default() Config {
	return Config{
		ListenAddr: ":8080",
		Storage: Storage{
			Backend:   BackendMemory,
			RedisAddr: "localhost:6379",
			MySQLDSN:  "root:root@tcp(localhost:3306)/storefront?parseTime=true",
		},
		Pricing: Pricing{
			DeliveryFee:      4.99,
			FreeDeliveryOver: 50.00,
			TaxRate:          0.08,
			EstimatedReadyIn: Duration(45 * time.Minute),
		},
		Latency: Latency{
			Login:      Duration(1500 * time.Millisecond),
			Submission: Duration(2 * time.Second),
			AdminFetch: Duration(time.Second),
		},
	}
}

// Load reads the file at path over the defaults. A missing file is not an
// error; malformed YAML and unknown backends are.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	switch cfg.Storage.Backend {
	case BackendMemory, BackendRedis, BackendMySQL:
	default:
		return Config{}, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
	return cfg, nil
}
