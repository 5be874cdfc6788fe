package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/weiawesome/imei-service/internal/generator"
	pkgconfig "github.com/weiawesome/imei-service/pkg/config"
	"github.com/weiawesome/imei-service/pkg/imei/imeijson"
	pkglog "github.com/weiawesome/imei-service/pkg/log"
)

type Config struct {
	Server    ServerConfig
	GRPC      GRPCConfig
	Generator GeneratorConfig
	JSON      JSONConfig
	Log       pkglog.Config
}

type ServerConfig struct {
	Host string
	Port int
}

// Addr returns host:port.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type GRPCConfig struct {
	Host string
	Port int
}

func (g GRPCConfig) Addr() string {
	return fmt.Sprintf("%s:%d", g.Host, g.Port)
}

type GeneratorConfig struct {
	Seed     uint64 `mapstructure:"seed"` // 0 selects the secure source
	MaxBatch int    `mapstructure:"max_batch"`
}

type JSONConfig struct {
	WriteAs        string `mapstructure:"write_as"`
	NumberHandling string `mapstructure:"number_handling"`
}

// Converter builds the JSON converter described by c.
func (c JSONConfig) Converter() (imeijson.Converter, error) {
	write, err := imeijson.ParseWriteOption(c.WriteAs)
	if err != nil {
		return imeijson.Converter{}, err
	}
	numbers, err := imeijson.ParseNumberHandling(c.NumberHandling)
	if err != nil {
		return imeijson.Converter{}, err
	}
	return imeijson.Converter{WriteOption: write, NumberHandling: numbers}, nil
}

func Load() (*Config, error) {
	v, err := pkgconfig.Load(pkgconfig.GetEnv("IMEI_CONFIG_PATH", "./config"), "config")
	if err != nil {
		return nil, err
	}
	return FromViper(v)
}

// FromViper applies defaults and env bindings to v and decodes it.
func FromViper(v *viper.Viper) (*Config, error) {
	// Set defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8094)
	v.SetDefault("grpc.host", "0.0.0.0")
	v.SetDefault("grpc.port", 50054)
	v.SetDefault("generator.seed", 0)
	v.SetDefault("generator.max_batch", generator.DefaultMaxBatch)
	v.SetDefault("json.write_as", "default")
	v.SetDefault("json.number_handling", "strict")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("log.service_name", "imei-service")

	// Override from environment
	bindings := map[string]string{
		"server.port":         "PORT",
		"grpc.port":           "GRPC_PORT",
		"generator.seed":      "IMEI_SEED",
		"generator.max_batch": "IMEI_MAX_BATCH",
		"json.write_as":       "IMEI_JSON_WRITE_AS",
		"log.level":           "LOG_LEVEL",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if _, err := cfg.JSON.Converter(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
