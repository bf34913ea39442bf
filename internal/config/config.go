package config

import (
	"log"

	"gopkg.in/yaml.v3"

	"smarttodos/pkg/config"
)

type Config struct {
	DB     config.DBConfig     `yaml:"db"`
	MQ     config.MQConfig     `yaml:"mq"`
	Redis  config.RedisConfig  `yaml:"redis"`
	JWT    config.JWTConfig    `yaml:"jwt"`
	Server config.ServerConfig `yaml:"server"`
	AI     config.AIConfig     `yaml:"ai"`
}

// Load reads the layered YAML config for the current environment and applies
// environment variable overrides on top.
func Load() *Config {
	env := config.GetConfigEnv()

	merged, err := config.LoadConfig(env, "config")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// 先序列化再反序列化，把 map 转成强类型配置
	raw, err := yaml.Marshal(merged)
	if err != nil {
		log.Fatalf("failed to marshal merged config: %v", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		log.Fatalf("failed to decode config: %v", err)
	}

	// 环境变量覆盖
	config.OverrideDBFromEnv(&cfg.DB)
	config.OverrideMQFromEnv(&cfg.MQ)
	config.OverrideRedisFromEnv(&cfg.Redis)
	config.OverrideJWTFromEnv(&cfg.JWT)
	config.OverrideServerFromEnv(&cfg.Server)

	if cfg.AI.ContextLimit <= 0 {
		cfg.AI.ContextLimit = 3
	}
	if cfg.AI.OverrideConfidence <= 0 {
		cfg.AI.OverrideConfidence = 70
	}

	return &cfg
}
