package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Address string `yaml:"address"`
	} `yaml:"server"`
	Database struct {
		Driver string `yaml:"driver"`
		URL    string `yaml:"url"`
	} `yaml:"database"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`
	Storage struct {
		Driver    string `yaml:"driver"` // "local" or "s3"
		LocalDir  string `yaml:"local_dir"`
		Bucket    string `yaml:"bucket"`
		Region    string `yaml:"region"`
		Endpoint  string `yaml:"endpoint"`
		AccessKey string `yaml:"access_key"`
		SecretKey string `yaml:"secret_key"`
	} `yaml:"storage"`
	JWT struct {
		SigningKey     string `yaml:"signing_key"`
		AccessTTLHours int    `yaml:"access_ttl_hours"`
		RefreshTTLDays int    `yaml:"refresh_ttl_days"`
	} `yaml:"jwt"`
	Permissions struct {
		CreateRole string `yaml:"create_role"` // role required to create content
		UpdateRole string `yaml:"update_role"` // role required to update content
	} `yaml:"permissions"`
}

func LoadConfig() Config {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config/config.yaml"
	}

	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Failed to read config file: %v", err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("Failed to unmarshal config data: %v", err)
	}

	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = "local"
	}
	if cfg.Storage.LocalDir == "" {
		cfg.Storage.LocalDir = "./uploads"
	}
	if cfg.JWT.AccessTTLHours == 0 {
		cfg.JWT.AccessTTLHours = 20
	}
	if cfg.JWT.RefreshTTLDays == 0 {
		cfg.JWT.RefreshTTLDays = 30
	}
	if cfg.Permissions.CreateRole == "" {
		cfg.Permissions.CreateRole = "user"
	}
	if cfg.Permissions.UpdateRole == "" {
		cfg.Permissions.UpdateRole = "admin"
	}
	return cfg
}
