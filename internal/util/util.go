package util

import (
	"fmt"
	"os"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/shopspring/decimal"
)

func TimePtr(t time.Time) *time.Time {
	return &t
}

func StringPtr(s string) *string {
	return &s
}

func DecimalPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}

type DatabaseConfig struct {
	ConnStr string `toml:"conn_str"`
}

type PricesConfig struct {
	Dir string `toml:"dir"`
}

type ServerConfig struct {
	Port int `toml:"port"`
}

type ChartConfig struct {
	OutputPath string `toml:"output_path"`
}

type Config struct {
	Database DatabaseConfig `toml:"database"`
	Prices   PricesConfig   `toml:"prices"`
	Server   ServerConfig   `toml:"server"`
	Chart    ChartConfig    `toml:"chart"`
}

func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = "config.toml"
	}
	f, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", path, err)
	}
	config := Config{}
	err = toml.Unmarshal(f, &config)
	if err != nil {
		return nil, err
	}

	return &config, nil
}
