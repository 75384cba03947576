package config

import (
	"errors"
	"log/slog"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     Server
	Bun        BunConfig
	Redis      RedisConfig
	Mule       MuleConfig
	Peer       PeerConfig
	LoggerMode LoggerMode
}

type Server struct {
	Port        string
	Environment string
}

type BunConfig struct {
	DSN string
}

type RedisConfig struct {
	URL string
}

type LoggerMode struct {
	Development bool
	Prod        bool
	Level       string
}

// MuleConfig carries the relay tunables. Zero values fall back to the
// defaults the coordinator applies (1 KiB per-message estimate, 1 h custody TTL).
type MuleConfig struct {
	MessageSizeEstimateBytes int64
	CustodyTTL               time.Duration
}

type PeerConfig struct {
	ListenPort        int
	DiscoveryInterval time.Duration
	AdvertiseInterval time.Duration
	PeerStaleAfter    time.Duration
}

func LoadConfig(filename string) (*viper.Viper, error) {
	v := viper.New()

	v.SetConfigName(filename)
	v.SetConfigType("yaml")
	v.AddConfigPath("config")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil, errors.New("config file not found")
		}
		return nil, err
	}
	return v, nil
}

func ParseConfig(v *viper.Viper) (*Config, error) {
	var c Config
	err := v.Unmarshal(&c)
	if err != nil {
		slog.Error("Unable to unmarshal config", "err", err)
		return nil, err
	}
	return &c, nil
}
