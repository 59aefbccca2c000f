package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const configFile = "data/config.yaml"

type config struct {
	Server    ServerConfig    `yaml:"server"`
	Exchange  ExchangeConfig  `yaml:"exchange"`
	App       AppConfig       `yaml:"app"`
	Postgres  PostgresConfig  `yaml:"postgres"`
	Kafka     KafkaConfig     `yaml:"kafka"`
	Memcached MemcachedConfig `yaml:"memcached"`
}

type Service struct {
	config config
}

func New() (*Service, error) {
	s := &Service{}

	rawYAML, err := os.ReadFile(configFile)
	if err != nil {
		return nil, errors.Wrap(err, "reading config file")
	}

	err = yaml.Unmarshal(rawYAML, &s.config)
	if err != nil {
		return nil, errors.Wrap(err, "parsing yaml")
	}

	return s, nil
}

func (s *Service) Server() *ServerConfig {
	return &s.config.Server
}

func (s *Service) Exchange() *ExchangeConfig {
	return &s.config.Exchange
}

func (s *Service) App() *AppConfig {
	return &s.config.App
}

func (s *Service) Postgres() *PostgresConfig {
	return &s.config.Postgres
}

func (s *Service) Kafka() *KafkaConfig {
	return &s.config.Kafka
}

func (s *Service) Memcached() *MemcachedConfig {
	return &s.config.Memcached
}
