package config

type ServerConfig struct {
	HTTPPort   int    `yaml:"port"`
	GinMode    string `yaml:"mode"`
	JWTSecret  string `yaml:"jwt-secret"`
	MetricPort int    `yaml:"metrics-port"`
}

func (s *ServerConfig) Port() int {
	if s.HTTPPort == 0 {
		return 8080
	}
	return s.HTTPPort
}

func (s *ServerConfig) Mode() string {
	return s.GinMode
}

func (s *ServerConfig) Secret() string {
	return s.JWTSecret
}

func (s *ServerConfig) MetricsPort() int {
	if s.MetricPort == 0 {
		return 9100
	}
	return s.MetricPort
}
