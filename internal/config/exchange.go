package config

const defaultExchangeEndpoint = "https://api.exchangerate-api.com/v4/latest"

type ExchangeConfig struct {
	EndpointURL    string `yaml:"endpoint"`
	TimeoutSeconds int    `yaml:"timeout-seconds"`
}

func (e *ExchangeConfig) Endpoint() string {
	if e.EndpointURL == "" {
		return defaultExchangeEndpoint
	}
	return e.EndpointURL
}

func (e *ExchangeConfig) TimeoutSec() int {
	if e.TimeoutSeconds <= 0 {
		return 10
	}
	return e.TimeoutSeconds
}
