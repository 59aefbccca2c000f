package config

type AppConfig struct {
	BaseCurrencyName        string `yaml:"base-currency"`
	RatePullingDelayMinutes int64  `yaml:"rate-pulling-delay-minutes"`
	TrendMonthsCount        int    `yaml:"trend-months"`
	StatementTTLSeconds     int32  `yaml:"statement-ttl-seconds"`
}

func (s *AppConfig) BaseCurrency() string {
	return s.BaseCurrencyName
}

func (s *AppConfig) PullingDelayMinutes() int64 {
	return s.RatePullingDelayMinutes
}

func (s *AppConfig) TrendMonths() int {
	if s.TrendMonthsCount <= 0 {
		return 6
	}
	return s.TrendMonthsCount
}

func (s *AppConfig) StatementTTL() int32 {
	return s.StatementTTLSeconds
}
