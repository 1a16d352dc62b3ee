package config

type AppConfig struct {
	CurrencySymbol     string `yaml:"currency-symbol"`
	HistoryWindowTurns int    `yaml:"history-window-turns"`
}

func (s *AppConfig) Currency() string {
	if s.CurrencySymbol == "" {
		return "$"
	}
	return s.CurrencySymbol
}

func (s *AppConfig) HistoryWindow() int {
	if s.HistoryWindowTurns <= 0 {
		return 5
	}
	return s.HistoryWindowTurns
}
