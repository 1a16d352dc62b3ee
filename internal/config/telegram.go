package config

import "os"

const telegramTokenEnvKey = "TELEGRAM_TOKEN"

type TelegramConfig struct {
	ApiToken string `yaml:"token"`
}

func (t *TelegramConfig) applyEnv() {
	if v := os.Getenv(telegramTokenEnvKey); v != "" {
		t.ApiToken = v
	}
}

func (t *TelegramConfig) Token() string {
	return t.ApiToken
}
