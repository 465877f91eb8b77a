package config

import "fmt"

type NotifierConfig struct {
	TelegramToken string `mapstructure:"telegram_token"`
	AdminChatID   int64  `mapstructure:"admin_chat_id"`
}

func (config *NotifierConfig) validate() error {
	if config.TelegramToken != "" && config.AdminChatID == 0 {
		return fmt.Errorf("admin_chat_id is required when telegram_token is set")
	}
	return nil
}

func (config *NotifierConfig) bindEnvironmentVariables() error {
	return bindAll(map[string]string{
		"notifier.telegram_token": "TELEGRAM_TOKEN",
		"notifier.admin_chat_id":  "TELEGRAM_ADMIN_CHAT_ID",
	})
}
