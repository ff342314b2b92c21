package config

import (
	"fmt"
	"os"
	"strconv"
)

// Configはアプリ全体の設定
type Config struct {
	BotToken string // Telegram Botトークン

	// 管理者のチャットID（0 = 管理者なし）
	AdminChatID int64

	Port string // ヘルスチェック用HTTPポート
}

// Loadは環境変数
func Load() (Config, error) {
	cfg := Config{
		BotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		Port:     os.Getenv("PORT"),
	}

	// 必須チェック
	if cfg.BotToken == "" {
		return Config{}, fmt.Errorf("TELEGRAM_BOT_TOKEN is required")
	}

	adminID, err := atoi64OrDefault("ADMIN_CHAT_ID", 0)
	if err != nil {
		return Config{}, err
	}
	cfg.AdminChatID = adminID

	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	return cfg, nil
}

// HasAdminは管理者が設定されているか
func (c Config) HasAdmin() bool {
	return c.AdminChatID != 0
}

func atoi64OrDefault(key string, def int64) (int64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	i, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return i, nil
}
