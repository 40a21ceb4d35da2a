package config

import (
	"os"
	"strings"
)

const defaultLogLevel = "info"

// Config 為 teller 執行期設定，全部來自環境變數。
type Config struct {
	LogLevel  string
	RatesFile string
}

// Load 讀取環境變數：LOG_LEVEL（預設 info）、TELLER_RATES_FILE（選填，JSON 利率表路徑）。
func Load() (Config, error) {
	level := strings.ToLower(strings.TrimSpace(os.Getenv("LOG_LEVEL")))
	if level == "" {
		level = defaultLogLevel
	}

	return Config{
		LogLevel:  level,
		RatesFile: strings.TrimSpace(os.Getenv("TELLER_RATES_FILE")),
	}, nil
}
