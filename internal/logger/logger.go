// internal/logger/logger.go

// Package logger 為全專案共用的結構化日誌，底層使用 log/slog。
// 呼叫方式統一為 logger.Info(msg, logger.Fields{...})，錯誤另帶 err。
package logger

import (
	"io"
	"log/slog"
	"sort"
	"strings"
)

// Fields 為附加在日誌上的鍵值。
type Fields map[string]any

// Setup 設定輸出位置與等級；level 為 "debug" 時開啟除錯日誌，其餘皆為 info。
func Setup(w io.Writer, level string) {
	lvl := slog.LevelInfo
	if strings.EqualFold(strings.TrimSpace(level), "debug") {
		lvl = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})))
}

func Debug(message string, fields Fields) {
	slog.Debug(message, attrs(fields)...)
}

func Info(message string, fields Fields) {
	slog.Info(message, attrs(fields)...)
}

func Error(message string, err error, fields Fields) {
	args := attrs(fields)
	if err != nil {
		args = append(args, slog.String("error", err.Error()))
	}
	slog.Error(message, args...)
}

// attrs 依鍵排序轉成 slog 參數，讓同一筆日誌的欄位順序固定。
func attrs(fields Fields) []any {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]any, 0, len(keys))
	for _, k := range keys {
		out = append(out, slog.Any(k, fields[k]))
	}
	return out
}
