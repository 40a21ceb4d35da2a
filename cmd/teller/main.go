// cmd/teller/main.go

// 本程式是銀行櫃員的命令列前端：從標準輸入逐行讀取交易命令，輸出結果訊息。
// 此檔案負責載入設定、初始化 logger 與帳本（bank, teller），
// 並在收到 SIGINT/SIGTERM 時停止讀取。

package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"bankteller/internal/bank"
	"bankteller/internal/config"
	"bankteller/internal/logger"
	"bankteller/internal/teller"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Error("config load failed", err, nil)
		os.Exit(1)
	}
	logger.Setup(os.Stderr, cfg.LogLevel)

	// 有指定利率檔時覆寫預設表
	rates := bank.DefaultRates()
	if cfg.RatesFile != "" {
		if rates, err = bank.LoadRates(cfg.RatesFile); err != nil {
			logger.Error("rates load failed", err, logger.Fields{"path": cfg.RatesFile})
			os.Exit(1)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	l := bank.NewLedger(bank.WithRates(rates))
	logger.Info("teller started", logger.Fields{"log_level": cfg.LogLevel, "rates_file": cfg.RatesFile})

	err = teller.New(l).Run(ctx, os.Stdin, os.Stdout)
	switch {
	case errors.Is(err, context.Canceled):
		logger.Info("teller interrupted", logger.Fields{"accounts": l.Len()})
		return
	case err != nil:
		logger.Error("teller stopped", err, logger.Fields{"accounts": l.Len()})
		stop()
		os.Exit(1)
	}
	logger.Info("teller finished", logger.Fields{"accounts": l.Len()})
}
