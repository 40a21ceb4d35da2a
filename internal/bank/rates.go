// internal/bank/rates.go
//
// 利率與手續費表。數值皆為公告值，可由 JSON 檔覆寫後以 WithRates 注入 Ledger。
// 年利率以「百分比」表示（0.95 代表 0.95%），月利息 = 餘額 × 年利率 / 1200。

package bank

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
)

// KindRates 為單一帳戶類型的利率與手續費設定。
type KindRates struct {
	AnnualRate      decimal.Decimal `json:"annual_rate"`
	LoyalAnnualRate decimal.Decimal `json:"loyal_annual_rate"`
	MonthlyFee      decimal.Decimal `json:"monthly_fee"`
	// FeeWaivedAt 餘額達到（含）此值即免手續費；為零代表不依餘額免除。
	FeeWaivedAt decimal.Decimal `json:"fee_waived_at"`
}

// Rates 為整張公告表。
type Rates struct {
	Checking        KindRates `json:"checking"`
	CollegeChecking KindRates `json:"college_checking"`
	Savings         KindRates `json:"savings"`
	MoneyMarket     KindRates `json:"money_market"`

	MoneyMarketMinimum         decimal.Decimal `json:"money_market_minimum"`
	MoneyMarketWithdrawalLimit int             `json:"money_market_withdrawal_limit"`
	CollegeAgeCeiling          int             `json:"college_age_ceiling"`
}

// DefaultRates 回傳公告的預設表。
func DefaultRates() Rates {
	return Rates{
		Checking: KindRates{
			AnnualRate:  decimal.RequireFromString("0.1"),
			MonthlyFee:  decimal.NewFromInt(25),
			FeeWaivedAt: decimal.NewFromInt(1000),
		},
		CollegeChecking: KindRates{
			AnnualRate: decimal.RequireFromString("0.25"),
		},
		Savings: KindRates{
			AnnualRate:      decimal.RequireFromString("0.3"),
			LoyalAnnualRate: decimal.RequireFromString("0.45"),
			MonthlyFee:      decimal.NewFromInt(6),
			FeeWaivedAt:     decimal.NewFromInt(300),
		},
		MoneyMarket: KindRates{
			AnnualRate:      decimal.RequireFromString("0.8"),
			LoyalAnnualRate: decimal.RequireFromString("0.95"),
			MonthlyFee:      decimal.NewFromInt(10),
			FeeWaivedAt:     decimal.NewFromInt(2500),
		},
		MoneyMarketMinimum:         decimal.NewFromInt(2500),
		MoneyMarketWithdrawalLimit: 3,
		CollegeAgeCeiling:          24,
	}
}

// For 依類型取出設定；未知類型回傳零值。
func (r Rates) For(k Kind) KindRates {
	switch k {
	case Checking:
		return r.Checking
	case CollegeChecking:
		return r.CollegeChecking
	case Savings:
		return r.Savings
	case MoneyMarket:
		return r.MoneyMarket
	}
	return KindRates{}
}

// Validate 拒絕負值設定。
func (r Rates) Validate() error {
	for _, k := range Kinds() {
		kr := r.For(k)
		for name, v := range map[string]decimal.Decimal{
			"annual_rate":       kr.AnnualRate,
			"loyal_annual_rate": kr.LoyalAnnualRate,
			"monthly_fee":       kr.MonthlyFee,
			"fee_waived_at":     kr.FeeWaivedAt,
		} {
			if v.IsNegative() {
				return fmt.Errorf("rates: %s %s is negative", k, name)
			}
		}
	}
	if r.MoneyMarketMinimum.IsNegative() {
		return fmt.Errorf("rates: money_market_minimum is negative")
	}
	if r.MoneyMarketWithdrawalLimit < 0 || r.CollegeAgeCeiling < 0 {
		return fmt.Errorf("rates: limits must not be negative")
	}
	return nil
}

// LoadRates 讀取 JSON 檔並覆寫預設表；檔案只需列出要變更的欄位。
func LoadRates(path string) (Rates, error) {
	r := DefaultRates()
	f, err := os.Open(path)
	if err != nil {
		return r, fmt.Errorf("open rates file: %w", err)
	}
	defer f.Close()
	if err := json.NewDecoder(f).Decode(&r); err != nil {
		return r, fmt.Errorf("decode rates file %q: %w", path, err)
	}
	if err := r.Validate(); err != nil {
		return r, err
	}
	return r, nil
}
