package bank

import (
	"os"
	"path/filepath"
	"testing"
)

func writeRates(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rates.json")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestLoadRatesOverlaysDefaults(t *testing.T) {
	path := writeRates(t, `{"money_market":{"loyal_annual_rate":"1.1"},"college_age_ceiling":26}`)

	r, err := LoadRates(path)
	if err != nil {
		t.Fatalf("LoadRates err=%v", err)
	}
	if !r.MoneyMarket.LoyalAnnualRate.Equal(d("1.1")) || r.CollegeAgeCeiling != 26 {
		t.Fatalf("overrides not applied: %+v", r)
	}
	// 未列出的欄位保留預設值
	if !r.MoneyMarket.AnnualRate.Equal(d("0.8")) || !r.Checking.MonthlyFee.Equal(d("25")) {
		t.Fatalf("defaults lost: %+v", r)
	}

	l := NewLedger(WithRates(r), WithClock(fixedClock))
	if got := l.Rates().CollegeAgeCeiling; got != 26 {
		t.Fatalf("ledger ceiling=%d want 26", got)
	}
}

func TestLoadRatesErrors(t *testing.T) {
	if _, err := LoadRates(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
	if _, err := LoadRates(writeRates(t, `{not json`)); err == nil {
		t.Fatal("expected decode error")
	}
	if _, err := LoadRates(writeRates(t, `{"savings":{"monthly_fee":"-1"}}`)); err == nil {
		t.Fatal("expected validation error for negative fee")
	}
}

func TestDefaultRatesValid(t *testing.T) {
	if err := DefaultRates().Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
}
