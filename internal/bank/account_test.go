// internal/bank/account_test.go
//
// 帳戶變體規則的單元測試：利息、手續費、最低開戶金額、身分鍵與開戶資格。

package bank

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"bankteller/internal/calendar"
)

var fixedNow = time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// holder 建立持有人；生日字串須為 MM/DD/YYYY。
func holder(t *testing.T, first, last, dob string) Holder {
	t.Helper()
	date, err := calendar.Parse(dob)
	if err != nil {
		t.Fatalf("Parse(%s) err=%v", dob, err)
	}
	return Holder{First: first, Last: last, DOB: date}
}

// TestMoneyMarketMonthlyInterest 餘額 2600 時，loyal 與否皆為 餘額 × 年利率 / 1200。
func TestMoneyMarketMonthlyInterest(t *testing.T) {
	r := DefaultRates()
	m := NewMoneyMarket(holder(t, "Joe", "Doe", "02/12/1982"), d("2600"))

	m.Loyal = true
	want := d("2600").Mul(d("0.95")).Div(decimal.NewFromInt(1200))
	loyal := m.MonthlyInterest(r)
	if !loyal.Equal(want) {
		t.Fatalf("loyal interest=%s want=%s", loyal, want)
	}
	if loyal.StringFixed(2) != "2.06" {
		t.Fatalf("loyal interest display=%s want 2.06", loyal.StringFixed(2))
	}

	m.Loyal = false
	want = d("2600").Mul(d("0.8")).Div(decimal.NewFromInt(1200))
	plain := m.MonthlyInterest(r)
	if !plain.Equal(want) {
		t.Fatalf("non-loyal interest=%s want=%s", plain, want)
	}
	if !loyal.GreaterThan(plain) {
		t.Fatalf("loyal rate should exceed non-loyal")
	}
}

// TestAnnualRateTable 各類型適用利率需與公告表一致；Money Market 高於 Savings。
func TestAnnualRateTable(t *testing.T) {
	r := DefaultRates()
	h := holder(t, "A", "B", "01/01/2000")
	cases := []struct {
		acct Account
		want string
	}{
		{NewChecking(h, d("1")), "0.1"},
		{NewCollegeChecking(h, d("1"), Newark), "0.25"},
		{NewSavings(h, d("1"), false), "0.3"},
		{NewSavings(h, d("1"), true), "0.45"},
		{Account{Holder: h, Kind: MoneyMarket, Balance: d("1")}, "0.8"},
		{NewMoneyMarket(h, d("1")), "0.95"},
	}
	for _, c := range cases {
		if got := c.acct.AnnualRate(r); !got.Equal(d(c.want)) {
			t.Errorf("%s loyal=%v rate=%s want=%s", c.acct.Kind, c.acct.Loyal, got, c.want)
		}
	}
}

// TestMonthlyFee 門檻含等於；College Checking 永不收費；已關閉帳戶不收費。
func TestMonthlyFee(t *testing.T) {
	r := DefaultRates()
	h := holder(t, "A", "B", "01/01/2000")

	mmOver := NewMoneyMarket(h, d("5000"))
	mmOver.Withdrawals = 4
	mmAtLimit := NewMoneyMarket(h, d("5000"))
	mmAtLimit.Withdrawals = 3
	closed := NewChecking(h, d("10"))
	closed.Closed = true

	cases := []struct {
		name string
		acct Account
		want string
	}{
		{"checking below", NewChecking(h, d("999.99")), "25"},
		{"checking at threshold", NewChecking(h, d("1000")), "0"},
		{"college checking", NewCollegeChecking(h, d("1"), Camden), "0"},
		{"savings below", NewSavings(h, d("299"), false), "6"},
		{"savings at threshold", NewSavings(h, d("300"), true), "0"},
		{"money market below", NewMoneyMarket(h, d("2499")), "10"},
		{"money market at limit", mmAtLimit, "0"},
		{"money market over limit", mmOver, "10"},
		{"closed", closed, "0"},
	}
	for _, c := range cases {
		if got := c.acct.MonthlyFee(r); !got.Equal(d(c.want)) {
			t.Errorf("%s: fee=%s want=%s", c.name, got, c.want)
		}
	}
}

func TestMinimumInitialDeposit(t *testing.T) {
	r := DefaultRates()
	h := holder(t, "A", "B", "01/01/2000")
	if got := NewMoneyMarket(h, d("1")).MinimumInitialDeposit(r); !got.Equal(d("2500")) {
		t.Fatalf("money market minimum=%s want 2500", got)
	}
	for _, a := range []Account{NewChecking(h, d("1")), NewCollegeChecking(h, d("1"), Newark), NewSavings(h, d("1"), true)} {
		if !a.MinimumInitialDeposit(r).IsZero() {
			t.Fatalf("%s should have no minimum", a.Kind)
		}
	}
}

// TestSameIdentity 四個欄位都相同才算同一帳戶；姓名不分大小寫。
func TestSameIdentity(t *testing.T) {
	a := NewChecking(holder(t, "Joe", "Doe", "02/12/1982"), d("1"))

	if !a.SameIdentity(NewChecking(holder(t, "JOE", "doe", "02/12/1982"), d("999"))) {
		t.Fatal("names should match case-insensitively and ignore balance")
	}
	if a.SameIdentity(NewSavings(holder(t, "Joe", "Doe", "02/12/1982"), d("1"), false)) {
		t.Fatal("different type must not match")
	}
	if a.SameIdentity(NewChecking(holder(t, "Joe", "Doe", "02/13/1982"), d("1"))) {
		t.Fatal("different DOB must not match")
	}
	if a.SameIdentity(NewChecking(holder(t, "Jon", "Doe", "02/12/1982"), d("1"))) {
		t.Fatal("different first name must not match")
	}
}

// TestCheckEligibility 年齡上限 24：前一天仍 23 歲可開戶，生日當天滿 24 歲即不可。
func TestCheckEligibility(t *testing.T) {
	r := DefaultRates()
	asOf := calendar.Today(fixedNow)

	young := NewCollegeChecking(holder(t, "A", "B", "10/20/2002"), d("1"), NewBrunswick)
	if err := young.CheckEligibility(r, asOf); err != nil {
		t.Fatalf("23-year-old should be eligible, got %v", err)
	}
	old := NewCollegeChecking(holder(t, "A", "B", "10/19/2002"), d("1"), NewBrunswick)
	if err := old.CheckEligibility(r, asOf); !errors.Is(err, ErrInvalidEligibility) {
		t.Fatalf("want ErrInvalidEligibility, got %v", err)
	}
	// 其他類型不受年齡限制
	if err := NewChecking(holder(t, "A", "B", "01/01/1900"), d("1")).CheckEligibility(r, asOf); err != nil {
		t.Fatalf("checking has no age rule, got %v", err)
	}
}

func TestParseKindAndCampus(t *testing.T) {
	for i, code := range []string{"C", "CC", "S", "MM"} {
		k, err := ParseKind(code)
		if err != nil || k != Kinds()[i] || k.Code() != code {
			t.Fatalf("ParseKind(%s)=%v,%v", code, k, err)
		}
	}
	if _, err := ParseKind("X"); !errors.Is(err, ErrInvalidKind) {
		t.Fatalf("want ErrInvalidKind, got %v", err)
	}
	if c, err := ParseCampus("2"); err != nil || c != Camden {
		t.Fatalf("ParseCampus(2)=%v,%v", c, err)
	}
	for _, bad := range []string{"3", "-1", "", "a"} {
		if _, err := ParseCampus(bad); !errors.Is(err, ErrInvalidCampus) {
			t.Fatalf("ParseCampus(%q) want ErrInvalidCampus, got %v", bad, err)
		}
	}
}

func TestClosedAccountAccruesNothing(t *testing.T) {
	a := NewSavings(holder(t, "A", "B", "01/01/2000"), d("100"), true)
	a.Closed = true
	if !a.MonthlyInterest(DefaultRates()).IsZero() || !a.MonthlyFee(DefaultRates()).IsZero() {
		t.Fatal("closed account balance is frozen")
	}
}
