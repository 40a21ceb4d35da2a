// internal/bank/account.go

// Package bank 定義帳戶領域模型與帳本（Ledger）。
// 四種帳戶以 Kind 標記區分，共用同一筆資料結構；利息、手續費、最低開戶金額
// 等行為依 Kind 與注入的 Rates 決定。
package bank

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"bankteller/internal/calendar"
)

// Kind 為帳戶類型標記。
type Kind int

const (
	Checking Kind = iota
	CollegeChecking
	Savings
	MoneyMarket
)

var kindCodes = [...]string{"C", "CC", "S", "MM"}
var kindNames = [...]string{"Checking", "College Checking", "Savings", "Money Market"}

// Kinds 列出所有類型。
func Kinds() []Kind {
	return []Kind{Checking, CollegeChecking, Savings, MoneyMarket}
}

// Code 回傳命令列使用的短代碼（C、CC、S、MM），也是依類型排序的鍵。
func (k Kind) Code() string {
	if k < Checking || k > MoneyMarket {
		return "?"
	}
	return kindCodes[k]
}

func (k Kind) String() string {
	if k < Checking || k > MoneyMarket {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind 由短代碼取得類型。
func ParseKind(code string) (Kind, error) {
	for i, c := range kindCodes {
		if c == code {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("%q: %w", code, ErrInvalidKind)
}

// Campus 為 College Checking 的校區代碼。
type Campus int

const (
	NewBrunswick Campus = iota
	Newark
	Camden
)

var campusNames = [...]string{"NEW_BRUNSWICK", "NEWARK", "CAMDEN"}

func (c Campus) String() string {
	if c < NewBrunswick || c > Camden {
		return fmt.Sprintf("Campus(%d)", int(c))
	}
	return campusNames[c]
}

// ParseCampus 接受 "0"、"1"、"2"。
func ParseCampus(code string) (Campus, error) {
	switch code {
	case "0":
		return NewBrunswick, nil
	case "1":
		return Newark, nil
	case "2":
		return Camden, nil
	}
	return 0, fmt.Errorf("%q: %w", code, ErrInvalidCampus)
}

// Holder 為帳戶持有人資料。
type Holder struct {
	First string
	Last  string
	DOB   calendar.Date
}

// Account represents one ledger record.
// 變體專屬欄位只對對應類型有意義：Campus（College Checking）、
// Loyal（Savings、Money Market）、Withdrawals（Money Market，本期提款次數）。
type Account struct {
	// ID 於開戶時指派，重新開戶沿用；只用於日誌關聯，查找一律依身分鍵。
	ID          uuid.UUID
	Holder      Holder
	Kind        Kind
	Balance     decimal.Decimal
	Closed      bool
	Campus      Campus
	Loyal       bool
	Withdrawals int
}

func NewChecking(h Holder, balance decimal.Decimal) Account {
	return Account{Holder: h, Kind: Checking, Balance: balance}
}

func NewCollegeChecking(h Holder, balance decimal.Decimal, campus Campus) Account {
	return Account{Holder: h, Kind: CollegeChecking, Balance: balance, Campus: campus}
}

func NewSavings(h Holder, balance decimal.Decimal, loyal bool) Account {
	return Account{Holder: h, Kind: Savings, Balance: balance, Loyal: loyal}
}

// NewMoneyMarket 建立 Money Market 帳戶；開戶即為 loyal。
func NewMoneyMarket(h Holder, balance decimal.Decimal) Account {
	return Account{Holder: h, Kind: MoneyMarket, Balance: balance, Loyal: true}
}

// SameIdentity 比對身分鍵：名、姓（不分大小寫）、生日與類型四者皆須相同。
func (a Account) SameIdentity(o Account) bool {
	return a.Kind == o.Kind &&
		strings.EqualFold(a.Holder.First, o.Holder.First) &&
		strings.EqualFold(a.Holder.Last, o.Holder.Last) &&
		a.Holder.DOB.Equal(o.Holder.DOB)
}

// AnnualRate 回傳適用年利率（百分比）；Savings 與 Money Market 依 Loyal 調整。
func (a Account) AnnualRate(r Rates) decimal.Decimal {
	kr := r.For(a.Kind)
	if a.Loyal && (a.Kind == Savings || a.Kind == MoneyMarket) {
		return kr.LoyalAnnualRate
	}
	return kr.AnnualRate
}

var monthsTimesPercent = decimal.NewFromInt(1200)

// MonthlyInterest = 餘額 × 年利率 / 1200，不在計算中四捨五入。
// 已關閉帳戶餘額凍結，利息為零。
func (a Account) MonthlyInterest(r Rates) decimal.Decimal {
	if a.Closed {
		return decimal.Zero
	}
	return a.Balance.Mul(a.AnnualRate(r)).Div(monthsTimesPercent)
}

// MonthlyFee 回傳本期手續費。
// College Checking 一律免收；Money Market 本期提款次數超過上限時不論餘額都收取。
func (a Account) MonthlyFee(r Rates) decimal.Decimal {
	if a.Closed || a.Kind == CollegeChecking {
		return decimal.Zero
	}
	kr := r.For(a.Kind)
	if a.Kind == MoneyMarket && a.Withdrawals > r.MoneyMarketWithdrawalLimit {
		return kr.MonthlyFee
	}
	if kr.FeeWaivedAt.IsPositive() && a.Balance.GreaterThanOrEqual(kr.FeeWaivedAt) {
		return decimal.Zero
	}
	return kr.MonthlyFee
}

// MinimumInitialDeposit 只有 Money Market 有下限。
func (a Account) MinimumInitialDeposit(r Rates) decimal.Decimal {
	if a.Kind == MoneyMarket {
		return r.MoneyMarketMinimum
	}
	return decimal.Zero
}

// CheckEligibility 檢查 College Checking 持有人在 asOf 當天未達年齡上限。
func (a Account) CheckEligibility(r Rates, asOf calendar.Date) error {
	if a.Kind != CollegeChecking {
		return nil
	}
	if age := a.Holder.DOB.AgeOn(asOf); age >= r.CollegeAgeCeiling {
		return fmt.Errorf("age %d, ceiling %d: %w", age, r.CollegeAgeCeiling, ErrInvalidEligibility)
	}
	return nil
}

// refreshLoyalty 讓 Money Market 的 loyal 狀態跟隨餘額是否達最低餘額。
func (a *Account) refreshLoyalty(r Rates) {
	if a.Kind == MoneyMarket {
		a.Loyal = a.Balance.GreaterThanOrEqual(r.MoneyMarketMinimum)
	}
}
