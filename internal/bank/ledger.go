// internal/bank/ledger.go

package bank

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"bankteller/internal/calendar"
	"bankteller/internal/logger"
)

// Ledger 為帳戶集合（聚合根），以插入順序保存所有帳戶紀錄。
// - mu：序列化所有讀寫，讓「先查身分再變更」在同一臨界區內完成。
// - accts：插入順序即一般清單順序；身分鍵以線性掃描比對。
// - rates：注入的利率／手續費表。
// - now：時鐘，用於 College Checking 的年齡判斷。
type Ledger struct {
	mu    sync.Mutex
	accts []*Account
	rates Rates
	now   func() time.Time
}

// Option 設定 Ledger。
type Option func(*Ledger)

// WithRates 注入利率表。
func WithRates(r Rates) Option {
	return func(l *Ledger) { l.rates = r }
}

// WithClock 注入時鐘（測試用固定日期）。
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// NewLedger 建立空帳本；未指定時使用 DefaultRates 與 time.Now。
func NewLedger(opts ...Option) *Ledger {
	l := &Ledger{rates: DefaultRates(), now: time.Now}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Rates 回傳目前使用的利率表。
func (l *Ledger) Rates() Rates {
	return l.rates
}

// Today 回傳帳本時鐘的當日日期。
func (l *Ledger) Today() calendar.Date {
	return calendar.Today(l.now())
}

// Len 回傳紀錄數（含已關閉帳戶）。
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.accts)
}

// find 回傳第一筆身分鍵相符的位置，不論開啟或關閉；找不到回傳 -1。
// 呼叫端須持有 mu。
func (l *Ledger) find(c Account) int {
	for i, a := range l.accts {
		if a.SameIdentity(c) {
			return i
		}
	}
	return -1
}

// FindByIdentity 回傳身分鍵相符帳戶的值拷貝。
func (l *Ledger) FindByIdentity(c Account) (Account, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	i := l.find(c)
	if i < 0 {
		return Account{}, false
	}
	return *l.accts[i], true
}

// Open 新增帳戶。
// 相同身分鍵的帳戶若仍開啟回傳 ErrDuplicateOpen；若已關閉回傳 ErrAccountClosed，
// 須改用 Reopen。
func (l *Ledger) Open(c Account) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.openLocked(c)
}

func (l *Ledger) openLocked(c Account) error {
	if !c.Balance.IsPositive() {
		return ErrBadAmount
	}
	if i := l.find(c); i >= 0 {
		if l.accts[i].Closed {
			return ErrAccountClosed
		}
		return ErrDuplicateOpen
	}
	if err := l.checkOpening(c); err != nil {
		return err
	}

	a := c
	a.ID = uuid.New()
	a.Closed = false
	a.Withdrawals = 0
	a.refreshLoyalty(l.rates)
	l.accts = append(l.accts, &a)

	logger.Debug("ledger open", logger.Fields{
		"id":      a.ID.String(),
		"type":    a.Kind.Code(),
		"balance": a.Balance.String(),
	})
	return nil
}

// checkOpening 檢查最低開戶金額與開戶資格；開戶與重新開戶共用。
func (l *Ledger) checkOpening(c Account) error {
	if c.Balance.LessThan(c.MinimumInitialDeposit(l.rates)) {
		return ErrBelowMinimumDeposit
	}
	return c.CheckEligibility(l.rates, l.Today())
}

// Reopen 找出同身分、同類型且已關閉的紀錄，清除關閉旗標並以候選帳戶的餘額取代。
// 沒有已關閉的相符紀錄時回傳 ErrNotFound。
func (l *Ledger) Reopen(c Account) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.reopenLocked(c)
}

func (l *Ledger) reopenLocked(c Account) error {
	if !c.Balance.IsPositive() {
		return ErrBadAmount
	}
	i := l.find(c)
	if i < 0 || !l.accts[i].Closed {
		return ErrNotFound
	}
	if err := l.checkOpening(c); err != nil {
		return err
	}

	a := l.accts[i]
	a.Closed = false
	a.Balance = c.Balance
	a.Loyal = c.Loyal
	a.Campus = c.Campus
	a.Withdrawals = 0
	a.refreshLoyalty(l.rates)

	logger.Debug("ledger reopen", logger.Fields{
		"id":      a.ID.String(),
		"type":    a.Kind.Code(),
		"balance": a.Balance.String(),
	})
	return nil
}

// OpenOrReopen 是命令列的開戶流程：已關閉的相符紀錄重新開戶，否則新增。
// 兩者在同一臨界區內判斷與執行。
func (l *Ledger) OpenOrReopen(c Account) (reopened bool, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if i := l.find(c); i >= 0 && l.accts[i].Closed {
		return true, l.reopenLocked(c)
	}
	return false, l.openLocked(c)
}

// Close 關閉帳戶；餘額保留不歸零。
func (l *Ledger) Close(c Account) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	i := l.find(c)
	if i < 0 {
		return ErrNotFound
	}
	a := l.accts[i]
	if a.Closed {
		return ErrAccountClosed
	}
	a.Closed = true

	logger.Debug("ledger close", logger.Fields{
		"id":      a.ID.String(),
		"balance": a.Balance.String(),
	})
	return nil
}

// openAccount 取出可異動的開啟帳戶；給存提款共用。呼叫端須持有 mu。
func (l *Ledger) openAccount(c Account) (*Account, error) {
	if !c.Balance.IsPositive() {
		return nil, ErrBadAmount
	}
	i := l.find(c)
	if i < 0 {
		return nil, ErrNotFound
	}
	if l.accts[i].Closed {
		return nil, ErrAccountClosed
	}
	return l.accts[i], nil
}

// Deposit 存款：金額放在候選帳戶的 Balance 欄位。
func (l *Ledger) Deposit(c Account) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, err := l.openAccount(c)
	if err != nil {
		return err
	}
	a.Balance = a.Balance.Add(c.Balance)
	a.refreshLoyalty(l.rates)

	logger.Debug("ledger deposit", logger.Fields{
		"id":      a.ID.String(),
		"amount":  c.Balance.String(),
		"balance": a.Balance.String(),
	})
	return nil
}

// Withdraw 提款：不得透支，失敗時餘額不變；Money Market 另累計本期提款次數。
func (l *Ledger) Withdraw(c Account) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, err := l.openAccount(c)
	if err != nil {
		return err
	}
	if a.Balance.LessThan(c.Balance) {
		return ErrInsufficientFunds
	}
	a.Balance = a.Balance.Sub(c.Balance)
	if a.Kind == MoneyMarket {
		a.Withdrawals++
	}
	a.refreshLoyalty(l.rates)

	logger.Debug("ledger withdraw", logger.Fields{
		"id":          a.ID.String(),
		"amount":      c.Balance.String(),
		"balance":     a.Balance.String(),
		"withdrawals": a.Withdrawals,
	})
	return nil
}
