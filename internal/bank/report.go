// internal/bank/report.go

package bank

import (
	"cmp"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"bankteller/internal/logger"
)

// Statement 為報表列：帳戶快照加上本期手續費與利息。
type Statement struct {
	Account  Account
	Fee      decimal.Decimal
	Interest decimal.Decimal
}

// snapshot 回傳所有紀錄的值拷貝（插入順序）。呼叫端須持有 mu。
func (l *Ledger) snapshot() []Account {
	out := make([]Account, 0, len(l.accts))
	for _, a := range l.accts {
		out = append(out, *a)
	}
	return out
}

// List 依插入順序回傳所有帳戶；空帳本回傳空切片。
func (l *Ledger) List() []Account {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.snapshot()
}

// ListByAccountType 依類型代碼、再依（姓, 名）排序。
// 使用穩定排序，鍵相同者保持插入順序。
func (l *Ledger) ListByAccountType() []Account {
	l.mu.Lock()
	out := l.snapshot()
	l.mu.Unlock()

	slices.SortStableFunc(out, func(a, b Account) int {
		return cmp.Or(
			cmp.Compare(a.Kind.Code(), b.Kind.Code()),
			cmp.Compare(strings.ToLower(a.Holder.Last), strings.ToLower(b.Holder.Last)),
			cmp.Compare(strings.ToLower(a.Holder.First), strings.ToLower(b.Holder.First)),
		)
	})
	return out
}

// ListWithFeeAndInterest 依插入順序附上手續費與利息，不改動任何餘額。
func (l *Ledger) ListWithFeeAndInterest() []Statement {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Statement, 0, len(l.accts))
	for _, a := range l.accts {
		out = append(out, Statement{
			Account:  *a,
			Fee:      a.MonthlyFee(l.rates),
			Interest: a.MonthlyInterest(l.rates),
		})
	}
	return out
}

// Settle 為期末結算：每個開啟帳戶 balance := balance - fee + interest 並寫回帳本，
// 接著開始新的計息期（Money Market 提款次數歸零）。
// 手續費以結算時可用金額為上限，餘額不會變成負數。
// 與其他清單不同，重複呼叫會再次改變餘額。
func (l *Ledger) Settle() []Statement {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Statement, 0, len(l.accts))
	for _, a := range l.accts {
		fee := a.MonthlyFee(l.rates)
		interest := a.MonthlyInterest(l.rates)
		if !a.Closed {
			available := a.Balance.Add(interest)
			if fee.GreaterThan(available) {
				fee = available
			}
			a.Balance = available.Sub(fee)
			a.Withdrawals = 0
			a.refreshLoyalty(l.rates)
		}
		out = append(out, Statement{Account: *a, Fee: fee, Interest: interest})
	}

	logger.Debug("ledger settle", logger.Fields{"accounts": len(out)})
	return out
}
