// internal/teller/format.go
//
// 將帳戶快照轉成單行文字；金額一律顯示為 $ 加兩位小數。

package teller

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"bankteller/internal/bank"
)

func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

// holderText 例："John Doe 2/19/1990"。
func holderText(h bank.Holder) string {
	return h.First + " " + h.Last + " " + h.DOB.String()
}

// accountLine 例："Money Market::Jane Doe 1/1/1990::Balance $2600.00::Loyal::withdrawal: 1"
func accountLine(a bank.Account) string {
	var b strings.Builder
	b.WriteString(a.Kind.String())
	b.WriteString("::")
	b.WriteString(holderText(a.Holder))
	b.WriteString("::Balance ")
	b.WriteString(money(a.Balance))
	if a.Closed {
		b.WriteString("::CLOSED")
	}
	switch a.Kind {
	case bank.CollegeChecking:
		b.WriteString("::")
		b.WriteString(a.Campus.String())
	case bank.Savings:
		if a.Loyal {
			b.WriteString("::Loyal")
		}
	case bank.MoneyMarket:
		if a.Loyal {
			b.WriteString("::Loyal")
		}
		b.WriteString("::withdrawal: ")
		b.WriteString(strconv.Itoa(a.Withdrawals))
	}
	return b.String()
}

// statementLine 在帳戶行後附上手續費與月利息。
func statementLine(s bank.Statement) string {
	return accountLine(s.Account) + "::fee " + money(s.Fee) + "::monthly interest " + money(s.Interest)
}
