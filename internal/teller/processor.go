// internal/teller/processor.go

// Package teller 是逐行命令處理器：
//  1. 切分每一行並檢查參數數量與格式
//  2. 組出候選帳戶後呼叫 bank.Ledger
//  3. 依回傳結果輸出對應訊息
//
// 商業規則全在 bank 套件；本套件只負責輸入驗證與文字輸出。
package teller

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"bankteller/internal/bank"
	"bankteller/internal/calendar"
	"bankteller/internal/logger"
)

const (
	msgMissingOpen   = "Missing data for opening an account."
	msgMissingClose  = "Missing data for closing an account."
	msgBadDOB        = "Date of birth invalid."
	msgBadAmount     = "Not a valid amount."
	msgAlreadyClosed = "Account is closed already."
	msgEmpty         = "Account Database is empty!"
)

// 參數位置：<cmd> <type> <first> <last> <dob> <amount> <campus|loyal>
const (
	argsWithDOB     = 5
	argsWithAmount  = 6
	argsWithVariant = 7
)

// 金額位數上限：整數部分最多 15 位、小數最多 8 位。
const (
	maxAmountIntDigits = 15
	maxAmountScale     = 8
)

// Processor 將命令導向 Ledger 並寫出訊息。
type Processor struct {
	ledger *bank.Ledger
	out    io.Writer
}

// New 建立處理器。
func New(l *bank.Ledger) *Processor {
	return &Processor{ledger: l}
}

// Run 逐行讀取 in 直到輸入結束、讀到 Q，或 ctx 結束。
// 讀取在背景 goroutine 進行，ctx 結束時即使 in 仍在阻塞也會立即返回。
func (p *Processor) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	p.out = out
	p.println("Bank Teller is running.")

	lines := make(chan string)
	readErr := make(chan error, 1)
	stop := make(chan struct{})
	defer close(stop)

	go func() {
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-stop:
				return
			}
		}
		readErr <- sc.Err()
		close(lines)
	}()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				return <-readErr
			}
			args := strings.Fields(line)
			if len(args) == 0 {
				continue
			}
			if args[0] == "Q" {
				p.println("Bank Teller is terminated.")
				return nil
			}
			p.dispatch(args)
		}
	}
}

func (p *Processor) dispatch(args []string) {
	switch args[0] {
	case "O":
		p.open(args)
	case "C":
		p.close(args)
	case "D":
		p.deposit(args)
	case "W":
		p.withdraw(args)
	case "P":
		p.printList("*list of accounts in the database*", "*end of list*", accountLines(p.ledger.List()))
	case "PT":
		p.printList("*list of accounts by account type.", "*end of list.", accountLines(p.ledger.ListByAccountType()))
	case "PI":
		p.printList("*list of accounts with fee and monthly interest", "*end of list.", statementLines(p.ledger.ListWithFeeAndInterest()))
	case "UB":
		p.settle()
	default:
		logger.Debug("teller unknown command", logger.Fields{"command": args[0]})
		p.println("Invalid command!")
	}
}

func (p *Processor) println(s string) {
	fmt.Fprintln(p.out, s)
}

// kind 解析第二個參數；缺少或無法辨識時已輸出訊息並回傳 false。
func (p *Processor) kind(args []string, missing string) (bank.Kind, bool) {
	if len(args) < 2 {
		p.println(missing)
		return 0, false
	}
	k, err := bank.ParseKind(args[1])
	if err != nil {
		p.println("Invalid Account Type")
		return 0, false
	}
	return k, true
}

// holder 解析姓名與生日；生日須為合法日期且不在未來。
func (p *Processor) holder(args []string, missing string) (bank.Holder, bool) {
	if len(args) < argsWithDOB {
		p.println(missing)
		return bank.Holder{}, false
	}
	dob, err := calendar.Parse(args[4])
	if err != nil || !dob.IsValid() || dob.IsInTheFuture(p.ledger.Today()) {
		p.println(msgBadDOB)
		return bank.Holder{}, false
	}
	return bank.Holder{First: args[2], Last: args[3], DOB: dob}, true
}

// amount 解析金額；須為正數，nonPositive 為 <= 0 時的訊息。
func (p *Processor) amount(args []string, nonPositive string) (decimal.Decimal, bool) {
	if len(args) < argsWithAmount {
		p.println(msgMissingOpen)
		return decimal.Zero, false
	}
	amt, err := decimal.NewFromString(args[5])
	if err != nil || !amountInRange(amt) {
		p.println(msgBadAmount)
		return decimal.Zero, false
	}
	if !amt.IsPositive() {
		p.println(nonPositive)
		return decimal.Zero, false
	}
	return amt, true
}

// amountInRange 拒絕指數過大或過小的金額（例如 1e5000000），避免後續運算與輸出失控。
func amountInRange(amt decimal.Decimal) bool {
	exp := int(amt.Exponent())
	return exp >= -maxAmountScale && amt.NumDigits()+exp <= maxAmountIntDigits
}

// inputHolder 原樣回傳輸入的姓名與生日字串，供錯誤訊息回顯。
func inputHolder(args []string) string {
	return strings.Join(args[2:argsWithDOB], " ")
}

// candidate 組出只帶身分鍵與金額的候選帳戶，供關閉、存款、提款查找使用。
func candidate(k bank.Kind, h bank.Holder, amt decimal.Decimal) bank.Account {
	return bank.Account{Holder: h, Kind: k, Balance: amt}
}

func (p *Processor) open(args []string) {
	k, ok := p.kind(args, msgMissingOpen)
	if !ok {
		return
	}

	// 變體參數先檢查：College Checking 需要校區、Savings 需要 loyal 代碼。
	var campus bank.Campus
	var loyal bool
	switch k {
	case bank.CollegeChecking, bank.Savings:
		if len(args) < argsWithVariant {
			p.println(msgMissingOpen)
			return
		}
		if k == bank.CollegeChecking {
			c, err := bank.ParseCampus(args[6])
			if err != nil {
				p.println("Invalid campus code.")
				return
			}
			campus = c
		} else {
			switch args[6] {
			case "1":
				loyal = true
			case "0":
			default:
				p.println("Invalid loyalty code.")
				return
			}
		}
	}

	h, ok := p.holder(args, msgMissingOpen)
	if !ok {
		return
	}
	amt, ok := p.amount(args, "Initial deposit cannot be 0 or negative.")
	if !ok {
		return
	}

	var acct bank.Account
	switch k {
	case bank.Checking:
		acct = bank.NewChecking(h, amt)
	case bank.CollegeChecking:
		acct = bank.NewCollegeChecking(h, amt, campus)
	case bank.Savings:
		acct = bank.NewSavings(h, amt, loyal)
	case bank.MoneyMarket:
		acct = bank.NewMoneyMarket(h, amt)
	}

	reopened, err := p.ledger.OpenOrReopen(acct)
	switch {
	case err == nil && reopened:
		p.println("Account reopened.")
	case err == nil:
		p.println("Account opened.")
	case errors.Is(err, bank.ErrDuplicateOpen):
		p.println(inputHolder(args) + " same account(type) is in the database.")
	case errors.Is(err, bank.ErrBelowMinimumDeposit):
		p.println("Minimum of $" + p.ledger.Rates().MoneyMarketMinimum.String() + " to open a MoneyMarket account.")
	case errors.Is(err, bank.ErrInvalidEligibility):
		logger.Debug("teller age ceiling", logger.Fields{"dob": h.DOB.String(), "ceiling": p.ledger.Rates().CollegeAgeCeiling})
		p.println(msgBadDOB)
	default:
		logger.Error("teller open failed", err, logger.Fields{"type": k.Code()})
		p.println("Account not opened.")
	}
}

func (p *Processor) close(args []string) {
	k, ok := p.kind(args, msgMissingClose)
	if !ok {
		return
	}
	h, ok := p.holder(args, msgMissingClose)
	if !ok {
		return
	}
	switch err := p.ledger.Close(candidate(k, h, decimal.Zero)); {
	case err == nil:
		p.println("Account closed.")
	case errors.Is(err, bank.ErrAccountClosed):
		p.println(msgAlreadyClosed)
	default:
		p.println(notFound(args, k))
	}
}

func (p *Processor) deposit(args []string) {
	k, ok := p.kind(args, msgMissingOpen)
	if !ok {
		return
	}
	h, ok := p.holder(args, msgMissingOpen)
	if !ok {
		return
	}
	amt, ok := p.amount(args, "Deposit - amount cannot be 0 or negative.")
	if !ok {
		return
	}
	switch err := p.ledger.Deposit(candidate(k, h, amt)); {
	case err == nil:
		p.println("Deposit - balance updated.")
	case errors.Is(err, bank.ErrAccountClosed):
		p.println(msgAlreadyClosed)
	default:
		p.println(notFound(args, k))
	}
}

func (p *Processor) withdraw(args []string) {
	k, ok := p.kind(args, msgMissingOpen)
	if !ok {
		return
	}
	h, ok := p.holder(args, msgMissingOpen)
	if !ok {
		return
	}
	amt, ok := p.amount(args, "Withdraw - amount cannot be 0 or negative.")
	if !ok {
		return
	}
	switch err := p.ledger.Withdraw(candidate(k, h, amt)); {
	case err == nil:
		p.println("Withdraw - balance updated.")
	case errors.Is(err, bank.ErrInsufficientFunds):
		p.println("Withdraw - insufficient fund.")
	case errors.Is(err, bank.ErrAccountClosed):
		p.println(msgAlreadyClosed)
	default:
		p.println(notFound(args, k))
	}
}

func notFound(args []string, k bank.Kind) string {
	return inputHolder(args) + " " + k.Code() + " is not in the database."
}

// settle 為 UB：結算並列出更新後餘額。空帳本不結算。
func (p *Processor) settle() {
	if p.ledger.Len() == 0 {
		p.println(msgEmpty)
		return
	}
	stmts := p.ledger.Settle()
	lines := make([]string, 0, len(stmts))
	for _, s := range stmts {
		lines = append(lines, accountLine(s.Account))
	}
	p.printList("*list of accounts with updated balance", "*end of list.", lines)
}

func accountLines(accts []bank.Account) []string {
	lines := make([]string, 0, len(accts))
	for _, a := range accts {
		lines = append(lines, accountLine(a))
	}
	return lines
}

func statementLines(stmts []bank.Statement) []string {
	lines := make([]string, 0, len(stmts))
	for _, s := range stmts {
		lines = append(lines, statementLine(s))
	}
	return lines
}

// printList 輸出清單與前後標題；沒有資料時只輸出空帳本訊息。
func (p *Processor) printList(header, footer string, lines []string) {
	if len(lines) == 0 {
		p.println(msgEmpty)
		return
	}
	p.println("")
	p.println(header)
	for _, l := range lines {
		p.println(l)
	}
	p.println(footer)
	p.println("")
}
