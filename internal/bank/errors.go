// internal/bank/errors.go
//
// 集中定義帳本的結果錯誤（outcome errors）。
// 每個操作都以 error 回傳明確結果，呼叫端以 errors.Is 判斷並自行轉成使用者訊息。

package bank

import "errors"

var (
	// ErrDuplicateOpen 代表相同身分鍵（姓名、生日、帳戶類型）的帳戶已開啟。
	ErrDuplicateOpen = errors.New("account already open")

	// ErrBelowMinimumDeposit 代表初始存款低於該類型的最低開戶金額。
	ErrBelowMinimumDeposit = errors.New("initial deposit below minimum")

	// ErrNotFound 代表找不到對應帳戶。
	ErrNotFound = errors.New("account not found")

	// ErrAccountClosed 代表帳戶已關閉，餘額凍結。
	ErrAccountClosed = errors.New("account is closed")

	// ErrInsufficientFunds 代表提款金額大於餘額；不允許透支。
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInvalidEligibility 代表 College Checking 持有人年齡已達上限。
	ErrInvalidEligibility = errors.New("holder not eligible for account type")

	// ErrInvalidCampus 代表校區代碼不在固定集合內。
	ErrInvalidCampus = errors.New("invalid campus code")

	// ErrInvalidKind 代表帳戶類型代碼無法辨識。
	ErrInvalidKind = errors.New("invalid account type")

	// ErrBadAmount 代表金額 <= 0。
	ErrBadAmount = errors.New("amount must be > 0")
)
