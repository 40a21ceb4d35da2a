// internal/calendar/date.go

// Package calendar 提供 MM/DD/YYYY 日期的解析、閏年驗證與比較。
// 日期本身以 civil.Date 儲存（無時區、無時間），建立後即不可變。
package calendar

import (
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
)

// ErrInvalidFormat 代表日期字串不是 MM/DD/YYYY，或月、日超出名目範圍。
var ErrInvalidFormat = errors.New("date must be MM/DD/YYYY")

const layoutLen = len("MM/DD/YYYY")

// Date is a calendar day without time or zone.
type Date struct {
	d civil.Date
}

// New 以年月日直接建立日期，不做任何檢查；是否合法請呼叫 IsValid。
func New(year int, month time.Month, day int) Date {
	return Date{d: civil.Date{Year: year, Month: month, Day: day}}
}

// Today 取得 now 所在當地日期。
func Today(now time.Time) Date {
	return Date{d: civil.DateOf(now)}
}

// Parse 解析 "MM/DD/YYYY"。
// 只檢查格式與名目範圍（月 1–12、日 1–31）；2/30 之類由 IsValid 判斷。
func Parse(text string) (Date, error) {
	if len(text) != layoutLen || text[2] != '/' || text[5] != '/' {
		return Date{}, fmt.Errorf("%q: %w", text, ErrInvalidFormat)
	}
	month, ok1 := digits(text[0:2])
	day, ok2 := digits(text[3:5])
	year, ok3 := digits(text[6:10])
	if !ok1 || !ok2 || !ok3 {
		return Date{}, fmt.Errorf("%q: %w", text, ErrInvalidFormat)
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return Date{}, fmt.Errorf("%q: %w", text, ErrInvalidFormat)
	}
	return New(year, time.Month(month), day), nil
}

// digits 將純數字字串轉為整數；含任何非數字字元即失敗。
func digits(s string) (int, bool) {
	n := 0
	for _, ch := range s {
		if ch < '0' || ch > '9' {
			return 0, false
		}
		n = n*10 + int(ch-'0')
	}
	return n, true
}

// IsLeapYear 套用公曆規則：可被 4 整除，且（不可被 100 整除，或可被 400 整除）。
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysIn 回傳該年該月的天數。
func DaysIn(month time.Month, year int) int {
	switch month {
	case time.February:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

func (d Date) Year() int { return d.d.Year }

func (d Date) Month() time.Month { return d.d.Month }

func (d Date) Day() int { return d.d.Day }

// Civil 回傳底層 civil.Date。
func (d Date) Civil() civil.Date { return d.d }

// IsValid 回報日是否落在該月實際天數內。
func (d Date) IsValid() bool {
	if d.d.Month < time.January || d.d.Month > time.December || d.d.Day < 1 {
		return false
	}
	return d.d.Day <= DaysIn(d.d.Month, d.d.Year)
}

// Compare 比較兩日期：d 較早回傳 -1，相同 0，較晚 +1。
func (d Date) Compare(other Date) int {
	switch {
	case d.d.Before(other.d):
		return -1
	case d.d.After(other.d):
		return 1
	}
	return 0
}

// Equal 兩日期是否為同一天。
func (d Date) Equal(other Date) bool { return d.Compare(other) == 0 }

// IsInTheFuture 嚴格晚於 ref 才算未來；同一天不算。
func (d Date) IsInTheFuture(ref Date) bool {
	return d.Compare(ref) > 0
}

// AgeOn 計算以 d 為生日、在 ref 當天的足歲。生日當天即滿歲。
func (d Date) AgeOn(ref Date) int {
	age := ref.d.Year - d.d.Year
	if ref.d.Month < d.d.Month || (ref.d.Month == d.d.Month && ref.d.Day < d.d.Day) {
		age--
	}
	return age
}

// String 以 M/D/YYYY 顯示（不補零），供清單輸出使用。
func (d Date) String() string {
	return fmt.Sprintf("%d/%d/%d", int(d.d.Month), d.d.Day, d.d.Year)
}
