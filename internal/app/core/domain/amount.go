package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseAmount 將使用者輸入的文字解析為金額
//
// 參數:
//
//	input: 使用者輸入 (前後空白會被忽略)
//
// 回傳:
//
//	float64: 金額
//	error: ErrInvalidAmount (非數字、NaN、Inf) 或 ErrNonPositiveAmount (<= 0)
func ParseAmount(input string) (float64, error) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, input)
	}
	if amount <= 0 {
		return 0, fmt.Errorf("%w: %v", ErrNonPositiveAmount, amount)
	}
	return amount, nil
}
