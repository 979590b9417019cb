package service

import (
	"strings"
	"time"
)

// CardDetails 支付卡信息
// 仅做格式校验，不存储、不发起真实扣款
type CardDetails struct {
	HolderName string `json:"holder_name"`
	Number     string `json:"number"`
	Expiry     string `json:"expiry"` // MM/YY
	CVV        string `json:"cvv"`
}

// ValidateCard 校验支付卡格式，返回首个不满足的字段错误
func ValidateCard(card CardDetails, now time.Time) error {
	if strings.TrimSpace(card.HolderName) == "" {
		return ErrCardNameInvalid
	}

	number := strings.ReplaceAll(strings.TrimSpace(card.Number), " ", "")
	if len(number) != 16 || !allDigits(number) {
		return ErrCardNumberInvalid
	}

	month, year, ok := parseExpiry(card.Expiry)
	if !ok {
		return ErrCardExpiryInvalid
	}
	// 有效期按月末计算，当月仍可用
	expiresAt := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, now.Location()).AddDate(0, 1, 0)
	if !now.Before(expiresAt) {
		return ErrCardExpired
	}

	cvv := strings.TrimSpace(card.CVV)
	if len(cvv) < 3 || len(cvv) > 4 || !allDigits(cvv) {
		return ErrCardCVVInvalid
	}

	return nil
}

func parseExpiry(expiry string) (month, year int, ok bool) {
	trimmed := strings.TrimSpace(expiry)
	if len(trimmed) != 5 || trimmed[2] != '/' {
		return 0, 0, false
	}
	mm := trimmed[:2]
	yy := trimmed[3:]
	if !allDigits(mm) || !allDigits(yy) {
		return 0, 0, false
	}
	month = int(mm[0]-'0')*10 + int(mm[1]-'0')
	if month < 1 || month > 12 {
		return 0, 0, false
	}
	year = 2000 + int(yy[0]-'0')*10 + int(yy[1]-'0')
	return month, year, true
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
