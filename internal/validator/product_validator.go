package validator

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// 書式不正（name | price | description）
	ErrFormat = errors.New("invalid product format")
	// 価格が数値として読めない
	ErrPrice = errors.New("invalid price")
)

type ProductInput struct {
	Name        string
	Price       int64
	Description string
}

// ParseProductInput は「name | price | description」を解析する。
// descriptionは省略可。priceはアラビア数字表記と桁区切りを許容する。
func ParseProductInput(s string) (ProductInput, error) {
	parts := strings.Split(s, "|")
	if len(parts) < 2 || len(parts) > 3 {
		return ProductInput{}, ErrFormat
	}

	name := strings.TrimSpace(parts[0])
	if name == "" {
		return ProductInput{}, ErrFormat
	}

	price, err := ParsePrice(parts[1])
	if err != nil {
		return ProductInput{}, err
	}

	desc := ""
	if len(parts) == 3 {
		desc = strings.TrimSpace(parts[2])
	}

	return ProductInput{
		Name:        name,
		Price:       price,
		Description: desc,
	}, nil
}

// ParsePrice は桁区切り入りの価格文字列を非負整数にする。
// 例: "1,500" / "1٬500" / "١٥٠٠" → 1500
func ParsePrice(s string) (int64, error) {
	var b strings.Builder

	for _, r := range strings.TrimSpace(s) {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		// アラビア数字（Arabic-Indic）
		case r >= '٠' && r <= '٩':
			b.WriteRune('0' + (r - '٠'))
		// 拡張アラビア数字（ペルシャ）
		case r >= '۰' && r <= '۹':
			b.WriteRune('0' + (r - '۰'))
		// 桁区切りは読み飛ばす
		case r == ',' || r == '٬' || r == '،' || r == '_' || r == ' ' || r == ' ':
			continue
		default:
			return 0, fmt.Errorf("%w: %q", ErrPrice, s)
		}
	}

	if b.Len() == 0 {
		return 0, fmt.Errorf("%w: %q", ErrPrice, s)
	}

	n, err := strconv.ParseInt(b.String(), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrPrice, s)
	}
	return n, nil
}
