package bot

import (
	"fmt"
	"strconv"
	"strings"

	"shopbot/internal/usecase"
)

// FormatIQD は「1٬500 IQD」の形式。桁区切りはアラビア式。
func FormatIQD(n int64) string {
	s := strconv.FormatInt(n, 10)

	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteRune('٬')
		}
		b.WriteRune(r)
	}

	out := b.String()
	if neg {
		out = "-" + out
	}
	return out + " IQD"
}

// 商品1件の表示テキスト
func formatProduct(id int64, name string, price int64, description string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s", name, FormatIQD(price))
	if description != "" {
		fmt.Fprintf(&b, "\n%s", description)
	}
	fmt.Fprintf(&b, "\n(#%d)", id)
	return b.String()
}

// カートの表示テキスト
func formatCart(view usecase.CartView) string {
	var b strings.Builder
	b.WriteString("🛒 سلتك:\n\n")
	for _, l := range view.Lines {
		fmt.Fprintf(&b, "• %s ×%d — %s\n", l.Name, l.Quantity, FormatIQD(l.Price*l.Quantity))
	}
	fmt.Fprintf(&b, "\nالمجموع: %s", FormatIQD(view.Total))
	return b.String()
}

// 注文の明細テキスト（管理者通知に使う）
func formatOrderLines(out usecase.OrderOutput) string {
	var b strings.Builder
	for _, it := range out.Items {
		fmt.Fprintf(&b, "• %s ×%d — %s\n", it.Name, it.Quantity, FormatIQD(it.Price*it.Quantity))
	}
	fmt.Fprintf(&b, "المجموع: %s", FormatIQD(out.Total))
	return b.String()
}
