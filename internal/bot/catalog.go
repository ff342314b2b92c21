package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// showProducts は商品を1件ずつ「追加」ボタン付きで送る。
func (b *Bot) showProducts(ctx context.Context, chatID int64) {
	products, err := b.catalog.ListProducts(ctx)
	if err != nil {
		b.log.Error().Err(err).Msg("list products failed")
		b.sendText(chatID, textNoProducts)
		return
	}
	if len(products) == 0 {
		b.sendText(chatID, textNoProducts)
		return
	}

	for _, p := range products {
		text := formatProduct(p.ID, p.Name, p.Price, p.Description)
		kb := productKeyboard(p.ID)

		if p.PhotoFileID != "" {
			photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileID(p.PhotoFileID))
			photo.Caption = text
			photo.ReplyMarkup = kb
			b.send(photo)
			continue
		}

		m := tgbotapi.NewMessage(chatID, text)
		m.ReplyMarkup = kb
		b.send(m)
	}
}

// showCart は現在価格でJOINしたカートを表示する。
func (b *Bot) showCart(ctx context.Context, chatID int64, userID int64) {
	view, err := b.cart.GetCart(ctx, userID)
	if err != nil {
		b.log.Error().Err(err).Int64("user_id", userID).Msg("get cart failed")
		return
	}
	if view.Empty() {
		b.sendText(chatID, textCartEmpty)
		return
	}

	m := tgbotapi.NewMessage(chatID, formatCart(view))
	m.ReplyMarkup = cartKeyboard()
	b.send(m)
}
