package bot

import (
	"context"

	"shopbot/internal/session"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil {
		return
	}
	userID := msg.From.ID
	chatID := msg.Chat.ID

	if msg.IsCommand() {
		b.handleCommand(ctx, msg)
		return
	}

	if len(msg.Photo) > 0 {
		b.handlePhoto(ctx, msg)
		return
	}

	// メニューボタンは会話状態より優先する
	switch msg.Text {
	case btnProducts:
		b.showProducts(ctx, chatID)
		return
	case btnCart:
		b.showCart(ctx, chatID, userID)
		return
	case btnContact:
		b.sendText(chatID, textContact)
		return
	case btnAdminPanel:
		b.openAdminPanel(chatID, userID)
		return
	case btnAddProduct:
		b.promptAddProduct(chatID, userID)
		return
	case btnListProducts:
		b.listProductsAdmin(ctx, chatID, userID)
		return
	case btnDeleteProduct:
		b.promptDeleteProduct(chatID, userID)
		return
	case btnBack:
		b.sessions.Reset(userID)
		m := tgbotapi.NewMessage(chatID, textWelcome)
		m.ReplyMarkup = mainKeyboard(b.isAdmin(userID))
		b.send(m)
		return
	}

	// 会話状態によるテキストの振り分け
	s := b.sessions.Get(userID)
	switch s.State {
	case session.StateAwaitingReceipt:
		b.handleReceiptText(ctx, msg, s)
	case session.StateAwaitingAddress:
		b.handleAddressText(ctx, msg, s)
	case session.StateAwaitingProductInput:
		b.handleProductInputText(ctx, msg)
	case session.StateAwaitingDeleteID:
		b.handleDeleteIDText(ctx, msg)
	default:
		b.sendText(chatID, textMenuHint)
	}
}

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		b.sessions.Reset(msg.From.ID)
		m := tgbotapi.NewMessage(msg.Chat.ID, textWelcome)
		m.ReplyMarkup = mainKeyboard(b.isAdmin(msg.From.ID))
		b.send(m)
	default:
		b.sendText(msg.Chat.ID, textMenuHint)
	}
}

func (b *Bot) handlePhoto(ctx context.Context, msg *tgbotapi.Message) {
	userID := msg.From.ID
	s := b.sessions.Get(userID)

	switch {
	case s.State == session.StateAwaitingProductInput && b.isAdmin(userID):
		b.handleProductInputPhoto(ctx, msg)
	case s.State == session.StateAwaitingReceipt:
		b.handleReceiptPhoto(ctx, msg, s)
	default:
		b.sendText(msg.Chat.ID, textMenuHint)
	}
}
