package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	repo "shopbot/internal/repository"
	"shopbot/internal/session"
	"shopbot/internal/usecase"
	"shopbot/internal/validator"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (b *Bot) openAdminPanel(chatID int64, userID int64) {
	if !b.isAdmin(userID) {
		b.sendText(chatID, textAdminOnly)
		return
	}

	b.sessions.Reset(userID)
	m := tgbotapi.NewMessage(chatID, textAdminPanel)
	m.ReplyMarkup = adminKeyboard()
	b.send(m)
}

// promptAddProduct は商品情報待ちの状態に入れる。
func (b *Bot) promptAddProduct(chatID int64, userID int64) {
	if !b.isAdmin(userID) {
		b.sendText(chatID, textAdminOnly)
		return
	}

	b.sessions.Set(userID, session.Session{State: session.StateAwaitingProductInput})
	b.sendText(chatID, textAdminAddPrompt)
}

// promptDeleteProduct は削除ID待ちの状態に入れる。
// 状態を経由しない数字テキストでは何も消えない。
func (b *Bot) promptDeleteProduct(chatID int64, userID int64) {
	if !b.isAdmin(userID) {
		b.sendText(chatID, textAdminOnly)
		return
	}

	b.sessions.Set(userID, session.Session{State: session.StateAwaitingDeleteID})
	b.sendText(chatID, textAdminDelPrompt)
}

func (b *Bot) listProductsAdmin(ctx context.Context, chatID int64, userID int64) {
	if !b.isAdmin(userID) {
		b.sendText(chatID, textAdminOnly)
		return
	}

	products, err := b.catalog.ListProducts(ctx)
	if err != nil {
		b.log.Error().Err(err).Msg("list products failed")
		return
	}
	if len(products) == 0 {
		b.sendText(chatID, textNoProducts)
		return
	}

	var sb strings.Builder
	sb.WriteString("📃 المنتجات:\n\n")
	for _, p := range products {
		fmt.Fprintf(&sb, "#%d — %s — %s\n", p.ID, p.Name, FormatIQD(p.Price))
	}
	b.sendText(chatID, sb.String())
}

// handleProductInputPhoto は画像＋キャプションから商品を登録する。
func (b *Bot) handleProductInputPhoto(ctx context.Context, msg *tgbotapi.Message) {
	photoFileID := msg.Photo[len(msg.Photo)-1].FileID
	b.addProductFrom(ctx, msg, msg.Caption, photoFileID)
}

// handleProductInputText は画像なしのテキストだけでも登録を受け付ける。
func (b *Bot) handleProductInputText(ctx context.Context, msg *tgbotapi.Message) {
	if !b.isAdmin(msg.From.ID) {
		b.sendText(msg.Chat.ID, textAdminOnly)
		return
	}
	b.addProductFrom(ctx, msg, msg.Text, "")
}

func (b *Bot) addProductFrom(ctx context.Context, msg *tgbotapi.Message, raw string, photoFileID string) {
	chatID := msg.Chat.ID

	in, err := validator.ParseProductInput(raw)
	if errors.Is(err, validator.ErrPrice) {
		b.sendText(chatID, textAdminPriceError)
		return
	}
	if err != nil {
		b.sendText(chatID, textAdminParseError)
		return
	}

	p, err := b.catalog.AddProduct(ctx, usecase.AddProductInput{
		Name:        in.Name,
		Price:       in.Price,
		Description: in.Description,
		PhotoFileID: photoFileID,
	})
	if err != nil {
		b.log.Error().Err(err).Msg("add product failed")
		b.sendText(chatID, textAdminParseError)
		return
	}

	b.sessions.Reset(msg.From.ID)
	b.sendText(chatID, fmt.Sprintf(textAdminAdded, p.ID))
}

// handleDeleteIDText は削除ID待ち中の数字で商品を消す。
func (b *Bot) handleDeleteIDText(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	if !b.isAdmin(msg.From.ID) {
		b.sendText(chatID, textAdminOnly)
		return
	}

	id, err := strconv.ParseInt(strings.TrimSpace(msg.Text), 10, 64)
	if err != nil {
		b.sendText(chatID, textAdminNotNumber)
		return
	}

	err = b.catalog.DeleteProduct(ctx, id)
	if errors.Is(err, repo.ErrNotFound) || errors.Is(err, usecase.ErrValidation) {
		b.sendText(chatID, textAdminNotFound)
		return
	}
	if err != nil {
		b.log.Error().Err(err).Int64("product_id", id).Msg("delete product failed")
		return
	}

	b.sessions.Reset(msg.From.ID)
	b.sendText(chatID, textAdminDeleted)
}
