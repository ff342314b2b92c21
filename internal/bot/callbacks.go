package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"shopbot/internal/domain/model"
	repo "shopbot/internal/repository"
	"shopbot/internal/session"
	"shopbot/internal/usecase"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// ボタン押下の振り分け。どの分岐でも必ずcallbackに応答する。
func (b *Bot) handleCallback(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	if cq.Message == nil {
		b.answerCallback(cq.ID, "")
		return
	}

	userID := cq.From.ID
	chatID := cq.Message.Chat.ID
	data := cq.Data

	switch {
	case strings.HasPrefix(data, "add:"):
		b.handleAddToCart(ctx, cq, userID, strings.TrimPrefix(data, "add:"))
	case data == "cart:clear":
		b.handleClearCart(ctx, cq, chatID, userID)
	case data == "checkout":
		b.handleCheckout(ctx, cq, chatID, userID)
	case data == "pay:electronic":
		b.handlePayment(ctx, cq, chatID, userID, model.PaymentMethodElectronic)
	case data == "pay:cod":
		b.handlePayment(ctx, cq, chatID, userID, model.PaymentMethodCOD)
	default:
		b.answerCallback(cq.ID, "")
	}
}

func (b *Bot) handleAddToCart(ctx context.Context, cq *tgbotapi.CallbackQuery, userID int64, rawID string) {
	productID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		b.answerCallback(cq.ID, textUnknownProduct)
		return
	}

	_, err = b.cart.AddToCart(ctx, userID, productID, 1)
	if errors.Is(err, repo.ErrNotFound) {
		b.answerCallback(cq.ID, textUnknownProduct)
		return
	}
	if err != nil {
		b.log.Error().Err(err).Int64("user_id", userID).Msg("add to cart failed")
		b.answerCallback(cq.ID, "")
		return
	}

	b.answerCallback(cq.ID, textAddedToCart)
}

func (b *Bot) handleClearCart(ctx context.Context, cq *tgbotapi.CallbackQuery, chatID int64, userID int64) {
	if err := b.cart.ClearCart(ctx, userID); err != nil {
		b.log.Error().Err(err).Int64("user_id", userID).Msg("clear cart failed")
		b.answerCallback(cq.ID, "")
		return
	}

	b.answerCallback(cq.ID, textCartCleared)
	b.send(tgbotapi.NewEditMessageText(chatID, cq.Message.MessageID, textCartEmpty))
}

// handleCheckout は支払い方法の選択へ進める。空カートは進めない。
func (b *Bot) handleCheckout(ctx context.Context, cq *tgbotapi.CallbackQuery, chatID int64, userID int64) {
	_, key, err := b.checkout.BeginCheckout(ctx, userID)
	if errors.Is(err, usecase.ErrEmptyCart) {
		b.answerCallback(cq.ID, textCartEmpty)
		return
	}
	if err != nil {
		b.log.Error().Err(err).Int64("user_id", userID).Msg("begin checkout failed")
		b.answerCallback(cq.ID, "")
		return
	}

	b.sessions.Set(userID, session.Session{
		State:       session.StateAwaitingPayment,
		CheckoutKey: key,
	})

	b.answerCallback(cq.ID, "")
	m := tgbotapi.NewMessage(chatID, textChoosePayment)
	m.ReplyMarkup = paymentKeyboard()
	b.send(m)
}

func (b *Bot) handlePayment(ctx context.Context, cq *tgbotapi.CallbackQuery, chatID int64, userID int64, method model.PaymentMethod) {
	s := b.sessions.Get(userID)
	if s.State != session.StateAwaitingPayment || s.CheckoutKey == "" {
		// 古いボタン
		b.answerCallback(cq.ID, textMenuHint)
		return
	}

	out, err := b.checkout.Checkout(ctx, userID, method, s.CheckoutKey)
	if errors.Is(err, usecase.ErrEmptyCart) {
		b.sessions.Reset(userID)
		b.answerCallback(cq.ID, textCartEmpty)
		return
	}
	if err != nil {
		b.log.Error().Err(err).Int64("user_id", userID).Msg("checkout failed")
		b.answerCallback(cq.ID, "")
		return
	}

	b.answerCallback(cq.ID, "")

	switch method {
	case model.PaymentMethodCOD:
		b.sessions.Set(userID, session.Session{
			State:          session.StateAwaitingAddress,
			PendingOrderID: out.ID,
		})
		b.sendText(chatID, fmt.Sprintf(textOrderPlaced, out.ID))
		b.notifyAdminOrder(out)
	case model.PaymentMethodElectronic:
		b.sessions.Set(userID, session.Session{
			State:          session.StateAwaitingReceipt,
			PendingOrderID: out.ID,
		})
		b.sendText(chatID, paymentInfoText)
		b.notifyAdminOrder(out)
	}
}
