package bot

import (
	"context"
	"errors"
	"fmt"

	repo "shopbot/internal/repository"
	"shopbot/internal/session"
	"shopbot/internal/usecase"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// handleReceiptPhoto はレシート画像で注文をPAIDにする。
// 一番解像度の高いバリアントの参照を保存する。
func (b *Bot) handleReceiptPhoto(ctx context.Context, msg *tgbotapi.Message, s session.Session) {
	userID := msg.From.ID
	chatID := msg.Chat.ID

	fileID := msg.Photo[len(msg.Photo)-1].FileID

	out, err := b.checkout.AttachReceipt(ctx, userID, s.PendingOrderID, fileID, msg.Caption)
	if errors.Is(err, repo.ErrNotFound) || errors.Is(err, usecase.ErrOrderState) {
		// 注文が消えている／既に処理済み。状態だけ戻す。
		b.sessions.Reset(userID)
		b.sendText(chatID, textMenuHint)
		return
	}
	if err != nil {
		b.log.Error().Err(err).Int64("order_id", s.PendingOrderID).Msg("attach receipt failed")
		return
	}

	b.sessions.Reset(userID)
	b.sendText(chatID, textReceiptOK)
	b.notifyAdminReceipt(out, fileID)
}

// handleReceiptText はレシート待ち中のテキストを住所として保存し、
// 画像をもう一度促す。注文状態は進めない。
func (b *Bot) handleReceiptText(ctx context.Context, msg *tgbotapi.Message, s session.Session) {
	userID := msg.From.ID

	if err := b.checkout.SetAddress(ctx, userID, s.PendingOrderID, msg.Text); err != nil {
		b.log.Error().Err(err).Int64("order_id", s.PendingOrderID).Msg("set address failed")
		b.sendText(msg.Chat.ID, textSendReceipt)
		return
	}

	b.sendText(msg.Chat.ID, textAddressNoted)
}

// handleAddressText は代引き注文の住所・連絡先を保存して会話を終える。
func (b *Bot) handleAddressText(ctx context.Context, msg *tgbotapi.Message, s session.Session) {
	userID := msg.From.ID

	if err := b.checkout.SetAddress(ctx, userID, s.PendingOrderID, msg.Text); err != nil {
		b.log.Error().Err(err).Int64("order_id", s.PendingOrderID).Msg("set address failed")
		return
	}

	b.sessions.Reset(userID)
	b.sendText(msg.Chat.ID, textAddressSaved)
	if b.cfg.HasAdmin() {
		b.sendText(b.cfg.AdminChatID, fmt.Sprintf("📍 عنوان الطلب #%d:\n%s", s.PendingOrderID, msg.Text))
	}
}

// notifyAdminOrder は新規注文を管理者に知らせる。
func (b *Bot) notifyAdminOrder(out usecase.OrderOutput) {
	if !b.cfg.HasAdmin() {
		return
	}

	head := "🧾 طلب جديد"
	if out.Status == "PENDING_RECEIPT" {
		head = "🧾 طلب جديد بانتظار الإيصال"
	}

	text := fmt.Sprintf("%s\nرقم الطلب: #%d\nالزبون: %d\nطريقة الدفع: %s\n\n%s",
		head, out.ID, out.UserID, out.Method, formatOrderLines(out))
	b.sendText(b.cfg.AdminChatID, text)
}

// notifyAdminReceipt はレシート画像を管理者に転送する。
// 画像送信に失敗したらテキスト通知に落とす（唯一許容する転送失敗）。
func (b *Bot) notifyAdminReceipt(out usecase.OrderOutput, fileID string) {
	if !b.cfg.HasAdmin() {
		return
	}

	caption := fmt.Sprintf("🧾 إيصال دفع للطلب #%d\nالزبون: %d\nالمجموع: %s",
		out.ID, out.UserID, FormatIQD(out.Total))
	if out.Address != "" {
		caption += "\nالعنوان: " + out.Address
	}

	photo := tgbotapi.NewPhoto(b.cfg.AdminChatID, tgbotapi.FileID(fileID))
	photo.Caption = caption

	if _, err := b.api.Send(photo); err != nil {
		b.log.Warn().Err(err).Int64("order_id", out.ID).Msg("receipt forward failed, falling back to text")
		b.sendText(b.cfg.AdminChatID, caption)
	}
}
