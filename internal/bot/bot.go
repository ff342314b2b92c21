// Package bot はTelegramの会話ハンドラ。
// 1件のupdateを処理し終えてから次を読む（並行処理はしない）。
package bot

import (
	"context"

	"shopbot/internal/config"
	"shopbot/internal/session"
	"shopbot/internal/usecase"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
)

type Bot struct {
	api      *tgbotapi.BotAPI
	cfg      config.Config
	log      zerolog.Logger
	sessions *session.Manager

	catalog  *usecase.CatalogUsecase
	cart     *usecase.CartUsecase
	checkout *usecase.CheckoutUsecase
}

// DI
func New(
	cfg config.Config,
	log zerolog.Logger,
	sessions *session.Manager,
	catalog *usecase.CatalogUsecase,
	cart *usecase.CartUsecase,
	checkout *usecase.CheckoutUsecase,
) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, err
	}

	return &Bot{
		api:      api,
		cfg:      cfg,
		log:      log,
		sessions: sessions,
		catalog:  catalog,
		cart:     cart,
		checkout: checkout,
	}, nil
}

// Run はlong pollingでupdateを読み続ける。ctxのキャンセルで止まる。
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	b.log.Info().Str("username", b.api.Self.UserName).Msg("bot started")

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			b.log.Info().Msg("bot stopped")
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil:
		b.handleMessage(ctx, update.Message)
	}
}

func (b *Bot) isAdmin(userID int64) bool {
	return b.cfg.HasAdmin() && userID == b.cfg.AdminChatID
}

// 送信失敗はログに残すだけで、会話は続行する。
func (b *Bot) send(c tgbotapi.Chattable) {
	if _, err := b.api.Send(c); err != nil {
		b.log.Error().Err(err).Msg("telegram send failed")
	}
}

func (b *Bot) sendText(chatID int64, text string) {
	b.send(tgbotapi.NewMessage(chatID, text))
}

// answerCallback はボタン押下に短い通知で応答する。
func (b *Bot) answerCallback(callbackID string, text string) {
	if _, err := b.api.Request(tgbotapi.NewCallback(callbackID, text)); err != nil {
		b.log.Error().Err(err).Msg("callback answer failed")
	}
}
