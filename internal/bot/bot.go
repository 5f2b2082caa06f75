package bot

import (
	"context"
	"fmt"
	"sync"

	"nayawear-bot/internal/config"
	"nayawear-bot/internal/session"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type Bot struct {
	api          *tgbotapi.BotAPI
	sender       Sender
	logger       *zap.Logger
	cfg          *config.Config
	sessions     session.Store
	orders       *OrderStore
	mu           sync.Mutex
	textHandlers map[session.Stage]func(context.Context, *tgbotapi.Message, *session.Session)
}

func New(cfg *config.Config, sessions session.Store, logger *zap.Logger) (*Bot, error) {
	botAPI, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot API: %w", err)
	}

	logger.Info("Bot authorized",
		zap.String("username", botAPI.Self.UserName),
		zap.Int64("id", botAPI.Self.ID))

	b := newBot(botAPI, cfg, sessions, logger)
	b.api = botAPI
	return b, nil
}

// newBot wires everything except the live Telegram connection.
func newBot(sender Sender, cfg *config.Config, sessions session.Store, logger *zap.Logger) *Bot {
	b := &Bot{
		sender:   sender,
		logger:   logger,
		cfg:      cfg,
		sessions: sessions,
		orders:   NewOrderStore(),
	}
	b.registerHandlers()
	return b
}

func (b *Bot) registerHandlers() {
	b.textHandlers = map[session.Stage]func(context.Context, *tgbotapi.Message, *session.Session){
		session.StageOrderType:    b.handleOrderTypeAnswer,
		session.StageSize:         b.handleSizeAnswer,
		session.StageColor:        b.handleColorAnswer,
		session.StagePhoto:        b.handlePhotoStageText,
		session.StagePhone:        b.handlePhoneAnswer,
		session.StageReceiptPhone: b.handleReceiptPhoneAnswer,
		session.StageReceiptPhoto: b.handleReceiptPhotoText,
	}
}

func (b *Bot) Start(ctx context.Context) error {
	b.logger.Info("Starting bot")

	commands := tgbotapi.NewSetMyCommands(
		tgbotapi.BotCommand{Command: "start", Description: "Show the welcome message and main menu"},
	)
	if _, err := b.sender.Request(commands); err != nil {
		b.logger.Error("Failed to set bot commands", zap.Error(err))
	}

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.logger.Info("Shutting down bot")
			b.api.StopReceivingUpdates()
			return nil

		case update := <-updates:
			b.mu.Lock()
			b.handleUpdate(ctx, update)
			b.mu.Unlock()
		}
	}
}

// handleUpdate dispatches one update. A panic anywhere in handling is logged
// and answered with a generic apology; the process keeps running.
func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	chatID := updateChatID(update)

	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("Recovered from panic while handling update",
				zap.String("update_type", updateType(update)),
				zap.Int64("chat_id", chatID),
				zap.Any("panic", r))
			if chatID != 0 {
				b.sendMessage(tgbotapi.NewMessage(chatID, msgUnexpectedError))
			}
		}
	}()

	switch {
	case update.Message != nil:
		b.processMessage(ctx, update.Message)
	case update.CallbackQuery != nil:
		b.processCallback(ctx, update.CallbackQuery)
	}
}

func (b *Bot) processMessage(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	b.logger.Debug("Processing message",
		zap.Int64("chat_id", chatID),
		zap.String("text", msg.Text))

	if msg.IsCommand() {
		b.handleCommand(ctx, chatID, msg.Command())
		return
	}

	// Menu buttons arrive as plain text and start a fresh workflow,
	// unconditionally replacing any existing session.
	switch msg.Text {
	case ButtonPlaceOrder:
		b.handlePlaceOrder(ctx, chatID)
		return
	case ButtonUploadReceipt:
		b.handleUploadReceipt(ctx, chatID)
		return
	}

	if len(msg.Photo) > 0 {
		b.processPhoto(ctx, msg)
		return
	}

	if msg.Text != "" {
		b.processText(ctx, msg)
	}
}

func (b *Bot) processText(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	sess, err := b.sessions.Get(ctx, chatID)
	if err != nil {
		b.logger.Error("Failed to get session",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
		b.sendMessage(tgbotapi.NewMessage(chatID, msgUnexpectedError))
		return
	}
	if sess == nil {
		b.sendMessage(tgbotapi.NewMessage(chatID, msgNoSession))
		return
	}

	if handler, exists := b.textHandlers[sess.Stage]; exists {
		handler(ctx, msg, sess)
	} else {
		b.sendMessage(tgbotapi.NewMessage(chatID, msgStrayText))
	}
}

func (b *Bot) processCallback(ctx context.Context, callback *tgbotapi.CallbackQuery) {
	b.logger.Debug("Processing callback",
		zap.String("data", callback.Data))

	switch {
	case hasAcceptPrefix(callback.Data):
		b.handleAcceptOrder(ctx, callback)
	case callback.Data == callbackSkipPhoto:
		b.handleSkipPhoto(ctx, callback)
	case callback.Data == callbackRejectOrder:
		// Rejection workflow is a stub that only acknowledges.
		b.answerCallback(callback.ID, "Order rejection is not implemented yet.", false)
	default:
		b.answerCallback(callback.ID, "", false)
	}
}

func (b *Bot) sendMessage(msg tgbotapi.MessageConfig) {
	if _, err := b.sender.Send(msg); err != nil {
		b.logger.Error("Failed to send message",
			zap.Int64("chat_id", msg.ChatID),
			zap.String("text", msg.Text),
			zap.Error(err))
	}
}

func (b *Bot) sendMarkdown(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	b.sendMessage(msg)
}

func (b *Bot) answerCallback(callbackID, text string, alert bool) {
	callback := tgbotapi.NewCallback(callbackID, text)
	if alert {
		callback = tgbotapi.NewCallbackWithAlert(callbackID, text)
	}
	if _, err := b.sender.Request(callback); err != nil {
		b.logger.Error("Failed to answer callback query",
			zap.String("callback_id", callbackID),
			zap.Error(err))
	}
}

func updateChatID(update tgbotapi.Update) int64 {
	if update.Message != nil {
		return update.Message.Chat.ID
	}
	if update.CallbackQuery != nil && update.CallbackQuery.Message != nil {
		return update.CallbackQuery.Message.Chat.ID
	}
	return 0
}

func updateType(update tgbotapi.Update) string {
	switch {
	case update.Message != nil:
		return "message"
	case update.CallbackQuery != nil:
		return "callback_query"
	default:
		return "unknown"
	}
}
