package bot

import (
	"context"
	"fmt"
	"strings"

	"nayawear-bot/internal/session"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

func (b *Bot) handleCommand(ctx context.Context, chatID int64, command string) {
	switch command {
	case "start":
		b.handleStart(ctx, chatID)
	case "help":
		b.sendMessage(tgbotapi.NewMessage(chatID, msgHelp))
	default:
		b.sendMessage(tgbotapi.NewMessage(chatID, msgUnknownCommand))
	}
}

func (b *Bot) handleStart(_ context.Context, chatID int64) {
	msg := tgbotapi.NewMessage(chatID, welcomeMessage)
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.ReplyMarkup = createMainMenuKeyboard()
	b.sendMessage(msg)
}

// handlePlaceOrder starts the intake flow. Any in-flight session for the chat
// is discarded along with its partial answers.
func (b *Bot) handlePlaceOrder(ctx context.Context, chatID int64) {
	sess := &session.Session{Stage: session.StageOrderType}
	if err := b.sessions.Set(ctx, chatID, sess); err != nil {
		b.logger.Error("Failed to start order session",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
		b.sendMessage(tgbotapi.NewMessage(chatID, msgUnexpectedError))
		return
	}

	b.sendMarkdown(chatID, msgOrderIntro)
}

// handleUploadReceipt starts the receipt flow, likewise overwriting any
// existing session.
func (b *Bot) handleUploadReceipt(ctx context.Context, chatID int64) {
	sess := &session.Session{Stage: session.StageReceiptPhone}
	if err := b.sessions.Set(ctx, chatID, sess); err != nil {
		b.logger.Error("Failed to start receipt session",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
		b.sendMessage(tgbotapi.NewMessage(chatID, msgUnexpectedError))
		return
	}

	b.sendMarkdown(chatID, msgReceiptPhonePrompt)
}

// --- Order flow answers. Free text is accepted verbatim. ---

func (b *Bot) handleOrderTypeAnswer(ctx context.Context, msg *tgbotapi.Message, sess *session.Session) {
	sess.OrderType = msg.Text
	sess.Stage = session.StageSize
	b.saveAndPrompt(ctx, msg.Chat.ID, sess, questionSize, nil)
}

func (b *Bot) handleSizeAnswer(ctx context.Context, msg *tgbotapi.Message, sess *session.Session) {
	sess.Size = msg.Text
	sess.Stage = session.StageColor
	b.saveAndPrompt(ctx, msg.Chat.ID, sess, questionColor, nil)
}

func (b *Bot) handleColorAnswer(ctx context.Context, msg *tgbotapi.Message, sess *session.Session) {
	sess.ColorFabric = msg.Text
	sess.Stage = session.StagePhoto
	keyboard := createSkipPhotoKeyboard()
	b.saveAndPrompt(ctx, msg.Chat.ID, sess, questionPhoto, &keyboard)
}

// handlePhotoStageText handles text while a reference photo is expected: a
// recognized skip phrase advances with the skip sentinel, anything else gets
// a guidance re-prompt and no transition.
func (b *Bot) handlePhotoStageText(ctx context.Context, msg *tgbotapi.Message, sess *session.Session) {
	chatID := msg.Chat.ID

	if !isSkipRequest(msg.Text) {
		b.sendMessage(tgbotapi.NewMessage(chatID, msgPhotoGuide))
		return
	}

	sess.PhotoFileID = PhotoSkipped
	sess.Stage = session.StagePhone
	b.sendMessage(tgbotapi.NewMessage(chatID, msgPhotoSkipped))
	b.saveAndPrompt(ctx, chatID, sess, questionPhone, nil)
}

func (b *Bot) handlePhoneAnswer(ctx context.Context, msg *tgbotapi.Message, sess *session.Session) {
	sess.Phone = msg.Text
	b.finalizeOrder(ctx, msg.From, msg.Chat.ID, sess)
}

// --- Receipt flow answers. ---

func (b *Bot) handleReceiptPhoneAnswer(ctx context.Context, msg *tgbotapi.Message, sess *session.Session) {
	chatID := msg.Chat.ID

	sess.ReceiptPhone = msg.Text
	sess.Stage = session.StageReceiptPhoto
	if err := b.sessions.Set(ctx, chatID, sess); err != nil {
		b.logger.Error("Failed to save session",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
		b.sendMessage(tgbotapi.NewMessage(chatID, msgUnexpectedError))
		return
	}

	b.sendMarkdown(chatID, fmt.Sprintf(
		"Thank you, we have saved the number: %s.\n\nPlease now *upload the screenshot* of your bank receipt/slip to confirm the payment.",
		quoteUserInput(msg.Text)))
}

func (b *Bot) handleReceiptPhotoText(_ context.Context, msg *tgbotapi.Message, _ *session.Session) {
	b.sendMarkdown(msg.Chat.ID, msgReceiptPhotoOnly)
}

// --- Photo input. ---

func (b *Bot) processPhoto(ctx context.Context, msg *tgbotapi.Message) {
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
		b.sendMessage(tgbotapi.NewMessage(chatID, msgNoPhotoSession))
		return
	}

	// Telegram lists photo sizes in ascending resolution; keep the largest.
	fileID := msg.Photo[len(msg.Photo)-1].FileID

	switch sess.Stage {
	case session.StageReceiptPhoto:
		b.finalizeReceipt(ctx, msg.From, chatID, sess, fileID)

	case session.StagePhoto:
		sess.PhotoFileID = fileID
		sess.Stage = session.StagePhone
		b.sendMessage(tgbotapi.NewMessage(chatID, msgPhotoReceived))
		b.saveAndPrompt(ctx, chatID, sess, questionPhone, nil)

	default:
		b.sendMessage(tgbotapi.NewMessage(chatID, msgStrayPhoto))
	}
}

// saveAndPrompt persists the session and sends the next question. The prompt
// is suppressed when the session cannot be saved, so the user is never one
// stage ahead of the stored state.
func (b *Bot) saveAndPrompt(ctx context.Context, chatID int64, sess *session.Session, prompt string, keyboard *tgbotapi.InlineKeyboardMarkup) {
	if err := b.sessions.Set(ctx, chatID, sess); err != nil {
		b.logger.Error("Failed to save session",
			zap.Int64("chat_id", chatID),
			zap.String("stage", string(sess.Stage)),
			zap.Error(err))
		b.sendMessage(tgbotapi.NewMessage(chatID, msgUnexpectedError))
		return
	}

	msg := tgbotapi.NewMessage(chatID, prompt)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if keyboard != nil {
		msg.ReplyMarkup = *keyboard
	}
	b.sendMessage(msg)
}

// isSkipRequest reports whether text is one of the accepted skip phrases for
// the reference-photo question.
func isSkipRequest(text string) bool {
	normalized := strings.ToLower(strings.TrimSpace(text))
	return normalized == "skip" ||
		strings.Contains(normalized, "no photo") ||
		strings.Contains(normalized, "n/a")
}
