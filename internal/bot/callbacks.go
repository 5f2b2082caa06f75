package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"nayawear-bot/internal/session"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

func hasAcceptPrefix(data string) bool {
	return strings.HasPrefix(data, callbackAcceptPrefix)
}

// handleAcceptOrder processes an admin pressing the accept button. This is
// the only access-controlled operation: non-admins get an alert and no state
// changes. A second press on the same order finds it gone from the store and
// answers idempotently.
func (b *Bot) handleAcceptOrder(ctx context.Context, callback *tgbotapi.CallbackQuery) {
	if !b.cfg.IsAdmin(callback.From.ID) {
		b.answerCallback(callback.ID, "❌ Only an authorized admin can accept orders.", true)
		return
	}

	orderID, err := strconv.ParseInt(strings.TrimPrefix(callback.Data, callbackAcceptPrefix), 10, 64)
	if err != nil {
		b.logger.Warn("Malformed accept callback",
			zap.String("data", callback.Data),
			zap.Error(err))
		b.answerCallback(callback.ID, "", false)
		return
	}

	order, ok := b.orders.Accept(orderID)
	if !ok {
		b.editCallbackMessage(callback, fmt.Sprintf("Order ID %d already accepted or not found.", orderID))
		b.answerCallback(callback.ID, "Order status updated.", true)
		return
	}

	// Best-effort customer notification; failure is logged, not surfaced
	// to the admin.
	customerMsg := tgbotapi.NewMessage(order.UserID, fmt.Sprintf(
		"🎉 *Good News!* Your custom order (#%d) has been *ACCEPTED* by the NAYA wear team and is being processed! We will contact you at %s soon.",
		orderID, quoteUserInput(order.Phone)))
	customerMsg.ParseMode = tgbotapi.ModeMarkdown
	if _, err := b.sender.Send(customerMsg); err != nil {
		b.logger.Error("Could not notify customer about acceptance",
			zap.Int64("order_id", orderID),
			zap.Int64("user_id", order.UserID),
			zap.Error(err))
	}

	b.editCallbackMessage(callback, fmt.Sprintf(
		"✅ ORDER ACCEPTED (ID: %d)\nThis custom order has been processed.", orderID))
	b.answerCallback(callback.ID, "Order accepted successfully!", true)

	b.logger.Info("Order accepted",
		zap.Int64("order_id", orderID),
		zap.Int64("admin_id", callback.From.ID))
}

// handleSkipPhoto handles the inline skip button. Valid only while the chat
// is actually at the reference-photo question; stale presses are just
// acknowledged.
func (b *Bot) handleSkipPhoto(ctx context.Context, callback *tgbotapi.CallbackQuery) {
	if callback.Message == nil {
		b.answerCallback(callback.ID, "", false)
		return
	}
	chatID := callback.Message.Chat.ID

	sess, err := b.sessions.Get(ctx, chatID)
	if err != nil {
		b.logger.Error("Failed to get session",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
		b.answerCallback(callback.ID, "", false)
		return
	}
	if sess == nil || sess.Stage != session.StagePhoto {
		b.answerCallback(callback.ID, "", false)
		return
	}

	sess.PhotoFileID = PhotoSkipped
	sess.Stage = session.StagePhone

	// Remove the skip button from the question message.
	clear := tgbotapi.NewEditMessageReplyMarkup(chatID, callback.Message.MessageID,
		tgbotapi.InlineKeyboardMarkup{InlineKeyboard: [][]tgbotapi.InlineKeyboardButton{}})
	if _, err := b.sender.Request(clear); err != nil {
		b.logger.Warn("Failed to clear skip keyboard",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
	}

	b.answerCallback(callback.ID, "Photo step skipped.", false)
	b.saveAndPrompt(ctx, chatID, sess, questionPhone, nil)
}

func (b *Bot) editCallbackMessage(callback *tgbotapi.CallbackQuery, text string) {
	if callback.Message == nil {
		return
	}
	edit := tgbotapi.NewEditMessageText(callback.Message.Chat.ID, callback.Message.MessageID, text)
	if _, err := b.sender.Send(edit); err != nil {
		b.logger.Error("Failed to edit admin message",
			zap.Int64("chat_id", callback.Message.Chat.ID),
			zap.Int("message_id", callback.Message.MessageID),
			zap.Error(err))
	}
}
