package bot

import (
	"context"
	"fmt"

	"nayawear-bot/internal/session"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// finalizeOrder turns a completed session into a pending order, confirms to
// the buyer and notifies every admin. The session is deleted either way.
func (b *Bot) finalizeOrder(ctx context.Context, from *tgbotapi.User, chatID int64, sess *session.Session) {
	photoRef := sess.PhotoFileID
	if photoRef == "" {
		photoRef = PhotoNotProvided
	}

	order := Order{
		UserID:      from.ID,
		DisplayName: from.FirstName,
		Username:    from.UserName,
		OrderType:   sess.OrderType,
		Size:        sess.Size,
		ColorFabric: sess.ColorFabric,
		PhotoFileID: photoRef,
		Phone:       sess.Phone,
	}
	orderID := b.orders.Add(order)
	order.ID = orderID
	order.Status = StatusPending

	if err := b.sessions.Delete(ctx, chatID); err != nil {
		b.logger.Error("Failed to clear session after finalization",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
	}

	b.logger.Info("Order finalized",
		zap.Int64("order_id", orderID),
		zap.Int64("user_id", order.UserID))

	b.sendMarkdown(chatID, fmt.Sprintf(
		"✅ *Order Request Sent!* (ID: %d)\n\nThank you for your request. We will review your custom order details and the reference photo (if provided), and confirm it soon.\n\n*Reminder:* Please ensure you have used the *Upload Receipt* button to confirm your advance payment.",
		orderID))

	results := b.notifyAdmins(order)
	for _, result := range results {
		if result.Err != nil {
			b.logger.Error("Order notification not delivered",
				zap.Int64("order_id", orderID),
				zap.Int64("admin_id", result.AdminID),
				zap.Error(result.Err))
		}
	}
}

// finalizeReceipt forwards the payment-proof photo to every admin and always
// acknowledges to the requester, regardless of delivery outcome.
func (b *Bot) finalizeReceipt(ctx context.Context, from *tgbotapi.User, chatID int64, sess *session.Session, fileID string) {
	results := b.notifyReceipt(from, sess.ReceiptPhone, fileID)
	for _, result := range results {
		if result.Err != nil {
			b.logger.Error("Receipt notification not delivered",
				zap.Int64("user_id", from.ID),
				zap.Int64("admin_id", result.AdminID),
				zap.Error(result.Err))
		}
	}

	b.sendMessage(tgbotapi.NewMessage(chatID, msgReceiptAck))

	if err := b.sessions.Delete(ctx, chatID); err != nil {
		b.logger.Error("Failed to clear receipt session",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
	}
}
