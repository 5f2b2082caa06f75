package bot

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// ADMIN NOTIFICATIONS

// DeliveryResult is the outcome of one admin notification. Sends are
// independent: a failure for one admin never blocks the others.
type DeliveryResult struct {
	AdminID int64
	Err     error
}

// notifyAdmins sends the order notification to every configured admin and
// returns one result per admin.
func (b *Bot) notifyAdmins(order Order) []DeliveryResult {
	body := formatOrderNotification(order)
	keyboard := createAcceptanceKeyboard(order.ID)

	results := make([]DeliveryResult, 0, len(b.cfg.AdminIDs))
	for _, adminID := range b.cfg.AdminIDs {
		err := b.sendOrderNotification(adminID, order, body, keyboard)
		results = append(results, DeliveryResult{AdminID: adminID, Err: err})
	}
	return results
}

// sendOrderNotification delivers one admin's copy. When a reference photo was
// captured it goes out as a photo with the details as caption; if that send
// fails the same body is retried once as plain text with a warning prefix.
// Notifications carry no parse mode: user input is isolated by quoting only.
func (b *Bot) sendOrderNotification(adminID int64, order Order, body string, keyboard tgbotapi.InlineKeyboardMarkup) error {
	if hasReferencePhoto(order.PhotoFileID) {
		photo := tgbotapi.NewPhoto(adminID, tgbotapi.FileID(order.PhotoFileID))
		photo.Caption = body
		photo.ReplyMarkup = keyboard

		_, err := b.sender.Send(photo)
		if err == nil {
			return nil
		}

		b.logger.Warn("Failed to send order photo, falling back to text",
			zap.Int64("order_id", order.ID),
			zap.Int64("admin_id", adminID),
			zap.Error(err))

		fallback := fmt.Sprintf(
			"⚠️ Failed to display photo for Order %d. Photo File ID: %s\n\n%s",
			order.ID, order.PhotoFileID, body)
		msg := tgbotapi.NewMessage(adminID, fallback)
		msg.ReplyMarkup = keyboard
		_, err = b.sender.Send(msg)
		return err
	}

	msg := tgbotapi.NewMessage(adminID, body)
	msg.ReplyMarkup = keyboard
	_, err := b.sender.Send(msg)
	return err
}

// notifyReceipt forwards the payment screenshot to every admin. On a failed
// photo send the admin still gets a text notice with enough detail for a
// manual follow-up.
func (b *Bot) notifyReceipt(from *tgbotapi.User, phone, fileID string) []DeliveryResult {
	username := from.UserName
	if username == "" {
		username = from.FirstName
	}

	caption := fmt.Sprintf(
		"💰 NEW PAYMENT RECEIPT RECEIVED 💰\nCustomer: %s (ID: %d)\nPhone Number (for verification): %s\n---\nACTION REQUIRED: Please check bank account (1000495773268) to verify the 200 birr advance payment.",
		username, from.ID, phone)

	results := make([]DeliveryResult, 0, len(b.cfg.AdminIDs))
	for _, adminID := range b.cfg.AdminIDs {
		photo := tgbotapi.NewPhoto(adminID, tgbotapi.FileID(fileID))
		photo.Caption = caption

		_, err := b.sender.Send(photo)
		if err != nil {
			b.logger.Error("Failed to send receipt photo to admin",
				zap.Int64("admin_id", adminID),
				zap.Int64("user_id", from.ID),
				zap.Error(err))

			fallback := fmt.Sprintf(
				"⚠️ FAILED to display payment receipt photo for user %s (ID: %d).\nPhone: %s.\nFile ID: %s.\n(Original Send Error: %s)\n---\nACTION REQUIRED: Please verify the payment manually.",
				username, from.ID, phone, fileID, truncateError(err, 120))
			_, err = b.sender.Send(tgbotapi.NewMessage(adminID, fallback))
		}
		results = append(results, DeliveryResult{AdminID: adminID, Err: err})
	}
	return results
}

// formatOrderNotification composes the admin-facing order summary. Labels are
// plain text; every user-supplied value is wrapped in inline code so
// formatting characters in answers render literally.
func formatOrderNotification(order Order) string {
	username := order.Username
	if username == "" {
		username = "N/A"
	}

	return fmt.Sprintf(
		"🚨 NEW CUSTOM ORDER PENDING (ID: %d) 🚨\n"+
			"Customer: %s (@%s)\n"+
			"User ID: %d\n"+
			"---\n"+
			"1. Order Type: %s\n"+
			"2. Size/Measurements: %s\n"+
			"3. Color/Fabric: %s\n"+
			"5. Phone Number: %s\n"+
			"Photo ID: %s",
		order.ID,
		order.DisplayName, username,
		order.UserID,
		quoteUserInput(order.OrderType),
		quoteUserInput(order.Size),
		quoteUserInput(order.ColorFabric),
		quoteUserInput(order.Phone),
		quoteUserInput(order.PhotoFileID),
	)
}

func hasReferencePhoto(fileID string) bool {
	return fileID != PhotoNotProvided && fileID != PhotoSkipped
}
