package bot

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// BOT KEYBOARDS

func createMainMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonPlaceOrder),
			tgbotapi.NewKeyboardButton(ButtonUploadReceipt),
		),
	)
	keyboard.ResizeKeyboard = true
	return keyboard
}

func createSkipPhotoKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("➡️ Skip Photo", callbackSkipPhoto),
		),
	)
}

func createAcceptanceKeyboard(orderID int64) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				"✅ Accept & Process Order",
				fmt.Sprintf("%s%d", callbackAcceptPrefix, orderID),
			),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				"❌ Reject Order (Not Implemented)",
				callbackRejectOrder,
			),
		),
	)
}
