package logger

import "go.uber.org/zap"

// BOT LOGGER

// New builds the production logger used across the bot.
func New() (*zap.Logger, error) {
	return zap.NewProduction()
}
