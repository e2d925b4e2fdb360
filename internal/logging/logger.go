package logging

import (
	"fmt"
	"log"
	"strings"

	"shopify-importer/internal/config"
)

type LoggerService interface {
	Log(value string)
	LogError(value string, err error)
	LogWarning(value string)
	LogSuccess(value string)
}

const (
	iconInfo    = "ℹ️"
	iconError   = "❌"
	iconWarning = "⚠️"
	iconSuccess = "✅"
)

type Logger struct {
	telegram *telegramNotifier
}

// NewLogger returns a console logger. When telegram credentials are present
// every message is mirrored to the bot chat as well.
func NewLogger(cfg config.TelegramBotConfig) LoggerService {
	l := &Logger{}
	if cfg.ChatId != "" && cfg.Token != "" {
		l.telegram = &telegramNotifier{creds: cfg}
	}
	return l
}

func (l *Logger) Log(value string) {
	l.emit(iconInfo, "INFO", value)
}

func (l *Logger) LogError(value string, err error) {
	if err != nil {
		value = fmt.Sprintf("%s: %v", value, err)
	}
	l.emit(iconError, "ERROR", value)
}

func (l *Logger) LogWarning(value string) {
	l.emit(iconWarning, "WARNING", value)
}

func (l *Logger) LogSuccess(value string) {
	l.emit(iconSuccess, "SUCCESS", value)
}

func (l *Logger) emit(icon, level, value string) {
	msg := formatMessage(icon, level, value)
	log.Println(msg)
	if l.telegram != nil {
		if err := l.telegram.send(msg); err != nil {
			log.Printf("telegram notify failed: %v", err)
		}
	}
}

func formatMessage(icon, level, value string) string {
	v := strings.TrimSpace(value)
	if v == "" {
		v = "-"
	}
	return fmt.Sprintf("%s %s: %s", icon, level, v)
}
