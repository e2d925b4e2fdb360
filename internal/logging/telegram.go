package logging

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"shopify-importer/internal/config"
)

type telegramNotifier struct {
	creds config.TelegramBotConfig
}

type telegramRequest struct {
	ChatId string `json:"chat_id"`
	Text   string `json:"text"`
}

func (t *telegramNotifier) send(value string) error {
	url := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", t.creds.Token)

	reqBody := telegramRequest{
		ChatId: t.creds.ChatId,
		Text:   value,
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return err
	}

	resp, err := http.Post(url, "application/json", bytes.NewReader(bodyBytes))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("telegram send failed: %s", resp.Status)
	}
	return nil
}
