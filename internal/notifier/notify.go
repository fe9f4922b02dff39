package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"authntik/internal/logger"
	"authntik/internal/model"

	"github.com/rs/zerolog"
)

// WebhookNotifier отправляет события аутентификации POST запросом на внешний URL.
type WebhookNotifier struct {
	webhookURL string
	client     *http.Client
	log        zerolog.Logger
}

func NewWebhookNotifier(webhookURL string, timeout time.Duration, log zerolog.Logger) *WebhookNotifier {
	return &WebhookNotifier{
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: timeout},
		log:        logger.WithComponent(log, "webhook"),
	}
}

func (notifier *WebhookNotifier) NotifyAuthEvent(ctx context.Context, event model.AuthEvent) error {
	jsonBody, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("ошибка преобразования в json: %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, notifier.webhookURL, bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("ошибка создания запроса webhook: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")

	response, err := notifier.client.Do(request)
	if err != nil {
		return fmt.Errorf("ошибка отправки webhook: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("webhook ответил статусом %d", response.StatusCode)
	}

	notifier.log.Debug().Str(logger.FieldAction, event.Event).Str(logger.FieldUserID, event.UserID).Msg("webhook успешно отправлен")
	return nil
}
