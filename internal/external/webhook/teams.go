package kudos

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	model "github.com/glkeru/employeehub/internal/models"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

type teamsMessage struct {
	Text string `json:"text"`
}

// Уведомления в канал Teams через incoming webhook
type TeamsNotifier struct {
	url    string
	client *http.Client
	logger *zap.Logger
}

// Пустой url - уведомления пропускаются
func NewTeamsNotifier(url string, timeout time.Duration, logger *zap.Logger) *TeamsNotifier {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	client := &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
	return &TeamsNotifier{url, client, logger}
}

func (t *TeamsNotifier) Notify(ctx context.Context, n model.KudosNotification) error {
	if t.url == "" {
		t.logger.Warn("Teams webhook URL is not configured, skipping notification",
			zap.String("event", n.EventID.String()))
		return nil
	}

	body, err := json.Marshal(teamsMessage{Text: MessageText(n)})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("Teams webhook HTTP error: %s", resp.Status)
	}
	t.logger.Info("kudos notification sent", zap.String("event", n.EventID.String()))
	return nil
}

func MessageText(n model.KudosNotification) string {
	text := fmt.Sprintf("🎉 **Kudos Alert!** 🎉\n\n**%s** sent **%d kudos** to **%s**",
		n.SenderName, n.Amount, n.ReceiverName)
	if n.Message != "" {
		text += fmt.Sprintf("\n\nMessage: \"%s\"", n.Message)
	}
	return text
}
