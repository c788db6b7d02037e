package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Bus publishes alert lines as message-bus envelopes over HTTP. Each alert
// becomes one event: {source, type, payload:{"slackMessage": ...}}, the
// shape the downstream forwarder expects.
type Bus struct {
	Endpoint string
	Source   string
	Type     string
	Client   *http.Client
}

func NewBus(endpoint, source, eventType string) *Bus {
	if endpoint == "" {
		return nil
	}
	if source == "" {
		source = "gatewatch"
	}
	if eventType == "" {
		eventType = "probe-alert"
	}
	return &Bus{
		Endpoint: endpoint,
		Source:   source,
		Type:     eventType,
		Client:   &http.Client{Timeout: 10 * time.Second},
	}
}

type busEnvelope struct {
	Source  string          `json:"source"`
	Type    string          `json:"type"`
	Payload busEventPayload `json:"payload"`
}

type busEventPayload struct {
	SlackMessage string `json:"slackMessage"`
}

func (b *Bus) Send(ctx context.Context, text string) error {
	if b == nil || b.Endpoint == "" {
		return errors.New("bus disabled")
	}
	body, _ := json.Marshal(busEnvelope{
		Source:  b.Source,
		Type:    b.Type,
		Payload: busEventPayload{SlackMessage: text},
	})
	req, _ := http.NewRequestWithContext(ctx, http.MethodPost, b.Endpoint, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("bus publish: status %d", resp.StatusCode)
	}
	return nil
}
