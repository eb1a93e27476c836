// Package nui carries one-way, best-effort messages from the
// storefront to the embedding FiveM host. Delivery failures are logged
// and swallowed so cart and readiness operations keep working when the
// service runs standalone.
package nui

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/Lounge-Area/fivemshop/config"
	"github.com/Lounge-Area/fivemshop/pkg/logx"
)

// Actions emitted by this service.
const (
	ActionReady      = "nuiReady"
	ActionAddToCart  = "addToCart"
	ActionUpdateCart = "updateCart"
	ActionCloseNUI   = "closeNUI"
)

// Message is the wire shape of a host notification.
type Message struct {
	Action string `json:"action"`
	Data   any    `json:"data,omitempty"`
}

// Bridge sends fire-and-forget notifications to the host process.
// Notify never blocks the caller and never fails.
type Bridge interface {
	Notify(action string, data any)
}

// FromConfig selects the bridge implementation: a callback bridge when
// a host endpoint is configured, otherwise the log-only stub.
func FromConfig(cfg config.NUIConfig) Bridge {
	if cfg.CallbackURL != "" {
		return NewCallbackBridge(cfg.CallbackURL)
	}
	return LogBridge{}
}

// CallbackBridge posts messages to the NUI callback endpoint of the
// embedding resource.
type CallbackBridge struct {
	url    string
	client *http.Client
}

// NewCallbackBridge creates a bridge posting to the given endpoint.
func NewCallbackBridge(url string) *CallbackBridge {
	return &CallbackBridge{
		url: url,
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// Notify delivers the message on a background goroutine. Failures are
// logged, never returned.
func (b *CallbackBridge) Notify(action string, data any) {
	msg := Message{Action: action, Data: data}
	go func() {
		body, err := json.Marshal(msg)
		if err != nil {
			logx.Warn().Err(err).Str("action", action).Msg("failed to encode nui message")
			return
		}
		resp, err := b.client.Post(b.url, "application/json", bytes.NewReader(body))
		if err != nil {
			logx.Warn().Err(err).Str("action", action).Msg("failed to deliver nui message")
			return
		}
		resp.Body.Close()
		if resp.StatusCode >= 300 {
			logx.Warn().Int("status", resp.StatusCode).Str("action", action).Msg("host rejected nui message")
		}
	}()
}

// LogBridge is the host-absent stub used during standalone development
// and preview: messages are logged and reported as delivered.
type LogBridge struct{}

// Notify logs the message.
func (LogBridge) Notify(action string, data any) {
	logx.Debug().Str("action", action).Interface("data", data).Msg("nui message (no host)")
}
