package notify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/jokistudio/portal/internal/domain/model"
)

// TokenSource lists the device tokens registered by admin accounts.
type TokenSource interface {
	ListAdminTokens(ctx context.Context) ([]string, error)
}

// PushDispatcher sends an FCM legacy-API push to every registered admin
// device when an order event happens.
type PushDispatcher struct {
	client *resty.Client
	tokens TokenSource
	logger *slog.Logger
}

type pushPayload struct {
	RegistrationIDs []string         `json:"registration_ids"`
	Notification    pushNotification `json:"notification"`
	Data            map[string]string `json:"data,omitempty"`
}

type pushNotification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// NewPushDispatcher creates a dispatcher posting to the given endpoint.
func NewPushDispatcher(pushURL, serverKey string, tokens TokenSource, logger *slog.Logger) *PushDispatcher {
	client := resty.New().
		SetBaseURL(pushURL).
		SetTimeout(10 * time.Second).
		SetHeader("Content-Type", "application/json")
	if serverKey != "" {
		client.SetHeader("Authorization", "key="+serverKey)
	}
	return &PushDispatcher{client: client, tokens: tokens, logger: logger}
}

func (d *PushDispatcher) Notify(ctx context.Context, event model.Event) error {
	tokens, err := d.tokens.ListAdminTokens(ctx)
	if err != nil {
		return fmt.Errorf("list admin tokens: %w", err)
	}
	if len(tokens) == 0 {
		d.logger.Debug("no admin devices registered, push skipped", "event", event.Kind)
		return nil
	}

	resp, err := d.client.R().
		SetContext(ctx).
		SetBody(pushPayload{
			RegistrationIDs: tokens,
			Notification:    pushNotification{Title: event.Title, Body: event.Body},
			Data:            event.Meta,
		}).
		Post("")
	if err != nil {
		return fmt.Errorf("push send: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("push send: status %d", resp.StatusCode())
	}

	d.logger.Info("push dispatched", "event", event.Kind, "devices", len(tokens))
	return nil
}
