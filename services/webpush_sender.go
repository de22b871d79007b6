// services/webpush_sender.go
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	webpush "github.com/SherClockHolmes/webpush-go"

	"caregiver-backend/models"
)

// ErrSubscriptionGone means the push service reported the endpoint as
// permanently invalid (HTTP 404/410) and the subscription should be deleted.
var ErrSubscriptionGone = errors.New("push subscription gone")

// WebPushSender delivers notifications over the Web Push protocol with VAPID
// signing. Keys come from the environment; while they are missing the sender
// reports itself unconfigured and the dispatcher stays silent instead of
// failing every send.
type WebPushSender struct {
	client *http.Client
}

func NewWebPushSender() *WebPushSender {
	// One bounded client for all sends, so a hung push service cannot stall
	// the rest of the dispatch loop.
	return &WebPushSender{client: &http.Client{Timeout: 10 * time.Second}}
}

func (w *WebPushSender) Configured() bool {
	return os.Getenv("VAPID_PRIVATE_KEY") != "" && os.Getenv("VAPID_PUBLIC_KEY") != ""
}

func (w *WebPushSender) Send(ctx context.Context, sub models.PushSubscription, title, body string) error {
	payload, err := json.Marshal(map[string]string{"title": title, "body": body})
	if err != nil {
		return err
	}

	subscriber := os.Getenv("VAPID_SUBSCRIBER")
	if subscriber == "" {
		subscriber = "mailto:admin@example.com"
	}

	resp, err := webpush.SendNotificationWithContext(ctx, payload, &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			P256dh: sub.P256dh,
			Auth:   sub.Auth,
		},
	}, &webpush.Options{
		HTTPClient:      w.client,
		Subscriber:      subscriber,
		VAPIDPublicKey:  os.Getenv("VAPID_PUBLIC_KEY"),
		VAPIDPrivateKey: os.Getenv("VAPID_PRIVATE_KEY"),
		TTL:             60,
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusGone || resp.StatusCode == http.StatusNotFound:
		return ErrSubscriptionGone
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	default:
		return fmt.Errorf("push service returned status %d", resp.StatusCode)
	}
}
