package relay

import (
	"context"
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
	"strings"

	"github.com/SherClockHolmes/webpush-go"

	"college-portal-client/config"
)

// Channel is the output port a formatted notification is handed to. Delivery
// is outside this system's control; an error here is logged by the worker and
// never reaches the submission pipeline.
type Channel interface {
	Deliver(ctx context.Context, target, message string) error
}

// WhatsAppLink builds a wa.me deep link for the message and opens it in a new
// browsing context via the platform's URL opener.
type WhatsAppLink struct {
	// OpenURL launches the link. Defaults to the OS opener; tests replace it.
	OpenURL func(url string) error
}

// NewWhatsAppLink creates the deep-link channel with the OS opener.
func NewWhatsAppLink() *WhatsAppLink {
	return &WhatsAppLink{OpenURL: openBrowser}
}

// LinkFor returns the wa.me URL for a target phone number and message.
func LinkFor(target, message string) string {
	return "https://wa.me/" + strings.TrimPrefix(target, "+") + "?text=" + url.QueryEscape(message)
}

func (w *WhatsAppLink) Deliver(_ context.Context, target, message string) error {
	return w.OpenURL(LinkFor(target, message))
}

func openBrowser(url string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	default:
		return exec.Command("xdg-open", url).Start()
	}
}

// PushSender sends one Web Push notification. Split out so tests can swap the
// webpush library for a mock.
type PushSender interface {
	Send(payload []byte, sub *webpush.Subscription, options *webpush.Options) (statusCode int, err error)
}

type webPushSender struct{}

func (webPushSender) Send(payload []byte, sub *webpush.Subscription, options *webpush.Options) (int, error) {
	resp, err := webpush.SendNotification(payload, sub, options)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	return resp.StatusCode, nil
}

// WebPush delivers the summary to a configured staff push subscription
// instead of a chat deep link. The target argument is ignored; the
// subscription endpoint identifies the receiver.
type WebPush struct {
	sub     webpush.Subscription
	options webpush.Options
	sender  PushSender
}

// NewWebPush creates the push channel from VAPID configuration.
func NewWebPush(cfg *config.PushConfig) *WebPush {
	return &WebPush{
		sub: webpush.Subscription{
			Endpoint: cfg.Endpoint,
			Keys: webpush.Keys{
				P256dh: cfg.P256DH,
				Auth:   cfg.Auth,
			},
		},
		options: webpush.Options{
			VAPIDPublicKey:  cfg.PublicKey,
			VAPIDPrivateKey: cfg.PrivateKey,
			Subscriber:      cfg.Subject,
			TTL:             cfg.TTL,
		},
		sender: webPushSender{},
	}
}

func (w *WebPush) Deliver(_ context.Context, _, message string) error {
	status, err := w.sender.Send([]byte(message), &w.sub, &w.options)
	if err != nil {
		return err
	}
	if status >= 400 {
		return fmt.Errorf("push service returned status %d", status)
	}
	return nil
}
