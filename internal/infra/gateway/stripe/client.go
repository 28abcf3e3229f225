package stripe

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"tour-booking/internal/pkg/config"
	"tour-booking/internal/pkg/errs"
	"tour-booking/internal/usecase/commands"

	stripeapi "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"
)

// Gateway talks to the processor's PaymentIntents API and verifies its
// webhook deliveries.
type Gateway struct {
	api       *client.API
	timeout   time.Duration
	secret    string
	tolerance time.Duration
}

func NewGateway(cfg config.PaymentConfig) *Gateway {
	return newGateway(cfg, nil)
}

// newGateway allows pointing the API backend at another base URL.
func newGateway(cfg config.PaymentConfig, baseURL *string) *Gateway {
	httpClient := &http.Client{Timeout: cfg.Timeout}
	backend := stripeapi.GetBackendWithConfig(stripeapi.APIBackend, &stripeapi.BackendConfig{
		HTTPClient:        httpClient,
		URL:               baseURL,
		MaxNetworkRetries: stripeapi.Int64(1),
	})
	api := client.New(cfg.StripeSecretKey, &stripeapi.Backends{
		API:     backend,
		Connect: backend,
		Uploads: backend,
	})
	return &Gateway{
		api:       api,
		timeout:   cfg.Timeout,
		secret:    cfg.WebhookSecret,
		tolerance: cfg.WebhookTolerance,
	}
}

func (g *Gateway) CreateIntent(ctx context.Context, req commands.IntentRequest) (*commands.Intent, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	params := &stripeapi.PaymentIntentParams{
		Amount:   stripeapi.Int64(req.AmountMinor),
		Currency: stripeapi.String(req.Currency),
	}
	params.Context = ctx
	params.AddMetadata(commands.MetadataBookingID, req.BookingID.String())
	params.AddMetadata(commands.MetadataBuyerID, req.BuyerID.String())
	if req.IdempotencyKey != "" {
		params.SetIdempotencyKey(req.IdempotencyKey)
	}

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return nil, errs.Wrap(err, "create payment intent")
	}
	return &commands.Intent{ID: pi.ID, ClientSecret: pi.ClientSecret}, nil
}

func (g *Gateway) CancelIntent(ctx context.Context, intentID string) error {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	params := &stripeapi.PaymentIntentCancelParams{}
	params.Context = ctx
	if _, err := g.api.PaymentIntents.Cancel(intentID, params); err != nil {
		return errs.Wrapf(err, "cancel payment intent %s", intentID)
	}
	return nil
}

// Verify checks the signature header against the raw payload and decodes
// the intent the event refers to. Only payment_intent events carry an intent.
func (g *Gateway) Verify(payload []byte, signatureHeader string) (*commands.PaymentEvent, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signatureHeader, g.secret, webhook.ConstructEventOptions{
		Tolerance:                g.tolerance,
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return nil, errs.Wrap(err, "verify webhook signature")
	}

	out := &commands.PaymentEvent{
		ID:   event.ID,
		Type: commands.PaymentEventType(event.Type),
	}

	switch event.Type {
	case stripeapi.EventTypePaymentIntentSucceeded, stripeapi.EventTypePaymentIntentPaymentFailed:
		var pi stripeapi.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
			return nil, errs.Wrap(err, "decode payment intent")
		}
		out.IntentID = pi.ID
		out.AmountMinor = pi.Amount
		out.Currency = string(pi.Currency)
		out.BookingID = pi.Metadata[commands.MetadataBookingID]
	}
	return out, nil
}
