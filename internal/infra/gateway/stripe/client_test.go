//go:build unit

package stripe

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tour-booking/internal/pkg/config"
	"tour-booking/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76/webhook"
)

const whsec = "whsec_test_secret"

func testConfig() config.PaymentConfig {
	return config.PaymentConfig{
		Currency:         "usd",
		StripeSecretKey:  "sk_test_123",
		WebhookSecret:    whsec,
		Timeout:          2 * time.Second,
		WebhookTolerance: 5 * time.Minute,
	}
}

func sign(payload string, secret string, at time.Time) string {
	return webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   []byte(payload),
		Secret:    secret,
		Timestamp: at,
	}).Header
}

func TestGateway_Verify(t *testing.T) {
	bookingID := uuid.New()
	succeeded := fmt.Sprintf(`{
		"id": "evt_1",
		"object": "event",
		"type": "payment_intent.succeeded",
		"data": {"object": {"id": "pi_1", "object": "payment_intent", "amount": 15000, "currency": "usd", "metadata": {"bookingId": %q}}}
	}`, bookingID)
	refunded := `{"id": "evt_2", "object": "event", "type": "charge.refunded", "data": {"object": {"id": "ch_1", "object": "charge"}}}`

	g := NewGateway(testConfig())

	t.Run("payment intent event is decoded", func(t *testing.T) {
		ev, err := g.Verify([]byte(succeeded), sign(succeeded, whsec, time.Now()))

		require.NoError(t, err)
		assert.Equal(t, &commands.PaymentEvent{
			ID:          "evt_1",
			Type:        commands.PaymentEventSucceeded,
			IntentID:    "pi_1",
			BookingID:   bookingID.String(),
			AmountMinor: 15000,
			Currency:    "usd",
		}, ev)
	})

	t.Run("other event types carry no intent", func(t *testing.T) {
		ev, err := g.Verify([]byte(refunded), sign(refunded, whsec, time.Now()))

		require.NoError(t, err)
		assert.Equal(t, commands.PaymentEventType("charge.refunded"), ev.Type)
		assert.Empty(t, ev.IntentID)
	})

	t.Run("foreign secret is rejected", func(t *testing.T) {
		_, err := g.Verify([]byte(succeeded), sign(succeeded, "whsec_other", time.Now()))
		require.Error(t, err)
	})

	t.Run("stale timestamp is rejected", func(t *testing.T) {
		_, err := g.Verify([]byte(succeeded), sign(succeeded, whsec, time.Now().Add(-time.Hour)))
		require.Error(t, err)
	})

	t.Run("tampered payload is rejected", func(t *testing.T) {
		header := sign(succeeded, whsec, time.Now())
		_, err := g.Verify([]byte(refunded), header)
		require.Error(t, err)
	})
}

func TestGateway_CreateIntent(t *testing.T) {
	bookingID, buyerID := uuid.New(), uuid.New()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/payment_intents", r.URL.Path)
		assert.Equal(t, "booking-intent:abc", r.Header.Get("Idempotency-Key"))
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "15000", r.PostForm.Get("amount"))
		assert.Equal(t, "usd", r.PostForm.Get("currency"))
		assert.Equal(t, bookingID.String(), r.PostForm.Get("metadata[bookingId]"))
		assert.Equal(t, buyerID.String(), r.PostForm.Get("metadata[buyerId]"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "pi_1", "object": "payment_intent", "client_secret": "pi_1_secret_x"}`))
	}))
	defer srv.Close()

	g := newGateway(testConfig(), &srv.URL)
	intent, err := g.CreateIntent(context.Background(), commands.IntentRequest{
		BookingID:      bookingID,
		BuyerID:        buyerID,
		AmountMinor:    15000,
		Currency:       "usd",
		IdempotencyKey: "booking-intent:abc",
	})

	require.NoError(t, err)
	assert.Equal(t, &commands.Intent{ID: "pi_1", ClientSecret: "pi_1_secret_x"}, intent)
}

func TestGateway_ProcessorErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": {"type": "invalid_request_error", "message": "No such payment_intent"}}`))
	}))
	defer srv.Close()

	g := newGateway(testConfig(), &srv.URL)

	_, err := g.CreateIntent(context.Background(), commands.IntentRequest{AmountMinor: 100, Currency: "usd"})
	require.Error(t, err)

	err = g.CancelIntent(context.Background(), "pi_missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pi_missing")
}
