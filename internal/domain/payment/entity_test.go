//go:build unit

package payment_test

import (
	"testing"
	"time"

	"tour-booking/internal/domain/payment"
	"tour-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPayment(t *testing.T) {
	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	p, err := payment.NewPayment(now, uuid.New(), " pi_123 ", decimal.NewFromInt(150), "USD")
	require.NoError(t, err)
	assert.Equal(t, "pi_123", p.ExternalID())
	assert.Equal(t, "usd", p.Currency())
	assert.Equal(t, payment.StatusPending, p.Status())

	_, err = payment.NewPayment(now, uuid.New(), "", decimal.NewFromInt(150), "usd")
	assert.ErrorIs(t, err, payment.ErrMissingExternalID)

	_, err = payment.NewPayment(now, uuid.New(), "pi_1", decimal.Zero, "usd")
	assert.ErrorIs(t, err, payment.ErrInvalidAmount)
}

func TestPayment_Transitions(t *testing.T) {
	now := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)

	t.Run("succeeded is idempotent", func(t *testing.T) {
		p := builder.NewPaymentBuilder().BuildDomain()
		assert.True(t, p.MarkSucceeded(now))
		assert.False(t, p.MarkSucceeded(now))
		assert.Equal(t, payment.StatusSucceeded, p.Status())
		assert.Equal(t, now, p.UpdatedAt())
	})

	t.Run("failure after success is ignored", func(t *testing.T) {
		p := builder.NewPaymentBuilder().WithStatus(payment.StatusSucceeded).BuildDomain()
		assert.False(t, p.MarkFailed(now))
		assert.Equal(t, payment.StatusSucceeded, p.Status())
	})

	t.Run("pending fails once", func(t *testing.T) {
		p := builder.NewPaymentBuilder().BuildDomain()
		assert.True(t, p.MarkFailed(now))
		assert.False(t, p.MarkFailed(now))
		assert.Equal(t, payment.StatusFailed, p.Status())
	})

	t.Run("a retried charge can succeed after failing", func(t *testing.T) {
		p := builder.NewPaymentBuilder().WithStatus(payment.StatusFailed).BuildDomain()
		assert.True(t, p.MarkSucceeded(now))
	})
}

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"pending", "succeeded", "failed"} {
		st, err := payment.ParseStatus(s)
		require.NoError(t, err)
		assert.Equal(t, s, st.String())
	}
	_, err := payment.ParseStatus("refunded")
	assert.ErrorIs(t, err, payment.ErrInvalidStatus)
}
