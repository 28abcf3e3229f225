package response

import (
	"tour-booking/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type IntentResponse struct {
	PaymentID    uuid.UUID       `json:"paymentId"`
	IntentID     string          `json:"paymentIntentId"`
	ClientSecret string          `json:"clientSecret"`
	Amount       decimal.Decimal `json:"amount"`
	Currency     string          `json:"currency"`
}

func FromIntentResult(r *commands.IntentResult) *IntentResponse {
	return &IntentResponse{
		PaymentID:    r.PaymentID,
		IntentID:     r.IntentID,
		ClientSecret: r.ClientSecret,
		Amount:       r.Amount,
		Currency:     r.Currency,
	}
}

type WebhookAck struct {
	Received bool `json:"received"`
}
