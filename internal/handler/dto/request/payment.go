package request

import "github.com/google/uuid"

type CreateIntentRequest struct {
	BookingID uuid.UUID `json:"bookingId" binding:"required"`
}
