package request

import (
	"errors"
	"strings"
	"time"

	"tour-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

var ErrInvalidDate = errors.New("dates must be YYYY-MM-DD or RFC 3339")

type CreateBookingRequest struct {
	ListingID uuid.UUID `json:"listingId" binding:"required"`
	StartDate string    `json:"startDate" binding:"required"`
	EndDate   string    `json:"endDate" binding:"required"`
}

func (r CreateBookingRequest) ToInput() (commands.CreateBookingInput, error) {
	start, err := parseDate(r.StartDate)
	if err != nil {
		return commands.CreateBookingInput{}, err
	}
	end, err := parseDate(r.EndDate)
	if err != nil {
		return commands.CreateBookingInput{}, err
	}
	return commands.CreateBookingInput{
		ListingID: r.ListingID,
		StartDate: start,
		EndDate:   end,
	}, nil
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,booking_status"`
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, ErrInvalidDate
}
