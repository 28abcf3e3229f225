package converter

import (
	"tour-booking/internal/domain/payment"
	sqlc "tour-booking/internal/infra/sqlc/generated"
	"tour-booking/internal/pkg/errs"
	"tour-booking/internal/pkg/pgconv"
)

func PaymentToCreateParams(p *payment.Payment) sqlc.CreatePaymentParams {
	return sqlc.CreatePaymentParams{
		ID:         p.ID(),
		BookingID:  p.BookingID(),
		ExternalID: p.ExternalID(),
		Amount:     p.Amount(),
		Currency:   p.Currency(),
		Status:     p.Status().String(),
		CreatedAt:  pgconv.TimeToPgtype(p.CreatedAt()),
		UpdatedAt:  pgconv.TimeToPgtype(p.UpdatedAt()),
	}
}

func PaymentFromRow(row sqlc.Payments) (*payment.Payment, error) {
	status, err := payment.ParseStatus(row.Status)
	if err != nil {
		return nil, errs.Wrapf(err, "payment %s", row.ID)
	}
	return payment.ReconstructPayment(
		row.ID, row.BookingID, row.ExternalID,
		row.Amount, row.Currency, status,
		pgconv.TimeFromPgtype(row.CreatedAt), pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
