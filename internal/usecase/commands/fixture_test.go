//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"tour-booking/internal/infra"
	"tour-booking/internal/pkg/clock"
	"tour-booking/internal/usecase/shared"
	commandsmock "tour-booking/tests/mock/commands"
	sharedmock "tour-booking/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

type fixture struct {
	uow      *sharedmock.MockUnitOfWork
	tx       *sharedmock.MockTx
	reads    *sharedmock.MockCommandReads
	txReads  *sharedmock.MockCommandReads
	bookings *sharedmock.MockBookingRepository
	payments *sharedmock.MockPaymentRepository
	outbox   *sharedmock.MockOutboxRepository
	gateway  *commandsmock.MockPaymentGateway
	verifier *commandsmock.MockEventVerifier
	marker   *commandsmock.MockEventMarker
	listings *commandsmock.MockListingLookup
	clock    *clock.MockClock
	logger   *slog.Logger
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		uow:      sharedmock.NewMockUnitOfWork(ctrl),
		tx:       sharedmock.NewMockTx(ctrl),
		reads:    sharedmock.NewMockCommandReads(ctrl),
		txReads:  sharedmock.NewMockCommandReads(ctrl),
		bookings: sharedmock.NewMockBookingRepository(ctrl),
		payments: sharedmock.NewMockPaymentRepository(ctrl),
		outbox:   sharedmock.NewMockOutboxRepository(ctrl),
		gateway:  commandsmock.NewMockPaymentGateway(ctrl),
		verifier: commandsmock.NewMockEventVerifier(ctrl),
		marker:   commandsmock.NewMockEventMarker(ctrl),
		listings: commandsmock.NewMockListingLookup(ctrl),
		clock:    clock.NewMockClock(fixedNow),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	f.uow.EXPECT().CommandReads().Return(f.reads).AnyTimes()
	f.tx.EXPECT().Bookings().Return(f.bookings).AnyTimes()
	f.tx.EXPECT().Payments().Return(f.payments).AnyTimes()
	f.tx.EXPECT().Outbox().Return(f.outbox).AnyTimes()
	f.tx.EXPECT().Reads().Return(f.txReads).AnyTimes()
	return f
}

// runWithin makes Within invoke its callback against the mocked Tx, once.
func (f *fixture) runWithin() {
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		})
}

func notFound() error {
	return infra.WrapRepoErr("not found", nil, infra.KindNotFound)
}
