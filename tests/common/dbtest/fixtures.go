//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// CreateTestListing inserts a catalog row. A nil seller leaves the listing unassigned.
func CreateTestListing(t *testing.T, db DBLike, sellerID *uuid.UUID, title string, pricePerDay string) uuid.UUID {
	t.Helper()

	listingID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO listings (id, seller_id, title, price_per_day) VALUES ($1, $2, $3, $4)",
		listingID, sellerID, title, decimal.RequireFromString(pricePerDay))
	require.NoError(t, err)

	return listingID
}

// CreateTestBooking inserts a booking directly, bypassing the calendar check.
func CreateTestBooking(t *testing.T, db DBLike, listingID, buyerID, sellerID uuid.UUID, start, end time.Time, status, paymentStatus string) uuid.UUID {
	t.Helper()

	price := decimal.NewFromInt(50)
	days := int64(end.Sub(start).Hours() / 24)
	bookingID := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO bookings (id, listing_id, buyer_id, seller_id, start_date, end_date, price_per_day, total_price, status, payment_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		bookingID, listingID, buyerID, sellerID, start, end, price, price.Mul(decimal.NewFromInt(days)), status, paymentStatus)
	require.NoError(t, err)

	return bookingID
}

// CreateTestPayment stands in for an intent already created at the processor.
func CreateTestPayment(t *testing.T, db DBLike, bookingID uuid.UUID, externalID, amount string) uuid.UUID {
	t.Helper()

	paymentID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO payments (id, booking_id, external_id, amount, currency, status) VALUES ($1, $2, $3, $4, 'usd', 'pending')",
		paymentID, bookingID, externalID, decimal.RequireFromString(amount))
	require.NoError(t, err)

	return paymentID
}

func BookingState(t *testing.T, db DBLike, bookingID uuid.UUID) (status, paymentStatus string) {
	t.Helper()

	err := db.QueryRow(context.Background(), "SELECT status, payment_status FROM bookings WHERE id = $1", bookingID).
		Scan(&status, &paymentStatus)
	require.NoError(t, err)
	return status, paymentStatus
}

func CountOutbox(t *testing.T, db DBLike, eventType string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM outbox_events WHERE event_type = $1", eventType).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
