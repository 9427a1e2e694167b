package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rental-booking/internal/data/entity"
	"rental-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// ErrDatesAlreadyBooked is returned when a paid booking already covers part
// of the requested range.
var ErrDatesAlreadyBooked = errors.New("dates already booked")

// confirmLockKey serializes all confirmations at the check-then-insert
// boundary. A row lock alone cannot block two inserts whose ranges overlap
// only each other.
const confirmLockKey = 0x626f6f6b

type BookingRepository interface {
	// HasPaidOverlap reports whether any paid booking overlaps [checkIn, checkOut)
	// under half-open interval semantics.
	HasPaidOverlap(ctx context.Context, checkIn, checkOut time.Time) (bool, error)

	// ConfirmBooking re-checks the overlap and inserts the paid booking as one
	// atomic unit. Exactly one of two concurrent overlapping confirmations
	// wins; the other gets ErrDatesAlreadyBooked and nothing is written.
	ConfirmBooking(ctx context.Context, booking *entity.Booking) error

	FindUpcoming(ctx context.Context, from time.Time) ([]*entity.Booking, error)
	// FindPaidInRange returns paid bookings overlapping [from, to).
	FindPaidInRange(ctx context.Context, from, to time.Time) ([]*entity.Booking, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) HasPaidOverlap(ctx context.Context, checkIn, checkOut time.Time) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE paid = TRUE AND check_in < $2 AND check_out > $1
		)
	`

	var overlap bool
	err := r.db.QueryRow(ctx, query, checkIn, checkOut).Scan(&overlap)
	if err != nil {
		r.log.Error("Failed to check booking overlap",
			zap.Error(err),
			zap.Time("check_in", checkIn),
			zap.Time("check_out", checkOut),
		)
		return false, fmt.Errorf("check booking overlap: %w", err)
	}

	return overlap, nil
}

func (r *bookingRepository) ConfirmBooking(ctx context.Context, booking *entity.Booking) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin confirm transaction", zap.Error(err))
		return fmt.Errorf("begin confirm transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, confirmLockKey); err != nil {
		r.log.Error("Failed to take confirm lock", zap.Error(err))
		return fmt.Errorf("take confirm lock: %w", err)
	}

	var blockingID uuid.UUID
	err = tx.QueryRow(ctx, `
		SELECT id FROM bookings
		WHERE paid = TRUE AND check_in < $2 AND check_out > $1
		LIMIT 1
	`, booking.CheckIn, booking.CheckOut).Scan(&blockingID)

	if err == nil {
		return ErrDatesAlreadyBooked
	}
	if err != pgx.ErrNoRows {
		r.log.Error("Failed to re-check booking overlap", zap.Error(err))
		return fmt.Errorf("re-check booking overlap: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO bookings (id, name, email, check_in, check_out, total_price, paid, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`,
		booking.ID,
		booking.Name,
		booking.Email,
		booking.CheckIn,
		booking.CheckOut,
		booking.TotalPrice,
		booking.Paid,
		booking.CreatedAt,
	)
	if err != nil {
		r.log.Error("Failed to insert booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
		return fmt.Errorf("insert booking %s: %w", booking.ID.String(), err)
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit booking", zap.Error(err))
		return fmt.Errorf("commit booking %s: %w", booking.ID.String(), err)
	}

	return nil
}

func (r *bookingRepository) FindUpcoming(ctx context.Context, from time.Time) ([]*entity.Booking, error) {
	query := `
		SELECT id, name, email, check_in, check_out, total_price, paid, created_at
		FROM bookings
		WHERE check_out >= $1
		ORDER BY check_in
	`

	rows, err := r.db.Query(ctx, query, from)
	if err != nil {
		r.log.Error("Failed to find upcoming bookings",
			zap.Error(err),
			zap.Time("from", from),
		)
		return nil, fmt.Errorf("find upcoming bookings: %w", err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

func (r *bookingRepository) FindPaidInRange(ctx context.Context, from, to time.Time) ([]*entity.Booking, error) {
	query := `
		SELECT id, name, email, check_in, check_out, total_price, paid, created_at
		FROM bookings
		WHERE paid = TRUE AND check_in < $2 AND check_out > $1
		ORDER BY check_in
	`

	rows, err := r.db.Query(ctx, query, from, to)
	if err != nil {
		r.log.Error("Failed to find bookings in range",
			zap.Error(err),
			zap.Time("from", from),
			zap.Time("to", to),
		)
		return nil, fmt.Errorf("find bookings in range: %w", err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

func scanBookings(rows pgx.Rows) ([]*entity.Booking, error) {
	var bookings []*entity.Booking
	for rows.Next() {
		var booking entity.Booking
		err := rows.Scan(
			&booking.ID,
			&booking.Name,
			&booking.Email,
			&booking.CheckIn,
			&booking.CheckOut,
			&booking.TotalPrice,
			&booking.Paid,
			&booking.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, &booking)
	}

	return bookings, nil
}
