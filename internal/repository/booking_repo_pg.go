package repository

import (
	"context"
	"time"

	"github.com/Domenick1991/busbooking/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	Search(ctx context.Context, filter domain.BookingFilter) ([]domain.Booking, error)
	Update(ctx context.Context, booking *domain.Booking) error
	Delete(ctx context.Context, id string) error
}

type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) BookingRepository {
	return &PGBookingRepository{db: db}
}

const bookingColumns = `id, booking_number, bus_number, passenger_name, passenger_id_no, passenger_mobile,
	start_location, end_location, seat_count, date, time, price, is_paid, is_cancelled, is_used, is_active,
	booking_identification_code`

func (r *PGBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	booking.ID = uuid.NewString()
	_, err := r.db.Exec(ctx, `INSERT INTO bookings (`+bookingColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
		booking.ID, booking.BookingNumber, booking.BusNumber, booking.PassengerName, booking.PassengerIDNo,
		booking.PassengerMobile, booking.StartLocation, booking.EndLocation, booking.SeatCount, booking.Date,
		booking.Time, booking.Price, booking.IsPaid, booking.IsCancelled, booking.IsUsed, booking.IsActive,
		booking.BookingIdentificationCode)
	return translate(err, "booking")
}

func (r *PGBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id=$1`, id)
	b, err := scanBooking(row)
	if err != nil {
		return nil, translate(err, "booking")
	}
	return b, nil
}

func (r *PGBookingRepository) Search(ctx context.Context, filter domain.BookingFilter) ([]domain.Booking, error) {
	var day time.Time
	if filter.Date != nil {
		day = filter.Date.Truncate(24 * time.Hour)
	}
	rows, err := r.db.Query(ctx, `SELECT `+bookingColumns+` FROM bookings
		WHERE ($1 = '' OR bus_number = $1)
		  AND ($2 = '' OR passenger_id_no = $2)
		  AND ($3 = '' OR booking_identification_code = $3)
		  AND ($4::timestamptz IS NULL OR date_trunc('day', date) = date_trunc('day', $4::timestamptz))`,
		filter.BusNumber, filter.PassengerIDNo, filter.BookingIdentificationCode, nullableTime(filter.Date, day))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, rows.Err()
}

func (r *PGBookingRepository) Update(ctx context.Context, booking *domain.Booking) error {
	cmd, err := r.db.Exec(ctx, `UPDATE bookings SET bus_number=$1, passenger_name=$2, passenger_id_no=$3,
		passenger_mobile=$4, start_location=$5, end_location=$6, seat_count=$7, date=$8, time=$9, price=$10,
		is_paid=$11, is_cancelled=$12, is_used=$13, is_active=$14 WHERE id=$15`,
		booking.BusNumber, booking.PassengerName, booking.PassengerIDNo, booking.PassengerMobile,
		booking.StartLocation, booking.EndLocation, booking.SeatCount, booking.Date, booking.Time,
		booking.Price, booking.IsPaid, booking.IsCancelled, booking.IsUsed, booking.IsActive, booking.ID)
	if err != nil {
		return translate(err, "booking")
	}
	if cmd.RowsAffected() == 0 {
		return translate(errNoRows, "booking")
	}
	return nil
}

func (r *PGBookingRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM bookings WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return translate(errNoRows, "booking")
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	if err := row.Scan(&b.ID, &b.BookingNumber, &b.BusNumber, &b.PassengerName, &b.PassengerIDNo,
		&b.PassengerMobile, &b.StartLocation, &b.EndLocation, &b.SeatCount, &b.Date, &b.Time, &b.Price,
		&b.IsPaid, &b.IsCancelled, &b.IsUsed, &b.IsActive, &b.BookingIdentificationCode); err != nil {
		return nil, err
	}
	return &b, nil
}

func nullableTime(set *time.Time, value time.Time) any {
	if set == nil {
		return nil
	}
	return value
}

var _ BookingRepository = (*PGBookingRepository)(nil)
