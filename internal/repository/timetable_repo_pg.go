package repository

import (
	"context"
	"time"

	"github.com/Domenick1991/busbooking/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TimetableRepository owns the header+details aggregate. Every mutating
// operation runs inside a single transaction: callers observe either the
// full new state or the full prior state, never a header without its
// details or stale detail rows under an updated header.
type TimetableRepository interface {
	Create(ctx context.Context, header *domain.TimetableHeader, details []domain.TimetableDetail) error
	Update(ctx context.Context, header *domain.TimetableHeader, details []domain.TimetableDetail) error
	Delete(ctx context.Context, id string) error
	ListActive(ctx context.Context, notExpiredBefore time.Time) ([]domain.TimetableView, error)
	DeactivateExpired(ctx context.Context, expiredBefore time.Time) (int64, error)
}

// timetableDB is the slice of pgxpool.Pool the repository needs.
type timetableDB interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

type PGTimetableRepository struct {
	db timetableDB
}

func NewTimetableRepository(db *pgxpool.Pool) TimetableRepository {
	return &PGTimetableRepository{db: db}
}

func (r *PGTimetableRepository) Create(ctx context.Context, header *domain.TimetableHeader, details []domain.TimetableDetail) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	header.ID = uuid.NewString()
	if err := tx.QueryRow(ctx, `INSERT INTO timetable_headers (id, route_id, creater_id, valid_from, valid_to, is_active)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING created_at`,
		header.ID, header.RouteID, header.CreaterID, header.ValidFrom, header.ValidTo, header.IsActive).
		Scan(&header.CreatedAt); err != nil {
		return translate(err, "timetable header")
	}

	if err := r.insertDetails(ctx, tx, header.ID, details); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *PGTimetableRepository) Update(ctx context.Context, header *domain.TimetableHeader, details []domain.TimetableDetail) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	cmd, err := tx.Exec(ctx, `UPDATE timetable_headers SET route_id=$1, creater_id=$2, valid_from=$3, valid_to=$4, is_active=$5 WHERE id=$6`,
		header.RouteID, header.CreaterID, header.ValidFrom, header.ValidTo, header.IsActive, header.ID)
	if err != nil {
		return translate(err, "timetable header")
	}
	if cmd.RowsAffected() == 0 {
		// Missing header aborts before any detail row is touched.
		return translate(errNoRows, "timetable header")
	}

	if _, err := tx.Exec(ctx, `DELETE FROM timetable_details WHERE header_id=$1`, header.ID); err != nil {
		return err
	}
	if err := r.insertDetails(ctx, tx, header.ID, details); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *PGTimetableRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	cmd, err := tx.Exec(ctx, `DELETE FROM timetable_headers WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return translate(errNoRows, "timetable header")
	}

	if _, err := tx.Exec(ctx, `DELETE FROM timetable_details WHERE header_id=$1`, id); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// ListActive returns headers whose validity window has not fully elapsed
// (valid_to on or after the given day start; valid_from is deliberately
// unfiltered, so not-yet-valid timetables are included). The route, the
// creating user and the bus of every detail row are resolved in-process:
// one header query, then one detail lookup per header.
func (r *PGTimetableRepository) ListActive(ctx context.Context, notExpiredBefore time.Time) ([]domain.TimetableView, error) {
	rows, err := r.db.Query(ctx, `SELECT h.id, h.route_id, h.creater_id, h.valid_from, h.valid_to, h.is_active, h.created_at,
			r.id, r.route_number, r.start_location, r.end_location, r.stops, r.distance, r.average_speed, r.duration,
			u.id, u.username, u.email, u.role
		FROM timetable_headers h
		LEFT JOIN routes r ON r.id = h.route_id
		LEFT JOIN users u ON u.id = h.creater_id
		WHERE h.valid_to >= $1`, notExpiredBefore)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]domain.TimetableView, 0)
	for rows.Next() {
		var (
			v        domain.TimetableView
			routeID  *string
			routeNum *string
			startLoc *string
			endLoc   *string
			stops    []string
			distance *float64
			avgSpeed *float64
			duration *float64
			userID   *string
			username *string
			email    *string
			role     *string
		)
		if err := rows.Scan(&v.ID, &v.RouteID, &v.CreaterID, &v.ValidFrom, &v.ValidTo, &v.IsActive, &v.CreatedAt,
			&routeID, &routeNum, &startLoc, &endLoc, &stops, &distance, &avgSpeed, &duration,
			&userID, &username, &email, &role); err != nil {
			return nil, err
		}
		if routeID != nil {
			v.Route = &domain.Route{
				ID:            *routeID,
				RouteNumber:   *routeNum,
				StartLocation: *startLoc,
				EndLocation:   *endLoc,
				Stops:         stops,
				Distance:      *distance,
				AverageSpeed:  *avgSpeed,
				Duration:      *duration,
			}
		}
		if userID != nil {
			// password hash is never selected here
			v.Creater = &domain.User{ID: *userID, Username: *username, Email: *email, Role: domain.Role(*role)}
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range views {
		details, err := r.detailsFor(ctx, views[i].ID)
		if err != nil {
			return nil, err
		}
		views[i].Details = details
	}
	return views, nil
}

// DeactivateExpired flips is_active off for headers whose validity window
// fully elapsed before the given day start. Used by the worker sweep.
func (r *PGTimetableRepository) DeactivateExpired(ctx context.Context, expiredBefore time.Time) (int64, error) {
	cmd, err := r.db.Exec(ctx, `UPDATE timetable_headers SET is_active=false WHERE is_active AND valid_to < $1`, expiredBefore)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}

func (r *PGTimetableRepository) detailsFor(ctx context.Context, headerID string) ([]domain.TimetableDetailView, error) {
	rows, err := r.db.Query(ctx, `SELECT d.id, d.header_id, d.bus_id, d.departure_location, d.departure_time,
			d.arrival_location, d.arrival_time, d.stops,
			b.id, b.bus_number, b.capacity, b.seat_count, b.ownership_type, b.route_id, b.operator_id
		FROM timetable_details d
		LEFT JOIN buses b ON b.id = d.bus_id
		WHERE d.header_id=$1`, headerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	details := make([]domain.TimetableDetailView, 0)
	for rows.Next() {
		var (
			dv        domain.TimetableDetailView
			busID     *string
			busNumber *string
			capacity  *int
			seatCount *int
			ownership *string
			routeID   *string
			operator  *string
		)
		if err := rows.Scan(&dv.ID, &dv.HeaderID, &dv.BusID, &dv.DepartureLocation, &dv.DepartureTime,
			&dv.ArrivalLocation, &dv.ArrivalTime, &dv.Stops,
			&busID, &busNumber, &capacity, &seatCount, &ownership, &routeID, &operator); err != nil {
			return nil, err
		}
		if busID != nil {
			dv.Bus = &domain.Bus{
				ID:            *busID,
				BusNumber:     *busNumber,
				Capacity:      *capacity,
				SeatCount:     *seatCount,
				OwnershipType: domain.OwnershipType(*ownership),
				RouteID:       *routeID,
				OperatorID:    *operator,
			}
		}
		details = append(details, dv)
	}
	return details, rows.Err()
}

func (r *PGTimetableRepository) insertDetails(ctx context.Context, tx pgx.Tx, headerID string, details []domain.TimetableDetail) error {
	for i := range details {
		details[i].ID = uuid.NewString()
		details[i].HeaderID = headerID
		if _, err := tx.Exec(ctx, `INSERT INTO timetable_details (id, header_id, bus_id, departure_location, departure_time, arrival_location, arrival_time, stops)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			details[i].ID, headerID, details[i].BusID, details[i].DepartureLocation, details[i].DepartureTime,
			details[i].ArrivalLocation, details[i].ArrivalTime, details[i].Stops); err != nil {
			return translate(err, "timetable detail")
		}
	}
	return nil
}

var _ TimetableRepository = (*PGTimetableRepository)(nil)
