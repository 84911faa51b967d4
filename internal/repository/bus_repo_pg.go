package repository

import (
	"context"

	"github.com/Domenick1991/busbooking/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BusFilter struct {
	BusNumber     string
	Capacity      int
	RouteID       string
	OperatorID    string
	OwnershipType string
}

type BusRepository interface {
	Create(ctx context.Context, bus *domain.Bus) error
	GetByID(ctx context.Context, id string) (*domain.Bus, error)
	Search(ctx context.Context, filter BusFilter) ([]domain.Bus, error)
	Update(ctx context.Context, bus *domain.Bus) error
	Delete(ctx context.Context, id string) error
}

type PGBusRepository struct {
	db *pgxpool.Pool
}

func NewBusRepository(db *pgxpool.Pool) BusRepository {
	return &PGBusRepository{db: db}
}

func (r *PGBusRepository) Create(ctx context.Context, bus *domain.Bus) error {
	bus.ID = uuid.NewString()
	_, err := r.db.Exec(ctx, `INSERT INTO buses (id, bus_number, capacity, seat_count, ownership_type, route_id, operator_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		bus.ID, bus.BusNumber, bus.Capacity, bus.SeatCount, bus.OwnershipType, bus.RouteID, bus.OperatorID)
	return translate(err, "bus")
}

func (r *PGBusRepository) GetByID(ctx context.Context, id string) (*domain.Bus, error) {
	row := r.db.QueryRow(ctx, `SELECT id, bus_number, capacity, seat_count, ownership_type, route_id, operator_id FROM buses WHERE id=$1`, id)
	var b domain.Bus
	if err := row.Scan(&b.ID, &b.BusNumber, &b.Capacity, &b.SeatCount, &b.OwnershipType, &b.RouteID, &b.OperatorID); err != nil {
		return nil, translate(err, "bus")
	}
	return &b, nil
}

func (r *PGBusRepository) Search(ctx context.Context, filter BusFilter) ([]domain.Bus, error) {
	rows, err := r.db.Query(ctx, `SELECT id, bus_number, capacity, seat_count, ownership_type, route_id, operator_id FROM buses
		WHERE ($1 = '' OR bus_number = $1)
		  AND ($2 = 0 OR capacity = $2)
		  AND ($3 = '' OR route_id = $3)
		  AND ($4 = '' OR operator_id = $4)
		  AND ($5 = '' OR ownership_type = $5)`,
		filter.BusNumber, filter.Capacity, filter.RouteID, filter.OperatorID, filter.OwnershipType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	buses := make([]domain.Bus, 0)
	for rows.Next() {
		var b domain.Bus
		if err := rows.Scan(&b.ID, &b.BusNumber, &b.Capacity, &b.SeatCount, &b.OwnershipType, &b.RouteID, &b.OperatorID); err != nil {
			return nil, err
		}
		buses = append(buses, b)
	}
	return buses, rows.Err()
}

func (r *PGBusRepository) Update(ctx context.Context, bus *domain.Bus) error {
	cmd, err := r.db.Exec(ctx, `UPDATE buses SET bus_number=$1, capacity=$2, seat_count=$3, ownership_type=$4, route_id=$5, operator_id=$6 WHERE id=$7`,
		bus.BusNumber, bus.Capacity, bus.SeatCount, bus.OwnershipType, bus.RouteID, bus.OperatorID, bus.ID)
	if err != nil {
		return translate(err, "bus")
	}
	if cmd.RowsAffected() == 0 {
		return translate(errNoRows, "bus")
	}
	return nil
}

func (r *PGBusRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM buses WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return translate(errNoRows, "bus")
	}
	return nil
}

var _ BusRepository = (*PGBusRepository)(nil)
