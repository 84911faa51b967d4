package repository

import (
	"context"

	"github.com/Domenick1991/busbooking/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RouteFilter struct {
	RouteNumber   string
	StartLocation string
	EndLocation   string
	Stop          string
}

type RouteRepository interface {
	Create(ctx context.Context, route *domain.Route) error
	GetByID(ctx context.Context, id string) (*domain.Route, error)
	Search(ctx context.Context, filter RouteFilter) ([]domain.Route, error)
	Update(ctx context.Context, route *domain.Route) error
	Delete(ctx context.Context, id string) error
}

type PGRouteRepository struct {
	db *pgxpool.Pool
}

func NewRouteRepository(db *pgxpool.Pool) RouteRepository {
	return &PGRouteRepository{db: db}
}

func (r *PGRouteRepository) Create(ctx context.Context, route *domain.Route) error {
	route.ID = uuid.NewString()
	_, err := r.db.Exec(ctx, `INSERT INTO routes (id, route_number, start_location, end_location, stops, distance, average_speed, duration)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		route.ID, route.RouteNumber, route.StartLocation, route.EndLocation, route.Stops, route.Distance, route.AverageSpeed, route.Duration)
	return translate(err, "route")
}

func (r *PGRouteRepository) GetByID(ctx context.Context, id string) (*domain.Route, error) {
	row := r.db.QueryRow(ctx, `SELECT id, route_number, start_location, end_location, stops, distance, average_speed, duration FROM routes WHERE id=$1`, id)
	var rt domain.Route
	if err := row.Scan(&rt.ID, &rt.RouteNumber, &rt.StartLocation, &rt.EndLocation, &rt.Stops, &rt.Distance, &rt.AverageSpeed, &rt.Duration); err != nil {
		return nil, translate(err, "route")
	}
	return &rt, nil
}

func (r *PGRouteRepository) Search(ctx context.Context, filter RouteFilter) ([]domain.Route, error) {
	rows, err := r.db.Query(ctx, `SELECT id, route_number, start_location, end_location, stops, distance, average_speed, duration FROM routes
		WHERE ($1 = '' OR route_number = $1)
		  AND ($2 = '' OR start_location = $2)
		  AND ($3 = '' OR end_location = $3)
		  AND ($4 = '' OR $4 = ANY(stops))`,
		filter.RouteNumber, filter.StartLocation, filter.EndLocation, filter.Stop)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	routes := make([]domain.Route, 0)
	for rows.Next() {
		var rt domain.Route
		if err := rows.Scan(&rt.ID, &rt.RouteNumber, &rt.StartLocation, &rt.EndLocation, &rt.Stops, &rt.Distance, &rt.AverageSpeed, &rt.Duration); err != nil {
			return nil, err
		}
		routes = append(routes, rt)
	}
	return routes, rows.Err()
}

func (r *PGRouteRepository) Update(ctx context.Context, route *domain.Route) error {
	cmd, err := r.db.Exec(ctx, `UPDATE routes SET route_number=$1, start_location=$2, end_location=$3, stops=$4, distance=$5, average_speed=$6, duration=$7 WHERE id=$8`,
		route.RouteNumber, route.StartLocation, route.EndLocation, route.Stops, route.Distance, route.AverageSpeed, route.Duration, route.ID)
	if err != nil {
		return translate(err, "route")
	}
	if cmd.RowsAffected() == 0 {
		return translate(errNoRows, "route")
	}
	return nil
}

func (r *PGRouteRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM routes WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return translate(errNoRows, "route")
	}
	return nil
}

var _ RouteRepository = (*PGRouteRepository)(nil)
