package registry

import (
	"context"

	"github.com/Domenick1991/busbooking/internal/domain"
	"github.com/Domenick1991/busbooking/internal/repository"
)

type RouteUseCase interface {
	CreateRoute(ctx context.Context, input CreateRouteInput) (*domain.Route, error)
	GetRoute(ctx context.Context, id string) (*domain.Route, error)
	SearchRoutes(ctx context.Context, filter repository.RouteFilter) ([]domain.Route, error)
	UpdateRoute(ctx context.Context, id string, input UpdateRouteInput) (*domain.Route, error)
	DeleteRoute(ctx context.Context, id string) error
}

type CreateRouteInput struct {
	RouteNumber   string
	StartLocation string
	EndLocation   string
	Stops         []string
	Distance      float64
	AverageSpeed  float64
	Duration      float64
}

type UpdateRouteInput struct {
	RouteNumber   *string
	StartLocation *string
	EndLocation   *string
	Stops         []string
	Distance      *float64
	AverageSpeed  *float64
	Duration      *float64
}

func (s *RegistryService) CreateRoute(ctx context.Context, input CreateRouteInput) (*domain.Route, error) {
	route := &domain.Route{
		RouteNumber:   input.RouteNumber,
		StartLocation: input.StartLocation,
		EndLocation:   input.EndLocation,
		Stops:         input.Stops,
		Distance:      input.Distance,
		AverageSpeed:  input.AverageSpeed,
		Duration:      input.Duration,
	}
	if err := s.routes.Create(ctx, route); err != nil {
		return nil, err
	}
	return route, nil
}

func (s *RegistryService) GetRoute(ctx context.Context, id string) (*domain.Route, error) {
	return s.routes.GetByID(ctx, id)
}

func (s *RegistryService) SearchRoutes(ctx context.Context, filter repository.RouteFilter) ([]domain.Route, error) {
	return s.routes.Search(ctx, filter)
}

func (s *RegistryService) UpdateRoute(ctx context.Context, id string, input UpdateRouteInput) (*domain.Route, error) {
	route, err := s.routes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	apply(&route.RouteNumber, input.RouteNumber)
	apply(&route.StartLocation, input.StartLocation)
	apply(&route.EndLocation, input.EndLocation)
	apply(&route.Distance, input.Distance)
	apply(&route.AverageSpeed, input.AverageSpeed)
	apply(&route.Duration, input.Duration)
	if input.Stops != nil {
		route.Stops = input.Stops
	}
	if err := s.routes.Update(ctx, route); err != nil {
		return nil, err
	}
	return route, nil
}

// DeleteRoute removes the route unconditionally; buses or timetables that
// still reference it are left dangling.
func (s *RegistryService) DeleteRoute(ctx context.Context, id string) error {
	return s.routes.Delete(ctx, id)
}

func apply[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
