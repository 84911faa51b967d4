package registry

import (
	"context"
	"fmt"

	"github.com/Domenick1991/busbooking/internal/domain"
	"github.com/Domenick1991/busbooking/internal/repository"
)

type BusUseCase interface {
	CreateBus(ctx context.Context, input CreateBusInput) (*domain.Bus, error)
	GetBus(ctx context.Context, id string) (*domain.Bus, error)
	SearchBuses(ctx context.Context, filter repository.BusFilter) ([]domain.Bus, error)
	UpdateBus(ctx context.Context, id string, input UpdateBusInput) (*domain.Bus, error)
	DeleteBus(ctx context.Context, id string) error
}

type CreateBusInput struct {
	BusNumber     string
	Capacity      int
	SeatCount     int
	OwnershipType domain.OwnershipType
	RouteID       string
	OperatorID    string
}

type UpdateBusInput struct {
	BusNumber     *string
	Capacity      *int
	SeatCount     *int
	OwnershipType *domain.OwnershipType
	RouteID       *string
	OperatorID    *string
}

// CreateBus verifies both foreign references before the write.
func (s *RegistryService) CreateBus(ctx context.Context, input CreateBusInput) (*domain.Bus, error) {
	if !input.OwnershipType.Valid() {
		return nil, domain.NewValidationError("ownershipType", "must be SLTB or PRIVATE")
	}
	if _, err := s.routes.GetByID(ctx, input.RouteID); err != nil {
		return nil, fmt.Errorf("route reference: %w", err)
	}
	if _, err := s.users.GetByID(ctx, input.OperatorID); err != nil {
		return nil, fmt.Errorf("operator reference: %w", err)
	}

	bus := &domain.Bus{
		BusNumber:     input.BusNumber,
		Capacity:      input.Capacity,
		SeatCount:     input.SeatCount,
		OwnershipType: input.OwnershipType,
		RouteID:       input.RouteID,
		OperatorID:    input.OperatorID,
	}
	if err := s.buses.Create(ctx, bus); err != nil {
		return nil, err
	}
	return bus, nil
}

func (s *RegistryService) GetBus(ctx context.Context, id string) (*domain.Bus, error) {
	return s.buses.GetByID(ctx, id)
}

func (s *RegistryService) SearchBuses(ctx context.Context, filter repository.BusFilter) ([]domain.Bus, error) {
	return s.buses.Search(ctx, filter)
}

func (s *RegistryService) UpdateBus(ctx context.Context, id string, input UpdateBusInput) (*domain.Bus, error) {
	bus, err := s.buses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	apply(&bus.BusNumber, input.BusNumber)
	apply(&bus.Capacity, input.Capacity)
	apply(&bus.SeatCount, input.SeatCount)
	apply(&bus.RouteID, input.RouteID)
	apply(&bus.OperatorID, input.OperatorID)
	if input.OwnershipType != nil {
		if !input.OwnershipType.Valid() {
			return nil, domain.NewValidationError("ownershipType", "must be SLTB or PRIVATE")
		}
		bus.OwnershipType = *input.OwnershipType
	}
	if err := s.buses.Update(ctx, bus); err != nil {
		return nil, err
	}
	return bus, nil
}

func (s *RegistryService) DeleteBus(ctx context.Context, id string) error {
	return s.buses.Delete(ctx, id)
}
