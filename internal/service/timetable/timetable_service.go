package timetable

import (
	"context"
	"time"

	"github.com/Domenick1991/busbooking/internal/domain"
	"github.com/Domenick1991/busbooking/internal/repository"
	"go.uber.org/zap"
)

type TimetableUseCase interface {
	Create(ctx context.Context, input TimetableInput) (*domain.TimetableHeader, error)
	List(ctx context.Context) ([]domain.TimetableView, error)
	Edit(ctx context.Context, id string, input TimetableInput) error
	Delete(ctx context.Context, id string) error
	DeactivateExpired(ctx context.Context) (int64, error)
}

// BusEntry is one detail row of a create/edit payload.
type BusEntry struct {
	BusID             string   `json:"bus"`
	DepartureLocation string   `json:"departureLocation"`
	DepartureTime     string   `json:"departureTime"`
	ArrivalLocation   string   `json:"arrivalLocation"`
	ArrivalTime       string   `json:"arrivalTime"`
	Stops             []string `json:"stops"`
}

// TimetableInput carries the header fields plus the full replacement detail
// set. An empty Buses slice is accepted and yields a header with zero
// details.
type TimetableInput struct {
	RouteID   string
	CreaterID string
	ValidFrom time.Time
	ValidTo   time.Time
	IsActive  bool
	Buses     []BusEntry
}

type TimetableService struct {
	timetables repository.TimetableRepository
	log        *zap.Logger
	now        func() time.Time
}

func NewTimetableService(timetables repository.TimetableRepository, log *zap.Logger) *TimetableService {
	return &TimetableService{timetables: timetables, log: log, now: time.Now}
}

func (s *TimetableService) Create(ctx context.Context, input TimetableInput) (*domain.TimetableHeader, error) {
	header := &domain.TimetableHeader{
		RouteID:   input.RouteID,
		CreaterID: input.CreaterID,
		ValidFrom: input.ValidFrom,
		ValidTo:   input.ValidTo,
		IsActive:  input.IsActive,
	}
	if err := s.timetables.Create(ctx, header, toDetails(input.Buses)); err != nil {
		return nil, err
	}
	s.log.Info("timetable created", zap.String("id", header.ID), zap.Int("details", len(input.Buses)))
	return header, nil
}

// List returns timetables whose validity window has not fully elapsed,
// denormalized with route, creating user and per-detail bus objects.
func (s *TimetableService) List(ctx context.Context) ([]domain.TimetableView, error) {
	return s.timetables.ListActive(ctx, startOfDay(s.now()))
}

func (s *TimetableService) Edit(ctx context.Context, id string, input TimetableInput) error {
	header := &domain.TimetableHeader{
		ID:        id,
		RouteID:   input.RouteID,
		CreaterID: input.CreaterID,
		ValidFrom: input.ValidFrom,
		ValidTo:   input.ValidTo,
		IsActive:  input.IsActive,
	}
	if err := s.timetables.Update(ctx, header, toDetails(input.Buses)); err != nil {
		return err
	}
	s.log.Info("timetable replaced", zap.String("id", id), zap.Int("details", len(input.Buses)))
	return nil
}

func (s *TimetableService) Delete(ctx context.Context, id string) error {
	if err := s.timetables.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("timetable deleted", zap.String("id", id))
	return nil
}

func (s *TimetableService) DeactivateExpired(ctx context.Context) (int64, error) {
	return s.timetables.DeactivateExpired(ctx, startOfDay(s.now()))
}

func toDetails(buses []BusEntry) []domain.TimetableDetail {
	details := make([]domain.TimetableDetail, 0, len(buses))
	for _, b := range buses {
		details = append(details, domain.TimetableDetail{
			BusID:             b.BusID,
			DepartureLocation: b.DepartureLocation,
			DepartureTime:     b.DepartureTime,
			ArrivalLocation:   b.ArrivalLocation,
			ArrivalTime:       b.ArrivalTime,
			Stops:             b.Stops,
		})
	}
	return details
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

var _ TimetableUseCase = (*TimetableService)(nil)
