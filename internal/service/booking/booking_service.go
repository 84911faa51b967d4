package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/Domenick1991/busbooking/internal/domain"
	"github.com/Domenick1991/busbooking/internal/kafka"
	"github.com/Domenick1991/busbooking/internal/repository"
	"go.uber.org/zap"
)

type BookingUseCase interface {
	Create(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	Search(ctx context.Context, filter domain.BookingFilter) ([]domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	Update(ctx context.Context, id string, input UpdateBookingInput) (*domain.Booking, error)
	Delete(ctx context.Context, id string) error
}

// Sequence hands out monotonic booking numbers shared across instances.
type Sequence interface {
	NextBookingNumber(ctx context.Context) (int64, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookingService struct {
	bookings repository.BookingRepository
	sequence Sequence
	producer Producer
	topic    string
	log      *zap.Logger
	now      func() time.Time
}

type CreateBookingInput struct {
	BusNumber       string
	PassengerName   string
	PassengerIDNo   string
	PassengerMobile string
	StartLocation   string
	EndLocation     string
	SeatCount       int
	Date            time.Time
	Time            string
}

// UpdateBookingInput is a partial update: nil fields keep their stored
// value. BookingNumber and the identification code are not reassignable.
type UpdateBookingInput struct {
	BusNumber       *string
	PassengerName   *string
	PassengerIDNo   *string
	PassengerMobile *string
	StartLocation   *string
	EndLocation     *string
	SeatCount       *int
	Date            *time.Time
	Time            *string
	IsPaid          *bool
	IsCancelled     *bool
	IsUsed          *bool
	IsActive        *bool
}

func NewBookingService(bookings repository.BookingRepository, sequence Sequence, producer Producer, topic string, log *zap.Logger) *BookingService {
	return &BookingService{
		bookings: bookings,
		sequence: sequence,
		producer: producer,
		topic:    topic,
		log:      log,
		now:      time.Now,
	}
}

func (s *BookingService) Create(ctx context.Context, input CreateBookingInput) (*domain.Booking, error) {
	if input.SeatCount < 1 {
		return nil, domain.NewValidationError("seatCount", "must be at least 1")
	}

	number, err := s.sequence.NextBookingNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("next booking number: %w", err)
	}

	now := s.now()
	booking := &domain.Booking{
		BookingNumber:             number,
		BusNumber:                 input.BusNumber,
		PassengerName:             input.PassengerName,
		PassengerIDNo:             input.PassengerIDNo,
		PassengerMobile:           input.PassengerMobile,
		StartLocation:             input.StartLocation,
		EndLocation:               input.EndLocation,
		SeatCount:                 input.SeatCount,
		Date:                      input.Date,
		Time:                      input.Time,
		Price:                     int64(input.SeatCount) * domain.PricePerSeat,
		IsActive:                  true,
		BookingIdentificationCode: IdentificationCode(input.BusNumber, input.Date, now),
	}

	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}

	s.publish(ctx, "booking_created", booking)
	return booking, nil
}

func (s *BookingService) Search(ctx context.Context, filter domain.BookingFilter) ([]domain.Booking, error) {
	return s.bookings.Search(ctx, filter)
}

func (s *BookingService) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	return s.bookings.GetByID(ctx, id)
}

func (s *BookingService) Update(ctx context.Context, id string, input UpdateBookingInput) (*domain.Booking, error) {
	booking, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	apply(&booking.BusNumber, input.BusNumber)
	apply(&booking.PassengerName, input.PassengerName)
	apply(&booking.PassengerIDNo, input.PassengerIDNo)
	apply(&booking.PassengerMobile, input.PassengerMobile)
	apply(&booking.StartLocation, input.StartLocation)
	apply(&booking.EndLocation, input.EndLocation)
	apply(&booking.Date, input.Date)
	apply(&booking.Time, input.Time)
	apply(&booking.IsPaid, input.IsPaid)
	apply(&booking.IsCancelled, input.IsCancelled)
	apply(&booking.IsUsed, input.IsUsed)
	apply(&booking.IsActive, input.IsActive)
	if input.SeatCount != nil {
		if *input.SeatCount < 1 {
			return nil, domain.NewValidationError("seatCount", "must be at least 1")
		}
		booking.SeatCount = *input.SeatCount
		booking.Price = int64(*input.SeatCount) * domain.PricePerSeat
	}

	if err := s.bookings.Update(ctx, booking); err != nil {
		return nil, err
	}
	if input.IsCancelled != nil && *input.IsCancelled {
		s.publish(ctx, "booking_cancelled", booking)
	}
	return booking, nil
}

func (s *BookingService) Delete(ctx context.Context, id string) error {
	booking, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.bookings.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, "booking_cancelled", booking)
	return nil
}

func (s *BookingService) publish(ctx context.Context, eventType string, booking *domain.Booking) {
	if s.producer == nil {
		return
	}
	event := kafka.BookingEvent{
		Type:                      eventType,
		BookingID:                 booking.ID,
		BookingNumber:             booking.BookingNumber,
		BusNumber:                 booking.BusNumber,
		PassengerName:             booking.PassengerName,
		PassengerMobile:           booking.PassengerMobile,
		SeatCount:                 booking.SeatCount,
		Date:                      booking.Date,
		BookingIdentificationCode: booking.BookingIdentificationCode,
	}
	if err := s.producer.Publish(ctx, s.topic, booking.ID, event); err != nil {
		s.log.Warn("publish booking event failed", zap.String("type", eventType), zap.Error(err))
	}
}

// IdentificationCode builds the human-facing lookup key for a booking:
// bus number, ISO travel date, then the creation timestamp in millis.
func IdentificationCode(busNumber string, date, createdAt time.Time) string {
	return fmt.Sprintf("%s-%s-%d", busNumber, date.Format("2006-01-02"), createdAt.UnixMilli())
}

func apply[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

var _ BookingUseCase = (*BookingService)(nil)
