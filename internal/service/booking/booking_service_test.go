package booking

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/Domenick1991/busbooking/internal/domain"
	"github.com/Domenick1991/busbooking/internal/kafka"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) Search(ctx context.Context, filter domain.BookingFilter) ([]domain.Booking, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) Update(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockSequence struct {
	mock.Mock
}

func (m *MockSequence) NextBookingNumber(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockProducer struct {
	mock.Mock
}

func (m *MockProducer) Publish(ctx context.Context, topic, key string, value interface{}) error {
	args := m.Called(ctx, topic, key, value)
	return args.Error(0)
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func validInput() CreateBookingInput {
	return CreateBookingInput{
		BusNumber:       "B12",
		PassengerName:   "Nimal Perera",
		PassengerIDNo:   "851234567V",
		PassengerMobile: "0771234567",
		StartLocation:   "Colombo",
		EndLocation:     "Galle",
		SeatCount:       2,
		Date:            time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		Time:            "14:30",
	}
}

func TestBookingService_Create_Success(t *testing.T) {
	repo := &MockBookingRepository{}
	seq := &MockSequence{}
	producer := &MockProducer{}

	now := time.Date(2025, 2, 20, 10, 0, 0, 0, time.UTC)
	svc := NewBookingService(repo, seq, producer, "booking-events", zap.NewNop())
	svc.now = fixedClock(now)

	ctx := context.Background()
	seq.On("NextBookingNumber", ctx).Return(int64(42), nil).Once()
	repo.On("Create", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil).Once()
	producer.On("Publish", ctx, "booking-events", mock.Anything, mock.Anything).Return(nil).Once()

	booking, err := svc.Create(ctx, validInput())

	assert.NoError(t, err)
	assert.NotNil(t, booking)
	assert.Equal(t, int64(42), booking.BookingNumber)
	assert.Equal(t, int64(200), booking.Price)
	assert.False(t, booking.IsPaid)
	assert.False(t, booking.IsCancelled)
	assert.False(t, booking.IsUsed)
	assert.True(t, booking.IsActive)
	repo.AssertExpectations(t)
	seq.AssertExpectations(t)
	producer.AssertExpectations(t)
}

func TestBookingService_Create_IdentificationCodeDeterministic(t *testing.T) {
	repo := &MockBookingRepository{}
	seq := &MockSequence{}

	now := time.Date(2025, 2, 20, 10, 0, 0, 0, time.UTC)
	svc := NewBookingService(repo, seq, nil, "", zap.NewNop())
	svc.now = fixedClock(now)

	ctx := context.Background()
	seq.On("NextBookingNumber", ctx).Return(int64(1), nil).Once()
	repo.On("Create", ctx, mock.Anything).Return(nil).Once()

	booking, err := svc.Create(ctx, validInput())

	assert.NoError(t, err)
	expected := fmt.Sprintf("B12-2025-03-01-%d", now.UnixMilli())
	assert.Equal(t, expected, booking.BookingIdentificationCode)
}

func TestBookingService_Create_InvalidSeatCount(t *testing.T) {
	repo := &MockBookingRepository{}
	seq := &MockSequence{}
	svc := NewBookingService(repo, seq, nil, "", zap.NewNop())

	input := validInput()
	input.SeatCount = 0

	booking, err := svc.Create(context.Background(), input)

	assert.Error(t, err)
	assert.Nil(t, booking)
	assert.True(t, domain.IsValidation(err))
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	seq.AssertNotCalled(t, "NextBookingNumber", mock.Anything)
}

func TestBookingService_Create_SequenceFailure(t *testing.T) {
	repo := &MockBookingRepository{}
	seq := &MockSequence{}
	svc := NewBookingService(repo, seq, nil, "", zap.NewNop())

	ctx := context.Background()
	seq.On("NextBookingNumber", ctx).Return(int64(0), errors.New("redis down")).Once()

	booking, err := svc.Create(ctx, validInput())

	assert.Error(t, err)
	assert.Nil(t, booking)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestBookingService_Update_Partial(t *testing.T) {
	repo := &MockBookingRepository{}
	svc := NewBookingService(repo, nil, nil, "", zap.NewNop())

	ctx := context.Background()
	stored := &domain.Booking{
		ID:            "bk-1",
		BookingNumber: 7,
		BusNumber:     "B12",
		SeatCount:     2,
		Price:         200,
		IsActive:      true,
	}
	repo.On("GetByID", ctx, "bk-1").Return(stored, nil).Once()
	repo.On("Update", ctx, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.SeatCount == 3 && b.Price == 300 && b.BusNumber == "B12" && b.BookingNumber == 7
	})).Return(nil).Once()

	seats := 3
	updated, err := svc.Update(ctx, "bk-1", UpdateBookingInput{SeatCount: &seats})

	assert.NoError(t, err)
	assert.Equal(t, 3, updated.SeatCount)
	assert.Equal(t, int64(300), updated.Price)
	repo.AssertExpectations(t)
}

func TestBookingService_Update_CancelPublishesEvent(t *testing.T) {
	repo := &MockBookingRepository{}
	producer := &MockProducer{}
	svc := NewBookingService(repo, nil, producer, "booking-events", zap.NewNop())

	ctx := context.Background()
	stored := &domain.Booking{ID: "bk-1", IsActive: true}
	repo.On("GetByID", ctx, "bk-1").Return(stored, nil).Once()
	repo.On("Update", ctx, mock.Anything).Return(nil).Once()
	producer.On("Publish", ctx, "booking-events", "bk-1", mock.MatchedBy(func(v interface{}) bool {
		event, ok := v.(kafka.BookingEvent)
		return ok && event.Type == "booking_cancelled"
	})).Return(nil).Once()

	cancelled := true
	_, err := svc.Update(ctx, "bk-1", UpdateBookingInput{IsCancelled: &cancelled})

	assert.NoError(t, err)
	producer.AssertExpectations(t)
}

func TestBookingService_Update_NotFound(t *testing.T) {
	repo := &MockBookingRepository{}
	svc := NewBookingService(repo, nil, nil, "", zap.NewNop())

	ctx := context.Background()
	repo.On("GetByID", ctx, "missing").Return(nil, domain.ErrNotFound).Once()

	updated, err := svc.Update(ctx, "missing", UpdateBookingInput{})

	assert.Nil(t, updated)
	assert.True(t, domain.IsNotFound(err))
}

func TestBookingService_Delete_NotFound(t *testing.T) {
	repo := &MockBookingRepository{}
	svc := NewBookingService(repo, nil, nil, "", zap.NewNop())

	ctx := context.Background()
	repo.On("GetByID", ctx, "missing").Return(nil, domain.ErrNotFound).Once()

	err := svc.Delete(ctx, "missing")

	assert.True(t, domain.IsNotFound(err))
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestIdentificationCode(t *testing.T) {
	date := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	createdAt := time.UnixMilli(1740000000000).UTC()

	code := IdentificationCode("B12", date, createdAt)

	assert.Equal(t, "B12-2025-03-01-1740000000000", code)
}
