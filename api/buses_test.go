package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Domenick1991/busbooking/internal/domain"
	"github.com/Domenick1991/busbooking/internal/repository"
	"github.com/Domenick1991/busbooking/internal/service/registry"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockBusUseCase is a mock implementation of registry.BusUseCase
type MockBusUseCase struct {
	mock.Mock
}

func (m *MockBusUseCase) CreateBus(ctx context.Context, input registry.CreateBusInput) (*domain.Bus, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bus), args.Error(1)
}

func (m *MockBusUseCase) GetBus(ctx context.Context, id string) (*domain.Bus, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bus), args.Error(1)
}

func (m *MockBusUseCase) SearchBuses(ctx context.Context, filter repository.BusFilter) ([]domain.Bus, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Bus), args.Error(1)
}

func (m *MockBusUseCase) UpdateBus(ctx context.Context, id string, input registry.UpdateBusInput) (*domain.Bus, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bus), args.Error(1)
}

func (m *MockBusUseCase) DeleteBus(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestBusHandler_search_capacityFilter(t *testing.T) {
	mockService := &MockBusUseCase{}
	handler := NewBusHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/buses?capacity=50", nil)

	buses := []domain.Bus{{ID: "bus-1", BusNumber: "ND-4521", Capacity: 50}}

	mockService.On("SearchBuses", c.Request.Context(), mock.MatchedBy(func(filter repository.BusFilter) bool {
		return filter.Capacity == 50
	})).Return(buses, nil)

	handler.search(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "bus-1")

	mockService.AssertExpectations(t)
}

func TestBusHandler_search_badCapacity(t *testing.T) {
	mockService := &MockBusUseCase{}
	handler := NewBusHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/buses?capacity=fifty", nil)

	handler.search(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "capacity")
	mockService.AssertNotCalled(t, "SearchBuses", mock.Anything, mock.Anything)
}
