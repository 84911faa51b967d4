package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Domenick1991/busbooking/internal/auth"
	"github.com/Domenick1991/busbooking/internal/domain"
	"github.com/Domenick1991/busbooking/internal/service/timetable"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockTimetableUseCase is a mock implementation of timetable.TimetableUseCase
type MockTimetableUseCase struct {
	mock.Mock
}

func (m *MockTimetableUseCase) Create(ctx context.Context, input timetable.TimetableInput) (*domain.TimetableHeader, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TimetableHeader), args.Error(1)
}

func (m *MockTimetableUseCase) List(ctx context.Context) ([]domain.TimetableView, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.TimetableView), args.Error(1)
}

func (m *MockTimetableUseCase) Edit(ctx context.Context, id string, input timetable.TimetableInput) error {
	args := m.Called(ctx, id, input)
	return args.Error(0)
}

func (m *MockTimetableUseCase) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTimetableUseCase) DeactivateExpired(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

const timetableBody = `{
	"route": "route-1",
	"creater": "user-1",
	"validFrom": "2025-03-01",
	"validTo": "2025-06-30",
	"isActive": true,
	"buses": [
		{
			"bus": "bus-1",
			"departureLocation": "Colombo",
			"departureTime": "08:30",
			"arrivalLocation": "Kandy",
			"arrivalTime": "11:45",
			"stops": ["Kadawatha", "Kegalle"]
		}
	]
}`

func TestTimetableHandler_create(t *testing.T) {
	mockService := &MockTimetableUseCase{}
	handler := NewTimetableHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/timetables", strings.NewReader(timetableBody))
	c.Request.Header.Set("Content-Type", "application/json")

	header := &domain.TimetableHeader{ID: "tt-1", RouteID: "route-1", IsActive: true}

	mockService.On("Create", c.Request.Context(), mock.MatchedBy(func(input timetable.TimetableInput) bool {
		return input.RouteID == "route-1" &&
			input.ValidFrom.Equal(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)) &&
			len(input.Buses) == 1 &&
			input.Buses[0].DepartureTime == "08:30"
	})).Return(header, nil)

	handler.create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "timetable created successfully")

	mockService.AssertExpectations(t)
}

func TestTimetableHandler_create_badTime(t *testing.T) {
	mockService := &MockTimetableUseCase{}
	handler := NewTimetableHandler(mockService)

	body := strings.Replace(timetableBody, `"08:30"`, `"25:99"`, 1)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/timetables", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestTimetableHandler_create_badDate(t *testing.T) {
	mockService := &MockTimetableUseCase{}
	handler := NewTimetableHandler(mockService)

	body := strings.Replace(timetableBody, `"2025-06-30"`, `"30/06/2025"`, 1)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/timetables", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestTimetableHandler_list(t *testing.T) {
	mockService := &MockTimetableUseCase{}
	handler := NewTimetableHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/timetables", nil)

	views := []domain.TimetableView{
		{TimetableHeader: domain.TimetableHeader{ID: "tt-1", RouteID: "route-1", IsActive: true}},
	}

	mockService.On("List", c.Request.Context()).Return(views, nil)

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "tt-1")

	mockService.AssertExpectations(t)
}

func TestTimetableHandler_edit_notFound(t *testing.T) {
	mockService := &MockTimetableUseCase{}
	handler := NewTimetableHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "missing"}}
	c.Request = httptest.NewRequest("PUT", "/timetables/missing", strings.NewReader(timetableBody))
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("Edit", c.Request.Context(), "missing", mock.Anything).Return(domain.ErrNotFound)

	handler.edit(c)

	assert.Equal(t, http.StatusNotFound, w.Code)

	mockService.AssertExpectations(t)
}

func TestTimetableHandler_delete(t *testing.T) {
	mockService := &MockTimetableUseCase{}
	handler := NewTimetableHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "tt-1"}}
	c.Request = httptest.NewRequest("DELETE", "/timetables/tt-1", nil)

	mockService.On("Delete", c.Request.Context(), "tt-1").Return(nil)

	handler.delete(c)

	assert.Equal(t, http.StatusOK, w.Code)

	mockService.AssertExpectations(t)
}

// newTimetableRouter mounts the handler behind the real auth middleware so
// the role gate itself is under test.
func newTimetableRouter(service timetable.TimetableUseCase, tokens *auth.TokenManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	NewTimetableHandler(service).Register(engine.Group("/timetables"), Authenticate(tokens))
	return engine
}

func TestTimetableHandler_create_noToken(t *testing.T) {
	mockService := &MockTimetableUseCase{}
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	engine := newTimetableRouter(mockService, tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/timetables", strings.NewReader(timetableBody))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockService.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestTimetableHandler_create_commuterForbidden(t *testing.T) {
	mockService := &MockTimetableUseCase{}
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	engine := newTimetableRouter(mockService, tokens)

	token, err := tokens.Issue(&domain.User{ID: "user-2", Role: domain.RoleCommuter}, time.Now())
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/timetables", strings.NewReader(timetableBody))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	mockService.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestTimetableHandler_create_adminAllowed(t *testing.T) {
	mockService := &MockTimetableUseCase{}
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	engine := newTimetableRouter(mockService, tokens)

	token, err := tokens.Issue(&domain.User{ID: "user-1", Role: domain.RoleAdmin}, time.Now())
	assert.NoError(t, err)

	header := &domain.TimetableHeader{ID: "tt-1", RouteID: "route-1", IsActive: true}
	mockService.On("Create", mock.Anything, mock.Anything).Return(header, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/timetables", strings.NewReader(timetableBody))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockService.AssertExpectations(t)
}
