package api

import (
	"net/http"

	"github.com/Domenick1991/busbooking/internal/domain"
	"github.com/Domenick1991/busbooking/internal/service/timetable"
	"github.com/gin-gonic/gin"
)

type TimetableHandler struct {
	service timetable.TimetableUseCase
}

type timetableBusRequest struct {
	Bus               string   `json:"bus" validate:"required"`
	DepartureLocation string   `json:"departureLocation" validate:"required"`
	DepartureTime     string   `json:"departureTime" validate:"required,hhmm"`
	ArrivalLocation   string   `json:"arrivalLocation" validate:"required"`
	ArrivalTime       string   `json:"arrivalTime" validate:"required,hhmm"`
	Stops             []string `json:"stops"`
}

type timetableRequest struct {
	Route     string                `json:"route" validate:"required"`
	Creater   string                `json:"creater" validate:"required"`
	ValidFrom string                `json:"validFrom" validate:"required"`
	ValidTo   string                `json:"validTo" validate:"required"`
	IsActive  *bool                 `json:"isActive" validate:"required"`
	Buses     []timetableBusRequest `json:"buses" validate:"dive"`
}

func NewTimetableHandler(service timetable.TimetableUseCase) *TimetableHandler {
	return &TimetableHandler{service: service}
}

func (h *TimetableHandler) Register(router *gin.RouterGroup, authn gin.HandlerFunc) {
	router.GET("", h.list)

	admin := router.Group("", authn, RequireRoles(domain.RoleAdmin))
	admin.POST("", h.create)
	admin.PUT("/:id", h.edit)
	admin.DELETE("/:id", h.delete)
}

func (h *TimetableHandler) create(c *gin.Context) {
	var req timetableRequest
	if err := bindAndValidate(c, &req); err != nil {
		respondError(c, err)
		return
	}

	input, err := req.toInput()
	if err != nil {
		respondError(c, err)
		return
	}

	header, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "timetable created successfully", "timetable": header})
}

func (h *TimetableHandler) list(c *gin.Context) {
	views, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

func (h *TimetableHandler) edit(c *gin.Context) {
	var req timetableRequest
	if err := bindAndValidate(c, &req); err != nil {
		respondError(c, err)
		return
	}

	input, err := req.toInput()
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.service.Edit(c.Request.Context(), c.Param("id"), input); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "timetable updated successfully"})
}

func (h *TimetableHandler) delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "timetable deleted successfully"})
}

func (r timetableRequest) toInput() (timetable.TimetableInput, error) {
	validFrom, err := parseDate("validFrom", r.ValidFrom)
	if err != nil {
		return timetable.TimetableInput{}, err
	}
	validTo, err := parseDate("validTo", r.ValidTo)
	if err != nil {
		return timetable.TimetableInput{}, err
	}

	buses := make([]timetable.BusEntry, 0, len(r.Buses))
	for _, b := range r.Buses {
		buses = append(buses, timetable.BusEntry{
			BusID:             b.Bus,
			DepartureLocation: b.DepartureLocation,
			DepartureTime:     b.DepartureTime,
			ArrivalLocation:   b.ArrivalLocation,
			ArrivalTime:       b.ArrivalTime,
			Stops:             b.Stops,
		})
	}

	return timetable.TimetableInput{
		RouteID:   r.Route,
		CreaterID: r.Creater,
		ValidFrom: validFrom,
		ValidTo:   validTo,
		IsActive:  *r.IsActive,
		Buses:     buses,
	}, nil
}
