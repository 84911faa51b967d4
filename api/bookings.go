package api

import (
	"net/http"

	"github.com/Domenick1991/busbooking/internal/domain"
	"github.com/Domenick1991/busbooking/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

type createBookingRequest struct {
	BusNumber       string `json:"busNumber" validate:"required"`
	PassengerName   string `json:"passengerName" validate:"required"`
	PassengerIDNo   string `json:"passengerIDNo" validate:"required"`
	PassengerMobile string `json:"passengerMobile" validate:"required,mobile"`
	StartLocation   string `json:"startLocation" validate:"required"`
	EndLocation     string `json:"endLocation" validate:"required"`
	SeatCount       int    `json:"seatCount" validate:"required,min=1"`
	Date            string `json:"date" validate:"required"`
	Time            string `json:"time" validate:"required,hhmm"`
}

type updateBookingRequest struct {
	BusNumber       *string `json:"busNumber"`
	PassengerName   *string `json:"passengerName"`
	PassengerIDNo   *string `json:"passengerIDNo"`
	PassengerMobile *string `json:"passengerMobile" validate:"omitempty,mobile"`
	StartLocation   *string `json:"startLocation"`
	EndLocation     *string `json:"endLocation"`
	SeatCount       *int    `json:"seatCount" validate:"omitempty,min=1"`
	Date            *string `json:"date"`
	Time            *string `json:"time" validate:"omitempty,hhmm"`
	IsPaid          *bool   `json:"isPaid"`
	IsCancelled     *bool   `json:"isCancelled"`
	IsUsed          *bool   `json:"isUsed"`
	IsActive        *bool   `json:"isActive"`
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup, authn gin.HandlerFunc) {
	router.POST("", h.create)

	operator := router.Group("", authn, RequireRoles(domain.RoleOperator))
	operator.GET("", h.search)
	operator.GET("/:id", h.get)
	operator.PUT("/:id", h.update)
	operator.DELETE("/:id", h.delete)
}

func (h *BookingHandler) create(c *gin.Context) {
	var req createBookingRequest
	if err := bindAndValidate(c, &req); err != nil {
		respondError(c, err)
		return
	}

	date, err := parseDate("date", req.Date)
	if err != nil {
		respondError(c, err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), booking.CreateBookingInput{
		BusNumber:       req.BusNumber,
		PassengerName:   req.PassengerName,
		PassengerIDNo:   req.PassengerIDNo,
		PassengerMobile: req.PassengerMobile,
		StartLocation:   req.StartLocation,
		EndLocation:     req.EndLocation,
		SeatCount:       req.SeatCount,
		Date:            date,
		Time:            req.Time,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "booking created successfully", "booking": created})
}

func (h *BookingHandler) search(c *gin.Context) {
	filter := domain.BookingFilter{
		BusNumber:                 c.Query("busNumber"),
		PassengerIDNo:             c.Query("passengerIDNo"),
		BookingIdentificationCode: c.Query("bookingIdentificationCode"),
	}
	if raw := c.Query("date"); raw != "" {
		date, err := parseDate("date", raw)
		if err != nil {
			respondError(c, err)
			return
		}
		filter.Date = &date
	}

	bookings, err := h.service.Search(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) get(c *gin.Context) {
	found, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, found)
}

func (h *BookingHandler) update(c *gin.Context) {
	var req updateBookingRequest
	if err := bindAndValidate(c, &req); err != nil {
		respondError(c, err)
		return
	}

	input := booking.UpdateBookingInput{
		BusNumber:       req.BusNumber,
		PassengerName:   req.PassengerName,
		PassengerIDNo:   req.PassengerIDNo,
		PassengerMobile: req.PassengerMobile,
		StartLocation:   req.StartLocation,
		EndLocation:     req.EndLocation,
		SeatCount:       req.SeatCount,
		Time:            req.Time,
		IsPaid:          req.IsPaid,
		IsCancelled:     req.IsCancelled,
		IsUsed:          req.IsUsed,
		IsActive:        req.IsActive,
	}
	if req.Date != nil {
		date, err := parseDate("date", *req.Date)
		if err != nil {
			respondError(c, err)
			return
		}
		input.Date = &date
	}

	updated, err := h.service.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "booking updated successfully", "booking": updated})
}

func (h *BookingHandler) delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "booking deleted successfully"})
}
