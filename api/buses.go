package api

import (
	"net/http"
	"strconv"

	"github.com/Domenick1991/busbooking/internal/domain"
	"github.com/Domenick1991/busbooking/internal/repository"
	"github.com/Domenick1991/busbooking/internal/service/registry"
	"github.com/gin-gonic/gin"
)

type BusHandler struct {
	service registry.BusUseCase
}

type createBusRequest struct {
	BusNumber     string `json:"busNumber" validate:"required"`
	Capacity      int    `json:"capacity" validate:"required,min=1"`
	SeatCount     int    `json:"seatCount" validate:"required,min=1"`
	OwnershipType string `json:"ownershipType" validate:"required,oneof=SLTB PRIVATE"`
	RouteID       string `json:"routeId" validate:"required"`
	OperatorID    string `json:"operatorId" validate:"required"`
}

type updateBusRequest struct {
	BusNumber     *string `json:"busNumber"`
	Capacity      *int    `json:"capacity" validate:"omitempty,min=1"`
	SeatCount     *int    `json:"seatCount" validate:"omitempty,min=1"`
	OwnershipType *string `json:"ownershipType" validate:"omitempty,oneof=SLTB PRIVATE"`
	RouteID       *string `json:"routeId"`
	OperatorID    *string `json:"operatorId"`
}

func NewBusHandler(service registry.BusUseCase) *BusHandler {
	return &BusHandler{service: service}
}

func (h *BusHandler) Register(router *gin.RouterGroup, authn gin.HandlerFunc) {
	router.GET("", h.search)
	router.GET("/:id", h.get)

	operator := router.Group("", authn, RequireRoles(domain.RoleOperator))
	operator.POST("", h.create)
	operator.PUT("/:id", h.update)
	operator.DELETE("/:id", h.delete)
}

func (h *BusHandler) create(c *gin.Context) {
	var req createBusRequest
	if err := bindAndValidate(c, &req); err != nil {
		respondError(c, err)
		return
	}

	bus, err := h.service.CreateBus(c.Request.Context(), registry.CreateBusInput{
		BusNumber:     req.BusNumber,
		Capacity:      req.Capacity,
		SeatCount:     req.SeatCount,
		OwnershipType: domain.OwnershipType(req.OwnershipType),
		RouteID:       req.RouteID,
		OperatorID:    req.OperatorID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "bus created successfully", "bus": bus})
}

func (h *BusHandler) search(c *gin.Context) {
	filter := repository.BusFilter{
		BusNumber:     c.Query("busNumber"),
		RouteID:       c.Query("routeId"),
		OperatorID:    c.Query("operatorId"),
		OwnershipType: c.Query("ownershipType"),
	}
	if raw := c.Query("capacity"); raw != "" {
		capacity, err := strconv.Atoi(raw)
		if err != nil {
			respondError(c, domain.NewValidationError("capacity", "must be an integer"))
			return
		}
		filter.Capacity = capacity
	}

	buses, err := h.service.SearchBuses(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, buses)
}

func (h *BusHandler) get(c *gin.Context) {
	bus, err := h.service.GetBus(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bus)
}

func (h *BusHandler) update(c *gin.Context) {
	var req updateBusRequest
	if err := bindAndValidate(c, &req); err != nil {
		respondError(c, err)
		return
	}

	input := registry.UpdateBusInput{
		BusNumber:  req.BusNumber,
		Capacity:   req.Capacity,
		SeatCount:  req.SeatCount,
		RouteID:    req.RouteID,
		OperatorID: req.OperatorID,
	}
	if req.OwnershipType != nil {
		ownership := domain.OwnershipType(*req.OwnershipType)
		input.OwnershipType = &ownership
	}

	bus, err := h.service.UpdateBus(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "bus updated successfully", "bus": bus})
}

func (h *BusHandler) delete(c *gin.Context) {
	if err := h.service.DeleteBus(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "bus deleted successfully"})
}
