package api

import (
	"net/http"

	"github.com/Domenick1991/busbooking/internal/domain"
	"github.com/Domenick1991/busbooking/internal/repository"
	"github.com/Domenick1991/busbooking/internal/service/registry"
	"github.com/gin-gonic/gin"
)

type RouteHandler struct {
	service registry.RouteUseCase
}

type createRouteRequest struct {
	RouteNumber   string   `json:"routeNumber" validate:"required"`
	StartLocation string   `json:"startLocation" validate:"required"`
	EndLocation   string   `json:"endLocation" validate:"required"`
	Stops         []string `json:"stops" validate:"required,min=1"`
	Distance      float64  `json:"distance" validate:"required"`
	AverageSpeed  float64  `json:"averageSpeed" validate:"required"`
	Duration      float64  `json:"duration" validate:"required"`
}

type updateRouteRequest struct {
	RouteNumber   *string  `json:"routeNumber"`
	StartLocation *string  `json:"startLocation"`
	EndLocation   *string  `json:"endLocation"`
	Stops         []string `json:"stops"`
	Distance      *float64 `json:"distance"`
	AverageSpeed  *float64 `json:"averageSpeed"`
	Duration      *float64 `json:"duration"`
}

func NewRouteHandler(service registry.RouteUseCase) *RouteHandler {
	return &RouteHandler{service: service}
}

func (h *RouteHandler) Register(router *gin.RouterGroup, authn gin.HandlerFunc) {
	router.GET("", h.search)
	router.GET("/:id", h.get)

	admin := router.Group("", authn, RequireRoles(domain.RoleAdmin))
	admin.POST("", h.create)
	admin.PUT("/:id", h.update)
	admin.DELETE("/:id", h.delete)
}

func (h *RouteHandler) create(c *gin.Context) {
	var req createRouteRequest
	if err := bindAndValidate(c, &req); err != nil {
		respondError(c, err)
		return
	}

	route, err := h.service.CreateRoute(c.Request.Context(), registry.CreateRouteInput{
		RouteNumber:   req.RouteNumber,
		StartLocation: req.StartLocation,
		EndLocation:   req.EndLocation,
		Stops:         req.Stops,
		Distance:      req.Distance,
		AverageSpeed:  req.AverageSpeed,
		Duration:      req.Duration,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "route created successfully", "route": route})
}

func (h *RouteHandler) search(c *gin.Context) {
	routes, err := h.service.SearchRoutes(c.Request.Context(), repository.RouteFilter{
		RouteNumber:   c.Query("routeNumber"),
		StartLocation: c.Query("startLocation"),
		EndLocation:   c.Query("endLocation"),
		Stop:          c.Query("stops"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, routes)
}

func (h *RouteHandler) get(c *gin.Context) {
	route, err := h.service.GetRoute(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, route)
}

func (h *RouteHandler) update(c *gin.Context) {
	var req updateRouteRequest
	if err := bindAndValidate(c, &req); err != nil {
		respondError(c, err)
		return
	}

	route, err := h.service.UpdateRoute(c.Request.Context(), c.Param("id"), registry.UpdateRouteInput{
		RouteNumber:   req.RouteNumber,
		StartLocation: req.StartLocation,
		EndLocation:   req.EndLocation,
		Stops:         req.Stops,
		Distance:      req.Distance,
		AverageSpeed:  req.AverageSpeed,
		Duration:      req.Duration,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "route updated successfully", "route": route})
}

func (h *RouteHandler) delete(c *gin.Context) {
	if err := h.service.DeleteRoute(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "route deleted successfully"})
}
