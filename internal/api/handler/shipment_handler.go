package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/shipease/logistics-api/internal/api/metrics"
	"github.com/shipease/logistics-api/internal/core/ports"
)

// ShipmentHandler handles HTTP requests for shipment operations.
type ShipmentHandler struct {
	service ports.ShipmentService
}

func NewShipmentHandler(service ports.ShipmentService) *ShipmentHandler {
	return &ShipmentHandler{service: service}
}

// Create handles POST /v1/shipments.
//
// @Summary      Create a new shipment
// @Tags         shipments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createShipmentRequest  true  "Shipment details"
// @Success      201   {object}  createShipmentResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /v1/shipments [post]
func (h *ShipmentHandler) Create(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req createShipmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	result, err := h.service.CreateShipment(c.Request().Context(), toCreateInput(req, userID))
	if err != nil {
		return err
	}

	metrics.ShipmentsCreatedTotal.WithLabelValues(req.ServiceType).Inc()
	return c.JSON(http.StatusCreated, toCreateResponse(result))
}

// Track handles GET /v1/track/:tracking_code — the public tracking page
// lookup. No authentication required.
//
// @Summary      Track a shipment by code
// @Tags         tracking
// @Produce      json
// @Param        tracking_code  path      string  true  "Tracking code (e.g. SE-AB12-CD34-EF56)"
// @Success      200            {object}  trackingResponse
// @Failure      400            {object}  errorResponse
// @Failure      404            {object}  errorResponse
// @Router       /v1/track/{tracking_code} [get]
func (h *ShipmentHandler) Track(c echo.Context) error {
	view, err := h.service.Track(c.Request().Context(), c.Param("tracking_code"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTrackingResponse(view))
}

// List handles GET /v1/shipments.
//
// @Summary      List shipments visible to the caller
// @Tags         shipments
// @Produce      json
// @Security     BearerAuth
// @Param        status        query     string  false  "Filter by status"
// @Param        service_type  query     string  false  "Filter by service type"
// @Param        search        query     string  false  "Partial match on tracking code or recipient name"
// @Param        date_from     query     string  false  "created_at lower bound (RFC3339)"
// @Param        date_to       query     string  false  "created_at upper bound (RFC3339)"
// @Param        page          query     int     false  "Page (1-based)"
// @Param        limit         query     int     false  "Page size (max 100)"
// @Success      200           {object}  listShipmentsResponse
// @Failure      401           {object}  errorResponse
// @Router       /v1/shipments [get]
func (h *ShipmentHandler) List(c echo.Context) error {
	userID, role, err := ctxClaims(c)
	if err != nil {
		return err
	}

	input := ports.ListShipmentsInput{
		Role:        role,
		UserID:      userID,
		Status:      c.QueryParam("status"),
		ServiceType: c.QueryParam("service_type"),
		Search:      c.QueryParam("search"),
		Page:        intQuery(c, "page"),
		Limit:       intQuery(c, "limit"),
	}
	if from := c.QueryParam("date_from"); from != "" {
		if t, err := time.Parse(time.RFC3339, from); err == nil {
			input.DateFrom = t
		}
	}
	if to := c.QueryParam("date_to"); to != "" {
		if t, err := time.Parse(time.RFC3339, to); err == nil {
			input.DateTo = t
		}
	}

	result, err := h.service.ListShipments(c.Request().Context(), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListResponse(result))
}

// Assign handles POST /v1/shipments/:id/assign — dispatcher only.
//
// @Summary      Assign a courier to a shipment
// @Tags         shipments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Shipment id"
// @Param        body  body      assignCourierRequest  true  "Courier assignment"
// @Success      200   {object}  map[string]string
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/shipments/{id}/assign [post]
func (h *ShipmentHandler) Assign(c echo.Context) error {
	_, role, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req assignCourierRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	err = h.service.AssignCourier(c.Request().Context(), ports.AssignCourierInput{
		ShipmentID: c.Param("id"),
		CourierID:  req.CourierID,
		ActorRole:  role,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "courier assigned"})
}

// UpdateStatus handles PATCH /v1/shipments/:id/status.
//
// @Summary      Update shipment status
// @Tags         shipments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Shipment id"
// @Param        body  body      updateStatusRequest  true  "New status"
// @Success      200   {object}  map[string]string
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/shipments/{id}/status [patch]
func (h *ShipmentHandler) UpdateStatus(c echo.Context) error {
	userID, role, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	err = h.service.UpdateStatus(c.Request().Context(), ports.UpdateStatusInput{
		ShipmentID: c.Param("id"),
		Status:     req.Status,
		Note:       req.Note,
		ActorID:    userID,
		ActorRole:  role,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "status updated"})
}

func intQuery(c echo.Context, name string) int {
	n, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return 0
	}
	return n
}
