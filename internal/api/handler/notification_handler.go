package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shipease/logistics-api/internal/api/metrics"
	"github.com/shipease/logistics-api/internal/core/domain"
	"github.com/shipease/logistics-api/internal/core/ports"
)

// NotificationHandler exposes the recipient-side notification feed plus the
// admin broadcast endpoint.
type NotificationHandler struct {
	service ports.NotificationService
}

func NewNotificationHandler(service ports.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

type notificationResponse struct {
	ID        string                 `json:"id"`
	Type      string                 `json:"type"`
	Title     string                 `json:"title"`
	Message   string                 `json:"message"`
	Payload   map[string]interface{} `json:"payload,omitempty"`
	Read      bool                   `json:"read"`
	CreatedAt string                 `json:"created_at"`
}

type unreadCountResponse struct {
	Count int64 `json:"count"`
}

type broadcastRequest struct {
	UserIDs []string               `json:"user_ids" validate:"required,min=1"`
	Type    string                 `json:"type"     validate:"required"`
	Title   string                 `json:"title"    validate:"required"`
	Message string                 `json:"message"  validate:"required"`
	Payload map[string]interface{} `json:"payload"`
}

// List handles GET /v1/notifications.
//
// @Summary      List the caller's notifications
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        unread  query     bool  false  "Only unread notifications"
// @Param        limit   query     int   false  "Max rows (default 50)"
// @Success      200     {array}   notificationResponse
// @Failure      401     {object}  errorResponse
// @Router       /v1/notifications [get]
func (h *NotificationHandler) List(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	unreadOnly := c.QueryParam("unread") == "true"
	ns, err := h.service.List(c.Request().Context(), userID, unreadOnly, intQuery(c, "limit"))
	if err != nil {
		return err
	}

	out := make([]notificationResponse, len(ns))
	for i, n := range ns {
		out[i] = notificationResponse{
			ID:        n.ID,
			Type:      string(n.Type),
			Title:     n.Title,
			Message:   n.Message,
			Payload:   n.Payload,
			Read:      n.Read,
			CreatedAt: n.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		}
	}
	return c.JSON(http.StatusOK, out)
}

// UnreadCount handles GET /v1/notifications/unread_count.
//
// @Summary      Count the caller's unread notifications
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  unreadCountResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/notifications/unread_count [get]
func (h *NotificationHandler) UnreadCount(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	count, err := h.service.UnreadCount(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, unreadCountResponse{Count: count})
}

// MarkRead handles PATCH /v1/notifications/:id/read.
//
// @Summary      Mark a notification as read
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Notification id"
// @Success      200 {object}  map[string]string
// @Failure      404 {object}  errorResponse
// @Router       /v1/notifications/{id}/read [patch]
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	if err := h.service.MarkRead(c.Request().Context(), c.Param("id"), userID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "marked read"})
}

// Delete handles DELETE /v1/notifications/:id.
//
// @Summary      Delete a notification
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Notification id"
// @Success      204
// @Failure      404 {object}  errorResponse
// @Router       /v1/notifications/{id} [delete]
func (h *NotificationHandler) Delete(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), userID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Broadcast handles POST /v1/notifications/broadcast — admin only. Fans one
// notification out to many users in a single batch.
//
// @Summary      Broadcast a notification to many users
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      broadcastRequest  true  "Broadcast payload"
// @Success      202   {object}  acceptedResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/notifications/broadcast [post]
func (h *NotificationHandler) Broadcast(c echo.Context) error {
	var req broadcastRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	err := h.service.DispatchToMany(c.Request().Context(), req.UserIDs,
		domain.NotificationType(req.Type), req.Title, req.Message, req.Payload)
	if err != nil {
		metrics.NotificationsDispatchedTotal.WithLabelValues(req.Type, "error").Inc()
		return err
	}

	metrics.NotificationsDispatchedTotal.WithLabelValues(req.Type, "ok").Inc()
	return c.JSON(http.StatusAccepted, acceptedResponse{
		Message: "notifications dispatched",
		Count:   len(req.UserIDs),
	})
}
