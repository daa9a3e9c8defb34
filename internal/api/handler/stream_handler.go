package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/shipease/logistics-api/internal/core/ports"
)

// FeedSubscriber opens the realtime feeds the Publisher writes to.
type FeedSubscriber interface {
	SubscribeNotifications(ctx context.Context, userID string) *redis.PubSub
	SubscribeShipment(ctx context.Context, shipmentID string) *redis.PubSub
}

// StreamHandler serves the realtime feeds over server-sent events. Each
// message is the JSON row the publisher pushed, forwarded verbatim.
type StreamHandler struct {
	feeds     FeedSubscriber
	shipments ports.ShipmentService
}

func NewStreamHandler(feeds FeedSubscriber, shipments ports.ShipmentService) *StreamHandler {
	return &StreamHandler{feeds: feeds, shipments: shipments}
}

// Notifications handles GET /v1/notifications/stream — the caller's live
// notification feed.
//
// @Summary      Stream the caller's notifications (SSE)
// @Tags         notifications
// @Produce      text/event-stream
// @Security     BearerAuth
// @Success      200
// @Failure      401  {object}  errorResponse
// @Router       /v1/notifications/stream [get]
func (h *StreamHandler) Notifications(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	sub := h.feeds.SubscribeNotifications(c.Request().Context(), userID)
	defer sub.Close()

	return streamSSE(c, sub)
}

// Shipment handles GET /v1/track/:tracking_code/stream — live tracking
// events for one shipment, public like the tracking page itself.
//
// @Summary      Stream tracking events for a shipment (SSE)
// @Tags         tracking
// @Produce      text/event-stream
// @Param        tracking_code  path  string  true  "Tracking code"
// @Success      200
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/track/{tracking_code}/stream [get]
func (h *StreamHandler) Shipment(c echo.Context) error {
	// Resolve the code so unknown shipments 404 before the stream opens.
	view, err := h.shipments.Track(c.Request().Context(), c.Param("tracking_code"))
	if err != nil {
		return err
	}

	sub := h.feeds.SubscribeShipment(c.Request().Context(), view.Shipment.ID)
	defer sub.Close()

	return streamSSE(c, sub)
}

func streamSSE(c echo.Context, sub *redis.PubSub) error {
	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set("Cache-Control", "no-cache")
	res.Header().Set("Connection", "keep-alive")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	ch := sub.Channel()
	for {
		select {
		case <-c.Request().Context().Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			if _, err := fmt.Fprintf(res, "data: %s\n\n", msg.Payload); err != nil {
				return nil
			}
			res.Flush()
		}
	}
}
