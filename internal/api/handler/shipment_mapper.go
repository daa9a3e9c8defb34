package handler

import (
	"github.com/shipease/logistics-api/internal/core/domain"
	"github.com/shipease/logistics-api/internal/core/ports"
)

// --- Request → Service input ---

func toCreateInput(req createShipmentRequest, customerID string) ports.CreateShipmentInput {
	in := ports.CreateShipmentInput{
		CustomerID:       customerID,
		SenderName:       req.SenderName,
		SenderPhone:      req.SenderPhone,
		SenderAddress:    toAddressInput(req.SenderAddress),
		RecipientName:    req.RecipientName,
		RecipientPhone:   req.RecipientPhone,
		RecipientEmail:   req.RecipientEmail,
		RecipientAddress: toAddressInput(req.RecipientAddress),
		WeightKg:         req.WeightKg,
		Dimensions: ports.DimensionsInput{
			Length: req.Dimensions.Length,
			Width:  req.Dimensions.Width,
			Height: req.Dimensions.Height,
		},
		ServiceType:  req.ServiceType,
		SpecialNotes: req.SpecialNotes,
		DistanceKm:   req.DistanceKm,
	}
	if req.Origin != nil {
		in.Origin = &ports.CoordinatesInput{Lat: req.Origin.Lat, Lng: req.Origin.Lng}
	}
	if req.Destination != nil {
		in.Destination = &ports.CoordinatesInput{Lat: req.Destination.Lat, Lng: req.Destination.Lng}
	}
	return in
}

func toAddressInput(a addressRequest) ports.AddressInput {
	return ports.AddressInput{
		Line1:      a.Line1,
		Line2:      a.Line2,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Country:    a.Country,
	}
}

// --- Service result → HTTP response ---

func toCreateResponse(r *ports.ShipmentResult) createShipmentResponse {
	return createShipmentResponse{
		TrackingCode:      r.TrackingCode,
		Status:            r.Status,
		PriceQuoted:       r.PriceQuoted,
		CreatedAt:         r.CreatedAt.UTC(),
		EstimatedDelivery: r.EstimatedDelivery.UTC(),
		Links:             linksFor(r.TrackingCode),
	}
}

func toTrackingResponse(v *ports.TrackingView) trackingResponse {
	s := v.Shipment
	resp := trackingResponse{
		TrackingCode:      s.TrackingCode,
		Status:            string(s.Status),
		StatusLabel:       v.StatusLabel,
		StatusColor:       v.StatusColor,
		ServiceType:       s.ServiceType,
		RecipientName:     s.RecipientName,
		RecipientAddress:  toAddressResponse(s.RecipientAddress),
		CreatedAt:         s.CreatedAt.UTC(),
		EstimatedDelivery: s.EstimatedDelivery.UTC(),
		ETARemaining:      v.ETARemaining,
		ActualPickup:      s.ActualPickup,
		ActualDelivery:    s.ActualDelivery,
		Events:            make([]trackingEventResponse, 0, len(v.Events)),
	}
	for _, e := range v.Events {
		resp.Events = append(resp.Events, toEventResponse(e))
	}
	if v.LatestPosition != nil {
		latest := toEventResponse(v.LatestPosition)
		resp.LatestPosition = &latest
	}
	return resp
}

func toEventResponse(e *domain.TrackingEvent) trackingEventResponse {
	resp := trackingEventResponse{
		EventType:   e.EventType,
		Description: e.Description,
		RecordedAt:  e.RecordedAt.UTC(),
	}
	if e.Location != nil {
		resp.Location = &coordinatesResponse{Lat: e.Location.Lat, Lng: e.Location.Lng}
	}
	if e.Telemetry != nil {
		resp.Telemetry = &telemetryResponse{
			SpeedKmh:  e.Telemetry.SpeedKmh,
			Heading:   e.Telemetry.Heading,
			AccuracyM: e.Telemetry.AccuracyM,
		}
	}
	return resp
}

func toAddressResponse(a domain.Address) addressResponse {
	return addressResponse{
		Line1:      a.Line1,
		Line2:      a.Line2,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Country:    a.Country,
	}
}

func toListResponse(r *ports.ListShipmentsResult) listShipmentsResponse {
	items := make([]shipmentSummaryResponse, len(r.Items))
	for i, s := range r.Items {
		items[i] = toSummaryResponse(s)
	}
	return listShipmentsResponse{
		Data: items,
		Pagination: paginationResponse{
			Total:      r.Total,
			Page:       r.Page,
			Limit:      r.Limit,
			TotalPages: r.TotalPages,
		},
	}
}

func toSummaryResponse(s *domain.Shipment) shipmentSummaryResponse {
	return shipmentSummaryResponse{
		ID:                s.ID,
		TrackingCode:      s.TrackingCode,
		Status:            string(s.Status),
		StatusLabel:       s.Status.Label(),
		StatusColor:       s.Status.Color(),
		ServiceType:       s.ServiceType,
		RecipientName:     s.RecipientName,
		RecipientCity:     s.RecipientAddress.City,
		PriceQuoted:       s.PriceQuoted,
		CreatedAt:         s.CreatedAt.UTC(),
		EstimatedDelivery: s.EstimatedDelivery.UTC(),
		Links:             linksFor(s.TrackingCode),
	}
}

func linksFor(trackingCode string) shipmentLinks {
	return shipmentLinks{
		Self:  "/v1/shipments/" + trackingCode,
		Track: "/v1/track/" + trackingCode,
	}
}
