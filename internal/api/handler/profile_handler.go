package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shipease/logistics-api/internal/core/domain"
	"github.com/shipease/logistics-api/internal/core/ports"
)

// ProfileHandler serves profile lookups needed by the dispatcher console.
type ProfileHandler struct {
	profiles ports.AuthRepository
}

func NewProfileHandler(profiles ports.AuthRepository) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

type courierResponse struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone,omitempty"`
}

// Couriers handles GET /v1/couriers — the courier roster for assignment.
//
// @Summary      List couriers available for assignment
// @Tags         profiles
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   courierResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/couriers [get]
func (h *ProfileHandler) Couriers(c echo.Context) error {
	couriers, err := h.profiles.ListByRole(c.Request().Context(), domain.RoleCourier)
	if err != nil {
		return err
	}

	out := make([]courierResponse, len(couriers))
	for i, p := range couriers {
		out[i] = courierResponse{ID: p.ID, FullName: p.FullName, Phone: p.Phone}
	}
	return c.JSON(http.StatusOK, out)
}
