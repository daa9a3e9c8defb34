// Package geo provides great-circle distance and speed-based ETA estimation.
package geo

import (
	"fmt"
	"math"
	"time"

	"github.com/shipease/logistics-api/internal/core/domain"
)

// earthRadiusKm is the mean spherical Earth radius.
const earthRadiusKm = 6371

// DefaultSpeedKmh is the assumed average courier speed when none is known.
const DefaultSpeedKmh = 40

// DistanceKm returns the great-circle distance between two points, in
// kilometres, via the haversine formula. Inputs are in degrees. The result
// is non-negative and symmetric in its arguments.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

func toRad(degrees float64) float64 {
	return degrees * (math.Pi / 180)
}

// EstimateETA returns the current time plus distanceKm/avgSpeedKmh hours.
// A non-positive speed or negative distance is outside the documented domain
// and returns domain.ErrValidation.
func EstimateETA(distanceKm, avgSpeedKmh float64) (time.Time, error) {
	if avgSpeedKmh <= 0 {
		return time.Time{}, fmt.Errorf("%w: average speed must be positive, got %v", domain.ErrValidation, avgSpeedKmh)
	}
	if distanceKm < 0 {
		return time.Time{}, fmt.Errorf("%w: distance must be non-negative, got %v", domain.ErrValidation, distanceKm)
	}
	hours := distanceKm / avgSpeedKmh
	return time.Now().Add(time.Duration(hours * float64(time.Hour))), nil
}

// FormatRemaining renders the time left until eta as a short human string:
// negative remaining is "Delayed", 24h and above is whole days, 1h and above
// is hours plus minutes, anything shorter is minutes. Tier boundaries are
// inclusive of their lower bound.
func FormatRemaining(eta time.Time) string {
	return formatRemainingAt(eta, time.Now())
}

func formatRemainingAt(eta, now time.Time) string {
	diff := eta.Sub(now)
	if diff < 0 {
		return "Delayed"
	}

	hours := int(diff.Hours())
	minutes := int(diff.Minutes()) % 60

	if hours >= 24 {
		days := hours / 24
		if days == 1 {
			return "1 day"
		}
		return fmt.Sprintf("%d days", days)
	}
	if hours >= 1 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}
