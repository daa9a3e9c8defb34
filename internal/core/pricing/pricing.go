// Package pricing quotes a shipment price from weight, distance and service tier.
package pricing

import (
	"fmt"

	"github.com/shipease/logistics-api/internal/core/domain"
)

// Base rates per service tier, in currency units.
var baseRates = map[string]float64{
	domain.ServiceSameDay:     15,
	domain.ServiceNextDay:     10,
	domain.ServiceStandard:    5,
	domain.ServiceExpress:     20,
	domain.ServiceFreight:     50,
	domain.ServicePallet:      40,
	domain.ServiceCrossBorder: 100,
}

// defaultBaseRate applies to unrecognised service tiers.
const defaultBaseRate = 10

const (
	weightUnitRate   = 0.5 // per kg
	distanceUnitRate = 0.3 // per km
)

// BaseRate returns the base rate for the given service tier.
func BaseRate(serviceType string) float64 {
	if r, ok := baseRates[serviceType]; ok {
		return r
	}
	return defaultBaseRate
}

// Quote computes base + weight*0.5 + distance*0.3, floored at the base rate
// so degenerate inputs never undercut it. Negative weight or distance is
// rejected with domain.ErrValidation. Rounding to currency-minor-unit
// precision is the caller's responsibility.
func Quote(weightKg, distanceKm float64, serviceType string) (float64, error) {
	if weightKg < 0 {
		return 0, fmt.Errorf("%w: weight must be non-negative, got %v", domain.ErrValidation, weightKg)
	}
	if distanceKm < 0 {
		return 0, fmt.Errorf("%w: distance must be non-negative, got %v", domain.ErrValidation, distanceKm)
	}

	base := BaseRate(serviceType)
	total := base + weightKg*weightUnitRate + distanceKm*distanceUnitRate
	if total < base {
		return base, nil
	}
	return total, nil
}
