// Package travel resolves trainer travel cost for a quotation from a pair
// of postcodes: geocode both, look up the one-way driving distance, round
// up to the next whole mile, double for the round trip, and multiply by the
// configured mileage rate.
//
// The resolver is invoked on demand while an operator edits a quote, never
// automatically during draft generation. Lookups have bounded timeouts and
// are not retried; a failed lookup surfaces to the caller for manual
// re-submission.
package travel

import (
	"context"
	"fmt"
	"math"

	"github.com/atoengine/portal/internal/app/system/apperr"
	"github.com/shopspring/decimal"
)

// milesPerMeter converts OSRM's metre distances to statute miles.
const milesPerMeter = 0.000621371

// Geocoder resolves a postcode to coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, postcode string) (lat, lon float64, err error)
}

// Router returns the one-way driving distance between two points.
type Router interface {
	DrivingDistanceMeters(ctx context.Context, lat1, lon1, lat2, lon2 float64) (float64, error)
}

// Resolver wraps the two external collaborators.
type Resolver struct {
	geo    Geocoder
	router Router
}

// NewResolver builds a Resolver over the given collaborators.
func NewResolver(geo Geocoder, router Router) *Resolver {
	return &Resolver{geo: geo, router: router}
}

// ResolveTravelCost computes the round-trip mileage cost between two
// postcodes at ratePerMile. Returns the cost (2dp) and the round-trip
// mileage. Fails with ErrInvalidLocation when either postcode cannot be
// geocoded and ErrRoutingUnavailable when no driving route exists.
func (rv *Resolver) ResolveTravelCost(ctx context.Context, originPostcode, destPostcode string, ratePerMile float64) (float64, int, error) {
	oLat, oLon, err := rv.geo.Geocode(ctx, originPostcode)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: origin %q: %v", apperr.ErrInvalidLocation, originPostcode, err)
	}
	dLat, dLon, err := rv.geo.Geocode(ctx, destPostcode)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: destination %q: %v", apperr.ErrInvalidLocation, destPostcode, err)
	}

	meters, err := rv.router.DrivingDistanceMeters(ctx, oLat, oLon, dLat, dLon)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", apperr.ErrRoutingUnavailable, err)
	}

	oneWayMiles := int(math.Ceil(meters * milesPerMeter))
	roundTrip := oneWayMiles * 2

	cost := decimal.NewFromInt(int64(roundTrip)).
		Mul(decimal.NewFromFloat(ratePerMile)).
		Round(2)

	return cost.InexactFloat64(), roundTrip, nil
}
