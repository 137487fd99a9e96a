package geo

import (
	"math"

	"github.com/limelight-casting/limelight/internal/store"
)

// EarthRadiusKm is the mean Earth radius used by the haversine formula.
const EarthRadiusKm = 6371.0

// Unreachable is the distance assigned when either endpoint has no
// coordinates. Auditions at Unreachable distance never rank.
var Unreachable = math.Inf(1)

// Distance computes the great-circle distance in kilometers between two
// coordinate pairs using the haversine formula. Zero latitude or longitude
// is a valid position; absence is modeled by the callers passing nil
// *store.Coordinates, never by a zero value.
func Distance(a, b store.Coordinates) float64 {
	dLat := radians(b.Latitude - a.Latitude)
	dLon := radians(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(a.Latitude))*math.Cos(radians(b.Latitude))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * EarthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// DistanceBetween is the nil-tolerant form: either endpoint missing yields
// Unreachable rather than an error.
func DistanceBetween(a, b *store.Coordinates) float64 {
	if a == nil || b == nil {
		return Unreachable
	}
	return Distance(*a, *b)
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
